package dto

import "time"

// LoginRequest credenciales del cliente; la verificación la hace el backend.
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginResponse token de sesión del dashboard.
type LoginResponse struct {
	Token     string    `json:"token"`
	ClientID  int64     `json:"client_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
