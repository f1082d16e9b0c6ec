package gateway

import (
	"context"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// BackendSession sesión emitida por el API de Inventario tras un login exitoso.
type BackendSession struct {
	Token      string
	ClientID   int64
	Expiration entity.APITime
}

// AuthGateway autenticación contra el backend (POST /api/Client/login).
// El dashboard no guarda credenciales ni hashes: delega la verificación.
type AuthGateway interface {
	Login(ctx context.Context, username, password string) (*BackendSession, error)
}
