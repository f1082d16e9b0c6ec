package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrBackendLogin       = errors.New("credenciales rechazadas por el backend")
	ErrBackendRejected    = errors.New("el backend rechazó la petición")
	ErrBackendUnavailable = errors.New("backend de inventario no disponible")
)
