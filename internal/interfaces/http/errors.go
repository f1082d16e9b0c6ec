package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
)

// backendError traduce errores de dominio a respuestas HTTP. Un fallo de
// cualquier lectura upstream aborta la carga completa: aquí no se entregan
// resultados parciales ni colecciones vacías de consolación.
func backendError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		// El backend rechazó el token embebido: la sesión upstream venció
		// aunque el JWT del dashboard siga vigente.
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "BACKEND_TOKEN_EXPIRED", Message: "sesión con el backend vencida, vuelva a iniciar sesión"})
	case errors.Is(err, domain.ErrBackendUnavailable):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND_DOWN", Message: "backend de inventario no disponible"})
	case errors.Is(err, domain.ErrBackendRejected):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND_ERROR", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
