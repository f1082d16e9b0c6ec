package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/pkg/jwt"
)

// Locals keys para la identidad del cliente en Fiber.
const (
	LocalClientID     = "client_id"
	LocalBackendToken = "backend_token"
)

// AuthMiddleware valida el Bearer Token JWT del dashboard y deja en c.Locals
// el clientID y el token del backend para construir el ClientContext.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		clientID, backendToken, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalClientID, clientID)
		c.Locals(LocalBackendToken, backendToken)
		return c.Next()
	}
}

// GetClientContext arma el ClientContext desde los locals (después del
// middleware de auth). ClientID cero significa que no hubo middleware.
func GetClientContext(c *fiber.Ctx) entity.ClientContext {
	cc := entity.ClientContext{}
	if v, ok := c.Locals(LocalClientID).(int64); ok {
		cc.ClientID = v
	}
	if v, ok := c.Locals(LocalBackendToken).(string); ok {
		cc.BackendToken = v
	}
	return cc
}
