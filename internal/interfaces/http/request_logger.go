package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// LocalRequestID key del request id en Fiber y nombre del header de respuesta.
const (
	LocalRequestID  = "request_id"
	HeaderRequestID = "X-Request-ID"
)

// RequestLogger middleware de logging estructurado: asigna un request id,
// lo devuelve en el header y registra método, ruta, status y duración.
func RequestLogger(log *logger.Logger) fiber.Handler {
	httpLog := log.Component("http")
	return func(c *fiber.Ctx) error {
		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Locals(LocalRequestID, requestID)
		c.Set(HeaderRequestID, requestID)

		start := time.Now()
		err := c.Next()

		event := httpLog.Info()
		if err != nil || c.Response().StatusCode() >= 500 {
			event = httpLog.Error()
		}
		event.
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("elapsed", time.Since(start)).
			Err(err).
			Msg("petición atendida")

		return err
	}
}
