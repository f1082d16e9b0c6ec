package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/analytics"
)

// DashboardHandler expone el resumen consolidado del dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen consolidado del dashboard
// @Description  Totales de productos y movimientos, montos por tipo, stock y ventanas de semana/mes.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummary
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context(), GetClientContext(c))
	if err != nil {
		return backendError(c, err)
	}
	return c.JSON(out)
}
