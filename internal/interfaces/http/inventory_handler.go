package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/inventories"
)

// InventoryHandler expone el panel de inventarios con estado de stock.
type InventoryHandler struct {
	uc *inventories.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventories.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar inventarios con estado de stock
// @Tags         inventories
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/inventories [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetClientContext(c))
	if err != nil {
		return backendError(c, err)
	}
	return c.JSON(out)
}
