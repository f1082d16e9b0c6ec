package gateway

import (
	"context"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// InventoryGateway lecturas de inventarios (stock por producto y cliente).
type InventoryGateway interface {
	ListInventories(ctx context.Context, cc entity.ClientContext) ([]entity.Inventory, error)
}
