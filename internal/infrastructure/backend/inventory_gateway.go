package backend

import (
	"context"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// InventoryGateway implementa gateway.InventoryGateway contra GET /api/Inventory.
type InventoryGateway struct {
	client *Client
}

// NewInventoryGateway construye el gateway.
func NewInventoryGateway(client *Client) *InventoryGateway {
	return &InventoryGateway{client: client}
}

// ListInventories devuelve los inventarios del cliente autenticado.
func (g *InventoryGateway) ListInventories(ctx context.Context, cc entity.ClientContext) ([]entity.Inventory, error) {
	var inventories []entity.Inventory
	if err := g.client.getJSON(ctx, cc.BackendToken, "/api/Inventory", &inventories); err != nil {
		return nil, err
	}
	return inventories, nil
}
