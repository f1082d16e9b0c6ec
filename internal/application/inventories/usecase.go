// Package inventories expone el panel de inventario: existencias enriquecidas
// con el nombre del producto y una etiqueta de estado.
package inventories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/snapshot"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// Umbrales de la etiqueta de estado del panel.
var mediumStockThreshold = decimal.NewFromInt(50)

// UseCase lista inventarios con información de producto.
type UseCase struct {
	coordinator *snapshot.Coordinator
}

// NewUseCase construye el caso de uso.
func NewUseCase(coordinator *snapshot.Coordinator) *UseCase {
	return &UseCase{coordinator: coordinator}
}

// List devuelve los inventarios del cliente con el nombre del producto
// resuelto (o su marcador si la referencia cuelga) y el estado de stock.
func (uc *UseCase) List(ctx context.Context, cc entity.ClientContext) (*dto.InventoryListResponse, error) {
	snap, err := uc.coordinator.LoadStock(ctx, cc)
	if err != nil {
		return nil, err
	}

	items := make([]dto.InventoryItem, 0, len(snap.Inventories))
	for _, inv := range snap.Inventories {
		name := "Producto no encontrado"
		if product, ok := snap.ProductByID(inv.ProductID); ok {
			name = product.Name
		}
		items = append(items, dto.InventoryItem{
			ID:           inv.ID,
			ClientID:     inv.ClientID,
			ProductID:    inv.ProductID,
			ProductName:  name,
			Stock:        inv.Stock,
			AlertStock:   inv.AlertStock,
			WarningStock: inv.WarningStock,
			Status:       stockStatus(inv),
		})
	}
	return &dto.InventoryListResponse{Items: items, Total: len(items)}, nil
}

// stockStatus etiqueta legible del nivel de stock.
func stockStatus(inv entity.Inventory) string {
	switch {
	case inv.Stock.IsZero() || inv.Stock.IsNegative():
		return "Sin Stock"
	case inv.Stock.LessThan(inv.LowStockThreshold()):
		return "Stock Bajo"
	case inv.Stock.LessThan(mediumStockThreshold):
		return "Stock Medio"
	default:
		return "Stock Alto"
	}
}
