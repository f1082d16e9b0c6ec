package gateway

import (
	"context"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// MovementGateway lecturas de las tres colecciones de movimientos. El backend
// las expone en endpoints separados (/api/Buy, /api/Sell, /api/Expense); el
// reconciliador las une en una sola lista etiquetada.
type MovementGateway interface {
	ListBuys(ctx context.Context, cc entity.ClientContext) ([]entity.Buy, error)
	ListSells(ctx context.Context, cc entity.ClientContext) ([]entity.Sell, error)
	ListExpenses(ctx context.Context, cc entity.ClientContext) ([]entity.Expense, error)
}
