package backend

import (
	"context"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// MovementGateway implementa gateway.MovementGateway contra los tres endpoints
// de movimientos del backend (/api/Buy, /api/Sell, /api/Expense).
type MovementGateway struct {
	client *Client
}

// NewMovementGateway construye el gateway.
func NewMovementGateway(client *Client) *MovementGateway {
	return &MovementGateway{client: client}
}

// ListBuys devuelve todas las compras.
func (g *MovementGateway) ListBuys(ctx context.Context, cc entity.ClientContext) ([]entity.Buy, error) {
	var buys []entity.Buy
	if err := g.client.getJSON(ctx, cc.BackendToken, "/api/Buy", &buys); err != nil {
		return nil, err
	}
	return buys, nil
}

// ListSells devuelve todas las ventas.
func (g *MovementGateway) ListSells(ctx context.Context, cc entity.ClientContext) ([]entity.Sell, error) {
	var sells []entity.Sell
	if err := g.client.getJSON(ctx, cc.BackendToken, "/api/Sell", &sells); err != nil {
		return nil, err
	}
	return sells, nil
}

// ListExpenses devuelve todos los gastos.
func (g *MovementGateway) ListExpenses(ctx context.Context, cc entity.ClientContext) ([]entity.Expense, error) {
	var expenses []entity.Expense
	if err := g.client.getJSON(ctx, cc.BackendToken, "/api/Expense", &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}
