package backend

import (
	"context"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// ProductGateway implementa gateway.ProductGateway contra GET /api/Product.
type ProductGateway struct {
	client *Client
}

// NewProductGateway construye el gateway.
func NewProductGateway(client *Client) *ProductGateway {
	return &ProductGateway{client: client}
}

// ListProducts devuelve el catálogo completo del cliente autenticado.
func (g *ProductGateway) ListProducts(ctx context.Context, cc entity.ClientContext) ([]entity.Product, error) {
	var products []entity.Product
	if err := g.client.getJSON(ctx, cc.BackendToken, "/api/Product", &products); err != nil {
		return nil, err
	}
	return products, nil
}
