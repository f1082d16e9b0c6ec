// Package gateway define los puertos de salida hacia el API REST de Inventario.
// Las implementaciones concretas viven en internal/infrastructure/backend; para
// tests se inyectan fakes.
package gateway

import (
	"context"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// ProductGateway lecturas del catálogo de productos.
type ProductGateway interface {
	// ListProducts devuelve todos los productos visibles para el cliente.
	ListProducts(ctx context.Context, cc entity.ClientContext) ([]entity.Product, error)
}
