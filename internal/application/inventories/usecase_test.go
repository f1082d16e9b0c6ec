package inventories_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-dashboard/internal/application/inventories"
	"github.com/jhoicas/Inventario-dashboard/internal/application/snapshot"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// fakeStockBackend gateways de lectura con datos fijos; los movimientos no se
// usan en la variante ligera pero el coordinador exige el puerto.
type fakeStockBackend struct {
	products    []entity.Product
	inventories []entity.Inventory
}

func (f *fakeStockBackend) ListProducts(ctx context.Context, cc entity.ClientContext) ([]entity.Product, error) {
	return f.products, nil
}

func (f *fakeStockBackend) ListInventories(ctx context.Context, cc entity.ClientContext) ([]entity.Inventory, error) {
	return f.inventories, nil
}

func (f *fakeStockBackend) ListBuys(ctx context.Context, cc entity.ClientContext) ([]entity.Buy, error) {
	return nil, nil
}

func (f *fakeStockBackend) ListSells(ctx context.Context, cc entity.ClientContext) ([]entity.Sell, error) {
	return nil, nil
}

func (f *fakeStockBackend) ListExpenses(ctx context.Context, cc entity.ClientContext) ([]entity.Expense, error) {
	return nil, nil
}

func newUseCase(fake *fakeStockBackend) *inventories.UseCase {
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return inventories.NewUseCase(snapshot.NewCoordinator(fake, fake, fake, log))
}

func TestList_EnriqueceConNombreYEstado(t *testing.T) {
	fake := &fakeStockBackend{
		products: []entity.Product{{ID: 1, Name: "Jabón en polvo"}},
		inventories: []entity.Inventory{
			{ID: 10, ProductID: 1, Stock: decimal.NewFromInt(60)},
			{ID: 20, ProductID: 99, Stock: decimal.NewFromInt(5)}, // producto borrado
		},
	}

	out, err := newUseCase(fake).List(context.Background(), entity.ClientContext{ClientID: 7})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)

	assert.Equal(t, "Jabón en polvo", out.Items[0].ProductName)
	assert.Equal(t, "Stock Alto", out.Items[0].Status)

	assert.Equal(t, "Producto no encontrado", out.Items[1].ProductName,
		"referencia colgante degrada a marcador, nunca falla")
	assert.Equal(t, "Stock Bajo", out.Items[1].Status)
}

func TestList_EtiquetasDeEstado(t *testing.T) {
	casos := []struct {
		nombre     string
		stock      int64
		alertStock int64
		esperado   string
	}{
		{"stock cero", 0, 0, "Sin Stock"},
		{"bajo el umbral por defecto", 9, 0, "Stock Bajo"},
		{"bajo el alertStock propio", 15, 20, "Stock Bajo"},
		{"medio", 30, 0, "Stock Medio"},
		{"alto", 80, 0, "Stock Alto"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			fake := &fakeStockBackend{
				inventories: []entity.Inventory{{
					ID:         1,
					Stock:      decimal.NewFromInt(c.stock),
					AlertStock: decimal.NewFromInt(c.alertStock),
				}},
			}
			out, err := newUseCase(fake).List(context.Background(), entity.ClientContext{})
			require.NoError(t, err)
			require.Len(t, out.Items, 1)
			assert.Equal(t, c.esperado, out.Items[0].Status)
		})
	}
}
