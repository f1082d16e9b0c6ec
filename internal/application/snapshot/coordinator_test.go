package snapshot_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-dashboard/internal/application/snapshot"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de gateways
// ──────────────────────────────────────────────────────────────────────────────

// fakeBackend implementa los tres gateways de lectura con datos fijos y un
// error inyectable por colección.
type fakeBackend struct {
	products    []entity.Product
	inventories []entity.Inventory
	buys        []entity.Buy
	sells       []entity.Sell
	expenses    []entity.Expense

	errProducts    error
	errInventories error
	errBuys        error
	errSells       error
	errExpenses    error

	calls atomic.Int32
}

func (f *fakeBackend) ListProducts(ctx context.Context, cc entity.ClientContext) ([]entity.Product, error) {
	f.calls.Add(1)
	return f.products, f.errProducts
}

func (f *fakeBackend) ListInventories(ctx context.Context, cc entity.ClientContext) ([]entity.Inventory, error) {
	f.calls.Add(1)
	return f.inventories, f.errInventories
}

func (f *fakeBackend) ListBuys(ctx context.Context, cc entity.ClientContext) ([]entity.Buy, error) {
	f.calls.Add(1)
	return f.buys, f.errBuys
}

func (f *fakeBackend) ListSells(ctx context.Context, cc entity.ClientContext) ([]entity.Sell, error) {
	f.calls.Add(1)
	return f.sells, f.errSells
}

func (f *fakeBackend) ListExpenses(ctx context.Context, cc entity.ClientContext) ([]entity.Expense, error) {
	f.calls.Add(1)
	return f.expenses, f.errExpenses
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

func testClientContext() entity.ClientContext {
	return entity.ClientContext{ClientID: 7, BackendToken: "token-de-prueba"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Load
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_TodasLasColeccionesLlegan(t *testing.T) {
	fake := &fakeBackend{
		products:    []entity.Product{{ID: 1, Name: "Jabón"}},
		inventories: []entity.Inventory{{ID: 10, ProductID: 1, Stock: decimal.NewFromInt(5)}},
		buys:        []entity.Buy{{Movement: entity.Movement{ID: 1}}},
		sells:       []entity.Sell{{Movement: entity.Movement{ID: 2}}},
		expenses:    []entity.Expense{{Movement: entity.Movement{ID: 3}}},
	}
	coordinator := snapshot.NewCoordinator(fake, fake, fake, testLogger())

	snap, err := coordinator.Load(context.Background(), testClientContext())
	require.NoError(t, err)

	assert.Len(t, snap.Products, 1)
	assert.Len(t, snap.Inventories, 1)
	assert.Len(t, snap.Buys, 1)
	assert.Len(t, snap.Sells, 1)
	assert.Len(t, snap.Expenses, 1)
	assert.Equal(t, int32(5), fake.calls.Load(), "las cinco lecturas deben ejecutarse")

	// Los índices quedan armados por clave.
	p, ok := snap.ProductByID(1)
	require.True(t, ok)
	assert.Equal(t, "Jabón", p.Name)
}

// Si una sola lectura falla, la carga completa falla con ese error. No hay
// resultados parciales.
func TestLoad_UnaFallaAbortaTodo(t *testing.T) {
	fake := &fakeBackend{
		products: []entity.Product{{ID: 1}},
		errSells: domain.ErrBackendUnavailable,
	}
	coordinator := snapshot.NewCoordinator(fake, fake, fake, testLogger())

	snap, err := coordinator.Load(context.Background(), testClientContext())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable,
		"el error reportado debe ser el de la lectura que falló")
	assert.Nil(t, snap, "ante un fallo no se entrega snapshot parcial")
}

// El error real no debe quedar enmascarado por las cancelaciones que el propio
// coordinador dispara sobre las lecturas hermanas.
func TestLoad_ErrorRealGanaALasCancelaciones(t *testing.T) {
	fake := &fakeBackend{
		errProducts:    context.Canceled,
		errInventories: domain.ErrUnauthorized,
		errBuys:        context.Canceled,
	}
	coordinator := snapshot.NewCoordinator(fake, fake, fake, testLogger())

	_, err := coordinator.Load(context.Background(), testClientContext())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"el primer error real debe ganar sobre context.Canceled")
}

func TestLoad_ContextoCanceladoAntesDeEmpezar(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fake := &fakeBackend{
		errProducts:    ctx.Err(),
		errInventories: ctx.Err(),
		errBuys:        ctx.Err(),
		errSells:       ctx.Err(),
		errExpenses:    ctx.Err(),
	}
	coordinator := snapshot.NewCoordinator(fake, fake, fake, testLogger())

	_, err := coordinator.Load(ctx, testClientContext())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled),
		"si solo hubo cancelaciones se reporta la cancelación")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests LoadStock
// ──────────────────────────────────────────────────────────────────────────────

func TestLoadStock_SoloProductosEInventarios(t *testing.T) {
	fake := &fakeBackend{
		products:    []entity.Product{{ID: 1}},
		inventories: []entity.Inventory{{ID: 10, ProductID: 1}},
		buys:        []entity.Buy{{Movement: entity.Movement{ID: 1}}},
	}
	coordinator := snapshot.NewCoordinator(fake, fake, fake, testLogger())

	snap, err := coordinator.LoadStock(context.Background(), testClientContext())
	require.NoError(t, err)

	assert.Len(t, snap.Products, 1)
	assert.Len(t, snap.Inventories, 1)
	assert.Empty(t, snap.Buys, "la variante ligera no carga movimientos")
	assert.Equal(t, int32(2), fake.calls.Load(), "solo dos lecturas")
}

func TestLoadStock_FallaDeInventariosAborta(t *testing.T) {
	fake := &fakeBackend{errInventories: domain.ErrBackendUnavailable}
	coordinator := snapshot.NewCoordinator(fake, fake, fake, testLogger())

	snap, err := coordinator.LoadStock(context.Background(), testClientContext())
	require.Error(t, err)
	assert.Nil(t, snap)
}
