package snapshot

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/gateway"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// Coordinator lanza las peticiones de carga en paralelo y las une en un
// Snapshot. Todo-o-nada: si cualquier petición falla se reporta ese error y no
// se entregan resultados parciales. El contexto recibido es el de la petición
// HTTP consumidora, de modo que su cancelación derriba las llamadas en vuelo.
type Coordinator struct {
	products    gateway.ProductGateway
	inventories gateway.InventoryGateway
	movements   gateway.MovementGateway
	log         *logger.Logger
}

// NewCoordinator construye el coordinador.
func NewCoordinator(products gateway.ProductGateway, inventories gateway.InventoryGateway, movements gateway.MovementGateway, log *logger.Logger) *Coordinator {
	return &Coordinator{
		products:    products,
		inventories: inventories,
		movements:   movements,
		log:         log.Component("snapshot"),
	}
}

// Load hace el fan-out de las cinco lecturas y espera el join completo.
//
// El primer error real cancela el contexto derivado para abandonar las
// peticiones hermanas; los errores de esa cancelación no enmascaran al
// original. Los resultados se combinan por clave, nunca por orden de llegada.
func (c *Coordinator) Load(ctx context.Context, cc entity.ClientContext) (*Snapshot, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	start := time.Now()

	type productsResult struct {
		items []entity.Product
		err   error
	}
	type inventoriesResult struct {
		items []entity.Inventory
		err   error
	}
	type buysResult struct {
		items []entity.Buy
		err   error
	}
	type sellsResult struct {
		items []entity.Sell
		err   error
	}
	type expensesResult struct {
		items []entity.Expense
		err   error
	}

	productsCh := make(chan productsResult, 1)
	inventoriesCh := make(chan inventoriesResult, 1)
	buysCh := make(chan buysResult, 1)
	sellsCh := make(chan sellsResult, 1)
	expensesCh := make(chan expensesResult, 1)

	go func() {
		items, err := c.products.ListProducts(ctx, cc)
		if err != nil {
			cancel()
		}
		productsCh <- productsResult{items, err}
	}()
	go func() {
		items, err := c.inventories.ListInventories(ctx, cc)
		if err != nil {
			cancel()
		}
		inventoriesCh <- inventoriesResult{items, err}
	}()
	go func() {
		items, err := c.movements.ListBuys(ctx, cc)
		if err != nil {
			cancel()
		}
		buysCh <- buysResult{items, err}
	}()
	go func() {
		items, err := c.movements.ListSells(ctx, cc)
		if err != nil {
			cancel()
		}
		sellsCh <- sellsResult{items, err}
	}()
	go func() {
		items, err := c.movements.ListExpenses(ctx, cc)
		if err != nil {
			cancel()
		}
		expensesCh <- expensesResult{items, err}
	}()

	products := <-productsCh
	inventories := <-inventoriesCh
	buys := <-buysCh
	sells := <-sellsCh
	expenses := <-expensesCh

	if err := firstError(products.err, inventories.err, buys.err, sells.err, expenses.err); err != nil {
		c.log.Warn().Err(err).Int64("client_id", cc.ClientID).Msg("carga de snapshot abortada")
		return nil, err
	}

	c.log.Debug().
		Int64("client_id", cc.ClientID).
		Int("products", len(products.items)).
		Int("inventories", len(inventories.items)).
		Int("movements", len(buys.items)+len(sells.items)+len(expenses.items)).
		Dur("elapsed", time.Since(start)).
		Msg("snapshot cargado")

	return New(products.items, inventories.items, buys.items, sells.items, expenses.items), nil
}

// LoadStock variante ligera para el panel de inventario: solo productos e
// inventarios, en paralelo.
func (c *Coordinator) LoadStock(ctx context.Context, cc entity.ClientContext) (*Snapshot, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type productsResult struct {
		items []entity.Product
		err   error
	}
	type inventoriesResult struct {
		items []entity.Inventory
		err   error
	}

	productsCh := make(chan productsResult, 1)
	inventoriesCh := make(chan inventoriesResult, 1)

	go func() {
		items, err := c.products.ListProducts(ctx, cc)
		if err != nil {
			cancel()
		}
		productsCh <- productsResult{items, err}
	}()
	go func() {
		items, err := c.inventories.ListInventories(ctx, cc)
		if err != nil {
			cancel()
		}
		inventoriesCh <- inventoriesResult{items, err}
	}()

	products := <-productsCh
	inventories := <-inventoriesCh

	if err := firstError(products.err, inventories.err); err != nil {
		return nil, err
	}
	return New(products.items, inventories.items, nil, nil, nil), nil
}

// firstError devuelve el primer error que no sea producto de la cancelación
// interna; si solo hubo cancelaciones, el primero que aparezca.
func firstError(errs ...error) error {
	var cancelled error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if errors.Is(err, context.Canceled) {
			if cancelled == nil {
				cancelled = err
			}
			continue
		}
		return err
	}
	return cancelled
}
