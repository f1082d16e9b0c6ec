// Package snapshot implementa el coordinador de carga: el fan-out concurrente
// sobre los endpoints del backend y la foto inmutable de colecciones que
// consumen reconciliación y agregación.
package snapshot

import "github.com/jhoicas/Inventario-dashboard/internal/domain/entity"

// Snapshot foto inmutable de las cinco colecciones de una carga. Se construye
// únicamente cuando todas las peticiones terminaron bien, así que aguas abajo
// nunca se observa un estado a medio cargar.
type Snapshot struct {
	Products    []entity.Product
	Inventories []entity.Inventory
	Buys        []entity.Buy
	Sells       []entity.Sell
	Expenses    []entity.Expense

	productByID   map[int64]entity.Product
	inventoryByID map[int64]entity.Inventory
}

// New construye el snapshot y sus índices por ID.
func New(products []entity.Product, inventories []entity.Inventory, buys []entity.Buy, sells []entity.Sell, expenses []entity.Expense) *Snapshot {
	s := &Snapshot{
		Products:      products,
		Inventories:   inventories,
		Buys:          buys,
		Sells:         sells,
		Expenses:      expenses,
		productByID:   make(map[int64]entity.Product, len(products)),
		inventoryByID: make(map[int64]entity.Inventory, len(inventories)),
	}
	for _, p := range products {
		s.productByID[p.ID] = p
	}
	for _, inv := range inventories {
		s.inventoryByID[inv.ID] = inv
	}
	return s
}

// ProductByID busca un producto por ID.
func (s *Snapshot) ProductByID(id int64) (entity.Product, bool) {
	p, ok := s.productByID[id]
	return p, ok
}

// InventoryByID busca un inventario por ID.
func (s *Snapshot) InventoryByID(id int64) (entity.Inventory, bool) {
	inv, ok := s.inventoryByID[id]
	return inv, ok
}
