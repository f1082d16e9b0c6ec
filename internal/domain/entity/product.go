package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo del cliente.
// Inmutable del lado del dashboard: se reconstruye en cada carga desde el backend.
type Product struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	SellPrice decimal.Decimal `json:"sellPrice"` // precio de venta sugerido; puede venir en cero
}
