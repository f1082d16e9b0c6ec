package entity

import "github.com/shopspring/decimal"

// DefaultLowStockThreshold umbral de stock bajo cuando el inventario no define AlertStock.
const DefaultLowStockThreshold = 10

// Inventory vincula un producto con un cliente y su cantidad en existencia.
// Por convención del backend hay una fila por par (cliente, producto); el
// dashboard no lo impone.
type Inventory struct {
	ID           int64           `json:"id"`
	ClientID     int64           `json:"clientId"`
	ProductID    int64           `json:"productId"`
	Stock        decimal.Decimal `json:"stock"`
	AlertStock   decimal.Decimal `json:"alertStock"`   // opcional; cero = usar umbral por defecto
	WarningStock decimal.Decimal `json:"warningStock"` // opcional
}

// LowStockThreshold devuelve el umbral efectivo de stock bajo para este inventario.
func (i Inventory) LowStockThreshold() decimal.Decimal {
	if i.AlertStock.IsPositive() {
		return i.AlertStock
	}
	return decimal.NewFromInt(DefaultLowStockThreshold)
}

// IsLowStock indica si el inventario está por debajo del umbral pero no agotado
// (0 < stock < umbral).
func (i Inventory) IsLowStock() bool {
	return i.Stock.IsPositive() && i.Stock.LessThan(i.LowStockThreshold())
}
