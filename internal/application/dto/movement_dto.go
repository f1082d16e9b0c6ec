package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementItem un movimiento reconciliado, listo para la tabla del frontend.
// Kind es el discriminante explícito (BUY/SELL/EXPENSE); los campos de variante
// solo son significativos para su Kind y llegan en cero para el resto.
type MovementItem struct {
	ID          int64           `json:"id"`
	Kind        string          `json:"kind"`
	InventoryID int64           `json:"inventory_id,omitempty"`
	ProductID   int64           `json:"product_id,omitempty"`
	ProductName string          `json:"product_name"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Date        time.Time       `json:"date"`

	// Monto según la variante: unitPrice×cant (BUY), venta con descuento (SELL),
	// totalPrice (EXPENSE).
	Amount decimal.Decimal `json:"amount"`

	UnitPrice          decimal.Decimal `json:"unit_price"`
	SalePrice          decimal.Decimal `json:"sale_price"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	ExpenseType        string          `json:"expense_type,omitempty"`
	TotalPrice         decimal.Decimal `json:"total_price"`
}

// MovementListResponse respuesta de GET /api/movements.
type MovementListResponse struct {
	Items []MovementItem `json:"items"`
	Total int            `json:"total"`
}
