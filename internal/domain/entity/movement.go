package entity

import "github.com/shopspring/decimal"

// Movement campos comunes a todos los movimientos de inventario registrados en
// el backend. InventoryID y ProductID son opcionales en el wire: un movimiento
// puede llegar sin inventario asociado (dato histórico o referencia colgante).
type Movement struct {
	ID           int64           `json:"id"`
	InventoryID  int64           `json:"inventoryId,omitempty"`
	ProductID    int64           `json:"productId,omitempty"`
	Description  string          `json:"description"`
	Quantity     decimal.Decimal `json:"quantity"`
	MovementDate APITime         `json:"movementDate"`
}

// Buy compra de mercancía: entrada de stock con precio unitario.
type Buy struct {
	Movement
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Sell venta: salida de stock con precio de venta y descuento porcentual.
// SalePrice puede venir en cero en registros antiguos del backend.
type Sell struct {
	Movement
	SalePrice          decimal.Decimal `json:"salePrice"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
}

// ExpenseType categoría de gasto.
type ExpenseType string

// Categorías de gasto reconocidas por el backend.
const (
	ExpenseRent        ExpenseType = "rent"
	ExpenseUtilities   ExpenseType = "utilities"
	ExpenseSalaries    ExpenseType = "salaries"
	ExpenseMaintenance ExpenseType = "maintenance"
	ExpenseOther       ExpenseType = "other"
)

// Expense gasto operativo: no mueve stock, solo dinero.
type Expense struct {
	Movement
	ExpenseType ExpenseType     `json:"expenseType"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}
