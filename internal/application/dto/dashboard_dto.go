package dto

import "github.com/shopspring/decimal"

// DashboardSummary respuesta de GET /api/dashboard/summary.
// Todos los montos son decimales; los conteos y totales son aditivos sobre
// conjuntos disjuntos de movimientos.
type DashboardSummary struct {
	// Conteos generales
	TotalProducts  int `json:"total_products"`
	TotalMovements int `json:"total_movements"`

	// Conteos y montos por tipo de movimiento
	TotalBuys           int             `json:"total_buys"`
	TotalBuysAmount     decimal.Decimal `json:"total_buys_amount"`     // Σ unitPrice × cantidad
	TotalSells          int             `json:"total_sells"`
	TotalSellsAmount    decimal.Decimal `json:"total_sells_amount"`    // Σ salePrice × cantidad × (1 − desc/100)
	TotalExpenses       int             `json:"total_expenses"`
	TotalExpensesAmount decimal.Decimal `json:"total_expenses_amount"` // Σ totalPrice

	// Agregados de stock (desde Inventory, no desde movimientos)
	TotalStock    decimal.Decimal `json:"total_stock"`
	LowStockItems int             `json:"low_stock_items"` // 0 < stock < umbral (alertStock o 10)
	AvgStock      decimal.Decimal `json:"avg_stock"`       // total/n, seguro con n = 0

	// Ventanas de tiempo
	WeeklyCount  int `json:"weekly_count"`  // últimos 7 días incluyendo hoy
	MonthlyCount int `json:"monthly_count"` // mes calendario en curso
}
