package dto

import "github.com/shopspring/decimal"

// InventoryItem inventario enriquecido con el nombre del producto y una
// etiqueta de estado de stock para el panel.
type InventoryItem struct {
	ID           int64           `json:"id"`
	ClientID     int64           `json:"client_id"`
	ProductID    int64           `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Stock        decimal.Decimal `json:"stock"`
	AlertStock   decimal.Decimal `json:"alert_stock"`
	WarningStock decimal.Decimal `json:"warning_stock"`
	Status       string          `json:"status"` // Sin Stock | Stock Bajo | Stock Medio | Stock Alto
}

// InventoryListResponse respuesta de GET /api/inventories.
type InventoryListResponse struct {
	Items []InventoryItem `json:"items"`
	Total int             `json:"total"`
}
