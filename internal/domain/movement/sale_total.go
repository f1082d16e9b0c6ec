// Package movement contiene servicios de dominio puros sobre movimientos.
package movement

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// SaleTotal calcula el total monetario de una venta:
//
//	Total = SalePrice × Quantity × (1 − DiscountPercentage/100)
//
// Convención elegida para el dashboard: el backend histórico alterna entre
// "unidades vendidas" y total monetario; aquí el total de ventas es siempre
// monetario con descuento aplicado. Una venta sin SalePrice aporta cero.
func SaleTotal(salePrice, quantity, discountPercentage decimal.Decimal) decimal.Decimal {
	if !salePrice.IsPositive() {
		return decimal.Zero
	}
	factor := decimal.NewFromInt(1).Sub(discountPercentage.Div(hundred))
	if factor.IsNegative() {
		factor = decimal.Zero
	}
	return salePrice.Mul(quantity).Mul(factor)
}

// BuyTotal calcula el total monetario de una compra: UnitPrice × Quantity.
func BuyTotal(unitPrice, quantity decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(quantity)
}

// Total devuelve el monto de un movimiento etiquetado según su variante.
// KindUnknown aporta cero: nunca se adivina la variante por forma.
func Total(m entity.TaggedMovement) decimal.Decimal {
	switch m.Kind {
	case entity.KindBuy:
		return BuyTotal(m.UnitPrice, m.Quantity)
	case entity.KindSell:
		return SaleTotal(m.SalePrice, m.Quantity, m.DiscountPercentage)
	case entity.KindExpense:
		return m.TotalPrice
	default:
		return decimal.Zero
	}
}
