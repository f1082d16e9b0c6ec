// Package analytics deriva los agregados del dashboard a partir de un
// snapshot y su lista de movimientos reconciliada.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/snapshot"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/movement"
)

// Summarize calcula el resumen del dashboard. Función total y re-entrante:
// no muta sus entradas y now se inyecta para que las ventanas de tiempo sean
// deterministas en tests.
//
// Conteos y montos son aditivos: el agregado de A ∪ B (disjuntos) es la suma
// de los agregados de A y B. Los agregados de stock salen de Inventory, no de
// los movimientos.
func Summarize(snap *snapshot.Snapshot, merged []entity.TaggedMovement, now time.Time) dto.DashboardSummary {
	summary := dto.DashboardSummary{
		TotalProducts:  len(snap.Products),
		TotalMovements: len(merged),
	}

	weekStart, weekEnd := trailingWeek(now)
	monthStart, monthEnd := calendarMonth(now)

	for _, m := range merged {
		switch m.Kind {
		case entity.KindBuy:
			summary.TotalBuys++
			summary.TotalBuysAmount = summary.TotalBuysAmount.Add(movement.BuyTotal(m.UnitPrice, m.Quantity))
		case entity.KindSell:
			summary.TotalSells++
			summary.TotalSellsAmount = summary.TotalSellsAmount.Add(movement.SaleTotal(m.SalePrice, m.Quantity, m.DiscountPercentage))
		case entity.KindExpense:
			summary.TotalExpenses++
			summary.TotalExpensesAmount = summary.TotalExpensesAmount.Add(m.TotalPrice)
		default:
			// KindUnknown cuenta como movimiento pero no suma montos:
			// sin discriminante válido no se adivina la variante.
		}

		date := m.MovementDate.Time
		if inRange(date, weekStart, weekEnd) {
			summary.WeeklyCount++
		}
		if inRange(date, monthStart, monthEnd) {
			summary.MonthlyCount++
		}
	}

	for _, inv := range snap.Inventories {
		summary.TotalStock = summary.TotalStock.Add(inv.Stock)
		if inv.IsLowStock() {
			summary.LowStockItems++
		}
	}
	if n := len(snap.Inventories); n > 0 {
		summary.AvgStock = summary.TotalStock.Div(decimal.NewFromInt(int64(n))).Round(2)
	}

	return summary
}

// trailingWeek devuelve los últimos 7 días incluyendo hoy:
// [hoy−6 días a las 00:00, hoy a las 23:59:59.999...].
func trailingWeek(now time.Time) (time.Time, time.Time) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dayStart.AddDate(0, 0, -6), dayStart.Add(24*time.Hour - time.Nanosecond)
}

// calendarMonth devuelve el mes calendario en curso:
// [día 1 a las 00:00, último día a las 23:59:59.999...] en hora local.
func calendarMonth(now time.Time) (time.Time, time.Time) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return monthStart, monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// inRange indica si t está en [from, to], ambos inclusive.
func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}
