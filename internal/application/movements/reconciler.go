// Package movements contiene la reconciliación de movimientos: la unión de
// las tres colecciones del backend en una sola lista etiquetada, su orden y
// sus filtros.
package movements

import (
	"sort"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// Reconcile une compras, ventas y gastos en una lista etiquetada ordenada por
// fecha descendente.
//
// El discriminante se asigna según la colección de origen; jamás se infiere
// por la forma del registro. La concatenación es compras → ventas → gastos y
// el orden es estable: registros con la misma fecha conservan ese orden
// relativo. Nunca falla por referencias colgantes — resolver nombres es
// problema del resolver, no de la reconciliación.
func Reconcile(buys []entity.Buy, sells []entity.Sell, expenses []entity.Expense) []entity.TaggedMovement {
	merged := make([]entity.TaggedMovement, 0, len(buys)+len(sells)+len(expenses))
	for _, b := range buys {
		merged = append(merged, entity.TagBuy(b))
	}
	for _, s := range sells {
		merged = append(merged, entity.TagSell(s))
	}
	for _, e := range expenses {
		merged = append(merged, entity.TagExpense(e))
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].MovementDate.After(merged[j].MovementDate.Time)
	})
	return merged
}
