package entity

import "github.com/shopspring/decimal"

// MovementKind discriminante explícito del tipo de movimiento.
//
// El frontend original infería el tipo por la presencia de campos
// (`'unitPrice' in movement`), lo que clasificaba mal una venta sin campos
// distintivos. Aquí el discriminante se asigna en la reconciliación según la
// colección de origen y nunca por inspección estructural.
type MovementKind string

const (
	// KindUnknown es el valor cero: un movimiento que ningún origen reclamó.
	// Resolver, filtros y agregador lo tratan como cuarta variante real.
	KindUnknown MovementKind = ""

	KindBuy     MovementKind = "BUY"
	KindSell    MovementKind = "SELL"
	KindExpense MovementKind = "EXPENSE"
)

// Valid indica si el discriminante corresponde a una variante conocida.
func (k MovementKind) Valid() bool {
	switch k {
	case KindBuy, KindSell, KindExpense:
		return true
	}
	return false
}

// TaggedMovement es la unión etiquetada que emite el reconciliador: los campos
// comunes de Movement más el discriminante y los campos propios de cada
// variante. Solo los campos de la variante indicada por Kind son significativos.
type TaggedMovement struct {
	Movement
	Kind MovementKind

	// Kind == KindBuy
	UnitPrice decimal.Decimal

	// Kind == KindSell
	SalePrice          decimal.Decimal
	DiscountPercentage decimal.Decimal

	// Kind == KindExpense
	ExpenseType ExpenseType
	TotalPrice  decimal.Decimal
}

// TagBuy construye la variante BUY.
func TagBuy(b Buy) TaggedMovement {
	return TaggedMovement{Movement: b.Movement, Kind: KindBuy, UnitPrice: b.UnitPrice}
}

// TagSell construye la variante SELL.
func TagSell(s Sell) TaggedMovement {
	return TaggedMovement{
		Movement:           s.Movement,
		Kind:               KindSell,
		SalePrice:          s.SalePrice,
		DiscountPercentage: s.DiscountPercentage,
	}
}

// TagExpense construye la variante EXPENSE.
func TagExpense(e Expense) TaggedMovement {
	return TaggedMovement{
		Movement:    e.Movement,
		Kind:        KindExpense,
		ExpenseType: e.ExpenseType,
		TotalPrice:  e.TotalPrice,
	}
}
