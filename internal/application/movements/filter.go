package movements

import (
	"strings"
	"time"

	"github.com/jhoicas/Inventario-dashboard/internal/application/snapshot"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// Filter criterios opcionales de filtrado, combinados con AND lógico.
// Valor cero en un campo = ese criterio no aplica.
type Filter struct {
	ProductID int64
	Kind      entity.MovementKind
	From      time.Time // inclusive
	To        time.Time // inclusive
	Query     string    // subcadena sobre nombre de producto y descripción
}

// IsZero indica si ningún criterio está activo.
func (f Filter) IsZero() bool {
	return f.ProductID == 0 && f.Kind == entity.KindUnknown &&
		f.From.IsZero() && f.To.IsZero() && f.Query == ""
}

// Apply aplica el filtro sobre la lista reconciliada. Función pura sobre
// (lista, filtro): no muta la entrada, preserva el orden y es idempotente.
// La búsqueda libre es insensible a mayúsculas y acentos.
func Apply(snap *snapshot.Snapshot, list []entity.TaggedMovement, f Filter) []entity.TaggedMovement {
	if f.IsZero() {
		return list
	}

	query := normalizeSearch(f.Query)

	out := make([]entity.TaggedMovement, 0, len(list))
	for _, m := range list {
		if f.ProductID != 0 && ResolveProductID(snap, m) != f.ProductID {
			continue
		}
		if f.Kind != entity.KindUnknown && m.Kind != f.Kind {
			continue
		}
		if !f.From.IsZero() && m.MovementDate.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && m.MovementDate.After(f.To) {
			continue
		}
		if query != "" {
			name := normalizeSearch(ResolveProductName(snap, m))
			description := normalizeSearch(m.Description)
			if !strings.Contains(name, query) && !strings.Contains(description, query) {
				continue
			}
		}
		out = append(out, m)
	}
	return out
}
