package movements

import (
	"context"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/snapshot"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/movement"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// UseCase orquesta el pipeline de movimientos: carga → reconciliación →
// filtro → proyección a DTO.
type UseCase struct {
	coordinator *snapshot.Coordinator
	log         *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(coordinator *snapshot.Coordinator, log *logger.Logger) *UseCase {
	return &UseCase{coordinator: coordinator, log: log.Component("movements")}
}

// List devuelve la lista reconciliada, ordenada por fecha descendente y
// filtrada según f. Cada petición recarga el snapshot completo: las
// colecciones son proyecciones de solo lectura, no hay estado entre cargas.
func (uc *UseCase) List(ctx context.Context, cc entity.ClientContext, f Filter) (*dto.MovementListResponse, error) {
	snap, err := uc.coordinator.Load(ctx, cc)
	if err != nil {
		return nil, err
	}

	merged := Reconcile(snap.Buys, snap.Sells, snap.Expenses)
	filtered := Apply(snap, merged, f)

	items := make([]dto.MovementItem, 0, len(filtered))
	for _, m := range filtered {
		items = append(items, toMovementItem(snap, m))
	}
	return &dto.MovementListResponse{Items: items, Total: len(items)}, nil
}

func toMovementItem(snap *snapshot.Snapshot, m entity.TaggedMovement) dto.MovementItem {
	return dto.MovementItem{
		ID:                 m.ID,
		Kind:               string(m.Kind),
		InventoryID:        m.InventoryID,
		ProductID:          ResolveProductID(snap, m),
		ProductName:        ResolveProductName(snap, m),
		Description:        m.Description,
		Quantity:           m.Quantity,
		Date:               m.MovementDate.Time,
		Amount:             movement.Total(m),
		UnitPrice:          m.UnitPrice,
		SalePrice:          m.SalePrice,
		DiscountPercentage: m.DiscountPercentage,
		ExpenseType:        string(m.ExpenseType),
		TotalPrice:         m.TotalPrice,
	}
}
