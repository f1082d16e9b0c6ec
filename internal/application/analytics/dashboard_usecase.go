package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/movements"
	"github.com/jhoicas/Inventario-dashboard/internal/application/snapshot"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// DashboardUseCase genera el resumen del dashboard para el cliente autenticado.
//
// Fuente de datos: el coordinador de snapshot (cinco lecturas upstream en
// paralelo). Si la carga falla no se entregan agregados sobre colecciones
// vacías: el error sube tal cual al handler.
type DashboardUseCase struct {
	coordinator *snapshot.Coordinator
	log         *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(coordinator *snapshot.Coordinator, log *logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{coordinator: coordinator, log: log.Component("dashboard")}
}

// GetSummary carga el snapshot, reconcilia los movimientos y calcula los
// agregados con la hora local del servidor.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, cc entity.ClientContext) (*dto.DashboardSummary, error) {
	snap, err := uc.coordinator.Load(ctx, cc)
	if err != nil {
		return nil, err
	}
	merged := movements.Reconcile(snap.Buys, snap.Sells, snap.Expenses)
	summary := Summarize(snap, merged, time.Now())
	return &summary, nil
}
