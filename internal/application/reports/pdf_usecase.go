// Package reports genera el reporte PDF de movimientos.
package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-dashboard/internal/application/movements"
	"github.com/jhoicas/Inventario-dashboard/internal/application/snapshot"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/movement"
)

// ReportRow una fila de la tabla del reporte.
type ReportRow struct {
	Date        time.Time
	ProductName string
	KindLabel   string // Compra | Venta | Gasto | Desconocido
	Description string
	Quantity    decimal.Decimal
	Amount      decimal.Decimal
}

// ReportData datos listos para el generador PDF.
type ReportData struct {
	GeneratedAt time.Time
	ClientID    int64
	Rows        []ReportRow

	TotalBuysAmount     decimal.Decimal
	TotalSellsAmount    decimal.Decimal
	TotalExpensesAmount decimal.Decimal
}

// MovementsPDFGenerator puerto de salida hacia la librería de PDF; la
// implementación concreta vive en internal/infrastructure/pdf.
type MovementsPDFGenerator interface {
	GenerateMovementsPDF(ctx context.Context, data *ReportData) ([]byte, error)
}

// PDFUseCase arma el reporte de movimientos (mismo pipeline que la lista:
// carga → reconciliación → filtro) y delega el render en el generador.
type PDFUseCase struct {
	coordinator *snapshot.Coordinator
	generator   MovementsPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(coordinator *snapshot.Coordinator, generator MovementsPDFGenerator) *PDFUseCase {
	return &PDFUseCase{coordinator: coordinator, generator: generator}
}

// MovementsReport genera el PDF de los movimientos que pasan el filtro.
func (uc *PDFUseCase) MovementsReport(ctx context.Context, cc entity.ClientContext, f movements.Filter) ([]byte, error) {
	snap, err := uc.coordinator.Load(ctx, cc)
	if err != nil {
		return nil, err
	}

	merged := movements.Reconcile(snap.Buys, snap.Sells, snap.Expenses)
	filtered := movements.Apply(snap, merged, f)

	data := &ReportData{
		GeneratedAt: time.Now(),
		ClientID:    cc.ClientID,
		Rows:        make([]ReportRow, 0, len(filtered)),
	}
	for _, m := range filtered {
		amount := movement.Total(m)
		data.Rows = append(data.Rows, ReportRow{
			Date:        m.MovementDate.Time,
			ProductName: movements.ResolveProductName(snap, m),
			KindLabel:   kindLabel(m.Kind),
			Description: m.Description,
			Quantity:    m.Quantity,
			Amount:      amount,
		})
		switch m.Kind {
		case entity.KindBuy:
			data.TotalBuysAmount = data.TotalBuysAmount.Add(amount)
		case entity.KindSell:
			data.TotalSellsAmount = data.TotalSellsAmount.Add(amount)
		case entity.KindExpense:
			data.TotalExpensesAmount = data.TotalExpensesAmount.Add(amount)
		}
	}

	return uc.generator.GenerateMovementsPDF(ctx, data)
}

// kindLabel etiqueta legible del discriminante para el reporte.
func kindLabel(k entity.MovementKind) string {
	switch k {
	case entity.KindBuy:
		return "Compra"
	case entity.KindSell:
		return "Venta"
	case entity.KindExpense:
		return "Gasto"
	default:
		return "Desconocido"
	}
}
