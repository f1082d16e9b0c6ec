package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/movements"
	"github.com/jhoicas/Inventario-dashboard/internal/application/reports"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// MovementsHandler maneja la lista reconciliada de movimientos y su reporte.
type MovementsHandler struct {
	uc    *movements.UseCase
	pdfUC *reports.PDFUseCase
}

// NewMovementsHandler construye el handler.
func NewMovementsHandler(uc *movements.UseCase, pdfUC *reports.PDFUseCase) *MovementsHandler {
	return &MovementsHandler{uc: uc, pdfUC: pdfUC}
}

// List godoc
// @Summary      Listar movimientos reconciliados
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  int     false  "ID exacto de producto"
// @Param        type        query  string  false  "BUY | SELL | EXPENSE"
// @Param        from        query  string  false  "Fecha inicial YYYY-MM-DD (inclusive)"
// @Param        to          query  string  false  "Fecha final YYYY-MM-DD (inclusive)"
// @Param        q           query  string  false  "Búsqueda libre en producto y descripción"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementsHandler) List(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILTER", Message: err.Error()})
	}
	out, err := h.uc.List(c.Context(), GetClientContext(c), filter)
	if err != nil {
		return backendError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte PDF de movimientos
// @Tags         movements
// @Security     Bearer
// @Produce      application/pdf
// @Param        product_id  query  int     false  "ID exacto de producto"
// @Param        type        query  string  false  "BUY | SELL | EXPENSE"
// @Param        from        query  string  false  "Fecha inicial YYYY-MM-DD (inclusive)"
// @Param        to          query  string  false  "Fecha final YYYY-MM-DD (inclusive)"
// @Param        q           query  string  false  "Búsqueda libre"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements/report [get]
func (h *MovementsHandler) Report(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILTER", Message: err.Error()})
	}
	pdfBytes, err := h.pdfUC.MovementsReport(c.Context(), GetClientContext(c), filter)
	if err != nil {
		return backendError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos.pdf"`)
	return c.Send(pdfBytes)
}

// parseFilter arma el Filter desde los query params. Las fechas son días
// completos: from arranca a las 00:00 y to termina a las 23:59:59.999.
func parseFilter(c *fiber.Ctx) (movements.Filter, error) {
	f := movements.Filter{
		ProductID: int64(c.QueryInt("product_id", 0)),
		Query:     c.Query("q"),
	}

	if raw := c.Query("type"); raw != "" {
		kind := entity.MovementKind(raw)
		if !kind.Valid() {
			return movements.Filter{}, fmt.Errorf("type debe ser BUY, SELL o EXPENSE")
		}
		f.Kind = kind
	}

	if raw := c.Query("from"); raw != "" {
		day, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return movements.Filter{}, fmt.Errorf("from debe tener formato YYYY-MM-DD")
		}
		f.From = day
	}
	if raw := c.Query("to"); raw != "" {
		day, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return movements.Filter{}, fmt.Errorf("to debe tener formato YYYY-MM-DD")
		}
		f.To = day.Add(24*time.Hour - time.Nanosecond)
	}
	return f, nil
}
