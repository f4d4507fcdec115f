package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/modaro/inventory-api/internal/application/dto"
	"github.com/modaro/inventory-api/internal/application/inventory"
)

// ReportsHandler vistas de solo lectura sobre snapshots y ledger: alertas de
// stock bajo, historial de movimientos y resumen de inventario (protegido).
type ReportsHandler struct {
	alerts  *inventory.AlertUseCase
	history *inventory.HistoryUseCase
	summary *inventory.SummaryUseCase
}

// NewReportsHandler construye el handler.
func NewReportsHandler(alerts *inventory.AlertUseCase, history *inventory.HistoryUseCase, summary *inventory.SummaryUseCase) *ReportsHandler {
	return &ReportsHandler{alerts: alerts, history: history, summary: summary}
}

// GetLowStockAlerts godoc
// @Summary      Alertas de stock bajo del vendedor
// @Description  Productos con stock <= umbral, más urgentes primero.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.StockAlertDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory/alerts [get]
func (h *ReportsHandler) GetLowStockAlerts(c *fiber.Ctx) error {
	alerts, err := h.alerts.GetLowStockAlerts(c.Context(), GetSellerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(alerts), "alerts": alerts})
}

// GetMovementHistory godoc
// @Summary      Historial de movimientos del vendedor
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        type        query  string  false  "Filtrar por tipo de movimiento"
// @Param        start_date  query  string  false  "Desde (RFC 3339, inclusivo)"
// @Param        end_date    query  string  false  "Hasta (RFC 3339, inclusivo)"
// @Param        limit       query  int     false  "Tamaño de página (defecto 50, máx 100)"
// @Param        offset      query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.MovementHistoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *ReportsHandler) GetMovementHistory(c *fiber.Ctx) error {
	filter := inventory.HistoryFilter{
		ProductID: c.Query("product_id"),
		Type:      c.Query("type"),
		Limit:     c.QueryInt("limit"),
		Offset:    c.QueryInt("offset"),
	}

	var err error
	if filter.From, err = parseDateQuery(c.Query("start_date")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date inválido (RFC 3339)"})
	}
	if filter.To, err = parseDateQuery(c.Query("end_date")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end_date inválido (RFC 3339)"})
	}

	result, err := h.history.GetMovementHistory(c.Context(), GetSellerID(c), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// GetProductMovements godoc
// @Summary      Historial de movimientos de un producto
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del producto"
// @Param        limit   query  int     false  "Tamaño de página"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.MovementHistoryResponse
// @Router       /api/inventory/products/{id}/movements [get]
func (h *ReportsHandler) GetProductMovements(c *fiber.Ctx) error {
	result, err := h.history.GetMovementHistory(c.Context(), GetSellerID(c), inventory.HistoryFilter{
		ProductID: c.Params("id"),
		Limit:     c.QueryInt("limit"),
		Offset:    c.QueryInt("offset"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// GetInventorySummary godoc
// @Summary      Resumen de inventario del vendedor
// @Description  Totales, valor del inventario, conteos de stock bajo/agotado y
//
//	desglose por categoría ordenado por stock descendente.
//
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventorySummaryDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory/summary [get]
func (h *ReportsHandler) GetInventorySummary(c *fiber.Ctx) error {
	summary, err := h.summary.GetInventorySummary(c.Context(), GetSellerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// parseDateQuery acepta RFC 3339 completo o solo fecha (2024-01-31).
func parseDateQuery(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
