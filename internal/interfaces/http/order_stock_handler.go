package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/modaro/inventory-api/internal/application/dto"
	"github.com/modaro/inventory-api/internal/application/inventory"
	"github.com/modaro/inventory-api/internal/domain/entity"
)

// OrderStockHandler expone el débito/crédito de stock por orden al servicio
// de órdenes (protegido, rol service o admin).
type OrderStockHandler struct {
	orderStock *inventory.OrderStockUseCase
}

// NewOrderStockHandler construye el handler.
func NewOrderStockHandler(orderStock *inventory.OrderStockUseCase) *OrderStockHandler {
	return &OrderStockHandler{orderStock: orderStock}
}

// Deduct godoc
// @Summary      Debitar stock por colocación de orden
// @Description  Una transacción por línea, sin rollback de líneas anteriores si
//
//	una falla. Si all_succeeded es false y la orden se abandona, el
//	caller debe compensar llamando a /restore con las líneas exitosas.
//
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        orderId  path  string                true  "ID de la orden"
// @Param        body     body  dto.OrderStockRequest true  "items[]"
// @Success      200  {object}  dto.OrderStockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders/{orderId}/deduct [post]
func (h *OrderStockHandler) Deduct(c *fiber.Ctx) error {
	var in dto.OrderStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	result, err := h.orderStock.DeductStockForOrder(c.Context(), c.Params("orderId"), toOrderItems(in.Items), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toOrderStockResponse(result))
}

// Restore godoc
// @Summary      Acreditar stock por devolución o cancelación
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        orderId  path  string                true  "ID de la orden"
// @Param        body     body  dto.OrderStockRequest true  "items[], kind: return|cancellation"
// @Success      200  {object}  dto.OrderStockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders/{orderId}/restore [post]
func (h *OrderStockHandler) Restore(c *fiber.Ctx) error {
	var in dto.OrderStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	kind, ok := entity.ParseMovementType(in.Kind)
	if !ok || !kind.IsOrderCredit() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "kind debe ser return o cancellation"})
	}

	result, err := h.orderStock.RestoreStockForOrder(c.Context(), c.Params("orderId"), toOrderItems(in.Items), kind, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toOrderStockResponse(result))
}

func toOrderItems(items []dto.OrderItemRequest) []inventory.OrderItem {
	out := make([]inventory.OrderItem, 0, len(items))
	for _, i := range items {
		out = append(out, inventory.OrderItem{ProductID: i.ProductID, Quantity: i.Quantity})
	}
	return out
}

func toOrderStockResponse(result *inventory.OrderStockResult) dto.OrderStockResponse {
	out := dto.OrderStockResponse{
		AllSucceeded: result.AllSucceeded,
		Items:        make([]dto.OrderItemResult, 0, len(result.Items)),
	}
	for _, item := range result.Items {
		out.Items = append(out.Items, dto.OrderItemResult{
			ProductID: item.ProductID,
			Success:   item.Success,
			NewStock:  item.NewStock,
			Error:     item.Error,
		})
	}
	return out
}
