package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/modaro/inventory-api/internal/application/dto"
	"github.com/modaro/inventory-api/internal/application/inventory"
	"github.com/modaro/inventory-api/internal/domain/entity"
)

// InventoryHandler maneja las mutaciones de stock: movimientos directos,
// reposición, ajustes y correcciones masivas (protegido).
type InventoryHandler struct {
	recorder *inventory.RecordMovementUseCase
	restock  *inventory.RestockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(recorder *inventory.RecordMovementUseCase, restock *inventory.RestockUseCase) *InventoryHandler {
	return &InventoryHandler{recorder: recorder, restock: restock}
}

// RecordMovement godoc
// @Summary      Registrar movimiento de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "product_id, quantity (delta firmado), type, reference_id?, notes?"
// @Success      201   {object}  dto.MovementResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RecordMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movType, ok := entity.ParseMovementType(in.Type)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo de movimiento desconocido"})
	}

	result, err := h.recorder.RecordMovement(c.Context(), inventory.RecordMovementInput{
		ProductID:   in.ProductID,
		SellerID:    GetSellerID(c),
		Quantity:    in.Quantity,
		Type:        movType,
		ReferenceID: in.ReferenceID,
		Notes:       in.Notes,
		PerformedBy: GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(movementResultDTO(result))
}

// Restock godoc
// @Summary      Reposición manual de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID del producto"
// @Param        body  body  dto.RestockRequest  true  "quantity > 0, notes?"
// @Success      201   {object}  dto.MovementResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/products/{id}/restock [post]
func (h *InventoryHandler) Restock(c *fiber.Ctx) error {
	var in dto.RestockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	result, err := h.restock.RestockProduct(c.Context(), c.Params("id"), GetSellerID(c), in.Quantity, in.Notes, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(movementResultDTO(result))
}

// Adjust godoc
// @Summary      Ajustar stock a un conteo físico
// @Description  Lleva el stock al conteo indicado con un movimiento ADJUSTMENT.
//
//	Si no hay drift no se escribe movimiento (no-op).
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del producto"
// @Param        body  body  dto.AdjustStockRequest  true  "target_quantity >= 0, reason"
// @Success      200   {object}  dto.MovementResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/products/{id}/adjust [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	result, err := h.restock.AdjustStock(c.Context(), c.Params("id"), GetSellerID(c), in.TargetQuantity, in.Reason, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(movementResultDTO(result))
}

// BulkUpdate godoc
// @Summary      Corrección masiva de stock (solo admin)
// @Description  Aplica un ajuste por entrada, sin transacción entre entradas;
//
//	el resultado reporta éxito/fallo entrada por entrada.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkStockUpdateRequest  true  "updates[]"
// @Success      200   {object}  dto.BulkStockUpdateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/bulk-adjust [post]
func (h *InventoryHandler) BulkUpdate(c *fiber.Ctx) error {
	var in dto.BulkStockUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	entries := make([]inventory.BulkEntry, 0, len(in.Updates))
	for _, u := range in.Updates {
		entries = append(entries, inventory.BulkEntry{
			ProductID:      u.ProductID,
			TargetQuantity: u.TargetQuantity,
			Reason:         u.Reason,
		})
	}

	// El admin corrige cross-vendedor: sellerID vacío omite el chequeo de tenant.
	result, err := h.restock.BulkStockUpdate(c.Context(), "", entries, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	out := dto.BulkStockUpdateResponse{
		Success: result.Success,
		Failed:  result.Failed,
		Items:   make([]dto.BulkItemResult, 0, len(result.Items)),
	}
	for _, item := range result.Items {
		out.Items = append(out.Items, dto.BulkItemResult{
			ProductID: item.ProductID,
			Success:   item.Success,
			NewStock:  item.NewStock,
			Error:     item.Error,
		})
	}
	return c.JSON(out)
}

func movementResultDTO(r *inventory.MovementResult) dto.MovementResultResponse {
	return dto.MovementResultResponse{
		ProductID:     r.ProductID,
		PreviousStock: r.PreviousStock,
		NewStock:      r.NewStock,
	}
}
