package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/modaro/inventory-api/internal/application/dto"
	"github.com/modaro/inventory-api/internal/application/inventory"
)

// ProductSettingsHandler administra SKU y umbral de alerta por producto
// (protegido).
type ProductSettingsHandler struct {
	sku *inventory.SKUUseCase
}

// NewProductSettingsHandler construye el handler.
func NewProductSettingsHandler(sku *inventory.SKUUseCase) *ProductSettingsHandler {
	return &ProductSettingsHandler{sku: sku}
}

// UpdateSKU godoc
// @Summary      Asignar SKU a un producto
// @Description  El SKU debe ser único dentro del catálogo del vendedor.
//
//	Reasignar el mismo SKU al mismo producto es un no-op válido.
//
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID del producto"
// @Param        body  body  dto.UpdateSKURequest  true  "sku"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/products/{id}/sku [put]
func (h *ProductSettingsHandler) UpdateSKU(c *fiber.Ctx) error {
	var in dto.UpdateSKURequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	if err := h.sku.UpdateSKU(c.Context(), c.Params("id"), GetSellerID(c), in.SKU); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "SKU actualizado"})
}

// UpdateThreshold godoc
// @Summary      Fijar umbral de alerta de stock bajo
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID del producto"
// @Param        body  body  dto.UpdateThresholdRequest  true  "threshold >= 0"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/products/{id}/threshold [put]
func (h *ProductSettingsHandler) UpdateThreshold(c *fiber.Ctx) error {
	var in dto.UpdateThresholdRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	if err := h.sku.UpdateStockThreshold(c.Context(), c.Params("id"), GetSellerID(c), in.Threshold); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "umbral actualizado"})
}
