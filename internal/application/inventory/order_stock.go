package inventory

import (
	"context"
	"errors"

	"github.com/modaro/inventory-api/internal/domain"
	"github.com/modaro/inventory-api/internal/domain/entity"
)

// OrderStockUseCase coordina débitos y créditos de stock por orden: una
// llamada al registrador (= una transacción) por línea. Política best-effort:
// si una línea falla, las anteriores NO se revierten; el resultado lleva el
// detalle por línea y el caller decide si compensa (acreditar con
// RestoreStockForOrder las líneas exitosas) o acepta fulfillment parcial.
type OrderStockUseCase struct {
	recorder *RecordMovementUseCase
}

// NewOrderStockUseCase construye el coordinador.
func NewOrderStockUseCase(recorder *RecordMovementUseCase) *OrderStockUseCase {
	return &OrderStockUseCase{recorder: recorder}
}

// OrderItem línea de orden: unidades siempre positivas.
type OrderItem struct {
	ProductID string
	Quantity  int
}

// OrderItemResult resultado de una línea. ErrorCode distingue los fallos de
// negocio (INSUFFICIENT_STOCK, NOT_FOUND, INVALID_QUANTITY) de los internos.
type OrderItemResult struct {
	ProductID string
	Success   bool
	NewStock  int
	ErrorCode string
	Error     string
}

// OrderStockResult agregado + detalle. AllSucceeded nunca reemplaza al
// detalle: cada línea reporta su propio resultado.
type OrderStockResult struct {
	AllSucceeded bool
	Items        []OrderItemResult
}

// DeductStockForOrder debita stock por cada línea con tipo SALE y
// reference_id = orderID. No hay atomicidad entre líneas.
func (uc *OrderStockUseCase) DeductStockForOrder(ctx context.Context, orderID string, items []OrderItem, performedBy string) (*OrderStockResult, error) {
	if orderID == "" || len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.applyPerItem(ctx, orderID, items, entity.MovementTypeSale, -1, performedBy)
}

// RestoreStockForOrder acredita stock por devolución o cancelación de una
// orden. kind debe ser RETURN o CANCELLATION.
func (uc *OrderStockUseCase) RestoreStockForOrder(ctx context.Context, orderID string, items []OrderItem, kind entity.MovementType, performedBy string) (*OrderStockResult, error) {
	if orderID == "" || len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !kind.IsOrderCredit() {
		return nil, domain.ErrInvalidInput
	}
	return uc.applyPerItem(ctx, orderID, items, kind, 1, performedBy)
}

// applyPerItem recorre las líneas aplicando sign*quantity con el tipo dado.
// Los errores de negocio quedan en el resultado por línea; solo los errores
// de validación del batch completo suben como error de la llamada.
func (uc *OrderStockUseCase) applyPerItem(ctx context.Context, orderID string, items []OrderItem, movType entity.MovementType, sign int, performedBy string) (*OrderStockResult, error) {
	result := &OrderStockResult{AllSucceeded: true, Items: make([]OrderItemResult, 0, len(items))}

	for _, item := range items {
		if item.Quantity <= 0 {
			result.AllSucceeded = false
			result.Items = append(result.Items, OrderItemResult{
				ProductID: item.ProductID,
				ErrorCode: "INVALID_QUANTITY",
				Error:     domain.ErrInvalidQuantity.Error(),
			})
			continue
		}

		r, err := uc.recorder.RecordMovement(ctx, RecordMovementInput{
			ProductID:   item.ProductID,
			Quantity:    sign * item.Quantity,
			Type:        movType,
			ReferenceID: orderID,
			PerformedBy: performedBy,
		})
		if err != nil {
			result.AllSucceeded = false
			result.Items = append(result.Items, OrderItemResult{
				ProductID: item.ProductID,
				ErrorCode: errorCode(err),
				Error:     err.Error(),
			})
			continue
		}

		result.Items = append(result.Items, OrderItemResult{
			ProductID: item.ProductID,
			Success:   true,
			NewStock:  r.NewStock,
		})
	}

	return result, nil
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return "INSUFFICIENT_STOCK"
	case errors.Is(err, domain.ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, domain.ErrInvalidQuantity):
		return "INVALID_QUANTITY"
	case errors.Is(err, domain.ErrForbidden):
		return "FORBIDDEN"
	default:
		return "INTERNAL"
	}
}
