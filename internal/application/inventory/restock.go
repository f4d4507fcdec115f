package inventory

import (
	"context"

	"github.com/modaro/inventory-api/internal/domain"
	"github.com/modaro/inventory-api/internal/domain/entity"
	"github.com/modaro/inventory-api/internal/domain/repository"
)

// RestockUseCase reposición manual y correcciones de conteo sobre el
// registrador de movimientos.
type RestockUseCase struct {
	txRunner TxRunner
	recorder *RecordMovementUseCase
}

// NewRestockUseCase construye el caso de uso.
func NewRestockUseCase(txRunner TxRunner, recorder *RecordMovementUseCase) *RestockUseCase {
	return &RestockUseCase{txRunner: txRunner, recorder: recorder}
}

// RestockProduct suma stock con tipo RESTOCK. Cantidades no positivas se
// rechazan: una reposición nunca resta.
func (uc *RestockUseCase) RestockProduct(ctx context.Context, productID, sellerID string, quantity int, notes, performedBy string) (*MovementResult, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	return uc.recorder.RecordMovement(ctx, RecordMovementInput{
		ProductID:   productID,
		SellerID:    sellerID,
		Quantity:    quantity,
		Type:        entity.MovementTypeRestock,
		Notes:       notes,
		PerformedBy: performedBy,
	})
}

// AdjustStock lleva el stock al conteo físico target (>= 0) con un movimiento
// ADJUSTMENT. El delta se calcula dentro de la misma transacción que la
// escritura, con la fila bloqueada: dos reconciliaciones concurrentes no se
// pisan. Si no hay drift (target == actual) no se escribe ningún movimiento,
// para no ensuciar el ledger con corridas de reconciliación sin cambios.
func (uc *RestockUseCase) AdjustStock(ctx context.Context, productID, sellerID string, target int, reason, performedBy string) (*MovementResult, error) {
	if target < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	var result *MovementResult
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.InventoryMovementRepository,
	) error {
		product, err := productRepo.GetByIDForUpdate(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if sellerID != "" && product.SellerID != sellerID {
			return domain.ErrForbidden
		}

		delta := target - product.StockQuantity
		if delta == 0 {
			// No-op: éxito sin fila de ledger.
			result = &MovementResult{
				ProductID:     product.ID,
				PreviousStock: product.StockQuantity,
				NewStock:      product.StockQuantity,
			}
			return nil
		}

		r, err := uc.recorder.RecordMovementInTx(ctx, productRepo, movementRepo, RecordMovementInput{
			ProductID:   productID,
			SellerID:    sellerID,
			Quantity:    delta,
			Type:        entity.MovementTypeAdjustment,
			Notes:       reason,
			PerformedBy: performedBy,
		})
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// BulkEntry una entrada de corrección masiva.
type BulkEntry struct {
	ProductID      string
	TargetQuantity int
	Reason         string
}

// BulkItemResult resultado individual de una entrada.
type BulkItemResult struct {
	ProductID string
	Success   bool
	NewStock  int
	ErrorCode string
	Error     string
}

// BulkResult conteo agregado + detalle por entrada.
type BulkResult struct {
	Success int
	Failed  int
	Items   []BulkItemResult
}

// BulkStockUpdate aplica AdjustStock por entrada, sin transacción entre
// entradas: un fallo parcial deja unos productos corregidos y otros no, y el
// resultado lo reporta entrada por entrada.
func (uc *RestockUseCase) BulkStockUpdate(ctx context.Context, sellerID string, entries []BulkEntry, performedBy string) (*BulkResult, error) {
	if len(entries) == 0 {
		return nil, domain.ErrInvalidInput
	}

	result := &BulkResult{Items: make([]BulkItemResult, 0, len(entries))}
	for _, e := range entries {
		r, err := uc.AdjustStock(ctx, e.ProductID, sellerID, e.TargetQuantity, e.Reason, performedBy)
		if err != nil {
			result.Failed++
			result.Items = append(result.Items, BulkItemResult{
				ProductID: e.ProductID,
				ErrorCode: errorCode(err),
				Error:     err.Error(),
			})
			continue
		}
		result.Success++
		result.Items = append(result.Items, BulkItemResult{
			ProductID: e.ProductID,
			Success:   true,
			NewStock:  r.NewStock,
		})
	}
	return result, nil
}
