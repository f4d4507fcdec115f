package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/modaro/inventory-api/internal/domain"
	"github.com/modaro/inventory-api/internal/domain/entity"
	"github.com/modaro/inventory-api/internal/domain/repository"
)

// RecordMovementUseCase es el único punto que muta el snapshot de stock de un
// producto. Cada llamada hace exactamente una escritura de snapshot y un
// append al ledger, dentro de una misma transacción con bloqueo de fila
// (SELECT FOR UPDATE), de modo que dos débitos concurrentes sobre el mismo
// producto se serializan y no pueden perder actualizaciones ni sobrevender.
type RecordMovementUseCase struct {
	txRunner TxRunner
}

// NewRecordMovementUseCase construye el caso de uso.
func NewRecordMovementUseCase(txRunner TxRunner) *RecordMovementUseCase {
	return &RecordMovementUseCase{txRunner: txRunner}
}

// RecordMovementInput entrada para registrar un movimiento.
// Quantity es un delta firmado. SellerID es opcional: si viene, se verifica
// que el producto pertenezca a ese vendedor (las rutas de vendedor lo exigen;
// el coordinador de órdenes opera cross-vendedor y lo deja vacío).
type RecordMovementInput struct {
	ProductID   string
	SellerID    string
	Quantity    int
	Type        entity.MovementType
	ReferenceID string
	Notes       string
	PerformedBy string
}

// MovementResult snapshot antes/después de aplicar el movimiento.
type MovementResult struct {
	ProductID     string
	PreviousStock int
	NewStock      int
}

// RecordMovement valida la entrada, abre una transacción y aplica el
// movimiento con la fila del producto bloqueada. Reglas:
//   - candidato = stock actual + delta
//   - candidato < 0 con tipo distinto de ADJUSTMENT → InsufficientStockError
//   - ADJUSTMENT nunca se rechaza por negatividad: el resultado se recorta a 0
//   - stock final = max(0, candidato)
func (uc *RecordMovementUseCase) RecordMovement(ctx context.Context, input RecordMovementInput) (*MovementResult, error) {
	if input.ProductID == "" || !input.Type.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity == 0 {
		return nil, domain.ErrInvalidQuantity
	}

	var result *MovementResult
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.InventoryMovementRepository,
	) error {
		r, err := uc.RecordMovementInTx(ctx, productRepo, movementRepo, input)
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

// RecordMovementInTx aplica un movimiento usando repositorios ya atados a la
// transacción del caller. Lo usan RecordMovement y los casos de uso de ajuste,
// que necesitan leer el stock y escribir dentro de la misma tx.
func (uc *RecordMovementUseCase) RecordMovementInTx(
	ctx context.Context,
	productRepo repository.ProductRepository,
	movementRepo repository.InventoryMovementRepository,
	input RecordMovementInput,
) (*MovementResult, error) {
	// Bloquea la fila del producto: a partir de aquí el read-modify-write
	// queda serializado por producto hasta el commit.
	product, err := productRepo.GetByIDForUpdate(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if input.SellerID != "" && product.SellerID != input.SellerID {
		return nil, domain.ErrForbidden
	}

	current := product.StockQuantity
	candidate := current + input.Quantity
	if candidate < 0 && !input.Type.AllowsNegativeClamp() {
		return nil, &domain.InsufficientStockError{
			Available: current,
			Requested: -input.Quantity,
		}
	}
	finalStock := candidate
	if finalStock < 0 {
		finalStock = 0
	}

	if err := productRepo.UpdateStock(ctx, product.ID, finalStock); err != nil {
		return nil, err
	}

	now := time.Now()
	movement := &entity.InventoryMovement{
		ID:            uuid.New().String(),
		ProductID:     product.ID,
		Quantity:      input.Quantity,
		Type:          input.Type,
		ReferenceID:   input.ReferenceID,
		Notes:         input.Notes,
		PreviousStock: current,
		NewStock:      finalStock,
		PerformedBy:   input.PerformedBy,
		CreatedAt:     now,
	}
	if err := movementRepo.Create(ctx, movement); err != nil {
		// La tx del caller hace rollback: no queda snapshot sin fila de ledger.
		return nil, err
	}

	return &MovementResult{
		ProductID:     product.ID,
		PreviousStock: current,
		NewStock:      finalStock,
	}, nil
}
