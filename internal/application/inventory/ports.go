package inventory

import (
	"context"

	"github.com/modaro/inventory-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. El registrador de movimientos depende de esto
// para que snapshot y ledger se escriban de forma atómica: si el append al
// ledger falla, el update del snapshot se revierte con la tx.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.InventoryMovementRepository,
	) error) error
}
