package repository

import (
	"context"
	"time"

	"github.com/modaro/inventory-api/internal/domain/entity"
)

// MovementFilter filtros opcionales para el historial de movimientos.
// ProductID y Type vacíos no filtran; From/To son inclusivos.
type MovementFilter struct {
	ProductID string
	Type      entity.MovementType
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// InventoryMovementRepository define el puerto de persistencia del ledger.
// La tabla es append-only: solo Create y lecturas, nunca update ni delete.
type InventoryMovementRepository interface {
	Create(ctx context.Context, movement *entity.InventoryMovement) error
	// ListBySeller lista movimientos de productos del vendedor (el scoping por
	// tenant se resuelve en la consulta, nunca filtrando después en memoria).
	ListBySeller(ctx context.Context, sellerID string, filter MovementFilter) ([]*entity.InventoryMovement, error)
	// CountBySeller cuenta el total con los mismos filtros, sin paginación.
	CountBySeller(ctx context.Context, sellerID string, filter MovementFilter) (int, error)
}
