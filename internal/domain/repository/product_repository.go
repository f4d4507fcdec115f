package repository

import (
	"context"

	"github.com/modaro/inventory-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia sobre el snapshot de
// stock de los productos. El ciclo de vida del producto (alta/baja del
// catálogo) no pasa por aquí; este puerto solo lee y muta los campos que el
// ledger posee: stock_quantity, low_stock_threshold y sku.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetByIDForUpdate bloquea la fila del producto (SELECT FOR UPDATE) para
	// serializar el read-modify-write del stock. Usar solo dentro de una tx.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error)
	UpdateStock(ctx context.Context, productID string, stock int) error
	GetBySellerAndSKU(ctx context.Context, sellerID, sku string) (*entity.Product, error)
	UpdateSKU(ctx context.Context, productID, sku string) error
	UpdateThreshold(ctx context.Context, productID string, threshold int) error
	// ListBelowThreshold devuelve los productos del vendedor con
	// stock <= umbral, ordenados por stock ascendente (más críticos primero).
	ListBelowThreshold(ctx context.Context, sellerID string) ([]*entity.Product, error)
}
