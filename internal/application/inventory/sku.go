package inventory

import (
	"context"

	"github.com/modaro/inventory-api/internal/domain"
	"github.com/modaro/inventory-api/internal/domain/repository"
)

// SKUUseCase administra el identificador y el umbral de alerta por producto.
type SKUUseCase struct {
	productRepo repository.ProductRepository
}

// NewSKUUseCase construye el caso de uso.
func NewSKUUseCase(productRepo repository.ProductRepository) *SKUUseCase {
	return &SKUUseCase{productRepo: productRepo}
}

// UpdateSKU asigna un SKU al producto, garantizando unicidad dentro del
// catálogo del vendedor. Reasignar el mismo SKU al mismo producto es un no-op
// válido; el conflicto solo existe si otro producto del vendedor ya lo usa.
// El índice único parcial en BD respalda el chequeo ante carreras (23505 se
// mapea al mismo ErrDuplicateSKU).
func (uc *SKUUseCase) UpdateSKU(ctx context.Context, productID, sellerID, sku string) error {
	if sku == "" {
		return domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.SellerID != sellerID {
		return domain.ErrForbidden
	}

	existing, err := uc.productRepo.GetBySellerAndSKU(ctx, sellerID, sku)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != productID {
		return domain.ErrDuplicateSKU
	}

	return uc.productRepo.UpdateSKU(ctx, productID, sku)
}

// UpdateStockThreshold fija el umbral de alerta de stock bajo (>= 0).
func (uc *SKUUseCase) UpdateStockThreshold(ctx context.Context, productID, sellerID string, threshold int) error {
	if threshold < 0 {
		return domain.ErrInvalidQuantity
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.SellerID != sellerID {
		return domain.ErrForbidden
	}

	return uc.productRepo.UpdateThreshold(ctx, productID, threshold)
}
