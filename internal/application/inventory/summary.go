package inventory

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/modaro/inventory-api/internal/application/dto"
	"github.com/modaro/inventory-api/internal/domain"
	"github.com/modaro/inventory-api/internal/domain/repository"
)

// SummaryUseCase arma el resumen de inventario del vendedor a partir de los
// agregados que calcula la BD: totales, valor, conteos de stock bajo/agotado
// y desglose por categoría.
type SummaryUseCase struct {
	summaryRepo repository.InventorySummaryRepository
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(summaryRepo repository.InventorySummaryRepository) *SummaryUseCase {
	return &SummaryUseCase{summaryRepo: summaryRepo}
}

// GetInventorySummary devuelve totales del inventario del vendedor.
// TotalValue = Σ(stock_i × precio_i) redondeado a 2 decimales;
// AverageStock = TotalStock / TotalProducts, también a 2 decimales.
func (uc *SummaryUseCase) GetInventorySummary(ctx context.Context, sellerID string) (*dto.InventorySummaryDTO, error) {
	if sellerID == "" {
		return nil, domain.ErrInvalidInput
	}

	totals, err := uc.summaryRepo.GetTotals(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	breakdown, err := uc.summaryRepo.GetCategoryBreakdown(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	averageStock := decimal.Zero
	if totals.TotalProducts > 0 {
		averageStock = decimal.NewFromInt(int64(totals.TotalStock)).
			Div(decimal.NewFromInt(int64(totals.TotalProducts))).
			Round(2)
	}

	categories := make([]dto.CategorySummaryDTO, 0, len(breakdown))
	for _, c := range breakdown {
		categories = append(categories, dto.CategorySummaryDTO{
			Category:     c.Category,
			ProductCount: c.ProductCount,
			TotalStock:   c.TotalStock,
		})
	}

	return &dto.InventorySummaryDTO{
		TotalProducts:   totals.TotalProducts,
		TotalStock:      totals.TotalStock,
		LowStockCount:   totals.LowStockCount,
		OutOfStockCount: totals.OutOfStockCount,
		TotalValue:      totals.TotalValue.Round(2),
		AverageStock:    averageStock,
		Categories:      categories,
	}, nil
}
