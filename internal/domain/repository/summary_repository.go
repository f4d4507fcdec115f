package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// InventoryTotals agregados del inventario de un vendedor, calculados en SQL.
type InventoryTotals struct {
	TotalProducts   int
	TotalStock      int
	LowStockCount   int // stock <= umbral y stock > 0
	OutOfStockCount int // stock == 0
	TotalValue      decimal.Decimal // SUM(stock * precio), sin redondear
}

// CategoryStock agregado de stock por categoría.
type CategoryStock struct {
	Category     string
	ProductCount int
	TotalStock   int
}

// InventorySummaryRepository define consultas de solo lectura para el resumen
// de inventario del dashboard del vendedor.
type InventorySummaryRepository interface {
	GetTotals(ctx context.Context, sellerID string) (InventoryTotals, error)
	// GetCategoryBreakdown agrupa por categoría, ordenado por stock descendente.
	GetCategoryBreakdown(ctx context.Context, sellerID string) ([]CategoryStock, error)
}
