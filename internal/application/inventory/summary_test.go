package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modaro/inventory-api/internal/application/inventory"
	"github.com/modaro/inventory-api/internal/domain"
	"github.com/modaro/inventory-api/internal/domain/repository"
)

func TestGetInventorySummary(t *testing.T) {
	repo := &memSummaryRepo{
		totals: repository.InventoryTotals{
			TotalProducts:   3,
			TotalStock:      50,
			LowStockCount:   1,
			OutOfStockCount: 1,
			TotalValue:      decimal.RequireFromString("1234.5678"),
		},
		breakdown: []repository.CategoryStock{
			{Category: "vestidos", ProductCount: 2, TotalStock: 40},
			{Category: "accesorios", ProductCount: 1, TotalStock: 10},
		},
	}
	uc := inventory.NewSummaryUseCase(repo)

	summary, err := uc.GetInventorySummary(context.Background(), "seller-1")
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalProducts)
	assert.Equal(t, 50, summary.TotalStock)
	assert.Equal(t, 1, summary.LowStockCount)
	assert.Equal(t, 1, summary.OutOfStockCount)
	assert.True(t, summary.TotalValue.Equal(decimal.RequireFromString("1234.57")),
		"el valor total se redondea a 2 decimales, got %s", summary.TotalValue)
	// 50 / 3 = 16.666... → 16.67
	assert.True(t, summary.AverageStock.Equal(decimal.RequireFromString("16.67")),
		"got %s", summary.AverageStock)

	require.Len(t, summary.Categories, 2)
	assert.Equal(t, "vestidos", summary.Categories[0].Category)
	assert.Equal(t, 40, summary.Categories[0].TotalStock)
}

// Inventario vacío: nada de divisiones por cero, promedio 0.
func TestGetInventorySummary_SinProductos(t *testing.T) {
	uc := inventory.NewSummaryUseCase(&memSummaryRepo{})

	summary, err := uc.GetInventorySummary(context.Background(), "seller-1")
	require.NoError(t, err)
	assert.Zero(t, summary.TotalProducts)
	assert.True(t, summary.AverageStock.IsZero())
	assert.True(t, summary.TotalValue.IsZero())
	assert.Empty(t, summary.Categories)
}

func TestGetInventorySummary_VendedorRequerido(t *testing.T) {
	uc := inventory.NewSummaryUseCase(&memSummaryRepo{})
	_, err := uc.GetInventorySummary(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
