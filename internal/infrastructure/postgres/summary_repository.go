package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modaro/inventory-api/internal/domain/repository"
)

var _ repository.InventorySummaryRepository = (*SummaryRepo)(nil)

// SummaryRepo consultas de solo lectura para el resumen de inventario del
// vendedor. Opera directo sobre el pool: nunca participa de transacciones.
type SummaryRepo struct {
	pool *pgxpool.Pool
}

// NewSummaryRepository construye el adaptador de resumen.
func NewSummaryRepository(pool *pgxpool.Pool) *SummaryRepo {
	return &SummaryRepo{pool: pool}
}

// GetTotals agrega en una sola consulta: conteo de productos, stock total,
// productos en stock bajo (0 < stock <= umbral), agotados (stock = 0) y el
// valor total del inventario Σ(stock × precio).
func (r *SummaryRepo) GetTotals(ctx context.Context, sellerID string) (repository.InventoryTotals, error) {
	const query = `
	SELECT
	    COUNT(*)                                                                             AS total_products,
	    COALESCE(SUM(stock_quantity), 0)                                                     AS total_stock,
	    COUNT(*) FILTER (WHERE stock_quantity <= low_stock_threshold AND stock_quantity > 0) AS low_stock_count,
	    COUNT(*) FILTER (WHERE stock_quantity = 0)                                           AS out_of_stock_count,
	    COALESCE(SUM(stock_quantity * price), 0)                                             AS total_value
	FROM products
	WHERE seller_id = $1`

	var t repository.InventoryTotals
	err := r.pool.QueryRow(ctx, query, sellerID).Scan(
		&t.TotalProducts, &t.TotalStock, &t.LowStockCount, &t.OutOfStockCount, &t.TotalValue,
	)
	if err != nil {
		return repository.InventoryTotals{}, fmt.Errorf("summary.GetTotals: %w", err)
	}
	return t, nil
}

// GetCategoryBreakdown agrupa productos y stock por categoría, ordenado por
// stock descendente. Productos sin categoría se consolidan en "sin categoría".
func (r *SummaryRepo) GetCategoryBreakdown(ctx context.Context, sellerID string) ([]repository.CategoryStock, error) {
	const query = `
	SELECT
	    COALESCE(NULLIF(category, ''), 'sin categoría') AS category,
	    COUNT(*)                                        AS product_count,
	    COALESCE(SUM(stock_quantity), 0)                AS total_stock
	FROM products
	WHERE seller_id = $1
	GROUP BY 1
	ORDER BY total_stock DESC`

	rows, err := r.pool.Query(ctx, query, sellerID)
	if err != nil {
		return nil, fmt.Errorf("summary.GetCategoryBreakdown: %w", err)
	}
	defer rows.Close()

	var results []repository.CategoryStock
	for rows.Next() {
		var c repository.CategoryStock
		if err := rows.Scan(&c.Category, &c.ProductCount, &c.TotalStock); err != nil {
			return nil, fmt.Errorf("summary.GetCategoryBreakdown scan: %w", err)
		}
		results = append(results, c)
	}
	return results, rows.Err()
}
