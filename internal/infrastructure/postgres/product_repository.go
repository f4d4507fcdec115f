package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/modaro/inventory-api/internal/domain"
	"github.com/modaro/inventory-api/internal/domain/entity"
	"github.com/modaro/inventory-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, seller_id, sku, title, category, price, images, stock_quantity, low_stock_threshold, created_at, updated_at`

// GetByID obtiene un producto por ID. Devuelve nil, nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// GetByIDForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
// Mientras la tx viva, ningún otro movimiento puede leer-modificar-escribir
// el stock de este producto.
func (r *ProductRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// UpdateStock persiste el snapshot de stock. Solo el registrador de
// movimientos debe llamarlo, siempre junto al append del ledger en la misma tx.
func (r *ProductRepo) UpdateStock(ctx context.Context, productID string, stock int) error {
	query := `UPDATE products SET stock_quantity = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, productID, stock)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetBySellerAndSKU busca un producto del vendedor por SKU. nil, nil si no hay.
func (r *ProductRepo) GetBySellerAndSKU(ctx context.Context, sellerID, sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE seller_id = $1 AND sku = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, sellerID, sku))
}

// UpdateSKU asigna el SKU. El índice único parcial (seller_id, sku) respalda
// la unicidad ante escrituras concurrentes; 23505 se traduce a ErrDuplicateSKU.
func (r *ProductRepo) UpdateSKU(ctx context.Context, productID, sku string) error {
	query := `UPDATE products SET sku = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, productID, sku)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSKU
		}
		return fmt.Errorf("update sku: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateThreshold fija el umbral de alerta de stock bajo.
func (r *ProductRepo) UpdateThreshold(ctx context.Context, productID string, threshold int) error {
	query := `UPDATE products SET low_stock_threshold = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, productID, threshold)
	if err != nil {
		return fmt.Errorf("update threshold: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListBelowThreshold productos del vendedor con stock <= umbral, los más
// críticos primero.
func (r *ProductRepo) ListBelowThreshold(ctx context.Context, sellerID string) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE seller_id = $1 AND stock_quantity <= low_stock_threshold
		ORDER BY stock_quantity ASC`
	rows, err := r.q.Query(ctx, query, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list below threshold: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var sku *string
	err := row.Scan(
		&p.ID, &p.SellerID, &sku, &p.Title, &p.Category, &p.Price, &p.Images,
		&p.StockQuantity, &p.LowStockThreshold, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	if sku != nil {
		p.SKU = *sku
	}
	return &p, nil
}
