package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/modaro/inventory-api/internal/domain/entity"
	"github.com/modaro/inventory-api/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo adaptador PostgreSQL del ledger (usable con pool o tx).
// La tabla inventory_movements es append-only: este repo no expone UPDATE ni
// DELETE; las correcciones se registran como movimientos nuevos.
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create agrega una fila al ledger.
func (r *InventoryMovementRepo) Create(ctx context.Context, m *entity.InventoryMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_movements
			(id, product_id, quantity, type, reference_id, notes, previous_stock, new_stock, performed_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.ProductID, m.Quantity, string(m.Type),
		nullIfEmpty(m.ReferenceID), nullIfEmpty(m.Notes),
		m.PreviousStock, m.NewStock, nullIfEmpty(m.PerformedBy), m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create inventory movement: %w", err)
	}
	return nil
}

// ListBySeller lista movimientos de productos del vendedor, más recientes
// primero. El JOIN con products resuelve el scoping por tenant en la consulta.
func (r *InventoryMovementRepo) ListBySeller(ctx context.Context, sellerID string, f repository.MovementFilter) ([]*entity.InventoryMovement, error) {
	query := `
		SELECT m.id, m.product_id, m.quantity, m.type, m.reference_id, m.notes,
		       m.previous_stock, m.new_stock, m.performed_by, m.created_at
		FROM inventory_movements m
		JOIN products p ON p.id = m.product_id
		WHERE p.seller_id = $1`
	query, args := appendFilters(query, []any{sellerID}, f)
	pos := len(args) + 1
	query += fmt.Sprintf(" ORDER BY m.created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements by seller: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryMovement
	for rows.Next() {
		var m entity.InventoryMovement
		var refID, notes, performedBy *string
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Quantity, &m.Type,
			&refID, &notes, &m.PreviousStock, &m.NewStock, &performedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if refID != nil {
			m.ReferenceID = *refID
		}
		if notes != nil {
			m.Notes = *notes
		}
		if performedBy != nil {
			m.PerformedBy = *performedBy
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// CountBySeller total de movimientos con los mismos filtros, sin paginación.
func (r *InventoryMovementRepo) CountBySeller(ctx context.Context, sellerID string, f repository.MovementFilter) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM inventory_movements m
		JOIN products p ON p.id = m.product_id
		WHERE p.seller_id = $1`
	query, args := appendFilters(query, []any{sellerID}, f)

	var total int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count movements by seller: %w", err)
	}
	return total, nil
}

// appendFilters agrega las condiciones opcionales con placeholders posicionales.
func appendFilters(query string, args []any, f repository.MovementFilter) (string, []any) {
	pos := len(args) + 1
	if f.ProductID != "" {
		query += fmt.Sprintf(" AND m.product_id = $%d", pos)
		args = append(args, f.ProductID)
		pos++
	}
	if f.Type != "" {
		query += fmt.Sprintf(" AND m.type = $%d", pos)
		args = append(args, string(f.Type))
		pos++
	}
	if f.From != nil {
		query += fmt.Sprintf(" AND m.created_at >= $%d", pos)
		args = append(args, *f.From)
		pos++
	}
	if f.To != nil {
		query += fmt.Sprintf(" AND m.created_at <= $%d", pos)
		args = append(args, *f.To)
		pos++
	}
	return query, args
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
