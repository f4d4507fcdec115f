package inventory_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/modaro/inventory-api/internal/application/inventory"
	"github.com/modaro/inventory-api/internal/domain"
	"github.com/modaro/inventory-api/internal/domain/entity"
	"github.com/modaro/inventory-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de persistencia.
// El mutex del txRunner emula la serialización por fila de SELECT FOR UPDATE:
// mientras una "transacción" está abierta, ninguna otra puede leer-modificar-
// escribir el mismo store.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	movements []*entity.InventoryMovement
}

func newMemStore(products ...*entity.Product) *memStore {
	s := &memStore{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		s.products[p.ID] = &cp
	}
	return s
}

func (s *memStore) stockOf(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[productID].StockQuantity
}

func (s *memStore) movementsOf(productID string) []*entity.InventoryMovement {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.InventoryMovement
	for _, m := range s.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out
}

type memTxRunner struct {
	s *memStore
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.InventoryMovementRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return fn(&memProductRepo{s: r.s}, &memMovementRepo{s: r.s})
}

var _ repository.ProductRepository = (*memProductRepo)(nil)

// memProductRepo accede al store sin lock propio: dentro de una "tx" el lock
// lo tiene el runner, y los tests de solo lectura no corren en paralelo.
type memProductRepo struct {
	s *memStore
}

func (r *memProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *memProductRepo) UpdateStock(ctx context.Context, productID string, stock int) error {
	p, ok := r.s.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockQuantity = stock
	return nil
}

func (r *memProductRepo) GetBySellerAndSKU(ctx context.Context, sellerID, sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SellerID == sellerID && p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) UpdateSKU(ctx context.Context, productID, sku string) error {
	p, ok := r.s.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.SKU = sku
	return nil
}

func (r *memProductRepo) UpdateThreshold(ctx context.Context, productID string, threshold int) error {
	p, ok := r.s.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.LowStockThreshold = threshold
	return nil
}

func (r *memProductRepo) ListBelowThreshold(ctx context.Context, sellerID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.SellerID == sellerID && p.StockQuantity <= p.LowStockThreshold {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StockQuantity < out[j].StockQuantity })
	return out, nil
}

var _ repository.InventoryMovementRepository = (*memMovementRepo)(nil)

type memMovementRepo struct {
	s *memStore
}

func (r *memMovementRepo) Create(ctx context.Context, m *entity.InventoryMovement) error {
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *memMovementRepo) ListBySeller(ctx context.Context, sellerID string, f repository.MovementFilter) ([]*entity.InventoryMovement, error) {
	matched := r.filter(sellerID, f)
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	if f.Offset >= len(matched) {
		return nil, nil
	}
	matched = matched[f.Offset:]
	if f.Limit > 0 && f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}
	return matched, nil
}

func (r *memMovementRepo) CountBySeller(ctx context.Context, sellerID string, f repository.MovementFilter) (int, error) {
	return len(r.filter(sellerID, f)), nil
}

func (r *memMovementRepo) filter(sellerID string, f repository.MovementFilter) []*entity.InventoryMovement {
	var out []*entity.InventoryMovement
	for _, m := range r.s.movements {
		p, ok := r.s.products[m.ProductID]
		if !ok || p.SellerID != sellerID {
			continue
		}
		if f.ProductID != "" && m.ProductID != f.ProductID {
			continue
		}
		if f.Type != "" && m.Type != f.Type {
			continue
		}
		if f.From != nil && m.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && m.CreatedAt.After(*f.To) {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out
}

var _ repository.InventorySummaryRepository = (*memSummaryRepo)(nil)

// memSummaryRepo devuelve agregados fijos para testear el armado del resumen.
type memSummaryRepo struct {
	totals    repository.InventoryTotals
	breakdown []repository.CategoryStock
}

func (r *memSummaryRepo) GetTotals(ctx context.Context, sellerID string) (repository.InventoryTotals, error) {
	return r.totals, nil
}

func (r *memSummaryRepo) GetCategoryBreakdown(ctx context.Context, sellerID string) ([]repository.CategoryStock, error) {
	return r.breakdown, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Builders
// ──────────────────────────────────────────────────────────────────────────────

func testProduct(id, sellerID string, stock int) *entity.Product {
	return &entity.Product{
		ID:                id,
		SellerID:          sellerID,
		Title:             "producto " + id,
		Category:          "vestidos",
		Price:             decimal.NewFromInt(10),
		StockQuantity:     stock,
		LowStockThreshold: 5,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
}

func newRecorder(s *memStore) *inventory.RecordMovementUseCase {
	return inventory.NewRecordMovementUseCase(&memTxRunner{s: s})
}

func newRestock(s *memStore) *inventory.RestockUseCase {
	return inventory.NewRestockUseCase(&memTxRunner{s: s}, newRecorder(s))
}
