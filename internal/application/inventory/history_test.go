package inventory_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modaro/inventory-api/internal/application/inventory"
	"github.com/modaro/inventory-api/internal/domain"
	"github.com/modaro/inventory-api/internal/domain/entity"
)

// seedMovements inserta n movimientos alternando restock/sale sobre p1, con
// timestamps crecientes de a un minuto desde base.
func seedMovements(t *testing.T, s *memStore, base time.Time, n int) {
	t.Helper()
	repo := &memMovementRepo{s: s}
	for i := 0; i < n; i++ {
		typ := entity.MovementTypeRestock
		qty := 5
		if i%2 == 1 {
			typ = entity.MovementTypeSale
			qty = -2
		}
		err := repo.Create(context.Background(), &entity.InventoryMovement{
			ID:        fmt.Sprintf("mov-%03d", i),
			ProductID: "p1",
			Quantity:  qty,
			Type:      typ,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}
}

func TestGetMovementHistory_OrdenYPaginacion(t *testing.T) {
	s := newMemStore(testProduct("p1", "seller-1", 100))
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	seedMovements(t, s, base, 6)
	uc := inventory.NewHistoryUseCase(&memMovementRepo{s: s})

	page, err := uc.GetMovementHistory(context.Background(), "seller-1", inventory.HistoryFilter{Limit: 4})
	require.NoError(t, err)

	assert.Equal(t, 6, page.Total)
	assert.Equal(t, 4, page.Limit)
	require.Len(t, page.Movements, 4)
	// Más recientes primero.
	assert.Equal(t, "mov-005", page.Movements[0].ID)
	assert.Equal(t, "mov-002", page.Movements[3].ID)

	page2, err := uc.GetMovementHistory(context.Background(), "seller-1", inventory.HistoryFilter{Limit: 4, Offset: 4})
	require.NoError(t, err)
	assert.Equal(t, 6, page2.Total, "el total no depende de la página")
	require.Len(t, page2.Movements, 2)
	assert.Equal(t, "mov-001", page2.Movements[0].ID)
	assert.Equal(t, "mov-000", page2.Movements[1].ID)
}

func TestGetMovementHistory_FiltroPorTipo(t *testing.T) {
	s := newMemStore(testProduct("p1", "seller-1", 100))
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	seedMovements(t, s, base, 6) // 3 restock, 3 sale
	uc := inventory.NewHistoryUseCase(&memMovementRepo{s: s})

	page, err := uc.GetMovementHistory(context.Background(), "seller-1", inventory.HistoryFilter{Type: "restock"})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	for _, m := range page.Movements {
		assert.Equal(t, "restock", m.Type)
	}

	_, err = uc.GetMovementHistory(context.Background(), "seller-1", inventory.HistoryFilter{Type: "sospechoso"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el filtro solo acepta tipos del conjunto cerrado")
}

func TestGetMovementHistory_RangoDeFechasInclusivo(t *testing.T) {
	s := newMemStore(testProduct("p1", "seller-1", 100))
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	seedMovements(t, s, base, 5) // minutos 0..4
	uc := inventory.NewHistoryUseCase(&memMovementRepo{s: s})

	from := base.Add(1 * time.Minute)
	to := base.Add(3 * time.Minute)
	page, err := uc.GetMovementHistory(context.Background(), "seller-1", inventory.HistoryFilter{From: &from, To: &to})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total, "los extremos del rango cuentan")
}

func TestGetMovementHistory_LimitesPorDefecto(t *testing.T) {
	s := newMemStore(testProduct("p1", "seller-1", 100))
	uc := inventory.NewHistoryUseCase(&memMovementRepo{s: s})

	page, err := uc.GetMovementHistory(context.Background(), "seller-1", inventory.HistoryFilter{})
	require.NoError(t, err)
	assert.Equal(t, 50, page.Limit)

	page, err = uc.GetMovementHistory(context.Background(), "seller-1", inventory.HistoryFilter{Limit: 999})
	require.NoError(t, err)
	assert.Equal(t, 100, page.Limit, "el límite se recorta al tope")
}

func TestGetMovementHistory_ScopingPorVendedor(t *testing.T) {
	s := newMemStore(
		testProduct("p1", "seller-1", 100),
		testProduct("p2", "seller-2", 100),
	)
	repo := &memMovementRepo{s: s}
	require.NoError(t, repo.Create(context.Background(), &entity.InventoryMovement{
		ID: "mov-ajeno", ProductID: "p2", Quantity: 1,
		Type: entity.MovementTypeRestock, CreatedAt: time.Now(),
	}))
	uc := inventory.NewHistoryUseCase(repo)

	page, err := uc.GetMovementHistory(context.Background(), "seller-1", inventory.HistoryFilter{})
	require.NoError(t, err)
	assert.Zero(t, page.Total, "los movimientos de otro vendedor no se ven")

	_, err = uc.GetMovementHistory(context.Background(), "", inventory.HistoryFilter{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
