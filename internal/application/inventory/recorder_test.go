package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modaro/inventory-api/internal/application/inventory"
	"github.com/modaro/inventory-api/internal/domain"
	"github.com/modaro/inventory-api/internal/domain/entity"
)

// Una venta debita el stock y deja exactamente una fila de ledger con el
// snapshot antes/después.
func TestRecordMovement_VentaDebitaYRegistra(t *testing.T) {
	s := newMemStore(testProduct("p1", "seller-1", 10))
	uc := newRecorder(s)

	result, err := uc.RecordMovement(context.Background(), inventory.RecordMovementInput{
		ProductID:   "p1",
		Quantity:    -3,
		Type:        entity.MovementTypeSale,
		ReferenceID: "order-42",
		PerformedBy: "user-1",
	})
	require.NoError(t, err)

	assert.Equal(t, 10, result.PreviousStock)
	assert.Equal(t, 7, result.NewStock)
	assert.Equal(t, 7, s.stockOf("p1"))

	movs := s.movementsOf("p1")
	require.Len(t, movs, 1, "debe haber exactamente una fila de ledger por mutación")
	assert.Equal(t, -3, movs[0].Quantity)
	assert.Equal(t, entity.MovementTypeSale, movs[0].Type)
	assert.Equal(t, 10, movs[0].PreviousStock)
	assert.Equal(t, 7, movs[0].NewStock)
	assert.Equal(t, "order-42", movs[0].ReferenceID)
}

func TestRecordMovement_ProductoInexistente(t *testing.T) {
	s := newMemStore()
	uc := newRecorder(s)

	_, err := uc.RecordMovement(context.Background(), inventory.RecordMovementInput{
		ProductID: "no-existe",
		Quantity:  -1,
		Type:      entity.MovementTypeSale,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un débito mayor al disponible falla con el detalle disponible/solicitado y
// no toca ni el snapshot ni el ledger.
func TestRecordMovement_StockInsuficiente(t *testing.T) {
	s := newMemStore(testProduct("p1", "seller-1", 4))
	uc := newRecorder(s)

	_, err := uc.RecordMovement(context.Background(), inventory.RecordMovementInput{
		ProductID: "p1",
		Quantity:  -5,
		Type:      entity.MovementTypeSale,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 4, insufficient.Available)
	assert.Equal(t, 5, insufficient.Requested)

	assert.Equal(t, 4, s.stockOf("p1"), "el stock no debe cambiar en un débito rechazado")
	assert.Empty(t, s.movementsOf("p1"), "un débito rechazado no escribe ledger")
}

// Solo ADJUSTMENT puede pasar por debajo de cero; el resultado se recorta a 0.
func TestRecordMovement_AjusteRecortaACero(t *testing.T) {
	s := newMemStore(testProduct("p1", "seller-1", 4))
	uc := newRecorder(s)

	result, err := uc.RecordMovement(context.Background(), inventory.RecordMovementInput{
		ProductID: "p1",
		Quantity:  -10,
		Type:      entity.MovementTypeAdjustment,
		Notes:     "conteo físico",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, result.PreviousStock)
	assert.Equal(t, 0, result.NewStock, "el ajuste se recorta a 0, nunca negativo")
	assert.Equal(t, 0, s.stockOf("p1"))

	movs := s.movementsOf("p1")
	require.Len(t, movs, 1)
	assert.Equal(t, 0, movs[0].NewStock)
}

func TestRecordMovement_EntradaInvalida(t *testing.T) {
	s := newMemStore(testProduct("p1", "seller-1", 10))
	uc := newRecorder(s)

	_, err := uc.RecordMovement(context.Background(), inventory.RecordMovementInput{
		ProductID: "p1", Quantity: 0, Type: entity.MovementTypeSale,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "cantidad cero no es un movimiento")

	_, err = uc.RecordMovement(context.Background(), inventory.RecordMovementInput{
		ProductID: "p1", Quantity: -1, Type: entity.MovementType("robo"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo fuera del conjunto cerrado")
}

func TestRecordMovement_VendedorAjeno(t *testing.T) {
	s := newMemStore(testProduct("p1", "seller-1", 10))
	uc := newRecorder(s)

	_, err := uc.RecordMovement(context.Background(), inventory.RecordMovementInput{
		ProductID: "p1",
		SellerID:  "seller-2",
		Quantity:  -1,
		Type:      entity.MovementTypeSale,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, 10, s.stockOf("p1"))
}

// Consistencia del ledger: tras una secuencia de movimientos el snapshot es
// max(0, inicial + Σ deltas aceptados) y los pares previous/new encadenan.
func TestRecordMovement_ConsistenciaDelLedger(t *testing.T) {
	s := newMemStore(testProduct("p1", "seller-1", 10))
	uc := newRecorder(s)
	ctx := context.Background()

	steps := []struct {
		qty     int
		typ     entity.MovementType
		wantErr bool
	}{
		{-4, entity.MovementTypeSale, false},
		{+20, entity.MovementTypeRestock, false},
		{-30, entity.MovementTypeSale, true}, // 26 disponibles: rechazado
		{-6, entity.MovementTypeReservation, false},
		{+2, entity.MovementTypeReturn, false},
		{-50, entity.MovementTypeAdjustment, false}, // recorta a 0
	}

	expected := 10
	for _, step := range steps {
		_, err := uc.RecordMovement(ctx, inventory.RecordMovementInput{
			ProductID: "p1", Quantity: step.qty, Type: step.typ,
		})
		if step.wantErr {
			require.Error(t, err)
			continue
		}
		require.NoError(t, err)
		expected += step.qty
		if expected < 0 {
			expected = 0
		}
	}

	assert.Equal(t, expected, s.stockOf("p1"))

	movs := s.movementsOf("p1")
	require.Len(t, movs, 5, "los movimientos rechazados no dejan fila")
	prev := 10
	for _, m := range movs {
		assert.Equal(t, prev, m.PreviousStock, "los snapshots deben encadenar")
		prev = m.NewStock
	}
	assert.Equal(t, expected, prev)
}

// Dos débitos concurrentes de 5 sobre stock 5: exactamente uno gana, el otro
// falla por stock insuficiente, y el stock final es 0 — nunca -5 ni dos éxitos.
func TestRecordMovement_DebitosConcurrentes(t *testing.T) {
	s := newMemStore(testProduct("p1", "seller-1", 5))
	uc := newRecorder(s)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := uc.RecordMovement(context.Background(), inventory.RecordMovementInput{
				ProductID: "p1",
				Quantity:  -5,
				Type:      entity.MovementTypeSale,
			})
			results[i] = err
		}(i)
	}
	wg.Wait()

	var successes, insufficient int
	for _, err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, domain.ErrInsufficientStock):
			insufficient++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, successes, "solo un débito puede ganar")
	assert.Equal(t, 1, insufficient, "el otro debe fallar por stock insuficiente")
	assert.Equal(t, 0, s.stockOf("p1"))
	assert.Len(t, s.movementsOf("p1"), 1)
}
