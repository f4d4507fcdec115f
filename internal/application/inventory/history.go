package inventory

import (
	"context"
	"time"

	"github.com/modaro/inventory-api/internal/application/dto"
	"github.com/modaro/inventory-api/internal/domain"
	"github.com/modaro/inventory-api/internal/domain/entity"
	"github.com/modaro/inventory-api/internal/domain/repository"
)

// HistoryUseCase vista paginada y filtrable sobre el ledger de movimientos.
// Solo lectura; el scoping por vendedor lo resuelve la consulta del
// repositorio, nunca un filtro en memoria después de leer.
type HistoryUseCase struct {
	movementRepo repository.InventoryMovementRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(movementRepo repository.InventoryMovementRepository) *HistoryUseCase {
	return &HistoryUseCase{movementRepo: movementRepo}
}

// HistoryFilter filtros de consulta del historial. Type vacío no filtra;
// From/To son inclusivos.
type HistoryFilter struct {
	ProductID string
	Type      string
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// GetMovementHistory devuelve una página de movimientos del vendedor más el
// total sin paginar (para la UI de paginación). Límite por defecto 50, tope 100.
func (uc *HistoryUseCase) GetMovementHistory(ctx context.Context, sellerID string, filter HistoryFilter) (*dto.MovementHistoryResponse, error) {
	if sellerID == "" {
		return nil, domain.ErrInvalidInput
	}

	var movType entity.MovementType
	if filter.Type != "" {
		t, ok := entity.ParseMovementType(filter.Type)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		movType = t
	}

	page := dto.PageRequest{Limit: filter.Limit, Offset: filter.Offset}
	page.DefaultPage()

	repoFilter := repository.MovementFilter{
		ProductID: filter.ProductID,
		Type:      movType,
		From:      filter.From,
		To:        filter.To,
		Limit:     page.Limit,
		Offset:    page.Offset,
	}

	movements, err := uc.movementRepo.ListBySeller(ctx, sellerID, repoFilter)
	if err != nil {
		return nil, err
	}
	total, err := uc.movementRepo.CountBySeller(ctx, sellerID, repoFilter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.MovementDTO, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.MovementDTO{
			ID:            m.ID,
			ProductID:     m.ProductID,
			Quantity:      m.Quantity,
			Type:          string(m.Type),
			ReferenceID:   m.ReferenceID,
			Notes:         m.Notes,
			PreviousStock: m.PreviousStock,
			NewStock:      m.NewStock,
			PerformedBy:   m.PerformedBy,
			CreatedAt:     m.CreatedAt,
		})
	}

	return &dto.MovementHistoryResponse{
		Movements: out,
		Total:     total,
		Limit:     page.Limit,
		Offset:    page.Offset,
	}, nil
}
