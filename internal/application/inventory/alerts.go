package inventory

import (
	"context"

	"github.com/modaro/inventory-api/internal/application/dto"
	"github.com/modaro/inventory-api/internal/domain/repository"
)

// Severidades de alerta de stock.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"
)

// AlertUseCase deriva alertas de stock bajo desde los snapshots actuales.
// Solo lectura: no toca el ledger.
type AlertUseCase struct {
	productRepo repository.ProductRepository
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(productRepo repository.ProductRepository) *AlertUseCase {
	return &AlertUseCase{productRepo: productRepo}
}

// GetLowStockAlerts devuelve los productos del vendedor con stock <= umbral,
// ordenados por stock ascendente (los más urgentes primero, orden que ya trae
// la consulta). Severidad por producto:
//   - stock == 0            → critical
//   - stock <= umbral/2     → warning
//   - resto (<= umbral)     → info
func (uc *AlertUseCase) GetLowStockAlerts(ctx context.Context, sellerID string) ([]dto.StockAlertDTO, error) {
	products, err := uc.productRepo.ListBelowThreshold(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	alerts := make([]dto.StockAlertDTO, 0, len(products))
	for _, p := range products {
		alerts = append(alerts, dto.StockAlertDTO{
			ProductID: p.ID,
			SKU:       p.SKU,
			Title:     p.Title,
			Category:  p.Category,
			Stock:     p.StockQuantity,
			Threshold: p.LowStockThreshold,
			Severity:  classifySeverity(p.StockQuantity, p.LowStockThreshold),
		})
	}
	return alerts, nil
}

// classifySeverity asume stock <= threshold (la consulta ya filtró).
func classifySeverity(stock, threshold int) string {
	switch {
	case stock == 0:
		return SeverityCritical
	case stock <= threshold/2:
		return SeverityWarning
	default:
		return SeverityInfo
	}
}
