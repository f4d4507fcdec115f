package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/inventory/movements.
// Quantity es un delta firmado: positivo entra stock, negativo sale.
type RegisterMovementRequest struct {
	ProductID   string `json:"product_id"`
	Quantity    int    `json:"quantity"`
	Type        string `json:"type"`
	ReferenceID string `json:"reference_id,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// MovementResultResponse resultado de aplicar un movimiento.
type MovementResultResponse struct {
	ProductID     string `json:"product_id"`
	PreviousStock int    `json:"previous_stock"`
	NewStock      int    `json:"new_stock"`
}

// RestockRequest body para POST /api/inventory/products/:id/restock.
type RestockRequest struct {
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

// AdjustStockRequest body para POST /api/inventory/products/:id/adjust.
// TargetQuantity es el conteo físico final, no un delta.
type AdjustStockRequest struct {
	TargetQuantity int    `json:"target_quantity"`
	Reason         string `json:"reason"`
}

// BulkStockEntry una entrada de corrección masiva.
type BulkStockEntry struct {
	ProductID      string `json:"product_id"`
	TargetQuantity int    `json:"target_quantity"`
	Reason         string `json:"reason,omitempty"`
}

// BulkStockUpdateRequest body para POST /api/inventory/bulk-adjust.
type BulkStockUpdateRequest struct {
	Updates []BulkStockEntry `json:"updates"`
}

// BulkItemResult resultado individual de una entrada del bulk.
type BulkItemResult struct {
	ProductID string `json:"product_id"`
	Success   bool   `json:"success"`
	NewStock  int    `json:"new_stock,omitempty"`
	Error     string `json:"error,omitempty"`
}

// BulkStockUpdateResponse conteo y detalle por entrada. No hay transacción
// entre entradas: unas pueden quedar corregidas y otras no, y eso se reporta.
type BulkStockUpdateResponse struct {
	Success int              `json:"success"`
	Failed  int              `json:"failed"`
	Items   []BulkItemResult `json:"items"`
}

// OrderItemRequest línea de orden para débito/crédito de stock.
type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"` // unidades, siempre > 0
}

// OrderStockRequest body para POST /api/orders/:orderId/deduct y /restore.
type OrderStockRequest struct {
	Items []OrderItemRequest `json:"items"`
	// Kind solo aplica a /restore: "return" o "cancellation".
	Kind string `json:"kind,omitempty"`
}

// OrderItemResult resultado por línea. El caller es responsable de compensar
// (acreditar las líneas exitosas) si decide abandonar la orden.
type OrderItemResult struct {
	ProductID string `json:"product_id"`
	Success   bool   `json:"success"`
	NewStock  int    `json:"new_stock,omitempty"`
	Error     string `json:"error,omitempty"`
}

// OrderStockResponse resultado agregado + detalle por línea, nunca un boolean solo.
type OrderStockResponse struct {
	AllSucceeded bool              `json:"all_succeeded"`
	Items        []OrderItemResult `json:"items"`
}

// StockAlertDTO alerta de stock bajo para un producto.
type StockAlertDTO struct {
	ProductID string `json:"product_id"`
	SKU       string `json:"sku,omitempty"`
	Title     string `json:"title"`
	Category  string `json:"category,omitempty"`
	Stock     int    `json:"stock"`
	Threshold int    `json:"threshold"`
	Severity  string `json:"severity"` // critical | warning | info
}

// MovementDTO fila del historial de movimientos.
type MovementDTO struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	Quantity      int       `json:"quantity"`
	Type          string    `json:"type"`
	ReferenceID   string    `json:"reference_id,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	PreviousStock int       `json:"previous_stock"`
	NewStock      int       `json:"new_stock"`
	PerformedBy   string    `json:"performed_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// MovementHistoryResponse página de movimientos + total para la UI de paginación.
type MovementHistoryResponse struct {
	Movements []MovementDTO `json:"movements"`
	Total     int           `json:"total"`
	Limit     int           `json:"limit"`
	Offset    int           `json:"offset"`
}

// CategorySummaryDTO agregado por categoría.
type CategorySummaryDTO struct {
	Category     string `json:"category"`
	ProductCount int    `json:"product_count"`
	TotalStock   int    `json:"total_stock"`
}

// InventorySummaryDTO resumen de inventario del vendedor.
type InventorySummaryDTO struct {
	TotalProducts   int                  `json:"total_products"`
	TotalStock      int                  `json:"total_stock"`
	LowStockCount   int                  `json:"low_stock_count"`
	OutOfStockCount int                  `json:"out_of_stock_count"`
	TotalValue      decimal.Decimal      `json:"total_value"`   // redondeado a 2 decimales
	AverageStock    decimal.Decimal      `json:"average_stock"` // redondeado a 2 decimales
	Categories      []CategorySummaryDTO `json:"categories"`
}

// UpdateSKURequest body para PUT /api/inventory/products/:id/sku.
type UpdateSKURequest struct {
	SKU string `json:"sku"`
}

// UpdateThresholdRequest body para PUT /api/inventory/products/:id/threshold.
type UpdateThresholdRequest struct {
	Threshold int `json:"threshold"`
}
