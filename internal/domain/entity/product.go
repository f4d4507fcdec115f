package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product representa una publicación del marketplace con su snapshot de stock.
// StockQuantity es una proyección del ledger de movimientos: solo el registrador
// de movimientos la muta, siempre junto con una fila en inventory_movements.
// El catálogo (título, precio, imágenes) es dueño del resto de los campos.
type Product struct {
	ID                string
	SellerID          string
	SKU               string // código del vendedor; vacío = sin asignar, único por vendedor
	Title             string
	Category          string
	Price             decimal.Decimal
	Images            json.RawMessage
	StockQuantity     int // siempre >= 0
	LowStockThreshold int // umbral de alerta, por defecto 5
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
