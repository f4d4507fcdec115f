package entity

import "time"

// MovementType es el conjunto cerrado de tipos de movimiento del ledger.
// Cada variante define sus propias reglas: solo ADJUSTMENT puede llevar el
// stock nominal por debajo de cero (el resultado se recorta a 0); cualquier
// otro tipo que quede negativo se rechaza por stock insuficiente.
type MovementType string

const (
	MovementTypeSale         MovementType = "sale"
	MovementTypeRestock      MovementType = "restock"
	MovementTypeReturn       MovementType = "return"
	MovementTypeAdjustment   MovementType = "adjustment"
	MovementTypeReservation  MovementType = "reservation"
	MovementTypeCancellation MovementType = "cancellation"
	MovementTypeDamaged      MovementType = "damaged"
	MovementTypeTransfer     MovementType = "transfer"
)

// movementTypes registra las variantes válidas; mantenerlo en sync con las constantes.
var movementTypes = map[MovementType]bool{
	MovementTypeSale:         true,
	MovementTypeRestock:      true,
	MovementTypeReturn:       true,
	MovementTypeAdjustment:   true,
	MovementTypeReservation:  true,
	MovementTypeCancellation: true,
	MovementTypeDamaged:      true,
	MovementTypeTransfer:     true,
}

// ParseMovementType convierte un string externo en MovementType.
// Devuelve false si no corresponde a ninguna variante.
func ParseMovementType(s string) (MovementType, bool) {
	t := MovementType(s)
	return t, movementTypes[t]
}

// Valid indica si el tipo pertenece al conjunto cerrado.
func (t MovementType) Valid() bool {
	return movementTypes[t]
}

// AllowsNegativeClamp indica si el tipo puede llevar el candidato por debajo
// de cero sin ser rechazado. Solo ADJUSTMENT: su propósito es corregir drift,
// y el resultado se recorta a 0 en lugar de fallar.
func (t MovementType) AllowsNegativeClamp() bool {
	return t == MovementTypeAdjustment
}

// IsOrderCredit indica si el tipo es válido como crédito de una orden
// (devolución o cancelación).
func (t MovementType) IsOrderCredit() bool {
	return t == MovementTypeReturn || t == MovementTypeCancellation
}

// InventoryMovement es una fila del ledger: un delta firmado con metadatos de
// auditoría. Append-only: nunca se actualiza ni se borra; las correcciones se
// hacen agregando un movimiento ADJUSTMENT nuevo.
type InventoryMovement struct {
	ID            string
	ProductID     string
	Quantity      int // delta firmado: positivo entra, negativo sale
	Type          MovementType
	ReferenceID   string // correlación externa opcional (ej. id de orden)
	Notes         string
	PreviousStock int // snapshot antes de aplicar el delta
	NewStock      int // snapshot después de aplicar el delta (recortado a 0)
	PerformedBy   string
	CreatedAt     time.Time // el orden de inserción define el orden del ledger
}
