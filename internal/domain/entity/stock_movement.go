package entity

import "time"

// MovementType tipo de movimiento de inventario. El sentido del efecto sobre el stock
// lo determina el tipo, nunca el signo de la cantidad.
type MovementType string

const (
	MovementStockIn            MovementType = "STOCK_IN"
	MovementStockOut           MovementType = "STOCK_OUT"
	MovementAdjustmentIncrease MovementType = "ADJUSTMENT_INCREASE"
	MovementAdjustmentDecrease MovementType = "ADJUSTMENT_DECREASE"
	MovementTransferIn         MovementType = "TRANSFER_IN"
	MovementTransferOut        MovementType = "TRANSFER_OUT"
)

// MovementTypes lista los tipos válidos en orden de declaración.
var MovementTypes = []MovementType{
	MovementStockIn,
	MovementStockOut,
	MovementAdjustmentIncrease,
	MovementAdjustmentDecrease,
	MovementTransferIn,
	MovementTransferOut,
}

// Valid indica si el tipo es uno de los valores conocidos.
func (t MovementType) Valid() bool {
	for _, mt := range MovementTypes {
		if mt == t {
			return true
		}
	}
	return false
}

// StockMovement es un registro del libro de movimientos: se inserta una vez y no se modifica.
// Solo desaparece cuando se elimina su producto (ON DELETE CASCADE).
type StockMovement struct {
	ID              int64
	ProductID       int64
	MovementType    MovementType
	Quantity        int // siempre >= 1
	ReferenceNumber string
	Notes           string
	MovementDate    time.Time
	CreatedBy       string
	CreatedAt       time.Time
}

// BeforeCreate fija CreatedAt y, si no vino informada, MovementDate con el mismo instante.
func (m *StockMovement) BeforeCreate(now time.Time) {
	m.CreatedAt = now
	if m.MovementDate.IsZero() {
		m.MovementDate = now
	}
}
