package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de colaborador.
const (
	StaffMovementDebit   = "debito"
	StaffMovementPayment = "pagamento"
)

// StaffMember representa un colaborador de la institución que consume fiado.
// OwedAmount es una proyección del historial (debito suma, pagamento resta),
// recortada a un mínimo de cero: un pago nunca deja deuda negativa.
type StaffMember struct {
	ID           string
	Name         string
	Role         string // cargo
	OwedAmount   decimal.Decimal
	RegisteredAt time.Time
	History      []StaffMovement
}

// StaffMovement es un movimiento de la deuda de un colaborador.
type StaffMovement struct {
	ID          string
	StaffID     string
	Type        string // debito | pagamento
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	ProductID   string // opcional, contraparte cuando el débito viene de una venta
}
