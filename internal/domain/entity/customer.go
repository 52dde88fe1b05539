package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de cliente. Los valores coinciden con el enum de la tabla
// customer_movements (el sistema opera en portugués).
const (
	CustomerMovementCredit = "credito"
	CustomerMovementDebit  = "debito"
)

// Customer representa un cliente de la cantina con saldo prepagado.
// Balance es una proyección: siempre recalculable plegando History completo
// (credito suma, debito resta). Puede ser negativo (compras fiadas).
type Customer struct {
	ID           string
	Name         string
	Balance      decimal.Decimal
	RegisteredAt time.Time
	History      []CustomerMovement
}

// CustomerMovement es un movimiento del saldo de un cliente. Inmutable una vez
// registrado; ProductID referencia el producto vendido cuando el débito viene
// de una venta.
type CustomerMovement struct {
	ID          string
	CustomerID  string
	Type        string // credito | debito
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	ProductID   string // opcional, contraparte de la venta
}
