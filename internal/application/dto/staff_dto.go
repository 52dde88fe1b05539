package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStaffRequest alta de colaborador. La deuda siempre inicia en cero.
type CreateStaffRequest struct {
	Name string `json:"name" validate:"required"`
	Role string `json:"role" validate:"required"`
}

// StaffMovementRequest registra un débito o pago sobre la deuda.
type StaffMovementRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Description string          `json:"description" validate:"required"`
}

// StaffMovementResponse un movimiento del historial del colaborador.
type StaffMovementResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	ProductID   string          `json:"product_id,omitempty"`
}

// StaffResponse colaborador con deuda e historial completo.
type StaffResponse struct {
	ID           string                  `json:"id"`
	Name         string                  `json:"name"`
	Role         string                  `json:"role"`
	OwedAmount   decimal.Decimal         `json:"owed_amount"`
	RegisteredAt time.Time               `json:"registered_at"`
	History      []StaffMovementResponse `json:"history"`
}

// StaffListResponse listado ordenado por nombre.
type StaffListResponse struct {
	Items []StaffResponse `json:"items"`
	Total int             `json:"total"`
}
