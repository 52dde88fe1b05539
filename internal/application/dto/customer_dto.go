package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest alta de cliente. El saldo siempre inicia en cero.
type CreateCustomerRequest struct {
	Name string `json:"name" validate:"required"`
}

// CustomerMovementRequest registra un crédito o débito sobre el saldo.
// ProductID solo aplica a débitos originados por una venta.
type CustomerMovementRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Description string          `json:"description" validate:"required"`
	ProductID   string          `json:"product_id,omitempty"`
}

// CustomerMovementResponse un movimiento del historial del cliente.
type CustomerMovementResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	ProductID   string          `json:"product_id,omitempty"`
}

// CustomerResponse cliente con saldo e historial completo.
type CustomerResponse struct {
	ID           string                     `json:"id"`
	Name         string                     `json:"name"`
	Balance      decimal.Decimal            `json:"balance"`
	RegisteredAt time.Time                  `json:"registered_at"`
	History      []CustomerMovementResponse `json:"history"`
}

// CustomerListResponse listado ordenado por nombre.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Total int                `json:"total"`
}
