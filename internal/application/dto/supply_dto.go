package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSupplyRequest alta de mantimento de la despensa general.
type CreateSupplyRequest struct {
	Code         string          `json:"code" validate:"required"`
	Name         string          `json:"name" validate:"required"`
	Unit         string          `json:"unit" validate:"required"`
	InitialStock decimal.Decimal `json:"initial_stock"`
	MinStock     decimal.Decimal `json:"min_stock"`
	MaxStock     decimal.Decimal `json:"max_stock"`
	PhotoURL     string          `json:"photo_url,omitempty"`
}

// SupplyMovementRequest registra una entrada o salida de mantimento.
type SupplyMovementRequest struct {
	Quantity    decimal.Decimal `json:"quantity" validate:"required"`
	Description string          `json:"description" validate:"required"`
}

// SupplyMovementResponse un movimiento del historial del mantimento.
// Para ajustes, Quantity es el delta con signo.
type SupplyMovementResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}

// SupplyResponse mantimento con stock e historial completo.
type SupplyResponse struct {
	ID            string                   `json:"id"`
	Code          string                   `json:"code"`
	Name          string                   `json:"name"`
	Unit          string                   `json:"unit"`
	StockOnHand   decimal.Decimal          `json:"stock_on_hand"`
	MinStock      decimal.Decimal          `json:"min_stock"`
	MaxStock      decimal.Decimal          `json:"max_stock"`
	BelowMinStock bool                     `json:"below_min_stock"`
	PhotoURL      string                   `json:"photo_url,omitempty"`
	RegisteredAt  time.Time                `json:"registered_at"`
	History       []SupplyMovementResponse `json:"history"`
}

// SupplyListResponse listado ordenado por nombre.
type SupplyListResponse struct {
	Items []SupplyResponse `json:"items"`
	Total int              `json:"total"`
}
