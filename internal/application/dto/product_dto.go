package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto. InitialStock > 0 genera un movimiento
// sintético "Estoque inicial"; el stock nunca se asigna a mano.
type CreateProductRequest struct {
	Code         string          `json:"code" validate:"required"`
	Name         string          `json:"name" validate:"required"`
	Price        decimal.Decimal `json:"price"`
	InitialStock decimal.Decimal `json:"initial_stock"`
	MinStock     decimal.Decimal `json:"min_stock"`
	PhotoURL     string          `json:"photo_url,omitempty"`
}

// StockMovementRequest registra una entrada o salida de stock.
// CustomerID solo aplica a salidas originadas por una venta.
type StockMovementRequest struct {
	Quantity    decimal.Decimal `json:"quantity" validate:"required"`
	Description string          `json:"description" validate:"required"`
	CustomerID  string          `json:"customer_id,omitempty"`
}

// AdjustStockRequest fija el stock en un valor absoluto; el delta queda
// registrado como movimiento.
type AdjustStockRequest struct {
	NewQuantity decimal.Decimal `json:"new_quantity"`
}

// StockMovementResponse un movimiento del historial de stock.
type StockMovementResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	CustomerID  string          `json:"customer_id,omitempty"`
}

// ProductResponse producto con stock e historial completo.
type ProductResponse struct {
	ID            string                  `json:"id"`
	Code          string                  `json:"code"`
	Name          string                  `json:"name"`
	Price         decimal.Decimal         `json:"price"`
	StockOnHand   decimal.Decimal         `json:"stock_on_hand"`
	MinStock      decimal.Decimal         `json:"min_stock"`
	BelowMinStock bool                    `json:"below_min_stock"`
	PhotoURL      string                  `json:"photo_url,omitempty"`
	RegisteredAt  time.Time               `json:"registered_at"`
	History       []StockMovementResponse `json:"history"`
}

// ProductListResponse listado ordenado por nombre.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// PhotoResponse URL pública de la foto subida.
type PhotoResponse struct {
	PhotoURL string `json:"photo_url"`
}
