package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerSaleRequest venta integrada: salida de stock + débito al cliente.
type CustomerSaleRequest struct {
	CustomerID string          `json:"customer_id" validate:"required"`
	ProductID  string          `json:"product_id" validate:"required"`
	Quantity   decimal.Decimal `json:"quantity" validate:"required"`
}

// StaffSaleRequest variante de venta con colaborador como comprador: la misma
// salida de stock, pero el débito aumenta la deuda del colaborador.
type StaffSaleRequest struct {
	StaffID   string          `json:"staff_id" validate:"required"`
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
}

// SaleResponse resultado de una venta aplicada.
type SaleResponse struct {
	ProductID    string          `json:"product_id"`
	BuyerID      string          `json:"buyer_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	Total        decimal.Decimal `json:"total"`
	StockAfter   decimal.Decimal `json:"stock_after"`
	BalanceAfter decimal.Decimal `json:"balance_after"` // saldo del cliente o deuda del colaborador
	Date         time.Time       `json:"date"`
}
