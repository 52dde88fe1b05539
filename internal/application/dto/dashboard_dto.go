package dto

import "github.com/shopspring/decimal"

// TopProductDTO producto más vendido del período (por cantidad de salida).
type TopProductDTO struct {
	Name         string          `json:"name"`
	QuantitySold decimal.Decimal `json:"quantity_sold"`
}

// MonthlySummaryResponse resumen mensual del dashboard. Month usa 0–11 como el
// frontend original. Se recalcula completo en cada llamada, sin caché.
type MonthlySummaryResponse struct {
	Month                 int             `json:"month"`
	Year                  int             `json:"year"`
	TotalCustomers        int             `json:"total_customers"`
	TotalProducts         int             `json:"total_products"`
	TotalBalance          decimal.Decimal `json:"total_balance"`
	PositiveBalanceSum    decimal.Decimal `json:"positive_balance_sum"`
	NegativeBalanceSum    decimal.Decimal `json:"negative_balance_sum"`
	CreditsThisMonth      decimal.Decimal `json:"credits_this_month"`
	DebitsThisMonth       decimal.Decimal `json:"debits_this_month"`
	TransactionsThisMonth int             `json:"transactions_this_month"`
	TopProducts           []TopProductDTO `json:"top_products"`
}
