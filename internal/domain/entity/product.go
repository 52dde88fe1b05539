package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock de producto.
const (
	StockMovementIn  = "entrada"
	StockMovementOut = "saida"
)

// Descripción generada para el movimiento sintético de stock inicial.
const InitialStockDescription = "Estoque inicial"

// Product representa un producto vendible de la cantina.
// StockOnHand es una proyección del historial (entrada suma, saida resta) y
// nunca puede quedar negativo. MinStock dispara la alerta de reposición.
type Product struct {
	ID           string
	Code         string // código legible, único
	Name         string
	Price        decimal.Decimal
	StockOnHand  decimal.Decimal
	MinStock     decimal.Decimal
	PhotoURL     string
	RegisteredAt time.Time
	History      []StockMovement
}

// BelowMinStock indica si el producto está en nivel de reposición.
func (p *Product) BelowMinStock() bool {
	return p.StockOnHand.LessThanOrEqual(p.MinStock)
}

// StockMovement es un movimiento de stock de un producto. CustomerID referencia
// al comprador cuando la salida viene de una venta.
type StockMovement struct {
	ID          string
	ProductID   string
	Type        string // entrada | saida
	Quantity    decimal.Decimal
	Description string
	Date        time.Time
	CustomerID  string // opcional, contraparte de la venta
}
