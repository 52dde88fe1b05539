package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de mantimento (despensa general).
// El ajuste guarda el delta con signo (nueva cantidad − cantidad actual).
const (
	SupplyMovementIn         = "entrada"
	SupplyMovementOut        = "saida"
	SupplyMovementAdjustment = "ajuste"
)

// SupplyItem representa un mantimento de la despensa general (arroz, aceite,
// material de limpieza). StockOnHand es una proyección del historial; MinStock
// y MaxStock delimitan el rango deseado de inventario.
type SupplyItem struct {
	ID           string
	Code         string // código legible, único
	Name         string
	Unit         string // unidad de medida: kg, L, un, cx...
	StockOnHand  decimal.Decimal
	MinStock     decimal.Decimal
	MaxStock     decimal.Decimal
	PhotoURL     string
	RegisteredAt time.Time
	History      []SupplyMovement
}

// BelowMinStock indica si el mantimento está en nivel de reposición.
func (s *SupplyItem) BelowMinStock() bool {
	return s.StockOnHand.LessThanOrEqual(s.MinStock)
}

// SupplyMovement es un movimiento de stock de un mantimento. Para el tipo
// ajuste, Quantity es el delta con signo.
type SupplyMovement struct {
	ID          string
	SupplyID    string
	Type        string // entrada | saida | ajuste
	Quantity    decimal.Decimal
	Description string
	Date        time.Time
}
