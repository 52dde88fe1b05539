// Package ledger implementa el pliegue (fold) de un historial de movimientos
// en el agregado de su entidad. El agregado guardado es solo una proyección:
// después de cada escritura se recalcula plegando el historial COMPLETO, nunca
// incrementando en sitio, de modo que cualquier deriva se autocorrige en la
// siguiente escritura.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/passoapasso/cantina-api/internal/domain/entity"
)

// FoldCustomerBalance pliega el historial de un cliente: credito suma,
// debito resta. El saldo puede quedar negativo.
func FoldCustomerBalance(movements []entity.CustomerMovement) decimal.Decimal {
	balance := decimal.Zero
	for _, m := range movements {
		switch m.Type {
		case entity.CustomerMovementCredit:
			balance = balance.Add(m.Amount)
		case entity.CustomerMovementDebit:
			balance = balance.Sub(m.Amount)
		}
	}
	return balance
}

// FoldStock pliega el historial de stock de un producto: entrada suma,
// saida resta.
func FoldStock(movements []entity.StockMovement) decimal.Decimal {
	stock := decimal.Zero
	for _, m := range movements {
		switch m.Type {
		case entity.StockMovementIn:
			stock = stock.Add(m.Quantity)
		case entity.StockMovementOut:
			stock = stock.Sub(m.Quantity)
		}
	}
	return stock
}

// FoldStaffDebt pliega el historial de un colaborador: debito suma, pagamento
// resta, con piso en cero (un pago mayor que la deuda la deja en cero, no en
// negativo).
func FoldStaffDebt(movements []entity.StaffMovement) decimal.Decimal {
	debt := decimal.Zero
	for _, m := range movements {
		switch m.Type {
		case entity.StaffMovementDebit:
			debt = debt.Add(m.Amount)
		case entity.StaffMovementPayment:
			debt = debt.Sub(m.Amount)
		}
	}
	if debt.IsNegative() {
		return decimal.Zero
	}
	return debt
}

// FoldSupplyStock pliega el historial de un mantimento: entrada suma, saida
// resta, y ajuste acumula su delta con signo. Como el delta de un ajuste se
// calcula contra la cantidad vigente, el pliegue reproduce exactamente el
// valor absoluto fijado por el ajuste.
func FoldSupplyStock(movements []entity.SupplyMovement) decimal.Decimal {
	stock := decimal.Zero
	for _, m := range movements {
		switch m.Type {
		case entity.SupplyMovementIn:
			stock = stock.Add(m.Quantity)
		case entity.SupplyMovementOut:
			stock = stock.Sub(m.Quantity)
		case entity.SupplyMovementAdjustment:
			stock = stock.Add(m.Quantity) // Quantity ya trae el signo
		}
	}
	return stock
}
