package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/passoapasso/cantina-api/internal/domain/entity"
	"github.com/passoapasso/cantina-api/internal/domain/ledger"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFoldCustomerBalance_CreditoSumaDebitoResta(t *testing.T) {
	movs := []entity.CustomerMovement{
		{Type: entity.CustomerMovementCredit, Amount: d("50")},
		{Type: entity.CustomerMovementDebit, Amount: d("12.50")},
		{Type: entity.CustomerMovementCredit, Amount: d("10")},
	}
	assert.True(t, ledger.FoldCustomerBalance(movs).Equal(d("47.5")))
}

func TestFoldCustomerBalance_PuedeQuedarNegativo(t *testing.T) {
	movs := []entity.CustomerMovement{
		{Type: entity.CustomerMovementCredit, Amount: d("10")},
		{Type: entity.CustomerMovementDebit, Amount: d("25")},
	}
	assert.True(t, ledger.FoldCustomerBalance(movs).Equal(d("-15")),
		"los clientes pueden comprar fiado: el saldo sí puede ser negativo")
}

func TestFoldCustomerBalance_HistorialVacio(t *testing.T) {
	assert.True(t, ledger.FoldCustomerBalance(nil).IsZero())
}

func TestFoldStock_EntradaYSalida(t *testing.T) {
	movs := []entity.StockMovement{
		{Type: entity.StockMovementIn, Quantity: d("10")},
		{Type: entity.StockMovementOut, Quantity: d("4")},
	}
	assert.True(t, ledger.FoldStock(movs).Equal(d("6")))
}

func TestFoldStaffDebt_PisoEnCero(t *testing.T) {
	movs := []entity.StaffMovement{
		{Type: entity.StaffMovementDebit, Amount: d("30")},
		{Type: entity.StaffMovementPayment, Amount: d("50")},
	}
	assert.True(t, ledger.FoldStaffDebt(movs).IsZero(),
		"un pago mayor que la deuda la deja en cero, no en -20")
}

func TestFoldStaffDebt_DebitoMenosPagamento(t *testing.T) {
	movs := []entity.StaffMovement{
		{Type: entity.StaffMovementDebit, Amount: d("30")},
		{Type: entity.StaffMovementPayment, Amount: d("10")},
		{Type: entity.StaffMovementDebit, Amount: d("5")},
	}
	assert.True(t, ledger.FoldStaffDebt(movs).Equal(d("25")))
}

func TestFoldSupplyStock_AjusteAcumulaDelta(t *testing.T) {
	// entrada 10, saida 2 (stock 8), ajuste a 5 => delta -3
	movs := []entity.SupplyMovement{
		{Type: entity.SupplyMovementIn, Quantity: d("10")},
		{Type: entity.SupplyMovementOut, Quantity: d("2")},
		{Type: entity.SupplyMovementAdjustment, Quantity: d("-3")},
	}
	assert.True(t, ledger.FoldSupplyStock(movs).Equal(d("5")),
		"el pliegue del delta con signo debe reproducir el valor absoluto del ajuste")
}

func TestFoldSupplyStock_AjustePositivo(t *testing.T) {
	movs := []entity.SupplyMovement{
		{Type: entity.SupplyMovementIn, Quantity: d("3")},
		{Type: entity.SupplyMovementAdjustment, Quantity: d("4")},
	}
	assert.True(t, ledger.FoldSupplyStock(movs).Equal(d("7")))
}
