package ledger_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passoapasso/cantina-api/internal/application/dto"
	appledger "github.com/passoapasso/cantina-api/internal/application/ledger"
	"github.com/passoapasso/cantina-api/internal/application/ledgertest"
	"github.com/passoapasso/cantina-api/internal/domain"
)

func newCustomerUC() (*appledger.CustomerUseCase, *ledgertest.World) {
	w := ledgertest.NewWorld()
	return appledger.NewCustomerUseCase(ledgertest.NewTxRunner(w), w.Customers), w
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCustomer_RegisterConSaldoCero(t *testing.T) {
	uc, _ := newCustomerUC()

	out, err := uc.Register(dto.CreateCustomerRequest{Name: "  Maria  "})
	require.NoError(t, err)
	assert.Equal(t, "Maria", out.Name, "el nombre se guarda sin espacios")
	assert.True(t, out.Balance.IsZero(), "el saldo siempre inicia en cero")
	assert.Empty(t, out.History)
}

func TestCustomer_RegisterNombreVacio(t *testing.T) {
	uc, _ := newCustomerUC()

	_, err := uc.Register(dto.CreateCustomerRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El saldo es siempre el pliegue del historial completo: créditos suman,
// débitos restan, en orden cronológico.
func TestCustomer_CreditosYDebitosRecalculanSaldo(t *testing.T) {
	uc, _ := newCustomerUC()
	ctx := context.Background()

	c, err := uc.Register(dto.CreateCustomerRequest{Name: "Joana"})
	require.NoError(t, err)

	out, err := uc.AddCredit(ctx, c.ID, dto.CustomerMovementRequest{Amount: d("50"), Description: "Recarga"})
	require.NoError(t, err)
	assert.True(t, out.Balance.Equal(d("50")))

	out, err = uc.AddDebit(ctx, c.ID, dto.CustomerMovementRequest{Amount: d("20"), Description: "Lanche"})
	require.NoError(t, err)
	assert.True(t, out.Balance.Equal(d("30")))
	assert.Len(t, out.History, 2, "el historial conserva todos los movimientos")
}

// El saldo de cliente puede quedar negativo: el débito nunca se rechaza por
// falta de saldo.
func TestCustomer_SaldoPuedeQuedarNegativo(t *testing.T) {
	uc, _ := newCustomerUC()
	ctx := context.Background()

	c, err := uc.Register(dto.CreateCustomerRequest{Name: "Pedro"})
	require.NoError(t, err)

	out, err := uc.AddDebit(ctx, c.ID, dto.CustomerMovementRequest{Amount: d("15"), Description: "Fiado"})
	require.NoError(t, err)
	assert.True(t, out.Balance.Equal(d("-15")), "el libro de clientes admite saldo negativo")
}

func TestCustomer_MovimientoInvalido(t *testing.T) {
	uc, _ := newCustomerUC()
	ctx := context.Background()

	c, err := uc.Register(dto.CreateCustomerRequest{Name: "Ana"})
	require.NoError(t, err)

	_, err = uc.AddCredit(ctx, c.ID, dto.CustomerMovementRequest{Amount: decimal.Zero, Description: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto cero se rechaza")

	_, err = uc.AddCredit(ctx, c.ID, dto.CustomerMovementRequest{Amount: d("10"), Description: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "descripción vacía se rechaza")
}

func TestCustomer_MovimientoSobreClienteInexistente(t *testing.T) {
	uc, _ := newCustomerUC()

	_, err := uc.AddCredit(context.Background(), "no-existe", dto.CustomerMovementRequest{Amount: d("10"), Description: "Recarga"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Eliminar el cliente arrastra todo su historial; los demás clientes no se
// ven afectados.
func TestCustomer_RemoveEliminaHistorial(t *testing.T) {
	uc, w := newCustomerUC()
	ctx := context.Background()

	a, err := uc.Register(dto.CreateCustomerRequest{Name: "Alice"})
	require.NoError(t, err)
	b, err := uc.Register(dto.CreateCustomerRequest{Name: "Bruno"})
	require.NoError(t, err)

	_, err = uc.AddCredit(ctx, a.ID, dto.CustomerMovementRequest{Amount: d("10"), Description: "Recarga"})
	require.NoError(t, err)
	_, err = uc.AddCredit(ctx, b.ID, dto.CustomerMovementRequest{Amount: d("5"), Description: "Recarga"})
	require.NoError(t, err)

	require.NoError(t, uc.Remove(a.ID))

	movs, err := w.Customers.ListAllMovements()
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, b.ID, movs[0].CustomerID, "solo sobrevive el historial del otro cliente")

	assert.ErrorIs(t, uc.Remove(a.ID), domain.ErrNotFound, "la segunda baja del mismo id falla")
}

func TestCustomer_ListOrdenadoPorNombreConHistorial(t *testing.T) {
	uc, _ := newCustomerUC()
	ctx := context.Background()

	z, err := uc.Register(dto.CreateCustomerRequest{Name: "Zeca"})
	require.NoError(t, err)
	_, err = uc.Register(dto.CreateCustomerRequest{Name: "Amanda"})
	require.NoError(t, err)
	_, err = uc.AddCredit(ctx, z.ID, dto.CustomerMovementRequest{Amount: d("7"), Description: "Recarga"})
	require.NoError(t, err)

	out, err := uc.List()
	require.NoError(t, err)
	require.Equal(t, 2, out.Total)
	assert.Equal(t, "Amanda", out.Items[0].Name)
	assert.Equal(t, "Zeca", out.Items[1].Name)
	assert.Len(t, out.Items[1].History, 1)
}
