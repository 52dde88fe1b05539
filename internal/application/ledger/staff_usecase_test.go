package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passoapasso/cantina-api/internal/application/dto"
	appledger "github.com/passoapasso/cantina-api/internal/application/ledger"
	"github.com/passoapasso/cantina-api/internal/application/ledgertest"
	"github.com/passoapasso/cantina-api/internal/domain"
)

func newStaffUC() (*appledger.StaffUseCase, *ledgertest.World) {
	w := ledgertest.NewWorld()
	return appledger.NewStaffUseCase(ledgertest.NewTxRunner(w), w.Staff), w
}

func TestStaff_RegisterConDeudaCero(t *testing.T) {
	uc, _ := newStaffUC()

	out, err := uc.Register(dto.CreateStaffRequest{Name: "Carlos", Role: "Cozinheiro"})
	require.NoError(t, err)
	assert.True(t, out.OwedAmount.IsZero())
	assert.Equal(t, "Cozinheiro", out.Role)
}

func TestStaff_RegisterSinCargoInvalido(t *testing.T) {
	uc, _ := newStaffUC()

	_, err := uc.Register(dto.CreateStaffRequest{Name: "Carlos", Role: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStaff_DebitosAumentanDeuda(t *testing.T) {
	uc, _ := newStaffUC()
	ctx := context.Background()

	s, err := uc.Register(dto.CreateStaffRequest{Name: "Rita", Role: "Auxiliar"})
	require.NoError(t, err)

	out, err := uc.AddDebit(ctx, s.ID, dto.StaffMovementRequest{Amount: d("12"), Description: "Almoço"})
	require.NoError(t, err)
	assert.True(t, out.OwedAmount.Equal(d("12")))

	out, err = uc.AddDebit(ctx, s.ID, dto.StaffMovementRequest{Amount: d("8"), Description: "Lanche"})
	require.NoError(t, err)
	assert.True(t, out.OwedAmount.Equal(d("20")))
}

// La deuda tiene piso en cero: un pago mayor que lo adeudado la deja en cero,
// nunca en negativo.
func TestStaff_PagoMayorQueDeudaDejaCero(t *testing.T) {
	uc, _ := newStaffUC()
	ctx := context.Background()

	s, err := uc.Register(dto.CreateStaffRequest{Name: "Paulo", Role: "Porteiro"})
	require.NoError(t, err)

	_, err = uc.AddDebit(ctx, s.ID, dto.StaffMovementRequest{Amount: d("10"), Description: "Almoço"})
	require.NoError(t, err)

	out, err := uc.RegisterPayment(ctx, s.ID, dto.StaffMovementRequest{Amount: d("25"), Description: "Pagamento"})
	require.NoError(t, err)
	assert.True(t, out.OwedAmount.IsZero(), "el pago excedente no deja deuda negativa")
	assert.Len(t, out.History, 2, "el pago queda registrado aunque exceda la deuda")
}

func TestStaff_MovimientoSobreColaboradorInexistente(t *testing.T) {
	uc, _ := newStaffUC()

	_, err := uc.AddDebit(context.Background(), "no-existe", dto.StaffMovementRequest{Amount: d("5"), Description: "Lanche"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStaff_RemoveEliminaHistorial(t *testing.T) {
	uc, w := newStaffUC()
	ctx := context.Background()

	s, err := uc.Register(dto.CreateStaffRequest{Name: "Lia", Role: "Professora"})
	require.NoError(t, err)
	_, err = uc.AddDebit(ctx, s.ID, dto.StaffMovementRequest{Amount: d("5"), Description: "Café"})
	require.NoError(t, err)

	require.NoError(t, uc.Remove(s.ID))
	movs, err := w.Staff.ListAllMovements()
	require.NoError(t, err)
	assert.Empty(t, movs)
}
