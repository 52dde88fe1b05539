package sale_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passoapasso/cantina-api/internal/application/dto"
	appledger "github.com/passoapasso/cantina-api/internal/application/ledger"
	"github.com/passoapasso/cantina-api/internal/application/ledgertest"
	"github.com/passoapasso/cantina-api/internal/application/sale"
	"github.com/passoapasso/cantina-api/internal/domain"
	"github.com/passoapasso/cantina-api/internal/domain/entity"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type saleWorld struct {
	world      *ledgertest.World
	saleUC     *sale.SaleUseCase
	customerUC *appledger.CustomerUseCase
	productUC  *appledger.ProductUseCase
	staffUC    *appledger.StaffUseCase
}

func newSaleWorld(t *testing.T) *saleWorld {
	t.Helper()
	w := ledgertest.NewWorld()
	runner := ledgertest.NewTxRunner(w)
	return &saleWorld{
		world:      w,
		saleUC:     sale.NewSaleUseCase(runner),
		customerUC: appledger.NewCustomerUseCase(runner, w.Customers),
		productUC:  appledger.NewProductUseCase(runner, w.Products),
		staffUC:    appledger.NewStaffUseCase(runner, w.Staff),
	}
}

// La venta integrada aplica la salida de stock y el débito al cliente como una
// unidad: total = precio × cantidad, ambos libros recalculados por pliegue.
func TestSale_VentaACliente(t *testing.T) {
	sw := newSaleWorld(t)
	ctx := context.Background()

	p, err := sw.productUC.Register(ctx, dto.CreateProductRequest{
		Code: "REF-01", Name: "Refresco", Price: d("3.50"), InitialStock: d("10"),
	})
	require.NoError(t, err)
	c, err := sw.customerUC.Register(dto.CreateCustomerRequest{Name: "Maria"})
	require.NoError(t, err)
	_, err = sw.customerUC.AddCredit(ctx, c.ID, dto.CustomerMovementRequest{Amount: d("20"), Description: "Recarga"})
	require.NoError(t, err)

	out, err := sw.saleUC.SellToCustomer(ctx, dto.CustomerSaleRequest{
		CustomerID: c.ID, ProductID: p.ID, Quantity: d("2"),
	})
	require.NoError(t, err)
	assert.True(t, out.Total.Equal(d("7")), "total = precio × cantidad")
	assert.True(t, out.StockAfter.Equal(d("8")))
	assert.True(t, out.BalanceAfter.Equal(d("13")))

	// Las contrapartes quedan cruzadas en ambos historiales.
	stockMovs, err := sw.world.Products.ListMovements(p.ID)
	require.NoError(t, err)
	require.Len(t, stockMovs, 2)
	assert.Equal(t, c.ID, stockMovs[1].CustomerID)
	assert.Equal(t, "Venda para Maria", stockMovs[1].Description)

	custMovs, err := sw.world.Customers.ListMovements(c.ID)
	require.NoError(t, err)
	require.Len(t, custMovs, 2)
	assert.Equal(t, p.ID, custMovs[1].ProductID)
	assert.Equal(t, "Compra: 2x Refresco", custMovs[1].Description)
}

// Sin saldo suficiente la venta igual procede: el libro de clientes admite
// saldo negativo.
func TestSale_VentaDejaSaldoNegativo(t *testing.T) {
	sw := newSaleWorld(t)
	ctx := context.Background()

	p, err := sw.productUC.Register(ctx, dto.CreateProductRequest{
		Code: "P-01", Name: "Pastel", Price: d("5"), InitialStock: d("4"),
	})
	require.NoError(t, err)
	c, err := sw.customerUC.Register(dto.CreateCustomerRequest{Name: "Pedro"})
	require.NoError(t, err)

	out, err := sw.saleUC.SellToCustomer(ctx, dto.CustomerSaleRequest{
		CustomerID: c.ID, ProductID: p.ID, Quantity: d("1"),
	})
	require.NoError(t, err)
	assert.True(t, out.BalanceAfter.Equal(d("-5")))
}

func TestSale_StockInsuficienteRechazaSinEfectos(t *testing.T) {
	sw := newSaleWorld(t)
	ctx := context.Background()

	p, err := sw.productUC.Register(ctx, dto.CreateProductRequest{
		Code: "C-01", Name: "Chocolate", Price: d("2"), InitialStock: d("1"),
	})
	require.NoError(t, err)
	c, err := sw.customerUC.Register(dto.CreateCustomerRequest{Name: "Ana"})
	require.NoError(t, err)

	_, err = sw.saleUC.SellToCustomer(ctx, dto.CustomerSaleRequest{
		CustomerID: c.ID, ProductID: p.ID, Quantity: d("3"),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	stockMovs, err := sw.world.Products.ListMovements(p.ID)
	require.NoError(t, err)
	assert.Len(t, stockMovs, 1, "ningún movimiento nuevo quedó registrado")
	custMovs, err := sw.world.Customers.ListMovements(c.ID)
	require.NoError(t, err)
	assert.Empty(t, custMovs, "el cliente no fue debitado")
}

func TestSale_CompradorOProductoInexistente(t *testing.T) {
	sw := newSaleWorld(t)
	ctx := context.Background()

	p, err := sw.productUC.Register(ctx, dto.CreateProductRequest{
		Code: "S-01", Name: "Suco", Price: d("3"), InitialStock: d("5"),
	})
	require.NoError(t, err)

	_, err = sw.saleUC.SellToCustomer(ctx, dto.CustomerSaleRequest{
		CustomerID: "no-existe", ProductID: p.ID, Quantity: d("1"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	c, err := sw.customerUC.Register(dto.CreateCustomerRequest{Name: "Bia"})
	require.NoError(t, err)
	_, err = sw.saleUC.SellToCustomer(ctx, dto.CustomerSaleRequest{
		CustomerID: c.ID, ProductID: "no-existe", Quantity: d("1"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Si el paso de débito falla, la transacción revierte también la salida de
// stock y el error distingue la venta parcial.
func TestSale_FalloEnDebitoRevierteSalidaDeStock(t *testing.T) {
	sw := newSaleWorld(t)
	ctx := context.Background()

	p, err := sw.productUC.Register(ctx, dto.CreateProductRequest{
		Code: "B-01", Name: "Bolo", Price: d("4"), InitialStock: d("6"),
	})
	require.NoError(t, err)
	c, err := sw.customerUC.Register(dto.CreateCustomerRequest{Name: "Rui"})
	require.NoError(t, err)

	sw.world.Customers.FailCreateMovement = errors.New("conexión perdida")
	_, err = sw.saleUC.SellToCustomer(ctx, dto.CustomerSaleRequest{
		CustomerID: c.ID, ProductID: p.ID, Quantity: d("1"),
	})
	require.ErrorIs(t, err, domain.ErrSalePartiallyApplied)

	stockMovs, err := sw.world.Products.ListMovements(p.ID)
	require.NoError(t, err)
	assert.Len(t, stockMovs, 1, "la salida de stock fue revertida")
	stored, err := sw.world.Products.GetByID(p.ID)
	require.NoError(t, err)
	assert.True(t, stored.StockOnHand.Equal(d("6")), "el stock no diverge del saldo")
}

// Variante con colaborador: misma salida de stock, el débito aumenta la deuda
// (con piso en cero tras el pliegue).
func TestSale_VentaAColaborador(t *testing.T) {
	sw := newSaleWorld(t)
	ctx := context.Background()

	p, err := sw.productUC.Register(ctx, dto.CreateProductRequest{
		Code: "A-01", Name: "Almoço", Price: d("12"), InitialStock: d("30"),
	})
	require.NoError(t, err)
	s, err := sw.staffUC.Register(dto.CreateStaffRequest{Name: "Carlos", Role: "Cozinheiro"})
	require.NoError(t, err)

	out, err := sw.saleUC.SellToStaff(ctx, dto.StaffSaleRequest{
		StaffID: s.ID, ProductID: p.ID, Quantity: d("2"),
	})
	require.NoError(t, err)
	assert.True(t, out.Total.Equal(d("24")))
	assert.True(t, out.StockAfter.Equal(d("28")))
	assert.True(t, out.BalanceAfter.Equal(d("24")), "la deuda del colaborador subió por el total")

	staffMovs, err := sw.world.Staff.ListMovements(s.ID)
	require.NoError(t, err)
	require.Len(t, staffMovs, 1)
	assert.Equal(t, entity.StaffMovementDebit, staffMovs[0].Type)
	assert.Equal(t, p.ID, staffMovs[0].ProductID)
}

func TestSale_CantidadInvalida(t *testing.T) {
	sw := newSaleWorld(t)

	_, err := sw.saleUC.SellToCustomer(context.Background(), dto.CustomerSaleRequest{
		CustomerID: "c", ProductID: "p", Quantity: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
