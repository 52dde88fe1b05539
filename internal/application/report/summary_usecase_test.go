package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passoapasso/cantina-api/internal/application/ledgertest"
	"github.com/passoapasso/cantina-api/internal/application/report"
	"github.com/passoapasso/cantina-api/internal/domain"
	"github.com/passoapasso/cantina-api/internal/domain/entity"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// marzo de 2026 (month 2 en la convención 0-11)
var inMarch = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.Local)
var inApril = time.Date(2026, time.April, 2, 9, 0, 0, 0, time.Local)

func seedWorld(t *testing.T) *ledgertest.World {
	t.Helper()
	w := ledgertest.NewWorld()

	require.NoError(t, w.Customers.Create(&entity.Customer{ID: "c1", Name: "Maria", Balance: d("30")}))
	require.NoError(t, w.Customers.Create(&entity.Customer{ID: "c2", Name: "Pedro", Balance: d("-12")}))

	movs := []entity.CustomerMovement{
		{ID: "m1", CustomerID: "c1", Type: entity.CustomerMovementCredit, Amount: d("50"), Description: "Recarga", Date: inMarch},
		{ID: "m2", CustomerID: "c1", Type: entity.CustomerMovementDebit, Amount: d("20"), Description: "Lanche", Date: inMarch},
		{ID: "m3", CustomerID: "c2", Type: entity.CustomerMovementDebit, Amount: d("12"), Description: "Lanche", Date: inApril},
	}
	for i := range movs {
		require.NoError(t, w.Customers.CreateMovement(&movs[i]))
	}

	require.NoError(t, w.Products.Create(&entity.Product{ID: "p1", Code: "R-01", Name: "Refresco", Price: d("3.5"), StockOnHand: d("8")}))
	require.NoError(t, w.Products.Create(&entity.Product{ID: "p2", Code: "P-01", Name: "Pastel", Price: d("5"), StockOnHand: d("4")}))
	require.NoError(t, w.Products.Create(&entity.Product{ID: "p3", Code: "B-01", Name: "Bolo", Price: d("4"), StockOnHand: d("2")}))

	stockMovs := []entity.StockMovement{
		{ID: "s1", ProductID: "p1", Type: entity.StockMovementOut, Quantity: d("6"), Description: "Venda", Date: inMarch},
		{ID: "s2", ProductID: "p2", Type: entity.StockMovementOut, Quantity: d("9"), Description: "Venda", Date: inMarch},
		{ID: "s3", ProductID: "p2", Type: entity.StockMovementIn, Quantity: d("10"), Description: "Reposição", Date: inMarch},
		{ID: "s4", ProductID: "p3", Type: entity.StockMovementOut, Quantity: d("30"), Description: "Venda", Date: inApril},
	}
	for i := range stockMovs {
		require.NoError(t, w.Products.CreateMovement(&stockMovs[i]))
	}
	return w
}

func TestSummary_ResumenDelMes(t *testing.T) {
	w := seedWorld(t)
	uc := report.NewSummaryUseCase(w.Customers, w.Products, nil)

	out, err := uc.MonthlySummary(context.Background(), 2, 2026)
	require.NoError(t, err)

	assert.Equal(t, 2, out.TotalCustomers)
	assert.Equal(t, 3, out.TotalProducts)
	assert.True(t, out.TotalBalance.Equal(d("18")), "saldo consolidado de todos los clientes")
	assert.True(t, out.PositiveBalanceSum.Equal(d("30")))
	assert.True(t, out.NegativeBalanceSum.Equal(d("-12")))

	// Solo los movimientos de marzo cuentan para el período.
	assert.True(t, out.CreditsThisMonth.Equal(d("50")))
	assert.True(t, out.DebitsThisMonth.Equal(d("20")))
	assert.Equal(t, 2, out.TransactionsThisMonth)
}

// Las ventas de otro mes (la salida enorme de abril) no entran en el ranking
// de marzo; solo las salidas del período suman.
func TestSummary_TopProductosDelPeriodo(t *testing.T) {
	w := seedWorld(t)
	uc := report.NewSummaryUseCase(w.Customers, w.Products, nil)

	out, err := uc.MonthlySummary(context.Background(), 2, 2026)
	require.NoError(t, err)

	require.Len(t, out.TopProducts, 3)
	assert.Equal(t, "Pastel", out.TopProducts[0].Name)
	assert.True(t, out.TopProducts[0].QuantitySold.Equal(d("9")), "las entradas no cuentan, solo salidas")
	assert.Equal(t, "Refresco", out.TopProducts[1].Name)
	assert.Equal(t, "Bolo", out.TopProducts[2].Name)
	assert.True(t, out.TopProducts[2].QuantitySold.IsZero(), "la venta de abril no entra en marzo")
}

// Los empates del ranking se resuelven a favor del primero en orden de nombre
// (sort estable sobre el listado por nombre).
func TestSummary_EmpateEstablePorNombre(t *testing.T) {
	w := ledgertest.NewWorld()
	require.NoError(t, w.Products.Create(&entity.Product{ID: "p1", Code: "Z-01", Name: "Zebra"}))
	require.NoError(t, w.Products.Create(&entity.Product{ID: "p2", Code: "A-01", Name: "Abacaxi"}))
	for i, pid := range []string{"p1", "p2"} {
		require.NoError(t, w.Products.CreateMovement(&entity.StockMovement{
			ID: string(rune('a' + i)), ProductID: pid, Type: entity.StockMovementOut,
			Quantity: d("5"), Description: "Venda", Date: inMarch,
		}))
	}
	uc := report.NewSummaryUseCase(w.Customers, w.Products, nil)

	out, err := uc.MonthlySummary(context.Background(), 2, 2026)
	require.NoError(t, err)
	require.Len(t, out.TopProducts, 2)
	assert.Equal(t, "Abacaxi", out.TopProducts[0].Name, "en empate gana el primero por nombre")
}

func TestSummary_MesFueraDeRango(t *testing.T) {
	w := ledgertest.NewWorld()
	uc := report.NewSummaryUseCase(w.Customers, w.Products, nil)

	_, err := uc.MonthlySummary(context.Background(), 12, 2026)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.MonthlySummary(context.Background(), -1, 2026)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSummary_PDFSinGeneradorDeshabilitado(t *testing.T) {
	w := ledgertest.NewWorld()
	uc := report.NewSummaryUseCase(w.Customers, w.Products, nil)

	_, err := uc.MonthlySummaryPDF(context.Background(), 2, 2026)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
