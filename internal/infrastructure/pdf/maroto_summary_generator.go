// Package pdf implementa la exportación del resumen mensual del dashboard a
// PDF A4 con Maroto v2.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Cantina Senior Passo a Passo │ Mes/Año             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SALDOS: total / positivos / negativos                      │
//	│  MOVIMIENTO DEL MES: créditos / débitos / transacciones     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: productos más vendidos (nombre | cantidad)          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/passoapasso/cantina-api/internal/application/dto"
	"github.com/passoapasso/cantina-api/internal/application/report"
)

var _ report.SummaryPDFGenerator = (*MarotoSummaryGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// Nombres de mes en portugués, índice 0–11 como el resumen.
var monthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoSummaryGenerator implementa report.SummaryPDFGenerator usando Maroto v2.
type MarotoSummaryGenerator struct{}

// NewMarotoSummaryGenerator construye el generador.
func NewMarotoSummaryGenerator() *MarotoSummaryGenerator { return &MarotoSummaryGenerator{} }

// GenerateSummaryPDF genera el PDF del resumen mensual y devuelve sus bytes.
func (g *MarotoSummaryGenerator) GenerateSummaryPDF(_ context.Context, summary *dto.MonthlySummaryResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumo Mensal da Cantina", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(balancesRow(summary))
	m.AddRows(monthActivityRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(topProductsHeaderRow())
	for _, r := range topProductRows(summary.TopProducts) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título de la institución (izq) y período (der).
func headerRow(summary *dto.MonthlySummaryResponse) core.Row {
	periodo := fmt.Sprintf("%s / %d", monthNames[summary.Month], summary.Year)

	return row.New(18).Add(
		col.New(7).Add(
			text.New("Cantina Senior Passo a Passo", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Resumo mensal de saldos e vendas", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PERÍODO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(periodo, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

// balancesRow: saldo consolidado partido en positivos y negativos.
func balancesRow(summary *dto.MonthlySummaryResponse) core.Row {
	negColor := colorGray
	if summary.NegativeBalanceSum.IsNegative() {
		negColor = colorRed
	}

	return row.New(20).Add(
		statCol(4, "Saldo total", money(summary.TotalBalance), colorPrimary),
		statCol(4, "Saldos positivos", money(summary.PositiveBalanceSum), colorGray),
		statCol(4, "Saldos negativos (fiado)", money(summary.NegativeBalanceSum), negColor),
	)
}

// monthActivityRow: créditos, débitos y cantidad de transacciones del período.
func monthActivityRow(summary *dto.MonthlySummaryResponse) core.Row {
	return row.New(20).Add(
		statCol(3, "Créditos no mês", money(summary.CreditsThisMonth), colorGray),
		statCol(3, "Débitos no mês", money(summary.DebitsThisMonth), colorGray),
		statCol(3, "Transações", fmt.Sprintf("%d", summary.TransactionsThisMonth), colorGray),
		statCol(3, "Clientes / Produtos", fmt.Sprintf("%d / %d", summary.TotalCustomers, summary.TotalProducts), colorGray),
	)
}

func statCol(size int, label, value string, valueColor *props.Color) core.Col {
	return col.New(size).Add(
		text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
		text.New(value, props.Text{
			Style: fontstyle.Bold, Size: 11, Top: 9, Color: valueColor,
		}),
	)
}

// topProductsHeaderRow: cabecera de la tabla de más vendidos.
func topProductsHeaderRow() core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New("Produtos mais vendidos", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		})),
		col.New(4).Add(text.New("Quantidade", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right,
			Color: colorPrimary, Top: 2,
		})),
	)
}

// topProductRows: una fila por producto del ranking.
func topProductRows(products []dto.TopProductDTO) []core.Row {
	if len(products) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Sem vendas no período.", props.Text{
				Size: 8, Color: colorGray, Top: 1,
			}),
		))}
	}

	result := make([]core.Row, 0, len(products))
	for i, p := range products {
		result = append(result, row.New(7).Add(
			col.New(8).Add(text.New(
				fmt.Sprintf("%d. %s", i+1, p.Name),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				p.QuantitySold.StringFixed(0),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			fmt.Sprintf("Gerado em %s. Valores recalculados a partir do histórico completo de movimentos.",
				time.Now().Format("02/01/2006 15:04")),
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func money(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}
