// Package report contiene el caso de uso de lectura del dashboard: el resumen
// mensual de saldos y ventas. No muta ningún libro y se recalcula completo en
// cada llamada, sin caché.
package report

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/passoapasso/cantina-api/internal/application/dto"
	"github.com/passoapasso/cantina-api/internal/domain"
	"github.com/passoapasso/cantina-api/internal/domain/entity"
	"github.com/passoapasso/cantina-api/internal/domain/repository"
)

const topProductsCount = 5 // productos en el widget de más vendidos

// SummaryPDFGenerator puerto para renderizar el resumen mensual como PDF.
type SummaryPDFGenerator interface {
	GenerateSummaryPDF(ctx context.Context, summary *dto.MonthlySummaryResponse) ([]byte, error)
}

// SummaryUseCase genera el resumen mensual leyendo los libros de clientes y
// productos completos.
type SummaryUseCase struct {
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	pdfGenerator SummaryPDFGenerator
}

// NewSummaryUseCase construye el caso de uso. pdfGenerator puede ser nil si la
// exportación a PDF no está habilitada.
func NewSummaryUseCase(customerRepo repository.CustomerRepository, productRepo repository.ProductRepository, pdfGenerator SummaryPDFGenerator) *SummaryUseCase {
	return &SummaryUseCase{customerRepo: customerRepo, productRepo: productRepo, pdfGenerator: pdfGenerator}
}

// MonthlySummary calcula el resumen del mes indicado (month 0–11, como el
// frontend original). Un movimiento pertenece al período si mes y año de su
// fecha coinciden en calendario local; no se normaliza a UTC.
func (uc *SummaryUseCase) MonthlySummary(ctx context.Context, month, year int) (*dto.MonthlySummaryResponse, error) {
	if month < 0 || month > 11 || year < 1 {
		return nil, domain.ErrInvalidInput
	}

	customers, err := uc.customerRepo.List()
	if err != nil {
		return nil, err
	}
	customerMovs, err := uc.customerRepo.ListAllMovements()
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	stockMovs, err := uc.productRepo.ListAllMovements()
	if err != nil {
		return nil, err
	}

	summary := &dto.MonthlySummaryResponse{
		Month:              month,
		Year:               year,
		TotalCustomers:     len(customers),
		TotalProducts:      len(products),
		TotalBalance:       decimal.Zero,
		PositiveBalanceSum: decimal.Zero,
		NegativeBalanceSum: decimal.Zero,
		CreditsThisMonth:   decimal.Zero,
		DebitsThisMonth:    decimal.Zero,
		TopProducts:        []dto.TopProductDTO{},
	}

	for _, c := range customers {
		summary.TotalBalance = summary.TotalBalance.Add(c.Balance)
		if c.Balance.IsNegative() {
			summary.NegativeBalanceSum = summary.NegativeBalanceSum.Add(c.Balance)
		} else {
			summary.PositiveBalanceSum = summary.PositiveBalanceSum.Add(c.Balance)
		}
	}

	for _, m := range customerMovs {
		if !inPeriod(m.Date, month, year) {
			continue
		}
		summary.TransactionsThisMonth++
		switch m.Type {
		case entity.CustomerMovementCredit:
			summary.CreditsThisMonth = summary.CreditsThisMonth.Add(m.Amount)
		case entity.CustomerMovementDebit:
			summary.DebitsThisMonth = summary.DebitsThisMonth.Add(m.Amount)
		}
	}

	summary.TopProducts = topProducts(products, stockMovs, month, year)
	return summary, nil
}

// MonthlySummaryPDF renderiza el mismo resumen como PDF A4.
func (uc *SummaryUseCase) MonthlySummaryPDF(ctx context.Context, month, year int) ([]byte, error) {
	if uc.pdfGenerator == nil {
		return nil, domain.ErrNotFound
	}
	summary, err := uc.MonthlySummary(ctx, month, year)
	if err != nil {
		return nil, err
	}
	return uc.pdfGenerator.GenerateSummaryPDF(ctx, summary)
}

// topProducts suma las salidas del período por producto y devuelve los cinco
// mayores. El orden de entrada (productos por nombre) más un sort estable
// resuelve los empates: gana el primero visto.
func topProducts(products []*entity.Product, movements []entity.StockMovement, month, year int) []dto.TopProductDTO {
	soldByProduct := make(map[string]decimal.Decimal, len(products))
	for _, m := range movements {
		if m.Type != entity.StockMovementOut || !inPeriod(m.Date, month, year) {
			continue
		}
		soldByProduct[m.ProductID] = soldByProduct[m.ProductID].Add(m.Quantity)
	}

	top := make([]dto.TopProductDTO, 0, len(products))
	for _, p := range products {
		top = append(top, dto.TopProductDTO{
			Name:         p.Name,
			QuantitySold: soldByProduct[p.ID],
		})
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].QuantitySold.GreaterThan(top[j].QuantitySold)
	})
	if len(top) > topProductsCount {
		top = top[:topProductsCount]
	}
	return top
}

func inPeriod(date time.Time, month, year int) bool {
	return int(date.Month())-1 == month && date.Year() == year
}
