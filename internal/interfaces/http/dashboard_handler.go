package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/passoapasso/cantina-api/internal/application/report"
)

// DashboardHandler maneja el resumen mensual (protegido por secreto estático,
// no por JWT).
type DashboardHandler struct {
	uc *report.SummaryUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *report.SummaryUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen mensual del dashboard
// @Tags         dashboard
// @Produce      json
// @Param        month  query  int  false  "Mes 0-11 (default: mes actual)"
// @Param        year   query  int  false  "Año (default: año actual)"
// @Success      200    {object}  dto.MonthlySummaryResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      403    {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	month, year := periodParams(c)
	out, err := h.uc.MonthlySummary(c.UserContext(), month, year)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// SummaryPDF godoc
// @Summary      Resumen mensual en PDF
// @Tags         dashboard
// @Produce      application/pdf
// @Param        month  query  int  false  "Mes 0-11 (default: mes actual)"
// @Param        year   query  int  false  "Año (default: año actual)"
// @Success      200    {file}    binary
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      403    {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary/pdf [get]
func (h *DashboardHandler) SummaryPDF(c *fiber.Ctx) error {
	month, year := periodParams(c)
	pdfBytes, err := h.uc.MonthlySummaryPDF(c.UserContext(), month, year)
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="resumo-%02d-%d.pdf"`, month+1, year))
	return c.Send(pdfBytes)
}

// periodParams lee month (0-11) y year, con el mes actual del calendario local
// como default.
func periodParams(c *fiber.Ctx) (int, int) {
	now := time.Now()
	month := c.QueryInt("month", int(now.Month())-1)
	year := c.QueryInt("year", now.Year())
	return month, year
}
