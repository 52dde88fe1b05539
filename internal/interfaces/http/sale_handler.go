package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/passoapasso/cantina-api/internal/application/dto"
	"github.com/passoapasso/cantina-api/internal/application/sale"
)

// SaleHandler maneja la venta integrada: salida de stock + débito al comprador
// en una sola transacción (protegido).
type SaleHandler struct {
	uc *sale.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sale.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// SellToCustomer godoc
// @Summary      Vender a un cliente
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CustomerSaleRequest  true  "Venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/sales/customer [post]
func (h *SaleHandler) SellToCustomer(c *fiber.Ctx) error {
	var in dto.CustomerSaleRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.SellToCustomer(c.UserContext(), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SellToStaff godoc
// @Summary      Vender a un colaborador (fiado)
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StaffSaleRequest  true  "Venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/sales/staff [post]
func (h *SaleHandler) SellToStaff(c *fiber.Ctx) error {
	var in dto.StaffSaleRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.SellToStaff(c.UserContext(), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
