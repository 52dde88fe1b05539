package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/passoapasso/cantina-api/internal/application/dto"
	appledger "github.com/passoapasso/cantina-api/internal/application/ledger"
)

// Prefijo de las fotos de mantimento en el bucket.
const supplyPhotoPrefix = "mantimento-fotos"

// SupplyHandler maneja el libro de mantimentos de la despensa (protegido).
type SupplyHandler struct {
	uc     *appledger.SupplyUseCase
	photos appledger.PhotoStorage
}

// NewSupplyHandler construye el handler. photos puede ser nil si el
// almacenamiento de fotos no está habilitado.
func NewSupplyHandler(uc *appledger.SupplyUseCase, photos appledger.PhotoStorage) *SupplyHandler {
	return &SupplyHandler{uc: uc, photos: photos}
}

// Create godoc
// @Summary      Registrar mantimento
// @Tags         supplies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplyRequest  true  "Datos del mantimento"
// @Success      201   {object}  dto.SupplyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/supplies [post]
func (h *SupplyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplyRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar mantimentos con historial
// @Tags         supplies
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SupplyListResponse
// @Router       /api/supplies [get]
func (h *SupplyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// StockIn godoc
// @Summary      Registrar entrada de mantimento
// @Tags         supplies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del mantimento"
// @Param        body  body  dto.SupplyMovementRequest  true  "Movimiento"
// @Success      200   {object}  dto.SupplyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/supplies/{id}/stock-in [post]
func (h *SupplyHandler) StockIn(c *fiber.Ctx) error {
	var in dto.SupplyMovementRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.StockIn(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// StockOut godoc
// @Summary      Registrar salida de mantimento
// @Tags         supplies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del mantimento"
// @Param        body  body  dto.SupplyMovementRequest  true  "Movimiento"
// @Success      200   {object}  dto.SupplyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/supplies/{id}/stock-out [post]
func (h *SupplyHandler) StockOut(c *fiber.Ctx) error {
	var in dto.SupplyMovementRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.StockOut(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Adjust godoc
// @Summary      Ajustar stock del mantimento a un valor absoluto
// @Tags         supplies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del mantimento"
// @Param        body  body  dto.AdjustStockRequest  true  "Nueva cantidad"
// @Success      200   {object}  dto.SupplyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/supplies/{id}/adjust [post]
func (h *SupplyHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Adjust(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// UploadPhoto godoc
// @Summary      Subir foto del mantimento
// @Tags         supplies
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      string  true  "ID del mantimento"
// @Param        photo  formData  file    true  "Imagen"
// @Success      200    {object}  dto.PhotoResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/supplies/{id}/photo [post]
func (h *SupplyHandler) UploadPhoto(c *fiber.Ctx) error {
	if h.photos == nil {
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "STORAGE_DISABLED", Message: "almacenamiento de fotos no habilitado"})
	}
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo photo requerido"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	defer file.Close()

	url, err := h.photos.Upload(c.UserContext(), supplyPhotoPrefix, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		return domainError(c, err)
	}
	if err := h.uc.UpdatePhoto(c.Params("id"), url); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.PhotoResponse{PhotoURL: url})
}

// Delete godoc
// @Summary      Eliminar mantimento y su historial
// @Tags         supplies
// @Security     Bearer
// @Param        id  path  string  true  "ID del mantimento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/supplies/{id} [delete]
func (h *SupplyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
