package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/passoapasso/cantina-api/internal/application/dto"
	appledger "github.com/passoapasso/cantina-api/internal/application/ledger"
)

// Prefijo de las fotos de producto en el bucket.
const productPhotoPrefix = "produto-fotos"

// ProductHandler maneja el libro de productos de la cantina (protegido).
type ProductHandler struct {
	uc     *appledger.ProductUseCase
	photos appledger.PhotoStorage
}

// NewProductHandler construye el handler. photos puede ser nil si el
// almacenamiento de fotos no está habilitado.
func NewProductHandler(uc *appledger.ProductUseCase, photos appledger.PhotoStorage) *ProductHandler {
	return &ProductHandler{uc: uc, photos: photos}
}

// Create godoc
// @Summary      Registrar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
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
// @Summary      Listar productos con historial
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// StockIn godoc
// @Summary      Registrar entrada de stock
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.StockMovementRequest  true  "Movimiento"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock-in [post]
func (h *ProductHandler) StockIn(c *fiber.Ctx) error {
	var in dto.StockMovementRequest
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
// @Summary      Registrar salida de stock
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.StockMovementRequest  true  "Movimiento"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock-out [post]
func (h *ProductHandler) StockOut(c *fiber.Ctx) error {
	var in dto.StockMovementRequest
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
// @Summary      Ajustar stock a un valor absoluto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.AdjustStockRequest  true  "Nueva cantidad"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/adjust [post]
func (h *ProductHandler) Adjust(c *fiber.Ctx) error {
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
// @Summary      Subir foto del producto
// @Tags         products
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      string  true  "ID del producto"
// @Param        photo  formData  file    true  "Imagen"
// @Success      200    {object}  dto.PhotoResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/products/{id}/photo [post]
func (h *ProductHandler) UploadPhoto(c *fiber.Ctx) error {
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

	url, err := h.photos.Upload(c.UserContext(), productPhotoPrefix, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		return domainError(c, err)
	}
	if err := h.uc.UpdatePhoto(c.Params("id"), url); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.PhotoResponse{PhotoURL: url})
}

// Delete godoc
// @Summary      Eliminar producto y su historial
// @Tags         products
// @Security     Bearer
// @Param        id  path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
