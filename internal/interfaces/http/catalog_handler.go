package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-stock/internal/application/dto"
	"github.com/jhoicas/gestion-stock/internal/application/usecase"
)

// CategoryHandler maneja las categorías del usuario.
type CategoryHandler struct {
	uc   *usecase.CategoryUseCase
	errs *ErrorMapper
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase, errs *ErrorMapper) *CategoryHandler {
	return &CategoryHandler{uc: uc, errs: errs}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateCategoryRequest  true  "Nombre"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return h.errs.BadRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar categoría
// @Description  Los productos de la categoría quedan sin categoría.
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id   query     string  true  "ID de la categoría"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		return h.errs.BadRequest(c, "MISSING_ID", "id es requerido")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "categoría eliminada"})
}

// SupplierHandler maneja los proveedores del usuario.
type SupplierHandler struct {
	uc   *usecase.SupplierUseCase
	errs *ErrorMapper
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase, errs *ErrorMapper) *SupplierHandler {
	return &SupplierHandler{uc: uc, errs: errs}
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateSupplierRequest  true  "Nombre y teléfono"
// @Success      201   {object}  dto.SupplierResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return h.errs.BadRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar proveedores
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SupplierResponse
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar proveedor
// @Description  El id va en el cuerpo. Los productos del proveedor quedan sin proveedor.
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.DeleteSupplierRequest  true  "ID del proveedor"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/suppliers [delete]
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return h.errs.BadRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	id := strings.TrimSpace(in.ID)
	if id == "" {
		return h.errs.BadRequest(c, "MISSING_ID", "id es requerido")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "proveedor eliminado"})
}
