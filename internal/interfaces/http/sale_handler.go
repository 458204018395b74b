package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-stock/internal/application/dto"
	"github.com/jhoicas/gestion-stock/internal/application/inventory"
	"github.com/jhoicas/gestion-stock/internal/domain"
)

// SaleHandler registra, anula y lista ventas.
type SaleHandler struct {
	ledger *inventory.SaleLedgerUseCase
	errs   *ErrorMapper
}

// NewSaleHandler construye el handler.
func NewSaleHandler(ledger *inventory.SaleLedgerUseCase, errs *ErrorMapper) *SaleHandler {
	return &SaleHandler{ledger: ledger, errs: errs}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Descuenta quantity del stock del producto en la misma transacción.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateSaleRequest  true  "Producto y cantidad"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse  "cantidad inválida o stock insuficiente"
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return h.errs.BadRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Quantity == nil {
		return h.errs.Respond(c, domain.ErrInvalidQuantity)
	}
	out, err := h.ledger.CreateSale(c.UserContext(), in.ProductID, *in.Quantity)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Anular venta
// @Description  Devuelve las unidades al stock del producto si aún existe.
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID de la venta"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.ledger.DeleteSale(c.UserContext(), c.Params("id")); err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "venta eliminada"})
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.ledger.ListSales(c.UserContext())
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(out)
}
