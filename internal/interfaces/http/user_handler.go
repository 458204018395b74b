package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-stock/internal/application/dto"
	"github.com/jhoicas/gestion-stock/internal/application/usecase"
)

// UserHandler sincronización y perfil del usuario autenticado.
type UserHandler struct {
	uc   *usecase.UserUseCase
	errs *ErrorMapper
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, errs *ErrorMapper) *UserHandler {
	return &UserHandler{uc: uc, errs: errs}
}

// Sync godoc
// @Summary      Sincronizar usuario
// @Description  Crea el usuario local a partir del token la primera vez. Idempotente.
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SyncUserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/users/sync [post]
func (h *UserHandler) Sync(c *fiber.Ctx) error {
	created, err := h.uc.Sync(c.UserContext())
	if err != nil {
		return h.errs.Respond(c, err)
	}
	msg := "el usuario ya existe"
	if created {
		msg = "usuario creado"
	}
	return c.JSON(dto.SyncUserResponse{Message: msg, Created: created})
}

// Me godoc
// @Summary      Perfil del usuario
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.UserContext())
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(out)
}

// UpdateMe godoc
// @Summary      Cambiar nombre del usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.UpdateUserRequest  true  "Nuevo nombre"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/users/me [put]
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return h.errs.BadRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := h.uc.UpdateName(c.UserContext(), in.Name); err != nil {
		return h.errs.Respond(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "usuario actualizado"})
}
