package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-stock/internal/application/dto"
	"github.com/jhoicas/gestion-stock/internal/domain"
	"github.com/jhoicas/gestion-stock/pkg/logger"
)

// ErrorMapper traduce errores de dominio a respuestas HTTP con dto.ErrorResponse.
// Los 500 se registran con el request id; el detalle solo se expone fuera de producción.
type ErrorMapper struct {
	log        *logger.Logger
	production bool
}

// NewErrorMapper construye el traductor de errores.
func NewErrorMapper(log *logger.Logger, production bool) *ErrorMapper {
	if log == nil {
		log = logger.Nop()
	}
	return &ErrorMapper{log: log, production: production}
}

type errorMapping struct {
	status  int
	code    string
	message string
}

var domainErrors = []struct {
	err error
	errorMapping
}{
	{domain.ErrInvalidQuantity, errorMapping{fiber.StatusBadRequest, "INVALID_QUANTITY", "la cantidad debe ser mayor que cero"}},
	{domain.ErrInsufficientStock, errorMapping{fiber.StatusBadRequest, "INSUFFICIENT_STOCK", "stock insuficiente"}},
	{domain.ErrInvalidInput, errorMapping{fiber.StatusBadRequest, "VALIDATION", "datos inválidos"}},
	{domain.ErrNotFound, errorMapping{fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado"}},
	{domain.ErrUnauthorized, errorMapping{fiber.StatusUnauthorized, "UNAUTHORIZED", "no autorizado"}},
	{domain.ErrUserNotSynced, errorMapping{fiber.StatusForbidden, "USER_NOT_SYNCED", "usuario no sincronizado: llame a POST /api/users/sync"}},
	{domain.ErrDuplicate, errorMapping{fiber.StatusConflict, "DUPLICATE", "el recurso ya existe"}},
}

// Respond escribe la respuesta de error correspondiente a err.
func (m *ErrorMapper) Respond(c *fiber.Ctx, err error) error {
	for _, d := range domainErrors {
		if errors.Is(err, d.err) {
			return c.Status(d.status).JSON(dto.ErrorResponse{Code: d.code, Message: d.message})
		}
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: fiberErrorCode(fe.Code), Message: fe.Message})
	}

	m.log.Error().
		Err(err).
		Str("request_id", requestID(c)).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno")

	out := dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"}
	if !m.production {
		out.Detail = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(out)
}

// BadRequest respuesta 400 para errores de formato (cuerpo o parámetros).
func (m *ErrorMapper) BadRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: message})
}

// FiberErrorHandler ErrorHandler de la app: rutas inexistentes, pánicos recuperados, etc.
func (m *ErrorMapper) FiberErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		return m.Respond(c, err)
	}
}

func fiberErrorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusRequestEntityTooLarge:
		return "BODY_TOO_LARGE"
	}
	if status >= 500 {
		return "INTERNAL"
	}
	return "ERROR"
}
