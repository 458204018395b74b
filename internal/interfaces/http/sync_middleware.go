package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-stock/internal/domain"
)

// syncChecker contrato mínimo que necesita el middleware. Lo implementa *usecase.UserUseCase.
type syncChecker interface {
	EnsureSynced(ctx context.Context, userID string) error
}

// RequireSyncedUser verifica que el usuario del token ya tenga su fila local.
// Debe usarse DESPUÉS de AuthMiddleware; protege todas las rutas salvo POST /api/users/sync.
//
// Comportamiento:
//   - 401 si no hay identidad en el contexto.
//   - 403 USER_NOT_SYNCED si el usuario no se ha sincronizado.
//   - 500 ante fallos de infraestructura.
func RequireSyncedUser(checker syncChecker, errs *ErrorMapper) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return errs.Respond(c, domain.ErrUnauthorized)
		}
		if err := checker.EnsureSynced(c.UserContext(), userID); err != nil {
			return errs.Respond(c, err)
		}
		return c.Next()
	}
}
