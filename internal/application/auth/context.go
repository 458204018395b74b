// Package auth transporta la identidad autenticada a través del context.Context
// de cada petición. Es el único punto donde los casos de uso obtienen el dueño
// (owner) de los datos: ningún caso de uso lee estado global de sesión.
package auth

import (
	"context"

	"github.com/jhoicas/gestion-stock/internal/domain"
)

// Identity identidad del llamador resuelta por el middleware de autenticación.
type Identity struct {
	UserID string
	Email  string
	Name   string
}

type identityKey struct{}

// WithIdentity devuelve un contexto hijo que transporta la identidad.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext recupera la identidad; ok es false si no hay una válida.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	if !ok || id.UserID == "" {
		return Identity{}, false
	}
	return id, true
}

// OwnerID devuelve el ID del usuario dueño de los datos para filtrar toda consulta.
// Retorna domain.ErrUnauthorized si el contexto no trae identidad.
func OwnerID(ctx context.Context) (string, error) {
	id, ok := IdentityFromContext(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	return id.UserID, nil
}
