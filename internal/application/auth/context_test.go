package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-stock/internal/application/auth"
	"github.com/jhoicas/gestion-stock/internal/domain"
)

func TestOwnerID_ConIdentidad(t *testing.T) {
	ctx := auth.WithIdentity(context.Background(), auth.Identity{UserID: "u1", Email: "a@b.c"})

	owner, err := auth.OwnerID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", owner)

	id, ok := auth.IdentityFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "a@b.c", id.Email)
}

func TestOwnerID_SinIdentidad(t *testing.T) {
	_, err := auth.OwnerID(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestOwnerID_IdentidadVacia(t *testing.T) {
	ctx := auth.WithIdentity(context.Background(), auth.Identity{})

	_, err := auth.OwnerID(ctx)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
