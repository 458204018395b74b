package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestHasCode_SoloErroresDePostgres(t *testing.T) {
	wrapped := fmt.Errorf("insert product: %w", &pgconn.PgError{Code: "23505"})
	assert.True(t, isUniqueViolation(wrapped))
	assert.False(t, isForeignKeyViolation(wrapped))

	// Un texto que contiene el código no es una violación.
	assert.False(t, isUniqueViolation(errors.New("producto 23505 no encontrado")))
	assert.False(t, isCheckViolation(errors.New("falló 23514")))
	assert.False(t, isUniqueViolation(nil))
}

func TestIsOutOfRange(t *testing.T) {
	assert.True(t, isOutOfRange(fmt.Errorf("update: %w", &pgconn.PgError{Code: "22003"})))
	assert.False(t, isOutOfRange(&pgconn.PgError{Code: "23514"}))
	assert.False(t, isOutOfRange(errors.New("22003")))
}
