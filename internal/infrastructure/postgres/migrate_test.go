package postgres

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateURL_CambiaEsquema(t *testing.T) {
	got, err := migrateURL("postgres://app:secreto@db:5432/stock?sslmode=disable")
	require.NoError(t, err)
	assert.Equal(t, "pgx5://app:secreto@db:5432/stock?sslmode=disable", got)

	got, err = migrateURL("postgresql://db/stock")
	require.NoError(t, err)
	assert.Equal(t, "pgx5://db/stock", got)
}

func TestMigrateURL_EsquemaDesconocido(t *testing.T) {
	_, err := migrateURL("mysql://db/stock")
	assert.Error(t, err)
}

func TestMigrations_ParesUpDown(t *testing.T) {
	ups, err := fs.Glob(migrationsFS, "migrations/*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(migrationsFS, "migrations/*.down.sql")
	require.NoError(t, err)

	require.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups), "cada migración up necesita su down")
}
