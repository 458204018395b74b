package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-stock/internal/application/auth"
	"github.com/jhoicas/gestion-stock/internal/domain"
)

// fakeStats StatsRepository con respuestas fijas que registra el ownerID y el since recibidos.
type fakeStats struct {
	products, low, productsSince, salesSince int
	value                                    decimal.Decimal
	failValue                                error

	gotOwner string
	gotSince time.Time
}

func (f *fakeStats) CountProducts(_ context.Context, ownerID string) (int, error) {
	f.gotOwner = ownerID
	return f.products, nil
}

func (f *fakeStats) CountLowStock(_ context.Context, _ string, threshold int) (int, error) {
	if threshold != 5 {
		return 0, errors.New("umbral inesperado")
	}
	return f.low, nil
}

func (f *fakeStats) CountProductsSince(_ context.Context, _ string, since time.Time) (int, error) {
	f.gotSince = since
	return f.productsSince, nil
}

func (f *fakeStats) CountSalesSince(_ context.Context, _ string, _ time.Time) (int, error) {
	return f.salesSince, nil
}

func (f *fakeStats) StockValue(_ context.Context, _ string) (decimal.Decimal, error) {
	return f.value, f.failValue
}

func TestCompute_SumaVentasYAltasRecientes(t *testing.T) {
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	repo := &fakeStats{products: 7, low: 2, productsSince: 3, salesSince: 4, value: decimal.RequireFromString("1234.567")}
	uc := NewStatsUseCase(repo)
	uc.now = func() time.Time { return now }

	ctx := auth.WithIdentity(context.Background(), auth.Identity{UserID: "user-1"})
	got, err := uc.Compute(ctx)
	require.NoError(t, err)

	assert.Equal(t, 7, got.TotalProducts)
	assert.Equal(t, 2, got.LowStock)
	assert.Equal(t, 7, got.RecentMovements)
	assert.Equal(t, "1234.57", got.StockValue.StringFixed(2))

	assert.Equal(t, "user-1", repo.gotOwner, "todas las consultas filtran por el dueño")
	assert.Equal(t, now.Add(-30*24*time.Hour), repo.gotSince)
}

func TestCompute_PropagaErrorDelRepositorio(t *testing.T) {
	repo := &fakeStats{failValue: errors.New("db caída")}
	uc := NewStatsUseCase(repo)

	ctx := auth.WithIdentity(context.Background(), auth.Identity{UserID: "user-1"})
	_, err := uc.Compute(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valor de stock")
}

func TestCompute_SinIdentidad(t *testing.T) {
	uc := NewStatsUseCase(&fakeStats{})
	_, err := uc.Compute(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
