package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas agregadas de solo lectura para el panel de estadísticas.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

func (r *StatsRepo) count(ctx context.Context, op, query string, args ...any) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("stats.%s: %w", op, err)
	}
	return n, nil
}

// CountProducts cantidad de productos del usuario.
func (r *StatsRepo) CountProducts(ctx context.Context, ownerID string) (int, error) {
	return r.count(ctx, "CountProducts", `SELECT COUNT(*) FROM products WHERE user_id = $1`, ownerID)
}

// CountLowStock productos con stock <= threshold.
func (r *StatsRepo) CountLowStock(ctx context.Context, ownerID string, threshold int) (int, error) {
	return r.count(ctx, "CountLowStock",
		`SELECT COUNT(*) FROM products WHERE user_id = $1 AND stock <= $2`, ownerID, threshold)
}

// CountProductsSince productos creados desde since (inclusive).
func (r *StatsRepo) CountProductsSince(ctx context.Context, ownerID string, since time.Time) (int, error) {
	return r.count(ctx, "CountProductsSince",
		`SELECT COUNT(*) FROM products WHERE user_id = $1 AND created_at >= $2`, ownerID, since)
}

// CountSalesSince ventas registradas desde since (inclusive).
func (r *StatsRepo) CountSalesSince(ctx context.Context, ownerID string, since time.Time) (int, error) {
	return r.count(ctx, "CountSalesSince",
		`SELECT COUNT(*) FROM sales WHERE user_id = $1 AND created_at >= $2`, ownerID, since)
}

// StockValue suma price × stock de los productos del usuario.
func (r *StatsRepo) StockValue(ctx context.Context, ownerID string) (decimal.Decimal, error) {
	var v decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(price * stock), 0) FROM products WHERE user_id = $1`, ownerID,
	).Scan(&v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("stats.StockValue: %w", err)
	}
	return v, nil
}
