package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StatsRepository consultas de solo lectura para el panel de estadísticas.
// Todas filtran por ownerID.
type StatsRepository interface {
	CountProducts(ctx context.Context, ownerID string) (int, error)
	CountLowStock(ctx context.Context, ownerID string, threshold int) (int, error)
	CountProductsSince(ctx context.Context, ownerID string, since time.Time) (int, error)
	CountSalesSince(ctx context.Context, ownerID string, since time.Time) (int, error)
	// StockValue suma price × stock; cero si no hay productos.
	StockValue(ctx context.Context, ownerID string) (decimal.Decimal, error)
}
