package memory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo agregados del panel calculados recorriendo el Store.
type StatsRepo struct{ access }

// NewStatsRepository construye el repositorio sobre el Store.
func NewStatsRepository(s *Store) *StatsRepo {
	return &StatsRepo{access{s: s}}
}

func (r *StatsRepo) countProducts(ownerID string, keep func(stock int, created time.Time) bool) (int, error) {
	n := 0
	err := r.read(func(d *dataset) error {
		for _, p := range d.products {
			if p.OwnerID == ownerID && keep(p.Stock, p.CreatedAt) {
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r *StatsRepo) CountProducts(_ context.Context, ownerID string) (int, error) {
	return r.countProducts(ownerID, func(int, time.Time) bool { return true })
}

func (r *StatsRepo) CountLowStock(_ context.Context, ownerID string, threshold int) (int, error) {
	return r.countProducts(ownerID, func(stock int, _ time.Time) bool { return stock <= threshold })
}

func (r *StatsRepo) CountProductsSince(_ context.Context, ownerID string, since time.Time) (int, error) {
	return r.countProducts(ownerID, func(_ int, created time.Time) bool { return !created.Before(since) })
}

func (r *StatsRepo) CountSalesSince(_ context.Context, ownerID string, since time.Time) (int, error) {
	n := 0
	err := r.read(func(d *dataset) error {
		for _, s := range d.sales {
			if s.OwnerID == ownerID && !s.CreatedAt.Before(since) {
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r *StatsRepo) StockValue(_ context.Context, ownerID string) (decimal.Decimal, error) {
	total := decimal.Zero
	err := r.read(func(d *dataset) error {
		for _, p := range d.products {
			if p.OwnerID == ownerID {
				total = total.Add(p.StockValue())
			}
		}
		return nil
	})
	return total, err
}
