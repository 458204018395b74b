// Package analytics contiene los casos de uso de estadísticas del panel principal.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/gestion-stock/internal/application/auth"
	"github.com/jhoicas/gestion-stock/internal/application/dto"
	"github.com/jhoicas/gestion-stock/internal/domain/inventory"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

// RecentWindow ventana de "movimientos recientes".
const RecentWindow = 30 * 24 * time.Hour

// StatsUseCase calcula los contadores del panel.
//
// Fuente de datos: StatsRepository (consultas read-only, todas filtradas por dueño).
type StatsUseCase struct {
	statsRepo repository.StatsRepository
	now       func() time.Time
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(statsRepo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{statsRepo: statsRepo, now: time.Now}
}

// Compute construye el StatsResponse del usuario del contexto.
//
// Cinco consultas en paralelo:
//  1. CountProducts           → TotalProducts
//  2. CountLowStock(<= 5)     → LowStock
//  3. CountSalesSince(30d)    ┐
//  4. CountProductsSince(30d) ┘→ RecentMovements (suma de ambas)
//  5. StockValue              → Σ price × stock
func (uc *StatsUseCase) Compute(ctx context.Context) (*dto.StatsResponse, error) {
	ownerID, err := auth.OwnerID(ctx)
	if err != nil {
		return nil, err
	}
	since := uc.now().Add(-RecentWindow)

	var (
		total, low, recentSales, recentProducts int
		value                                   decimal.Decimal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		total, err = uc.statsRepo.CountProducts(gctx, ownerID)
		return wrap("total de productos", err)
	})
	g.Go(func() (err error) {
		low, err = uc.statsRepo.CountLowStock(gctx, ownerID, inventory.LowStockThreshold)
		return wrap("stock bajo", err)
	})
	g.Go(func() (err error) {
		recentSales, err = uc.statsRepo.CountSalesSince(gctx, ownerID, since)
		return wrap("ventas recientes", err)
	})
	g.Go(func() (err error) {
		recentProducts, err = uc.statsRepo.CountProductsSince(gctx, ownerID, since)
		return wrap("altas recientes", err)
	})
	g.Go(func() (err error) {
		value, err = uc.statsRepo.StockValue(gctx, ownerID)
		return wrap("valor de stock", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.StatsResponse{
		TotalProducts:   total,
		LowStock:        low,
		RecentMovements: recentSales + recentProducts,
		StockValue:      value.Round(2),
	}, nil
}

func wrap(what string, err error) error {
	if err != nil {
		return fmt.Errorf("stats: %s: %w", what, err)
	}
	return nil
}
