package memory

import (
	"context"

	"github.com/jhoicas/gestion-stock/internal/domain"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/domain/inventory"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo ventas en memoria.
type SaleRepo struct{ access }

// NewSaleRepository construye el repositorio sobre el Store.
func NewSaleRepository(s *Store) *SaleRepo {
	return &SaleRepo{access{s: s}}
}

func (r *SaleRepo) Create(_ context.Context, s *entity.Sale) error {
	return r.write(func(d *dataset) error {
		if _, ok := d.sales[s.ID]; ok {
			return domain.ErrDuplicate
		}
		if s.Quantity <= 0 {
			return domain.ErrInvalidQuantity
		}
		if !inventory.ValidAmount(s.TotalPrice) {
			return domain.ErrInvalidInput
		}
		if _, ok := d.products[s.ProductID]; !ok {
			return domain.ErrNotFound
		}
		row := *s
		row.Product = nil
		d.sales[s.ID] = row
		return nil
	})
}

func (r *SaleRepo) Delete(_ context.Context, ownerID, id string) (*entity.Sale, error) {
	var out *entity.Sale
	err := r.write(func(d *dataset) error {
		s, ok := d.sales[id]
		if !ok || s.OwnerID != ownerID {
			return domain.ErrNotFound
		}
		delete(d.sales, id)
		out = &s
		return nil
	})
	return out, err
}

func (r *SaleRepo) ListByOwner(_ context.Context, ownerID string) ([]*entity.Sale, error) {
	list := make([]*entity.Sale, 0)
	err := r.read(func(d *dataset) error {
		for _, s := range d.sales {
			if s.OwnerID != ownerID {
				continue
			}
			if p, ok := d.products[s.ProductID]; ok {
				s.Product = d.expand(p)
			}
			list = append(list, &s)
		}
		return nil
	})
	newestFirst(list,
		func(s *entity.Sale) int64 { return s.CreatedAt.UnixNano() },
		func(s *entity.Sale) string { return s.ID })
	return list, err
}
