package memory

import (
	"context"
	"time"

	"github.com/jhoicas/gestion-stock/internal/domain"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/domain/inventory"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos en memoria.
type ProductRepo struct{ access }

// NewProductRepository construye el repositorio sobre el Store.
func NewProductRepository(s *Store) *ProductRepo {
	return &ProductRepo{access{s: s}}
}

// checkRefs valida las llaves foráneas de un producto (usuario, categoría y proveedor del mismo dueño)
// y los rangos de sus columnas.
func (d *dataset) checkRefs(p *entity.Product) error {
	if !d.hasUser(p.OwnerID) {
		return domain.ErrInvalidInput
	}
	if p.CategoryID != nil {
		if _, ok := d.categories[*p.CategoryID]; !ok {
			return domain.ErrInvalidInput
		}
	}
	if p.SupplierID != nil {
		if _, ok := d.suppliers[*p.SupplierID]; !ok {
			return domain.ErrInvalidInput
		}
	}
	if !inventory.ValidStock(p.Stock) || !inventory.ValidStock(p.InitStock) ||
		!inventory.ValidAmount(p.Price) || !inventory.ValidAmount(p.BasePrice) {
		return domain.ErrInvalidInput
	}
	return nil
}

// expand devuelve una copia del producto con Category y Supplier cargados.
func (d *dataset) expand(p entity.Product) *entity.Product {
	p.Category, p.Supplier = nil, nil
	if p.CategoryID != nil {
		if c, ok := d.categories[*p.CategoryID]; ok {
			p.Category = &c
		}
	}
	if p.SupplierID != nil {
		if s, ok := d.suppliers[*p.SupplierID]; ok {
			p.Supplier = &s
		}
	}
	return &p
}

func stripRelations(p *entity.Product) entity.Product {
	row := *p
	row.Category, row.Supplier = nil, nil
	return row
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	return r.write(func(d *dataset) error {
		if _, ok := d.products[p.ID]; ok {
			return domain.ErrDuplicate
		}
		if err := d.checkRefs(p); err != nil {
			return err
		}
		d.products[p.ID] = stripRelations(p)
		return nil
	})
}

func (r *ProductRepo) GetByID(_ context.Context, ownerID, id string) (*entity.Product, error) {
	var out *entity.Product
	err := r.read(func(d *dataset) error {
		if p, ok := d.products[id]; ok && p.OwnerID == ownerID {
			out = d.expand(p)
		}
		return nil
	})
	return out, err
}

// GetForUpdate igual que GetByID sin relaciones. El bloqueo lo da el TxRunner.
func (r *ProductRepo) GetForUpdate(_ context.Context, ownerID, id string) (*entity.Product, error) {
	var out *entity.Product
	err := r.read(func(d *dataset) error {
		if p, ok := d.products[id]; ok && p.OwnerID == ownerID {
			out = &p
		}
		return nil
	})
	return out, err
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	return r.write(func(d *dataset) error {
		cur, ok := d.products[p.ID]
		if !ok || cur.OwnerID != p.OwnerID {
			return domain.ErrNotFound
		}
		if err := d.checkRefs(p); err != nil {
			return err
		}
		cur.Name = p.Name
		cur.Stock = p.Stock
		cur.Price = p.Price
		cur.CategoryID = p.CategoryID
		cur.SupplierID = p.SupplierID
		cur.UpdatedAt = p.UpdatedAt
		d.products[p.ID] = cur
		return nil
	})
}

func (r *ProductRepo) AdjustStock(_ context.Context, ownerID, id string, delta int) error {
	return r.write(func(d *dataset) error {
		p, ok := d.products[id]
		if !ok || p.OwnerID != ownerID {
			return domain.ErrNotFound
		}
		if p.Stock+delta < 0 {
			return domain.ErrInsufficientStock
		}
		if p.Stock+delta > inventory.MaxStock {
			return domain.ErrInvalidInput
		}
		p.Stock += delta
		p.UpdatedAt = time.Now()
		d.products[id] = p
		return nil
	})
}

// Delete borra el producto y sus ventas.
func (r *ProductRepo) Delete(_ context.Context, ownerID, id string) (*entity.Product, error) {
	var out *entity.Product
	err := r.write(func(d *dataset) error {
		p, ok := d.products[id]
		if !ok || p.OwnerID != ownerID {
			return domain.ErrNotFound
		}
		delete(d.products, id)
		for sid, s := range d.sales {
			if s.ProductID == id {
				delete(d.sales, sid)
			}
		}
		out = &p
		return nil
	})
	return out, err
}

func (r *ProductRepo) list(ownerID string, keep func(entity.Product) bool, limit int) ([]*entity.Product, error) {
	list := make([]*entity.Product, 0)
	err := r.read(func(d *dataset) error {
		for _, p := range d.products {
			if p.OwnerID == ownerID && keep(p) {
				list = append(list, d.expand(p))
			}
		}
		return nil
	})
	newestFirst(list,
		func(p *entity.Product) int64 { return p.CreatedAt.UnixNano() },
		func(p *entity.Product) string { return p.ID })
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, err
}

func (r *ProductRepo) ListByOwner(_ context.Context, ownerID string) ([]*entity.Product, error) {
	return r.list(ownerID, func(entity.Product) bool { return true }, 0)
}

func (r *ProductRepo) ListLowStock(_ context.Context, ownerID string, threshold int) ([]*entity.Product, error) {
	return r.list(ownerID, func(p entity.Product) bool { return p.Stock <= threshold }, 0)
}

func (r *ProductRepo) ListRecent(_ context.Context, ownerID string, limit int) ([]*entity.Product, error) {
	if limit <= 0 {
		return []*entity.Product{}, nil
	}
	return r.list(ownerID, func(entity.Product) bool { return true }, limit)
}
