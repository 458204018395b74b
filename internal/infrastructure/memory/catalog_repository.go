package memory

import (
	"context"

	"github.com/jhoicas/gestion-stock/internal/domain"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

var (
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.SupplierRepository = (*SupplierRepo)(nil)
)

// CategoryRepo categorías en memoria.
type CategoryRepo struct{ access }

// NewCategoryRepository construye el repositorio sobre el Store.
func NewCategoryRepository(s *Store) *CategoryRepo {
	return &CategoryRepo{access{s: s}}
}

func (r *CategoryRepo) Create(_ context.Context, c *entity.Category) error {
	return r.write(func(d *dataset) error {
		if !d.hasUser(c.OwnerID) {
			return domain.ErrInvalidInput
		}
		if _, ok := d.categories[c.ID]; ok {
			return domain.ErrDuplicate
		}
		d.categories[c.ID] = *c
		return nil
	})
}

func (r *CategoryRepo) GetByID(_ context.Context, ownerID, id string) (*entity.Category, error) {
	var out *entity.Category
	err := r.read(func(d *dataset) error {
		if c, ok := d.categories[id]; ok && c.OwnerID == ownerID {
			out = &c
		}
		return nil
	})
	return out, err
}

func (r *CategoryRepo) ListByOwner(_ context.Context, ownerID string) ([]*entity.Category, error) {
	list := make([]*entity.Category, 0)
	err := r.read(func(d *dataset) error {
		for _, c := range d.categories {
			if c.OwnerID == ownerID {
				list = append(list, &c)
			}
		}
		return nil
	})
	newestFirst(list,
		func(c *entity.Category) int64 { return c.CreatedAt.UnixNano() },
		func(c *entity.Category) string { return c.ID })
	return list, err
}

// Delete borra la categoría y deja sin categoría a sus productos.
func (r *CategoryRepo) Delete(_ context.Context, ownerID, id string) error {
	return r.write(func(d *dataset) error {
		c, ok := d.categories[id]
		if !ok || c.OwnerID != ownerID {
			return domain.ErrNotFound
		}
		delete(d.categories, id)
		for pid, p := range d.products {
			if p.CategoryID != nil && *p.CategoryID == id {
				p.CategoryID = nil
				d.products[pid] = p
			}
		}
		return nil
	})
}

// SupplierRepo proveedores en memoria.
type SupplierRepo struct{ access }

// NewSupplierRepository construye el repositorio sobre el Store.
func NewSupplierRepository(s *Store) *SupplierRepo {
	return &SupplierRepo{access{s: s}}
}

func (r *SupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	return r.write(func(d *dataset) error {
		if !d.hasUser(s.OwnerID) {
			return domain.ErrInvalidInput
		}
		if _, ok := d.suppliers[s.ID]; ok {
			return domain.ErrDuplicate
		}
		d.suppliers[s.ID] = *s
		return nil
	})
}

func (r *SupplierRepo) GetByID(_ context.Context, ownerID, id string) (*entity.Supplier, error) {
	var out *entity.Supplier
	err := r.read(func(d *dataset) error {
		if s, ok := d.suppliers[id]; ok && s.OwnerID == ownerID {
			out = &s
		}
		return nil
	})
	return out, err
}

func (r *SupplierRepo) ListByOwner(_ context.Context, ownerID string) ([]*entity.Supplier, error) {
	list := make([]*entity.Supplier, 0)
	err := r.read(func(d *dataset) error {
		for _, s := range d.suppliers {
			if s.OwnerID == ownerID {
				list = append(list, &s)
			}
		}
		return nil
	})
	newestFirst(list,
		func(s *entity.Supplier) int64 { return s.CreatedAt.UnixNano() },
		func(s *entity.Supplier) string { return s.ID })
	return list, err
}

// Delete borra el proveedor y deja sin proveedor a sus productos.
func (r *SupplierRepo) Delete(_ context.Context, ownerID, id string) error {
	return r.write(func(d *dataset) error {
		s, ok := d.suppliers[id]
		if !ok || s.OwnerID != ownerID {
			return domain.ErrNotFound
		}
		delete(d.suppliers, id)
		for pid, p := range d.products {
			if p.SupplierID != nil && *p.SupplierID == id {
				p.SupplierID = nil
				d.products[pid] = p
			}
		}
		return nil
	})
}
