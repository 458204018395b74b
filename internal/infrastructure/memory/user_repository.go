package memory

import (
	"context"

	"github.com/jhoicas/gestion-stock/internal/domain"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria.
type UserRepo struct{ access }

// NewUserRepository construye el repositorio sobre el Store.
func NewUserRepository(s *Store) *UserRepo {
	return &UserRepo{access{s: s}}
}

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	return r.write(func(d *dataset) error {
		if d.hasUser(user.ID) {
			return domain.ErrDuplicate
		}
		d.users[user.ID] = *user
		return nil
	})
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	var out *entity.User
	err := r.read(func(d *dataset) error {
		if u, ok := d.users[id]; ok {
			out = &u
		}
		return nil
	})
	return out, err
}

func (r *UserRepo) UpdateName(_ context.Context, id, name string) error {
	return r.write(func(d *dataset) error {
		u, ok := d.users[id]
		if !ok {
			return domain.ErrNotFound
		}
		u.Name = name
		d.users[id] = u
		return nil
	})
}
