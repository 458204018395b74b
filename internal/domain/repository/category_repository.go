package repository

import (
	"context"

	"github.com/jhoicas/gestion-stock/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Todas las lecturas y escrituras van filtradas por ownerID.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, ownerID, id string) (*entity.Category, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Category, error)
	// Delete devuelve domain.ErrNotFound si no existe o no pertenece al usuario.
	Delete(ctx context.Context, ownerID, id string) error
}
