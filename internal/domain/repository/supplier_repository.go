package repository

import (
	"context"

	"github.com/jhoicas/gestion-stock/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, ownerID, id string) (*entity.Supplier, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Supplier, error)
	Delete(ctx context.Context, ownerID, id string) error
}
