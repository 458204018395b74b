package repository

import (
	"context"

	"github.com/jhoicas/gestion-stock/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los métodos Get* devuelven (nil, nil) si el producto no existe o es de otro usuario.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// GetByID carga el producto con Category y Supplier expandidos.
	GetByID(ctx context.Context, ownerID, id string) (*entity.Product, error)
	// GetForUpdate lee y bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, ownerID, id string) (*entity.Product, error)
	// Update reemplaza nombre, stock, precio, categoría y proveedor. ErrNotFound si no existe.
	Update(ctx context.Context, product *entity.Product) error
	// AdjustStock suma delta (positivo o negativo) al stock.
	AdjustStock(ctx context.Context, ownerID, id string, delta int) error
	// Delete borra el producto y devuelve la fila eliminada. ErrNotFound si no existe.
	Delete(ctx context.Context, ownerID, id string) (*entity.Product, error)
	// ListByOwner lista del más reciente al más antiguo, con Category y Supplier.
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Product, error)
	// ListLowStock productos con stock <= threshold, más recientes primero, con Category.
	ListLowStock(ctx context.Context, ownerID string, threshold int) ([]*entity.Product, error)
	// ListRecent los limit productos más recientes, con Category.
	ListRecent(ctx context.Context, ownerID string, limit int) ([]*entity.Product, error)
}
