package repository

import (
	"context"

	"github.com/jhoicas/gestion-stock/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale (DIP).
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	// Delete borra la venta y devuelve la fila eliminada (DELETE ... RETURNING).
	// Devuelve domain.ErrNotFound si no existe o es de otro usuario: dos borrados
	// concurrentes de la misma venta no pueden devolverla ambos.
	Delete(ctx context.Context, ownerID, id string) (*entity.Sale, error)
	// ListByOwner lista del más reciente al más antiguo con Product (y su Category) expandido.
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Sale, error)
}
