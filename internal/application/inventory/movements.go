package inventory

import (
	"context"

	"github.com/jhoicas/gestion-stock/internal/application/auth"
	"github.com/jhoicas/gestion-stock/internal/application/dto"
	"github.com/jhoicas/gestion-stock/internal/domain/inventory"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

// MovementUseCase historial de movimientos de stock (solo lectura).
// Los movimientos no se guardan: se proyectan desde productos y ventas en cada consulta.
type MovementUseCase struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(productRepo repository.ProductRepository, saleRepo repository.SaleRepository) *MovementUseCase {
	return &MovementUseCase{productRepo: productRepo, saleRepo: saleRepo}
}

// List devuelve compras y ventas del usuario, más recientes primero.
func (uc *MovementUseCase) List(ctx context.Context) ([]dto.MovementResponse, error) {
	ownerID, err := auth.OwnerID(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	sales, err := uc.saleRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	movements := inventory.ProjectMovements(products, sales)
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.FromMovement(m))
	}
	return out, nil
}
