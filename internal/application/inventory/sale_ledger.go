package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-stock/internal/application/auth"
	"github.com/jhoicas/gestion-stock/internal/application/dto"
	"github.com/jhoicas/gestion-stock/internal/domain"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/domain/inventory"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

// SaleLedgerUseCase registra y anula ventas ajustando el stock del producto en la misma
// transacción, con bloqueo de fila (SELECT FOR UPDATE) sobre el producto.
type SaleLedgerUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
}

// NewSaleLedgerUseCase construye el caso de uso. saleRepo se usa para lecturas fuera de transacción.
func NewSaleLedgerUseCase(txRunner TxRunner, saleRepo repository.SaleRepository) *SaleLedgerUseCase {
	return &SaleLedgerUseCase{txRunner: txRunner, saleRepo: saleRepo}
}

// CreateSale registra una venta de quantity unidades del producto.
//
// Errores: ErrInvalidQuantity (quantity <= 0), ErrInvalidInput (sin producto o total fuera de rango),
// ErrNotFound (producto inexistente o de otro usuario), ErrInsufficientStock.
// El stock se valida con el valor leído y bloqueado dentro de la transacción.
func (uc *SaleLedgerUseCase) CreateSale(ctx context.Context, productID string, quantity int) (*dto.SaleResponse, error) {
	ownerID, err := auth.OwnerID(ctx)
	if err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}

	var sale *entity.Sale
	err = uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, saleRepo repository.SaleRepository) error {
		product, err := productRepo.GetForUpdate(ctx, ownerID, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := inventory.ValidateSale(product.Stock, quantity); err != nil {
			return err
		}

		total := inventory.SaleTotal(product.Price, quantity)
		if !inventory.ValidAmount(total) {
			return domain.ErrInvalidInput
		}

		s := &entity.Sale{
			ID:         uuid.New().String(),
			OwnerID:    ownerID,
			ProductID:  product.ID,
			Quantity:   quantity,
			TotalPrice: total,
			CreatedAt:  time.Now(),
		}
		if err := saleRepo.Create(ctx, s); err != nil {
			return err
		}
		if err := productRepo.AdjustStock(ctx, ownerID, product.ID, -quantity); err != nil {
			return err
		}
		product.Stock -= quantity
		s.Product = product
		sale = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.FromSale(sale), nil
}

// DeleteSale anula una venta y devuelve sus unidades al stock del producto (si aún existe).
// Devuelve ErrNotFound si la venta no existe o es de otro usuario.
func (uc *SaleLedgerUseCase) DeleteSale(ctx context.Context, saleID string) error {
	ownerID, err := auth.OwnerID(ctx)
	if err != nil {
		return err
	}
	if saleID == "" {
		return domain.ErrNotFound
	}

	return uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, saleRepo repository.SaleRepository) error {
		sale, err := saleRepo.Delete(ctx, ownerID, saleID)
		if err != nil {
			return err
		}
		product, err := productRepo.GetForUpdate(ctx, ownerID, sale.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return nil
		}
		return productRepo.AdjustStock(ctx, ownerID, product.ID, sale.Quantity)
	})
}

// ListSales lista las ventas del usuario, más recientes primero, con el producto expandido.
func (uc *SaleLedgerUseCase) ListSales(ctx context.Context) ([]dto.SaleResponse, error) {
	ownerID, err := auth.OwnerID(ctx)
	if err != nil {
		return nil, err
	}
	list, err := uc.saleRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *dto.FromSale(s))
	}
	return out, nil
}
