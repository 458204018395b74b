package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-stock/internal/application/auth"
	"github.com/jhoicas/gestion-stock/internal/application/dto"
	"github.com/jhoicas/gestion-stock/internal/domain"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/domain/inventory"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

// overviewRecentProducts número de productos recientes en el resumen.
const overviewRecentProducts = 5

// ProductUseCase casos de uso CRUD para productos. El stock baja y sube vía ventas,
// pero el usuario puede corregirlo al editar el producto.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, supplierRepo: supplierRepo}
}

// Create crea un producto. InitStock y BasePrice se fijan con el stock y precio iniciales.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	ownerID, err := auth.OwnerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	categoryID, supplierID := normalizeRef(in.CategoryID), normalizeRef(in.SupplierID)
	category, supplier, err := uc.resolveRefs(ctx, ownerID, categoryID, supplierID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:         uuid.New().String(),
		OwnerID:    ownerID,
		Name:       strings.TrimSpace(in.Name),
		Stock:      *in.Stock,
		InitStock:  *in.Stock,
		Price:      *in.Price,
		BasePrice:  *in.Price,
		CategoryID: categoryID,
		SupplierID: supplierID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	product.Category, product.Supplier = category, supplier
	return dto.FromProduct(product), nil
}

// GetByID obtiene un producto del usuario. ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	ownerID, err := auth.OwnerID(ctx)
	if err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return dto.FromProduct(product), nil
}

// Update reemplaza nombre, stock, precio, categoría y proveedor. InitStock y BasePrice no cambian.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	ownerID, err := auth.OwnerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	categoryID, supplierID := normalizeRef(in.CategoryID), normalizeRef(in.SupplierID)
	category, supplier, err := uc.resolveRefs(ctx, ownerID, categoryID, supplierID)
	if err != nil {
		return nil, err
	}

	product.Name = strings.TrimSpace(in.Name)
	product.Stock = *in.Stock
	product.Price = *in.Price
	product.CategoryID, product.SupplierID = categoryID, supplierID
	product.Category, product.Supplier = category, supplier
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return dto.FromProduct(product), nil
}

// Delete elimina un producto (y sus ventas) y devuelve la fila eliminada.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) (*dto.ProductResponse, error) {
	ownerID, err := auth.OwnerID(ctx)
	if err != nil {
		return nil, err
	}
	product, err := uc.repo.Delete(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return dto.FromProduct(product), nil
}

// List lista los productos del usuario con categoría y proveedor, más recientes primero.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	ownerID, err := auth.OwnerID(ctx)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return dto.FromProducts(list), nil
}

// Overview devuelve los productos con stock bajo y los 5 más recientes.
func (uc *ProductUseCase) Overview(ctx context.Context) (*dto.ProductOverviewResponse, error) {
	ownerID, err := auth.OwnerID(ctx)
	if err != nil {
		return nil, err
	}
	low, err := uc.repo.ListLowStock(ctx, ownerID, inventory.LowStockThreshold)
	if err != nil {
		return nil, err
	}
	recent, err := uc.repo.ListRecent(ctx, ownerID, overviewRecentProducts)
	if err != nil {
		return nil, err
	}
	return &dto.ProductOverviewResponse{
		LowStockProducts: dto.FromProducts(low),
		RecentProducts:   dto.FromProducts(recent),
	}, nil
}

// resolveRefs verifica que la categoría y el proveedor indicados pertenezcan al usuario.
func (uc *ProductUseCase) resolveRefs(ctx context.Context, ownerID string, categoryID, supplierID *string) (*entity.Category, *entity.Supplier, error) {
	var (
		category *entity.Category
		supplier *entity.Supplier
		err      error
	)
	if categoryID != nil {
		category, err = uc.categoryRepo.GetByID(ctx, ownerID, *categoryID)
		if err != nil {
			return nil, nil, err
		}
		if category == nil {
			return nil, nil, domain.ErrInvalidInput
		}
	}
	if supplierID != nil {
		supplier, err = uc.supplierRepo.GetByID(ctx, ownerID, *supplierID)
		if err != nil {
			return nil, nil, err
		}
		if supplier == nil {
			return nil, nil, domain.ErrInvalidInput
		}
	}
	return category, supplier, nil
}

func validateProduct(in dto.ProductRequest) error {
	if strings.TrimSpace(in.Name) == "" || in.Stock == nil || in.Price == nil {
		return domain.ErrInvalidInput
	}
	if !inventory.ValidStock(*in.Stock) || !inventory.ValidAmount(*in.Price) {
		return domain.ErrInvalidInput
	}
	return nil
}

func normalizeRef(id *string) *string {
	if id == nil {
		return nil
	}
	v := strings.TrimSpace(*id)
	if v == "" {
		return nil
	}
	return &v
}
