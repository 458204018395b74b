package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest entrada para crear o reemplazar un producto.
// Stock y Price son punteros para distinguir "ausente" de cero.
type ProductRequest struct {
	Name       string           `json:"name"`
	Stock      *int             `json:"stock"`
	Price      *decimal.Decimal `json:"price"`
	CategoryID *string          `json:"categoryId"`
	SupplierID *string          `json:"supplierId"`
}

// ProductResponse salida de un producto; Category y Supplier se incluyen cuando se cargaron.
type ProductResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Stock      int               `json:"stock"`
	InitStock  int               `json:"initStock"`
	Price      decimal.Decimal   `json:"price"`
	BasePrice  decimal.Decimal   `json:"basePrice"`
	CategoryID *string           `json:"categoryId"`
	SupplierID *string           `json:"supplierId"`
	OwnerID    string            `json:"ownerId"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
	Category   *CategoryResponse `json:"category,omitempty"`
	Supplier   *SupplierResponse `json:"supplier,omitempty"`
}

// DeleteProductResponse respuesta de DELETE /api/products/:id.
type DeleteProductResponse struct {
	Message string          `json:"message"`
	Product ProductResponse `json:"product"`
}

// ProductOverviewResponse respuesta de GET /api/products/overview.
type ProductOverviewResponse struct {
	LowStockProducts []ProductResponse `json:"lowStockProducts"`
	RecentProducts   []ProductResponse `json:"recentProducts"`
}
