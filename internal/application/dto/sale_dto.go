package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada de POST /api/sales.
type CreateSaleRequest struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

// SaleResponse salida de una venta; Product se incluye en listados.
type SaleResponse struct {
	ID         string           `json:"id"`
	ProductID  string           `json:"productId"`
	Quantity   int              `json:"quantity"`
	TotalPrice decimal.Decimal  `json:"totalPrice"`
	OwnerID    string           `json:"ownerId"`
	CreatedAt  time.Time        `json:"createdAt"`
	Product    *ProductResponse `json:"product,omitempty"`
}
