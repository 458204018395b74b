package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementResponse fila del historial de movimientos (derivada, no persistida).
type MovementResponse struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"`
	ProductName  string          `json:"productName"`
	CategoryName string          `json:"categoryName"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Date         time.Time       `json:"date"`
	SupplierName *string         `json:"supplierName"`
}
