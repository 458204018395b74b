package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypePurchase = "Purchase" // alta de producto (entrada inicial)
	MovementTypeSale     = "Sale"     // venta (salida)
)

// Movement fila derivada del historial de stock. No se persiste.
type Movement struct {
	ID           string
	Type         string
	ProductName  string
	CategoryName string
	Quantity     int
	UnitPrice    decimal.Decimal
	Date         time.Time
	SupplierName *string // nil en ventas
}
