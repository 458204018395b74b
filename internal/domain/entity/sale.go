package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale venta de un producto. Inmutable: solo se elimina (revirtiendo su efecto en el stock).
type Sale struct {
	ID         string
	OwnerID    string
	ProductID  string
	Quantity   int
	TotalPrice decimal.Decimal // quantity × price del producto al momento de la venta
	CreatedAt  time.Time

	Product *Product // expandido en listados
}
