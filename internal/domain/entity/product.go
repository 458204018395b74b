package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de un usuario.
// InitStock y BasePrice son fotos del momento de creación; Stock y Price cambian.
type Product struct {
	ID         string
	OwnerID    string
	Name       string
	Stock      int
	InitStock  int
	Price      decimal.Decimal // precio unitario actual
	BasePrice  decimal.Decimal // precio unitario al crear
	CategoryID *string
	SupplierID *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Relaciones expandidas por algunas consultas (nil si no se cargaron o no existen).
	Category *Category
	Supplier *Supplier
}

// StockValue devuelve price × stock.
func (p *Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}
