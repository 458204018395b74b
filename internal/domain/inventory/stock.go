package inventory

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-stock/internal/domain"
)

// LowStockThreshold umbral fijo (inclusive) de stock bajo.
const LowStockThreshold = 5

// MaxStock mayor stock representable (columna INTEGER).
const MaxStock = math.MaxInt32

// maxAmount cota exclusiva de un monto NUMERIC(14,2).
var maxAmount = decimal.New(1, 12)

// ValidAmount indica si d es un monto guardable sin redondeo:
// no negativo, menor que 1e12 y con a lo sumo dos decimales.
func ValidAmount(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThan(maxAmount) && d.Equal(d.Round(2))
}

// ValidStock indica si stock está en [0, MaxStock].
func ValidStock(stock int) bool {
	return stock >= 0 && stock <= MaxStock
}

// ValidateSale verifica que una venta de quantity unidades sea aplicable sobre stock.
// Devuelve ErrInvalidQuantity si quantity <= 0 y ErrInsufficientStock si supera el stock.
func ValidateSale(stock, quantity int) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	if quantity > stock {
		return domain.ErrInsufficientStock
	}
	return nil
}

// SaleTotal calcula el total de una venta: price × quantity.
func SaleTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

// IsLowStock indica si el stock está en o por debajo del umbral.
func IsLowStock(stock int) bool {
	return stock <= LowStockThreshold
}
