package inventory_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gestion-stock/internal/domain"
	"github.com/jhoicas/gestion-stock/internal/domain/inventory"
)

func TestValidateSale(t *testing.T) {
	cases := []struct {
		name     string
		stock    int
		quantity int
		want     error
	}{
		{"cantidad dentro del stock", 10, 3, nil},
		{"cantidad igual al stock", 7, 7, nil},
		{"cantidad mayor al stock", 7, 10, domain.ErrInsufficientStock},
		{"cantidad cero", 10, 0, domain.ErrInvalidQuantity},
		{"cantidad negativa", 10, -2, domain.ErrInvalidQuantity},
		{"stock cero", 0, 1, domain.ErrInsufficientStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, inventory.ValidateSale(tc.stock, tc.quantity), tc.want)
		})
	}
}

func TestSaleTotal(t *testing.T) {
	total := inventory.SaleTotal(decimal.NewFromInt(100), 3)
	assert.True(t, total.Equal(decimal.NewFromInt(300)), "100 × 3 = 300, obtenido %s", total)

	total = inventory.SaleTotal(decimal.RequireFromString("19.99"), 4)
	assert.Equal(t, "79.96", total.StringFixed(2))
}

func TestIsLowStock(t *testing.T) {
	assert.True(t, inventory.IsLowStock(0))
	assert.True(t, inventory.IsLowStock(inventory.LowStockThreshold))
	assert.False(t, inventory.IsLowStock(inventory.LowStockThreshold+1))
}

func TestValidAmount(t *testing.T) {
	cases := []struct {
		amount string
		want   bool
	}{
		{"0", true},
		{"100", true},
		{"19.99", true},
		{"2.500", true},
		{"999999999999.99", true},
		{"1000000000000", false},
		{"10000000000000", false},
		{"1.005", false},
		{"-0.01", false},
	}
	for _, tc := range cases {
		t.Run(tc.amount, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.ValidAmount(decimal.RequireFromString(tc.amount)))
		})
	}
}

func TestValidStock(t *testing.T) {
	assert.True(t, inventory.ValidStock(0))
	assert.True(t, inventory.ValidStock(math.MaxInt32))
	assert.False(t, inventory.ValidStock(math.MaxInt32+1))
	assert.False(t, inventory.ValidStock(-1))
}
