package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-stock/internal/application/report"
)

func TestGenerateStockReport_ProducePDF(t *testing.T) {
	g := NewMarotoStockReportGenerator("es")
	rep := &report.StockReport{
		OwnerName:   "Ana",
		GeneratedAt: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		Lines: []report.StockReportLine{
			{ProductName: "Café", CategoryName: "Bebidas", Stock: 10, Price: decimal.NewFromInt(100), Value: decimal.NewFromInt(1000)},
			{ProductName: "Té", CategoryName: "-", Stock: 2, Price: decimal.RequireFromString("12.5"), Value: decimal.NewFromInt(25), LowStock: true},
		},
		TotalUnits:    12,
		TotalValue:    decimal.NewFromInt(1025),
		LowStockCount: 1,
	}

	out, err := g.GenerateStockReport(context.Background(), rep)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateStockReport_SinProductos(t *testing.T) {
	g := NewMarotoStockReportGenerator("en")
	out, err := g.GenerateStockReport(context.Background(), &report.StockReport{GeneratedAt: time.Now()})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestMoney_SeparadoresSegunIdioma(t *testing.T) {
	amount := decimal.RequireFromString("1234567.5")
	assert.Equal(t, "$1,234,567.50", NewMarotoStockReportGenerator("en").money(amount))
	assert.Contains(t, NewMarotoStockReportGenerator("es").money(amount), ",50", "coma decimal en español")
}

func TestNewMarotoStockReportGenerator_IdiomaInvalidoUsaEspanol(t *testing.T) {
	amount := decimal.RequireFromString("1000")
	assert.Equal(t, NewMarotoStockReportGenerator("es").money(amount), NewMarotoStockReportGenerator("%%").money(amount))
}
