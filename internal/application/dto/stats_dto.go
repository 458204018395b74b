package dto

import "github.com/shopspring/decimal"

// StatsResponse respuesta de GET /api/stats.
type StatsResponse struct {
	TotalProducts   int             `json:"totalProducts"`
	LowStock        int             `json:"lowStock"`
	RecentMovements int             `json:"recentMovements"` // ventas + altas de producto de los últimos 30 días
	StockValue      decimal.Decimal `json:"stockValue"`
}
