// Package report genera reportes descargables del inventario del usuario.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-stock/internal/application/auth"
	"github.com/jhoicas/gestion-stock/internal/domain/inventory"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

// StockReportLine una fila del reporte de stock.
type StockReportLine struct {
	ProductName  string
	CategoryName string
	Stock        int
	Price        decimal.Decimal
	Value        decimal.Decimal // Price × Stock
	LowStock     bool
}

// StockReport datos ya calculados que el generador solo tiene que pintar.
type StockReport struct {
	OwnerName     string
	GeneratedAt   time.Time
	Lines         []StockReportLine
	TotalUnits    int
	TotalValue    decimal.Decimal
	LowStockCount int
}

// StockReportGenerator puerto de salida para renderizar el reporte (PDF).
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, report *StockReport) ([]byte, error)
}

// StockReportUseCase arma el reporte de stock del usuario y lo delega al generador.
type StockReportUseCase struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	generator   StockReportGenerator
}

// NewStockReportUseCase construye el caso de uso.
func NewStockReportUseCase(
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	generator StockReportGenerator,
) *StockReportUseCase {
	return &StockReportUseCase{productRepo: productRepo, userRepo: userRepo, generator: generator}
}

// Build arma el reporte (sin renderizar).
func (uc *StockReportUseCase) Build(ctx context.Context) (*StockReport, error) {
	ownerID, err := auth.OwnerID(ctx)
	if err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("reporte: obtener usuario: %w", err)
	}
	products, err := uc.productRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("reporte: listar productos: %w", err)
	}

	rep := &StockReport{
		GeneratedAt: time.Now(),
		Lines:       make([]StockReportLine, 0, len(products)),
		TotalValue:  decimal.Zero,
	}
	if user != nil {
		rep.OwnerName = user.Name
		if rep.OwnerName == "" {
			rep.OwnerName = user.Email
		}
	}
	for _, p := range products {
		line := StockReportLine{
			ProductName:  p.Name,
			CategoryName: "-",
			Stock:        p.Stock,
			Price:        p.Price,
			Value:        p.StockValue(),
			LowStock:     inventory.IsLowStock(p.Stock),
		}
		if p.Category != nil {
			line.CategoryName = p.Category.Name
		}
		rep.Lines = append(rep.Lines, line)
		rep.TotalUnits += p.Stock
		rep.TotalValue = rep.TotalValue.Add(line.Value)
		if line.LowStock {
			rep.LowStockCount++
		}
	}
	return rep, nil
}

// Download arma y renderiza el reporte. Devuelve los bytes y el nombre sugerido del archivo.
func (uc *StockReportUseCase) Download(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	rep, err := uc.Build(ctx)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateStockReport(ctx, rep)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar: %w", err)
	}
	return pdfBytes, fmt.Sprintf("stock-%s.pdf", rep.GeneratedAt.Format("20060102")), nil
}
