package inventory

import (
	"slices"

	"github.com/jhoicas/gestion-stock/internal/domain/entity"
)

// Placeholder mostrado cuando falta la categoría o el proveedor.
const missingName = "-"

// ProjectMovements construye el historial de movimientos a partir de productos y ventas.
//
//   - Cada producto genera un movimiento Purchase (InitStock, BasePrice, fecha de alta).
//   - Cada venta genera un movimiento Sale con el precio ACTUAL del producto.
//
// El resultado queda ordenado por fecha descendente; a igual fecha conserva el orden
// de entrada (productos primero, luego ventas).
func ProjectMovements(products []*entity.Product, sales []*entity.Sale) []entity.Movement {
	out := make([]entity.Movement, 0, len(products)+len(sales))

	for _, p := range products {
		supplier := missingName
		if p.Supplier != nil {
			supplier = p.Supplier.Name
		}
		out = append(out, entity.Movement{
			ID:           p.ID,
			Type:         entity.MovementTypePurchase,
			ProductName:  p.Name,
			CategoryName: categoryName(p),
			Quantity:     p.InitStock,
			UnitPrice:    p.BasePrice,
			Date:         p.CreatedAt,
			SupplierName: &supplier,
		})
	}

	for _, s := range sales {
		m := entity.Movement{
			ID:           s.ID,
			Type:         entity.MovementTypeSale,
			ProductName:  missingName,
			CategoryName: missingName,
			Quantity:     s.Quantity,
			Date:         s.CreatedAt,
		}
		if s.Product != nil {
			m.ProductName = s.Product.Name
			m.CategoryName = categoryName(s.Product)
			m.UnitPrice = s.Product.Price
		}
		out = append(out, m)
	}

	slices.SortStableFunc(out, func(a, b entity.Movement) int {
		return b.Date.Compare(a.Date)
	})
	return out
}

func categoryName(p *entity.Product) string {
	if p.Category == nil || p.Category.Name == "" {
		return missingName
	}
	return p.Category.Name
}
