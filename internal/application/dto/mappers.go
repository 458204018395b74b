package dto

import "github.com/jhoicas/gestion-stock/internal/domain/entity"

// FromCategory convierte la entidad a su DTO de salida.
func FromCategory(c *entity.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
}

// FromSupplier convierte la entidad a su DTO de salida.
func FromSupplier(s *entity.Supplier) *SupplierResponse {
	if s == nil {
		return nil
	}
	return &SupplierResponse{ID: s.ID, Name: s.Name, Phone: s.Phone, CreatedAt: s.CreatedAt}
}

// FromProduct convierte la entidad a su DTO de salida.
func FromProduct(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Stock:      p.Stock,
		InitStock:  p.InitStock,
		Price:      p.Price,
		BasePrice:  p.BasePrice,
		CategoryID: p.CategoryID,
		SupplierID: p.SupplierID,
		OwnerID:    p.OwnerID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
		Category:   FromCategory(p.Category),
		Supplier:   FromSupplier(p.Supplier),
	}
}

// FromProducts convierte una lista; nunca devuelve nil (JSON []).
func FromProducts(list []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *FromProduct(p))
	}
	return out
}

// FromSale convierte la entidad a su DTO de salida.
func FromSale(s *entity.Sale) *SaleResponse {
	if s == nil {
		return nil
	}
	return &SaleResponse{
		ID:         s.ID,
		ProductID:  s.ProductID,
		Quantity:   s.Quantity,
		TotalPrice: s.TotalPrice,
		OwnerID:    s.OwnerID,
		CreatedAt:  s.CreatedAt,
		Product:    FromProduct(s.Product),
	}
}

// FromMovement convierte la fila derivada a su DTO de salida.
func FromMovement(m entity.Movement) MovementResponse {
	return MovementResponse{
		ID:           m.ID,
		Type:         m.Type,
		ProductName:  m.ProductName,
		CategoryName: m.CategoryName,
		Quantity:     m.Quantity,
		UnitPrice:    m.UnitPrice,
		Date:         m.Date,
		SupplierName: m.SupplierName,
	}
}

// FromUser convierte la entidad a su DTO de salida.
func FromUser(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}
