package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion-stock/internal/domain"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, user_id, product_id, quantity, total_price, created_at`

// Create persiste una venta.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO sales (`+saleColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.OwnerID, s.ProductID, s.Quantity, s.TotalPrice, s.CreatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err):
			return domain.ErrNotFound
		case isCheckViolation(err):
			return domain.ErrInvalidQuantity
		case isOutOfRange(err):
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// Delete borra la venta con DELETE ... RETURNING: solo uno de dos borrados concurrentes recibe la fila.
func (r *SaleRepo) Delete(ctx context.Context, ownerID, id string) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(ctx,
		`DELETE FROM sales WHERE id = $1 AND user_id = $2 RETURNING `+saleColumns, id, ownerID,
	).Scan(&s.ID, &s.OwnerID, &s.ProductID, &s.Quantity, &s.TotalPrice, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("delete sale: %w", err)
	}
	return &s, nil
}

// ListByOwner lista las ventas del usuario, más recientes primero, con producto y categoría.
func (r *SaleRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Sale, error) {
	const query = `
	SELECT s.id, s.user_id, s.product_id, s.quantity, s.total_price, s.created_at,
	       p.name, p.stock, p.init_stock, p.price, p.base_price, p.category_id, p.supplier_id,
	       p.created_at, p.updated_at,
	       c.name, c.created_at
	FROM sales s
	JOIN products p ON p.id = s.product_id
	LEFT JOIN categories c ON c.id = p.category_id
	WHERE s.user_id = $1
	ORDER BY s.created_at DESC`

	rows, err := r.q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Sale, 0)
	for rows.Next() {
		var (
			s          entity.Sale
			p          entity.Product
			catName    *string
			catCreated *time.Time
		)
		if err := rows.Scan(
			&s.ID, &s.OwnerID, &s.ProductID, &s.Quantity, &s.TotalPrice, &s.CreatedAt,
			&p.Name, &p.Stock, &p.InitStock, &p.Price, &p.BasePrice, &p.CategoryID, &p.SupplierID,
			&p.CreatedAt, &p.UpdatedAt,
			&catName, &catCreated,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		p.ID = s.ProductID
		p.OwnerID = s.OwnerID
		if p.CategoryID != nil && catName != nil {
			p.Category = &entity.Category{ID: *p.CategoryID, OwnerID: p.OwnerID, Name: *catName}
			if catCreated != nil {
				p.Category.CreatedAt = *catCreated
			}
		}
		s.Product = &p
		list = append(list, &s)
	}
	return list, rows.Err()
}
