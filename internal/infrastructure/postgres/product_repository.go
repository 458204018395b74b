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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, user_id, name, stock, init_stock, price, base_price, category_id, supplier_id, created_at, updated_at`

// productExpandedSelect producto con su categoría y proveedor (LEFT JOIN: pueden no existir).
const productExpandedSelect = `
	SELECT p.id, p.user_id, p.name, p.stock, p.init_stock, p.price, p.base_price,
	       p.category_id, p.supplier_id, p.created_at, p.updated_at,
	       c.name, c.created_at, s.name, s.phone, s.created_at
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id
	LEFT JOIN suppliers  s ON s.id = p.supplier_id`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Stock, &p.InitStock, &p.Price, &p.BasePrice,
		&p.CategoryID, &p.SupplierID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProductExpanded(row pgx.Row) (*entity.Product, error) {
	var (
		p                 entity.Product
		catName           *string
		catCreated        *time.Time
		supName, supPhone *string
		supCreated        *time.Time
	)
	if err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Stock, &p.InitStock, &p.Price, &p.BasePrice,
		&p.CategoryID, &p.SupplierID, &p.CreatedAt, &p.UpdatedAt,
		&catName, &catCreated, &supName, &supPhone, &supCreated); err != nil {
		return nil, err
	}
	if p.CategoryID != nil && catName != nil {
		p.Category = &entity.Category{ID: *p.CategoryID, OwnerID: p.OwnerID, Name: *catName}
		if catCreated != nil {
			p.Category.CreatedAt = *catCreated
		}
	}
	if p.SupplierID != nil && supName != nil {
		p.Supplier = &entity.Supplier{ID: *p.SupplierID, OwnerID: p.OwnerID, Name: *supName}
		if supPhone != nil {
			p.Supplier.Phone = *supPhone
		}
		if supCreated != nil {
			p.Supplier.CreatedAt = *supCreated
		}
	}
	return &p, nil
}

func (r *ProductRepo) queryExpanded(ctx context.Context, op, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProductExpanded(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO products (`+productColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID, p.OwnerID, p.Name, p.Stock, p.InitStock, p.Price, p.BasePrice,
		p.CategoryID, p.SupplierID, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err), isCheckViolation(err), isOutOfRange(err):
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto del usuario con categoría y proveedor.
func (r *ProductRepo) GetByID(ctx context.Context, ownerID, id string) (*entity.Product, error) {
	p, err := scanProductExpanded(r.q.QueryRow(ctx,
		productExpandedSelect+` WHERE p.id = $1 AND p.user_id = $2`, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetForUpdate lee el producto bloqueando su fila hasta el fin de la transacción.
// Solo tiene efecto si el Querier es una pgx.Tx.
func (r *ProductRepo) GetForUpdate(ctx context.Context, ownerID, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1 AND user_id = $2 FOR UPDATE`, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return p, nil
}

// Update reemplaza los campos editables. InitStock y BasePrice no cambian.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE products SET name = $3, stock = $4, price = $5, category_id = $6, supplier_id = $7, updated_at = $8
		WHERE id = $1 AND user_id = $2`,
		p.ID, p.OwnerID, p.Name, p.Stock, p.Price, p.CategoryID, p.SupplierID, p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) || isCheckViolation(err) || isOutOfRange(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AdjustStock suma delta al stock. El CHECK (stock >= 0) de la tabla rechaza dejarlo negativo.
func (r *ProductRepo) AdjustStock(ctx context.Context, ownerID, id string, delta int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET stock = stock + $3, updated_at = now() WHERE id = $1 AND user_id = $2`,
		id, ownerID, delta,
	)
	if err != nil {
		switch {
		case isCheckViolation(err):
			return domain.ErrInsufficientStock
		case isOutOfRange(err):
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("adjust product stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el producto (y sus ventas, ON DELETE CASCADE) y devuelve la fila borrada.
func (r *ProductRepo) Delete(ctx context.Context, ownerID, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx,
		`DELETE FROM products WHERE id = $1 AND user_id = $2 RETURNING `+productColumns, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("delete product: %w", err)
	}
	return p, nil
}

// ListByOwner lista los productos del usuario, más recientes primero.
func (r *ProductRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Product, error) {
	return r.queryExpanded(ctx, "list products",
		productExpandedSelect+` WHERE p.user_id = $1 ORDER BY p.created_at DESC`, ownerID)
}

// ListLowStock productos con stock <= threshold.
func (r *ProductRepo) ListLowStock(ctx context.Context, ownerID string, threshold int) ([]*entity.Product, error) {
	return r.queryExpanded(ctx, "list low stock products",
		productExpandedSelect+` WHERE p.user_id = $1 AND p.stock <= $2 ORDER BY p.created_at DESC`, ownerID, threshold)
}

// ListRecent los últimos limit productos creados.
func (r *ProductRepo) ListRecent(ctx context.Context, ownerID string, limit int) ([]*entity.Product, error) {
	return r.queryExpanded(ctx, "list recent products",
		productExpandedSelect+` WHERE p.user_id = $1 ORDER BY p.created_at DESC LIMIT $2`, ownerID, limit)
}
