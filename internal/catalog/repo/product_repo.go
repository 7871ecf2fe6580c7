package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/gennaskitchen/service-api-go/internal/catalog/entity"
	"github.com/gennaskitchen/service-api-go/internal/errs"
)

// ProductRepo provides data access for the products table using sqlx.
type ProductRepo struct {
	db *sqlx.DB
}

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// EnsureTable creates the products table if not exists (idempotent).
// Name uniqueness is a table constraint so a duplicate add resolves at
// insert time.
func (r *ProductRepo) EnsureTable(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS products (
  id varchar(32) PRIMARY KEY,
  name TEXT NOT NULL,
  price DOUBLE PRECISION NOT NULL CHECK (price >= 0),
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_products_name ON products (name);
`
	_, err := r.db.ExecContext(ctx, ddl)
	return err
}

// Create inserts a new product row.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	const q = `INSERT INTO products (id, name, price) VALUES (:id, :name, :price)`
	_, err := r.db.NamedExecContext(ctx, q, p)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return errs.ErrDuplicateProduct
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// List returns all products ordered by creation time.
func (r *ProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	const q = `SELECT id, name, price, created_at FROM products ORDER BY created_at`
	products := []entity.Product{}
	if err := r.db.SelectContext(ctx, &products, q); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// GetByID fetches a product or errs.ErrProductNotFound.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	const q = `SELECT id, name, price, created_at FROM products WHERE id=$1`
	var p entity.Product
	if err := r.db.GetContext(ctx, &p, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrProductNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update replaces name and price of the identified product.
func (r *ProductRepo) Update(ctx context.Context, id, name string, price float64) error {
	const q = `UPDATE products SET name=$2, price=$3 WHERE id=$1`
	res, err := r.db.ExecContext(ctx, q, id, name, price)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return errs.ErrDuplicateProduct
		}
		return fmt.Errorf("update product: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update product rows: %w", err)
	}
	if rows == 0 {
		return errs.ErrProductNotFound
	}
	return nil
}

// Delete removes the product. Cart lines referencing it are left in place.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete product rows: %w", err)
	}
	if rows == 0 {
		return errs.ErrProductNotFound
	}
	return nil
}
