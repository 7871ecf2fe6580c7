package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gennaskitchen/service-api-go/internal/cart/entity"
	"github.com/gennaskitchen/service-api-go/internal/errs"
)

// CartRepo provides data access for the cart_lines table using sqlx.
type CartRepo struct {
	db *sqlx.DB
}

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

// EnsureTable creates the cart_lines table if not exists (idempotent).
// The (user_id, product_id) index is deliberately non-unique: repeated adds
// produce additional line items.
func (r *CartRepo) EnsureTable(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS cart_lines (
  id varchar(32) PRIMARY KEY,
  user_id varchar(32) NOT NULL,
  product_id varchar(32) NOT NULL,
  quantity INT NOT NULL CHECK (quantity > 0),
  amount DOUBLE PRECISION NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_cart_lines_user_product ON cart_lines (user_id, product_id);
`
	_, err := r.db.ExecContext(ctx, ddl)
	return err
}

// Insert persists a new cart line.
func (r *CartRepo) Insert(ctx context.Context, line *entity.CartLine) error {
	const q = `INSERT INTO cart_lines (id, user_id, product_id, quantity, amount)
	           VALUES (:id, :user_id, :product_id, :quantity, :amount)`
	if _, err := r.db.NamedExecContext(ctx, q, line); err != nil {
		return fmt.Errorf("insert cart line: %w", err)
	}
	return nil
}

// ListByUser returns every line in a user's cart, oldest first.
func (r *CartRepo) ListByUser(ctx context.Context, userID string) ([]entity.CartLine, error) {
	const q = `SELECT id, user_id, product_id, quantity, amount, created_at, updated_at
	           FROM cart_lines WHERE user_id=$1 ORDER BY created_at`
	lines := []entity.CartLine{}
	if err := r.db.SelectContext(ctx, &lines, q, userID); err != nil {
		return nil, fmt.Errorf("list cart lines: %w", err)
	}
	return lines, nil
}

// UpdateAmount overwrites quantity and amount on every line matching the
// (user, product) pair. Returns errs.ErrCartLineNotFound when nothing matched.
func (r *CartRepo) UpdateAmount(ctx context.Context, userID, productID string, quantity int, amount float64) error {
	const q = `UPDATE cart_lines SET quantity=$3, amount=$4, updated_at=NOW()
	           WHERE user_id=$1 AND product_id=$2`
	res, err := r.db.ExecContext(ctx, q, userID, productID, quantity, amount)
	if err != nil {
		return fmt.Errorf("update cart line: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update cart line rows: %w", err)
	}
	if rows == 0 {
		return errs.ErrCartLineNotFound
	}
	return nil
}

// FirstByUserProduct returns the oldest line matching the pair.
func (r *CartRepo) FirstByUserProduct(ctx context.Context, userID, productID string) (*entity.CartLine, error) {
	const q = `SELECT id, user_id, product_id, quantity, amount, created_at, updated_at
	           FROM cart_lines WHERE user_id=$1 AND product_id=$2 ORDER BY created_at LIMIT 1`
	var line entity.CartLine
	if err := r.db.GetContext(ctx, &line, q, userID, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrCartLineNotFound
		}
		return nil, fmt.Errorf("get cart line: %w", err)
	}
	return &line, nil
}

// DeleteByUserProduct removes every line matching the pair.
func (r *CartRepo) DeleteByUserProduct(ctx context.Context, userID, productID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cart_lines WHERE user_id=$1 AND product_id=$2`, userID, productID)
	if err != nil {
		return fmt.Errorf("delete cart line: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete cart line rows: %w", err)
	}
	if rows == 0 {
		return errs.ErrCartLineNotFound
	}
	return nil
}
