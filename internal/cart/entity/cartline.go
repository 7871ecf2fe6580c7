package entity

import "time"

// CartLine ties one user to one product with a quantity and an amount
// computed from the product price at the moment of the write. The amount is
// not re-derived when the product price changes later; only the next explicit
// mutation picks the new price up.
type CartLine struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	ProductID string    `db:"product_id" json:"productId"`
	Quantity  int       `db:"quantity" json:"quantity"`
	Amount    float64   `db:"amount" json:"amount"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
