// Package cart implements the cart ledger: the record of lines a user
// intends to purchase, priced at write time.
package cart

import (
	"context"
	"fmt"

	"github.com/gennaskitchen/service-api-go/internal/cart/entity"
	"github.com/gennaskitchen/service-api-go/internal/errs"
	"github.com/gennaskitchen/service-api-go/pkg/utilities"
)

// CartRepository is the storage contract the service depends on.
type CartRepository interface {
	Insert(ctx context.Context, line *entity.CartLine) error
	ListByUser(ctx context.Context, userID string) ([]entity.CartLine, error)
	UpdateAmount(ctx context.Context, userID, productID string, quantity int, amount float64) error
	FirstByUserProduct(ctx context.Context, userID, productID string) (*entity.CartLine, error)
	DeleteByUserProduct(ctx context.Context, userID, productID string) error
}

// UserFinder validates user existence. The ledger holds non-owning
// references only; it never mutates account state.
type UserFinder interface {
	UserExists(ctx context.Context, id string) (bool, error)
}

// ProductFinder resolves the current price of a product.
type ProductFinder interface {
	ProductPrice(ctx context.Context, id string) (float64, error)
}

// Service orchestrates cart mutations and enforces write-time pricing.
type Service struct {
	repo     CartRepository
	users    UserFinder
	products ProductFinder
}

func NewService(repo CartRepository, users UserFinder, products ProductFinder) *Service {
	return &Service{repo: repo, users: users, products: products}
}

// AddToCart creates a new line for (userID, productID) with
// amount = current price * quantity. Repeated adds append additional lines
// instead of merging quantities.
func (s *Service) AddToCart(ctx context.Context, userID, productID string, quantity int) (*entity.CartLine, error) {
	if userID == "" || productID == "" {
		return nil, fmt.Errorf("%w: userId and productId are required", errs.ErrValidation)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be a positive integer", errs.ErrValidation)
	}
	exists, err := s.users.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.ErrUserNotFound
	}
	price, err := s.products.ProductPrice(ctx, productID)
	if err != nil {
		return nil, err
	}
	line := &entity.CartLine{
		ID:        utilities.NewKSUID(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		Amount:    price * float64(quantity),
	}
	if err := s.repo.Insert(ctx, line); err != nil {
		return nil, err
	}
	return line, nil
}

// ListCart returns all lines in a user's cart. An empty cart is a valid
// state, not an error.
func (s *Service) ListCart(ctx context.Context, userID string) ([]entity.CartLine, error) {
	return s.repo.ListByUser(ctx, userID)
}

// UpdateCartLine re-reads the current product price, recomputes the amount
// and overwrites every line matching (userID, productID). A price change
// between two updates is only picked up here, on the explicit call.
func (s *Service) UpdateCartLine(ctx context.Context, userID, productID string, quantity int) (*entity.CartLine, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be a positive integer", errs.ErrValidation)
	}
	price, err := s.products.ProductPrice(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateAmount(ctx, userID, productID, quantity, price*float64(quantity)); err != nil {
		return nil, err
	}
	return s.repo.FirstByUserProduct(ctx, userID, productID)
}

// RemoveFromCart deletes every line matching (userID, productID).
func (s *Service) RemoveFromCart(ctx context.Context, userID, productID string) error {
	return s.repo.DeleteByUserProduct(ctx, userID, productID)
}
