// Package catalog implements the product catalog store.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/gennaskitchen/service-api-go/internal/catalog/entity"
	"github.com/gennaskitchen/service-api-go/internal/errs"
	"github.com/gennaskitchen/service-api-go/pkg/utilities"
)

// ProductRepository is the storage contract the service depends on.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	List(ctx context.Context) ([]entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, id, name string, price float64) error
	Delete(ctx context.Context, id string) error
}

// Service encapsulates catalog business rules.
type Service struct {
	repo ProductRepository
}

func NewService(repo ProductRepository) *Service {
	return &Service{repo: repo}
}

// AddProduct creates a product. Name must be unique and non-empty, price
// must be non-negative.
func (s *Service) AddProduct(ctx context.Context, name string, price float64) (*entity.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", errs.ErrValidation)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", errs.ErrValidation)
	}
	p := &entity.Product{ID: utilities.NewKSUID(), Name: name, Price: price}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListProducts returns every product. An empty catalog is a valid state,
// not an error.
func (s *Service) ListProducts(ctx context.Context) ([]entity.Product, error) {
	return s.repo.List(ctx)
}

// GetProduct returns one product by id.
func (s *Service) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateProduct replaces name and price of the identified product.
func (s *Service) UpdateProduct(ctx context.Context, id, name string, price float64) (*entity.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", errs.ErrValidation)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", errs.ErrValidation)
	}
	if err := s.repo.Update(ctx, id, name, price); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// DeleteProduct removes a product. Existing cart lines keep their last
// written amount; the next cart mutation on them reports the product gone.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ProductPrice returns the current price for id. Used by the cart ledger to
// resolve prices at write time.
func (s *Service) ProductPrice(ctx context.Context, id string) (float64, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return p.Price, nil
}
