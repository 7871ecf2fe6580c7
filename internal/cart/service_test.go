package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gennaskitchen/service-api-go/internal/cart/entity"
	"github.com/gennaskitchen/service-api-go/internal/errs"
)

type fakeCartRepo struct {
	lines []entity.CartLine
}

var _ CartRepository = (*fakeCartRepo)(nil)

func (f *fakeCartRepo) Insert(_ context.Context, line *entity.CartLine) error {
	f.lines = append(f.lines, *line)
	return nil
}

func (f *fakeCartRepo) ListByUser(_ context.Context, userID string) ([]entity.CartLine, error) {
	out := []entity.CartLine{}
	for _, l := range f.lines {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) UpdateAmount(_ context.Context, userID, productID string, quantity int, amount float64) error {
	matched := false
	for i := range f.lines {
		if f.lines[i].UserID == userID && f.lines[i].ProductID == productID {
			f.lines[i].Quantity = quantity
			f.lines[i].Amount = amount
			matched = true
		}
	}
	if !matched {
		return errs.ErrCartLineNotFound
	}
	return nil
}

func (f *fakeCartRepo) FirstByUserProduct(_ context.Context, userID, productID string) (*entity.CartLine, error) {
	for _, l := range f.lines {
		if l.UserID == userID && l.ProductID == productID {
			cpy := l
			return &cpy, nil
		}
	}
	return nil, errs.ErrCartLineNotFound
}

func (f *fakeCartRepo) DeleteByUserProduct(_ context.Context, userID, productID string) error {
	kept := f.lines[:0]
	matched := false
	for _, l := range f.lines {
		if l.UserID == userID && l.ProductID == productID {
			matched = true
			continue
		}
		kept = append(kept, l)
	}
	f.lines = kept
	if !matched {
		return errs.ErrCartLineNotFound
	}
	return nil
}

type fakeUsers struct {
	ids map[string]bool
}

var _ UserFinder = (*fakeUsers)(nil)

func (f *fakeUsers) UserExists(_ context.Context, id string) (bool, error) {
	return f.ids[id], nil
}

type fakeProducts struct {
	prices map[string]float64
}

var _ ProductFinder = (*fakeProducts)(nil)

func (f *fakeProducts) ProductPrice(_ context.Context, id string) (float64, error) {
	p, ok := f.prices[id]
	if !ok {
		return 0, errs.ErrProductNotFound
	}
	return p, nil
}

func newTestService() (*Service, *fakeCartRepo, *fakeUsers, *fakeProducts) {
	repo := &fakeCartRepo{}
	users := &fakeUsers{ids: map[string]bool{"u1": true}}
	products := &fakeProducts{prices: map[string]float64{"p1": 1.50}}
	return NewService(repo, users, products), repo, users, products
}

func TestAddToCart(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	line, err := svc.AddToCart(ctx, "u1", "p1", 3)
	require.NoError(t, err)
	require.Equal(t, 4.50, line.Amount, "amount = price * quantity at write time")

	lines, err := svc.ListCart(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, line.ID, lines[0].ID)
}

func TestAddToCart_Preconditions(t *testing.T) {
	t.Parallel()
	svc, repo, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "u1", "p1", 0)
	require.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.AddToCart(ctx, "ghost", "p1", 1)
	require.ErrorIs(t, err, errs.ErrUserNotFound)

	_, err = svc.AddToCart(ctx, "u1", "ghost", 1)
	require.ErrorIs(t, err, errs.ErrProductNotFound)

	require.Empty(t, repo.lines, "failed preconditions must not persist lines")
}

func TestAddToCart_RepeatedAddsAppendLines(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "u1", "p1", 1)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, "u1", "p1", 2)
	require.NoError(t, err)

	lines, err := svc.ListCart(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 2, "no merging on repeated adds")
}

func TestUpdateCartLine_UsesCurrentPrice(t *testing.T) {
	t.Parallel()
	svc, _, _, products := newTestService()
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "u1", "p1", 2)
	require.NoError(t, err)

	// price changes after the add; the update must pick up the new price
	products.prices["p1"] = 2.00

	line, err := svc.UpdateCartLine(ctx, "u1", "p1", 2)
	require.NoError(t, err)
	require.Equal(t, 4.00, line.Amount, "recomputed from the current price, not the add-time price")
}

func TestUpdateCartLine_Errors(t *testing.T) {
	t.Parallel()
	svc, _, _, products := newTestService()
	ctx := context.Background()

	_, err := svc.UpdateCartLine(ctx, "u1", "p1", 0)
	require.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.UpdateCartLine(ctx, "u1", "p1", 1)
	require.ErrorIs(t, err, errs.ErrCartLineNotFound)

	// orphaned line: product deleted after the add
	_, err = svc.AddToCart(ctx, "u1", "p1", 1)
	require.NoError(t, err)
	delete(products.prices, "p1")
	_, err = svc.UpdateCartLine(ctx, "u1", "p1", 2)
	require.ErrorIs(t, err, errs.ErrProductNotFound)
}

func TestRemoveFromCart(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "u1", "p1", 1)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, "u1", "p1", 2)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveFromCart(ctx, "u1", "p1"))

	lines, err := svc.ListCart(ctx, "u1")
	require.NoError(t, err)
	require.Empty(t, lines, "remove deletes every matching line")

	require.ErrorIs(t, svc.RemoveFromCart(ctx, "u1", "p1"), errs.ErrCartLineNotFound)
}
