// Package account implements the account store: user registration and
// password authentication.
package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/gennaskitchen/service-api-go/internal/account/entity"
	"github.com/gennaskitchen/service-api-go/internal/errs"
	"github.com/gennaskitchen/service-api-go/pkg/utilities"
)

// UserRepository is the storage contract the service depends on.
// The Postgres implementation lives in the repo subpackage.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

// PasswordHasher defines the minimal hashing interface (abstract so we can
// swap to argon2 later).
type PasswordHasher interface {
	Hash(pw string) (string, error)
	Verify(hash, pw string) bool
}

// BcryptHasher implementation.
type BcryptHasher struct{ Cost int }

func (b BcryptHasher) Hash(pw string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(pw), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (b BcryptHasher) Verify(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

// Service orchestrates registration and authentication flows.
type Service struct {
	repo   UserRepository
	hasher PasswordHasher
}

func NewService(repo UserRepository, hasher PasswordHasher) *Service {
	if hasher == nil {
		hasher = BcryptHasher{Cost: 12}
	}
	return &Service{repo: repo, hasher: hasher}
}

// Register creates a new user. All fields are required. The raw password is
// hashed before storage; duplicate email/username surface as the matching
// sentinel without persisting anything.
func (s *Service) Register(ctx context.Context, firstName, surname, email, username, password string) (*entity.PublicUser, error) {
	firstName = strings.TrimSpace(firstName)
	surname = strings.TrimSpace(surname)
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)
	if firstName == "" || surname == "" || email == "" || username == "" || password == "" {
		return nil, fmt.Errorf("%w: all fields are required", errs.ErrValidation)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &entity.User{
		ID:           utilities.NewKSUID(),
		FirstName:    firstName,
		Surname:      surname,
		Email:        email,
		Username:     username,
		PasswordHash: hash,
	}
	// The users table carries the unique constraints, so a concurrent
	// duplicate registration loses at insert time rather than slipping past
	// a lookup.
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	pub := u.Public()
	return &pub, nil
}

// Authenticate verifies username/password and returns the minimal profile.
// The stored hash never leaves this package.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*entity.Profile, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", errs.ErrValidation)
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !s.hasher.Verify(u.PasswordHash, password) {
		return nil, errs.ErrWrongPassword
	}
	p := u.Profile()
	return &p, nil
}

// UserExists reports whether a user with the given id exists. Used by the
// cart ledger to validate ownership without mutating account state.
func (s *Service) UserExists(ctx context.Context, id string) (bool, error) {
	_, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
