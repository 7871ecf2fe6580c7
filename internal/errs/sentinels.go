// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

var (
	// ErrValidation indicates a missing or malformed required field.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateEmail indicates another user already owns the email.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrDuplicateUsername indicates another user already owns the username.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrDuplicateProduct indicates a product with the same name exists.
	ErrDuplicateProduct = errors.New("product already exists")

	// ErrUserNotFound indicates the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrProductNotFound indicates the referenced product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrCartLineNotFound indicates no cart line matches the (user, product) pair.
	ErrCartLineNotFound = errors.New("cart line not found")

	// ErrWrongPassword indicates the password comparison failed.
	ErrWrongPassword = errors.New("wrong password")

	// ErrStorageUnavailable indicates the backing store could not be reached.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
