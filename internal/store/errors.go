package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. Entity-specific variants wrap it so callers can match either.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would violate a unique
	// constraint (e.g., a user with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails a database constraint
	// other than uniqueness (foreign key, not null, check). The wrapped error
	// carries the specifics.
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrAuthorNotFound indicates that the requested author does not exist.
	ErrAuthorNotFound = fmt.Errorf("%w: author", ErrNotFound)

	// ErrCategoryNotFound indicates that the requested category does not exist.
	ErrCategoryNotFound = fmt.Errorf("%w: category", ErrNotFound)

	// ErrSubCategoryNotFound indicates that the requested subcategory does not exist.
	ErrSubCategoryNotFound = fmt.Errorf("%w: subcategory", ErrNotFound)

	// ErrCurrencyNotFound indicates that the requested currency does not exist.
	ErrCurrencyNotFound = fmt.Errorf("%w: currency", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrUserExists indicates a user with the given email or username
	// already exists.
	ErrUserExists = fmt.Errorf("%w: email or username", ErrDuplicate)

	// ErrCurrencyExists indicates a currency with the given name already exists.
	ErrCurrencyExists = fmt.Errorf("%w: currency name", ErrDuplicate)
)

// IsNotFound checks whether err is any kind of "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicate checks whether err is any kind of unique-violation error.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
