package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/saleworks/catalog-api/internal/domain"
)

// UserPage is one page of users with the totals the listing endpoint
// reports back to the caller.
type UserPage struct {
	Users      []*domain.User
	TotalUsers int64
	TotalPages int
	Page       int
	Limit      int
}

// UserStore defines the interface for user persistence.
type UserStore interface {
	// Create saves a new user. The user must already carry a hashed
	// password. Returns ErrUserExists if the email or username is taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// ExistsByEmailOrUsername reports whether any user already holds the
	// given email or username. Used for the registration pre-check; the
	// unique indexes remain the authoritative guard.
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)

	// List returns one page of users ordered newest first. page and limit
	// are 1-based and capped by the implementation.
	List(ctx context.Context, page, limit int) (*UserPage, error)

	// Delete removes a user by ID.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
