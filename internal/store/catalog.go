package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/saleworks/catalog-api/internal/domain"
)

// AuthorStore defines the interface for author persistence.
type AuthorStore interface {
	// Create saves a new author.
	Create(ctx context.Context, author *domain.Author) error

	// List returns all authors.
	List(ctx context.Context) ([]*domain.Author, error)

	// GetByID retrieves an author by ID.
	// Returns ErrAuthorNotFound if the author does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Author, error)

	// Update overwrites an existing author's mutable fields.
	// Returns ErrAuthorNotFound if the author does not exist.
	Update(ctx context.Context, author *domain.Author) error

	// Delete removes an author by ID.
	// Returns ErrAuthorNotFound if the author does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryStore defines the interface for category persistence.
type CategoryStore interface {
	Create(ctx context.Context, category *domain.Category) error
	List(ctx context.Context) ([]*domain.Category, error)

	// GetByID returns ErrCategoryNotFound if the category does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)

	// Update returns ErrCategoryNotFound if the category does not exist.
	Update(ctx context.Context, category *domain.Category) error

	// Delete returns ErrCategoryNotFound if the category does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// SubCategoryStore defines the interface for subcategory persistence.
type SubCategoryStore interface {
	// Create saves a new subcategory. Returns ErrInvalidEntity if the
	// referenced category does not exist.
	Create(ctx context.Context, sub *domain.SubCategory) error

	List(ctx context.Context) ([]*domain.SubCategory, error)

	// GetByID returns ErrSubCategoryNotFound if the subcategory does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SubCategory, error)

	// Update returns ErrSubCategoryNotFound if the subcategory does not exist.
	Update(ctx context.Context, sub *domain.SubCategory) error

	// Delete returns ErrSubCategoryNotFound if the subcategory does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CurrencyStore defines the interface for currency persistence.
type CurrencyStore interface {
	// Create saves a new currency. Returns ErrCurrencyExists if the name
	// is already taken.
	Create(ctx context.Context, currency *domain.Currency) error

	List(ctx context.Context) ([]*domain.Currency, error)

	// GetByName returns ErrCurrencyNotFound if no currency has that name.
	GetByName(ctx context.Context, name string) (*domain.Currency, error)
}
