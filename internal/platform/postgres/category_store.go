package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/saleworks/catalog-api/internal/domain"
	"github.com/saleworks/catalog-api/internal/platform/logger"
	"github.com/saleworks/catalog-api/internal/store"
)

// CategoryStore implements store.CategoryStore backed by PostgreSQL.
type CategoryStore struct {
	db store.DBTX
}

// NewCategoryStore creates a PostgreSQL implementation of store.CategoryStore.
func NewCategoryStore(db store.DBTX) *CategoryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &CategoryStore{db: db}
}

var _ store.CategoryStore = (*CategoryStore)(nil)

var categoryColumns = []string{
	"id", "name", "description", "image", "created_at", "updated_at",
}

// Create implements store.CategoryStore.Create.
func (s *CategoryStore) Create(ctx context.Context, category *domain.Category) error {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	category.CreatedAt = now
	category.UpdatedAt = now

	query, args, err := psql.Insert("categories").
		Columns(categoryColumns...).
		Values(category.ID, category.Name, category.Description, category.Image,
			category.CreatedAt, category.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert category query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to insert category", "category_id", category.ID, "error", err)
		return MapError(err)
	}
	return nil
}

// List implements store.CategoryStore.List.
func (s *CategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	query, args, err := psql.Select(categoryColumns...).
		From("categories").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select categories query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var categories []*domain.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, MapError(err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return categories, nil
}

// GetByID implements store.CategoryStore.GetByID.
func (s *CategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	query, args, err := psql.Select(categoryColumns...).
		From("categories").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select category query: %w", err)
	}

	category, err := scanCategory(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if store.IsNotFound(MapError(err)) {
			return nil, store.ErrCategoryNotFound
		}
		return nil, MapError(err)
	}
	return category, nil
}

// Update implements store.CategoryStore.Update.
func (s *CategoryStore) Update(ctx context.Context, category *domain.Category) error {
	log := logger.FromContext(ctx)

	category.UpdatedAt = time.Now().UTC()

	query, args, err := psql.Update("categories").
		Set("name", category.Name).
		Set("description", category.Description).
		Set("image", category.Image).
		Set("updated_at", category.UpdatedAt).
		Where(sq.Eq{"id": category.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update category query: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to update category", "category_id", category.ID, "error", err)
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.ErrCategoryNotFound
	}
	return nil
}

// Delete implements store.CategoryStore.Delete.
func (s *CategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Delete("categories").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete category query: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.ErrCategoryNotFound
	}
	return nil
}

func scanCategory(row rowScanner) (*domain.Category, error) {
	var category domain.Category
	err := row.Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.Image,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &category, nil
}
