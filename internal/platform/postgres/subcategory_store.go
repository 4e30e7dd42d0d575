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

// SubCategoryStore implements store.SubCategoryStore backed by PostgreSQL.
// The category_id column carries a foreign key to categories; inserting a
// subcategory for a missing category surfaces as store.ErrInvalidEntity.
type SubCategoryStore struct {
	db store.DBTX
}

// NewSubCategoryStore creates a PostgreSQL implementation of
// store.SubCategoryStore.
func NewSubCategoryStore(db store.DBTX) *SubCategoryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &SubCategoryStore{db: db}
}

var _ store.SubCategoryStore = (*SubCategoryStore)(nil)

var subCategoryColumns = []string{
	"id", "name", "description", "image", "category_id",
	"is_active", "created_at", "updated_at",
}

// Create implements store.SubCategoryStore.Create.
func (s *SubCategoryStore) Create(ctx context.Context, sub *domain.SubCategory) error {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	sub.CreatedAt = now
	sub.UpdatedAt = now

	query, args, err := psql.Insert("subcategories").
		Columns(subCategoryColumns...).
		Values(sub.ID, sub.Name, sub.Description, sub.Image, sub.CategoryID,
			sub.IsActive, sub.CreatedAt, sub.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert subcategory query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to insert subcategory", "subcategory_id", sub.ID, "error", err)
		return MapError(err)
	}
	return nil
}

// List implements store.SubCategoryStore.List.
func (s *SubCategoryStore) List(ctx context.Context) ([]*domain.SubCategory, error) {
	query, args, err := psql.Select(subCategoryColumns...).
		From("subcategories").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select subcategories query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var subs []*domain.SubCategory
	for rows.Next() {
		sub, err := scanSubCategory(rows)
		if err != nil {
			return nil, MapError(err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return subs, nil
}

// GetByID implements store.SubCategoryStore.GetByID.
func (s *SubCategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.SubCategory, error) {
	query, args, err := psql.Select(subCategoryColumns...).
		From("subcategories").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select subcategory query: %w", err)
	}

	sub, err := scanSubCategory(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if store.IsNotFound(MapError(err)) {
			return nil, store.ErrSubCategoryNotFound
		}
		return nil, MapError(err)
	}
	return sub, nil
}

// Update implements store.SubCategoryStore.Update.
func (s *SubCategoryStore) Update(ctx context.Context, sub *domain.SubCategory) error {
	log := logger.FromContext(ctx)

	sub.UpdatedAt = time.Now().UTC()

	query, args, err := psql.Update("subcategories").
		Set("name", sub.Name).
		Set("description", sub.Description).
		Set("image", sub.Image).
		Set("category_id", sub.CategoryID).
		Set("is_active", sub.IsActive).
		Set("updated_at", sub.UpdatedAt).
		Where(sq.Eq{"id": sub.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update subcategory query: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to update subcategory", "subcategory_id", sub.ID, "error", err)
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.ErrSubCategoryNotFound
	}
	return nil
}

// Delete implements store.SubCategoryStore.Delete.
func (s *SubCategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Delete("subcategories").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete subcategory query: %w", err)
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
		return store.ErrSubCategoryNotFound
	}
	return nil
}

func scanSubCategory(row rowScanner) (*domain.SubCategory, error) {
	var sub domain.SubCategory
	err := row.Scan(
		&sub.ID,
		&sub.Name,
		&sub.Description,
		&sub.Image,
		&sub.CategoryID,
		&sub.IsActive,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}
