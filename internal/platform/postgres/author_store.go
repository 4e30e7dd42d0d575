package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/saleworks/catalog-api/internal/domain"
	"github.com/saleworks/catalog-api/internal/platform/logger"
	"github.com/saleworks/catalog-api/internal/store"
)

// psql builds queries with PostgreSQL-style $n placeholders. Shared by all
// catalog stores in this package.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// AuthorStore implements store.AuthorStore backed by PostgreSQL.
// The links group is persisted as a JSONB column.
type AuthorStore struct {
	db store.DBTX
}

// NewAuthorStore creates a PostgreSQL implementation of store.AuthorStore.
func NewAuthorStore(db store.DBTX) *AuthorStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &AuthorStore{db: db}
}

var _ store.AuthorStore = (*AuthorStore)(nil)

var authorColumns = []string{
	"id", "name", "since_year", "description", "image",
	"is_active", "links", "created_at", "updated_at",
}

// Create implements store.AuthorStore.Create.
func (s *AuthorStore) Create(ctx context.Context, author *domain.Author) error {
	log := logger.FromContext(ctx)

	links, err := json.Marshal(author.Links)
	if err != nil {
		return fmt.Errorf("marshal author links: %w", err)
	}

	now := time.Now().UTC()
	author.CreatedAt = now
	author.UpdatedAt = now

	query, args, err := psql.Insert("authors").
		Columns(authorColumns...).
		Values(author.ID, author.Name, author.SinceYear, author.Description,
			author.Image, author.IsActive, links, author.CreatedAt, author.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert author query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to insert author", "author_id", author.ID, "error", err)
		return MapError(err)
	}
	return nil
}

// List implements store.AuthorStore.List.
func (s *AuthorStore) List(ctx context.Context) ([]*domain.Author, error) {
	query, args, err := psql.Select(authorColumns...).
		From("authors").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select authors query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var authors []*domain.Author
	for rows.Next() {
		author, err := scanAuthor(rows)
		if err != nil {
			return nil, MapError(err)
		}
		authors = append(authors, author)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return authors, nil
}

// GetByID implements store.AuthorStore.GetByID.
func (s *AuthorStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Author, error) {
	query, args, err := psql.Select(authorColumns...).
		From("authors").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select author query: %w", err)
	}

	author, err := scanAuthor(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if store.IsNotFound(MapError(err)) {
			return nil, store.ErrAuthorNotFound
		}
		return nil, MapError(err)
	}
	return author, nil
}

// Update implements store.AuthorStore.Update. All mutable columns are
// written; the caller is expected to have loaded the author first and
// applied only the fields the request carried.
func (s *AuthorStore) Update(ctx context.Context, author *domain.Author) error {
	log := logger.FromContext(ctx)

	links, err := json.Marshal(author.Links)
	if err != nil {
		return fmt.Errorf("marshal author links: %w", err)
	}

	author.UpdatedAt = time.Now().UTC()

	query, args, err := psql.Update("authors").
		Set("name", author.Name).
		Set("since_year", author.SinceYear).
		Set("description", author.Description).
		Set("image", author.Image).
		Set("is_active", author.IsActive).
		Set("links", links).
		Set("updated_at", author.UpdatedAt).
		Where(sq.Eq{"id": author.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update author query: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to update author", "author_id", author.ID, "error", err)
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.ErrAuthorNotFound
	}
	return nil
}

// Delete implements store.AuthorStore.Delete.
func (s *AuthorStore) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Delete("authors").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete author query: %w", err)
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
		return store.ErrAuthorNotFound
	}
	return nil
}

func scanAuthor(row rowScanner) (*domain.Author, error) {
	var (
		author domain.Author
		links  []byte
	)
	err := row.Scan(
		&author.ID,
		&author.Name,
		&author.SinceYear,
		&author.Description,
		&author.Image,
		&author.IsActive,
		&links,
		&author.CreatedAt,
		&author.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(links) > 0 {
		if err := json.Unmarshal(links, &author.Links); err != nil {
			return nil, fmt.Errorf("unmarshal author links: %w", err)
		}
	}
	return &author, nil
}
