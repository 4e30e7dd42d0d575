package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/saleworks/catalog-api/internal/domain"
	"github.com/saleworks/catalog-api/internal/platform/logger"
	"github.com/saleworks/catalog-api/internal/store"
)

// CurrencyStore implements store.CurrencyStore backed by PostgreSQL.
// Currency names carry a unique index; a duplicate insert maps to
// store.ErrCurrencyExists.
type CurrencyStore struct {
	db store.DBTX
}

// NewCurrencyStore creates a PostgreSQL implementation of store.CurrencyStore.
func NewCurrencyStore(db store.DBTX) *CurrencyStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &CurrencyStore{db: db}
}

var _ store.CurrencyStore = (*CurrencyStore)(nil)

var currencyColumns = []string{"id", "name", "created_at", "updated_at"}

// Create implements store.CurrencyStore.Create.
func (s *CurrencyStore) Create(ctx context.Context, currency *domain.Currency) error {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	currency.CreatedAt = now
	currency.UpdatedAt = now

	query, args, err := psql.Insert("currencies").
		Columns(currencyColumns...).
		Values(currency.ID, currency.Name, currency.CreatedAt, currency.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert currency query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrCurrencyExists, err)
		}
		log.Error("failed to insert currency", "currency_id", currency.ID, "error", err)
		return MapError(err)
	}
	return nil
}

// List implements store.CurrencyStore.List.
func (s *CurrencyStore) List(ctx context.Context) ([]*domain.Currency, error) {
	query, args, err := psql.Select(currencyColumns...).
		From("currencies").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select currencies query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var currencies []*domain.Currency
	for rows.Next() {
		var currency domain.Currency
		if err := rows.Scan(&currency.ID, &currency.Name, &currency.CreatedAt, &currency.UpdatedAt); err != nil {
			return nil, MapError(err)
		}
		currencies = append(currencies, &currency)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return currencies, nil
}

// GetByName implements store.CurrencyStore.GetByName.
func (s *CurrencyStore) GetByName(ctx context.Context, name string) (*domain.Currency, error) {
	query, args, err := psql.Select(currencyColumns...).
		From("currencies").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select currency query: %w", err)
	}

	var currency domain.Currency
	err = s.db.QueryRowContext(ctx, query, args...).
		Scan(&currency.ID, &currency.Name, &currency.CreatedAt, &currency.UpdatedAt)
	if err != nil {
		if store.IsNotFound(MapError(err)) {
			return nil, store.ErrCurrencyNotFound
		}
		return nil, MapError(err)
	}
	return &currency, nil
}
