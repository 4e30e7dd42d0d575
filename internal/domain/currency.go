package domain

import (
	"time"

	"github.com/google/uuid"
)

// Currency is a named currency record. Name is unique across the catalog;
// the store's unique index is the sole guard against concurrent duplicates.
type Currency struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewCurrency creates a validated Currency with a fresh ID and timestamps.
func NewCurrency(name string) (*Currency, error) {
	now := time.Now().UTC()
	currency := &Currency{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := currency.Validate(); err != nil {
		return nil, err
	}

	return currency, nil
}

// Validate checks required Currency fields.
func (c *Currency) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyID
	}
	if c.Name == "" {
		return ErrEmptyName
	}
	return nil
}
