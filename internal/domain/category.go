package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category is a top-level catalog grouping.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewCategory creates a validated Category with a fresh ID and timestamps.
func NewCategory(name, description, image string) (*Category, error) {
	now := time.Now().UTC()
	category := &Category{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Image:       image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate checks required Category fields.
func (c *Category) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyID
	}
	if c.Name == "" {
		return ErrEmptyName
	}
	return nil
}
