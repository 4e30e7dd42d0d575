package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubCategory is a catalog grouping nested under a Category. CategoryID is
// required; the referenced category must exist at insert time (enforced by
// the store's foreign key).
type SubCategory struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	CategoryID  uuid.UUID `json:"category"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewSubCategory creates a validated SubCategory with a fresh ID and
// timestamps.
func NewSubCategory(name, description, image string, categoryID uuid.UUID) (*SubCategory, error) {
	now := time.Now().UTC()
	sub := &SubCategory{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Image:       image,
		CategoryID:  categoryID,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := sub.Validate(); err != nil {
		return nil, err
	}

	return sub, nil
}

// Validate checks required SubCategory fields.
func (s *SubCategory) Validate() error {
	if s.ID == uuid.Nil {
		return ErrEmptyID
	}
	if s.Name == "" {
		return ErrEmptyName
	}
	if s.CategoryID == uuid.Nil {
		return ErrEmptyCategoryID
	}
	return nil
}
