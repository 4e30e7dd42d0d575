package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuthorLinks groups an author's optional social and web links.
type AuthorLinks struct {
	FacebookURL  string `json:"facebookUrl,omitempty"`
	InstagramURL string `json:"instagramUrl,omitempty"`
	YoutubeURL   string `json:"youtubeUrl,omitempty"`
	WebsiteURL   string `json:"websiteUrl,omitempty"`
}

// Author is a catalog entity describing a content author. Image holds the
// relative path of a stored asset, never the bytes.
type Author struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	SinceYear   int         `json:"sinceYear"`
	Description string      `json:"description"`
	Image       string      `json:"image,omitempty"`
	IsActive    bool        `json:"isActive"`
	Links       AuthorLinks `json:"links"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// NewAuthor creates a validated Author with a fresh ID and timestamps.
func NewAuthor(name string, sinceYear int, description, image string, links AuthorLinks) (*Author, error) {
	now := time.Now().UTC()
	author := &Author{
		ID:          uuid.New(),
		Name:        name,
		SinceYear:   sinceYear,
		Description: description,
		Image:       image,
		IsActive:    true,
		Links:       links,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := author.Validate(); err != nil {
		return nil, err
	}

	return author, nil
}

// Validate checks required Author fields.
func (a *Author) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyID
	}
	if a.Name == "" {
		return ErrEmptyName
	}
	return nil
}
