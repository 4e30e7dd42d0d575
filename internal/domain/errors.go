package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyID is returned when an entity ID is missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrEmptyName is returned when a required name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidRole is returned when a role value is not a known role.
	ErrInvalidRole = errors.New("invalid role")

	// ErrEmptyPassword is returned when neither a plaintext password nor a
	// hashed password is present on a user.
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrPasswordTooLong is returned when a plaintext password exceeds
	// bcrypt's 72 byte input limit.
	ErrPasswordTooLong = errors.New("password must be at most 72 characters long")

	// ErrEmptyCategoryID is returned when a subcategory is missing its
	// parent category reference.
	ErrEmptyCategoryID = errors.New("category reference cannot be empty")
)
