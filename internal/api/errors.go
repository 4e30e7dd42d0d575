package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/saleworks/catalog-api/internal/service/auth"
	"github.com/saleworks/catalog-api/internal/store"
	"github.com/saleworks/catalog-api/internal/upload"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes so clients
// see consistent statuses without any internal error detail leaking.
func MapErrorToStatusCode(err error) int {
	var missingFields *upload.MissingFieldsError

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Validation errors
	case errors.As(err, &missingFields),
		errors.Is(err, upload.ErrInvalidFilePart),
		errors.Is(err, upload.ErrNotMultipart),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	case errors.Is(err, upload.ErrTooLarge):
		return http.StatusRequestEntityTooLarge

	// Not found errors
	case store.IsNotFound(err):
		return http.StatusNotFound

	// Conflict errors
	case store.IsDuplicate(err):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a stable, user-facing message for a known
// error, and a generic one otherwise.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var missingFields *upload.MissingFieldsError

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.As(err, &missingFields):
		return "Missing required field(s): " + strings.Join(missingFields.Fields, ", ")

	case errors.Is(err, upload.ErrInvalidFilePart):
		return "Uploaded file is invalid or missing"

	case errors.Is(err, upload.ErrNotMultipart):
		return "Request must be multipart/form-data"

	case errors.Is(err, upload.ErrTooLarge):
		return "Uploaded file is too large"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrAuthorNotFound):
		return "Author not found"

	case errors.Is(err, store.ErrCategoryNotFound):
		return "Category not found"

	case errors.Is(err, store.ErrSubCategoryNotFound):
		return "SubCategory not found"

	case errors.Is(err, store.ErrCurrencyNotFound):
		return "Currency not found"

	case errors.Is(err, store.ErrUserExists):
		return "User already exists"

	case errors.Is(err, store.ErrCurrencyExists):
		return "Currency already exists"

	case store.IsDuplicate(err):
		return "Resource already exists"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}
