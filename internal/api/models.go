package api

// LoginRequest defines the JSON payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// CreateCurrencyRequest defines the JSON payload for currency creation.
type CreateCurrencyRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

// Required multipart fields per entity. Registration fields mirror the user
// schema; catalog entities require only their non-defaultable columns.
var (
	registerRequiredFields = []string{
		"firstName", "lastName", "username", "countryCode", "phone", "email", "password",
	}
	authorRequiredFields      = []string{"name", "sinceYear", "description"}
	categoryRequiredFields    = []string{"name"}
	subCategoryRequiredFields = []string{"name", "category"}
)
