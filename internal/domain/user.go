package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role classifies a user's privilege level. It is carried verbatim in token
// claims and checked by exact match, never by truthiness.
type Role string

const (
	// RoleStandard is an ordinary account with no administrative rights.
	RoleStandard Role = "standard"

	// RoleAdmin marks an administrator account.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleStandard || r == RoleAdmin
}

// User represents a registered account.
// HashedPassword is the only credential ever persisted; the plaintext
// Password field is populated transiently during registration and must be
// hashed before the user reaches a store.
type User struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Username       string    `json:"username"`
	CountryCode    string    `json:"countryCode"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	Password       string    `json:"-"`
	HashedPassword string    `json:"-"`
	Image          string    `json:"image,omitempty"`
	IsVerified     int       `json:"isVerified"`
	Active         bool      `json:"active"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewUser creates a User from registration input. It generates the ID, sets
// timestamps and defaults (standard role, active, unverified), and validates
// the result. The plaintext password is kept on the struct for the caller to
// hash before storage.
func NewUser(firstName, lastName, username, countryCode, phone, email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:          uuid.New(),
		FirstName:   firstName,
		LastName:    lastName,
		Username:    username,
		CountryCode: countryCode,
		Phone:       phone,
		Email:       email,
		Password:    password,
		Active:      true,
		Role:        RoleStandard,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// IsAdmin reports whether the user carries the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Validate checks that the User holds consistent data.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyID
	}
	if u.Username == "" {
		return ErrEmptyName
	}
	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}
	if !u.Role.Valid() {
		return ErrInvalidRole
	}

	if u.Password != "" {
		// bcrypt silently truncates beyond 72 bytes
		if len(u.Password) > 72 {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// validEmailFormat performs a minimal structural check: one @ with a dotted
// domain after it. Anything stricter belongs at the API validation layer.
func validEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
