package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/saleworks/catalog-api/internal/api/middleware"
	"github.com/saleworks/catalog-api/internal/api/shared"
	"github.com/saleworks/catalog-api/internal/domain"
	"github.com/saleworks/catalog-api/internal/platform/logger"
	"github.com/saleworks/catalog-api/internal/service/auth"
	"github.com/saleworks/catalog-api/internal/store"
	"github.com/saleworks/catalog-api/internal/upload"
)

// UserHandler handles user account API requests: registration, login, and
// the user management endpoints.
type UserHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	splitter         *upload.Splitter
	sink             *upload.Sink
	validator        *validator.Validate
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordHasher auth.PasswordHasher,
	passwordVerifier auth.PasswordVerifier,
	splitter *upload.Splitter,
	sink *upload.Sink,
) *UserHandler {
	return &UserHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordHasher:   passwordHasher,
		passwordVerifier: passwordVerifier,
		splitter:         splitter,
		sink:             sink,
		validator:        validator.New(),
	}
}

// Register handles POST /users/register. The body is multipart: scalar
// fields carry the account data, an optional image part carries the avatar.
// The image is persisted only after the required fields validate and the
// uniqueness pre-check passes.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	form, err := h.splitter.Split(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := form.Require(registerRequiredFields...); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	exists, err := h.userStore.ExistsByEmailOrUsername(r.Context(), form.Fields["email"], form.Fields["username"])
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to register user", err)
		return
	}
	if exists {
		shared.RespondWithError(w, r, http.StatusConflict, "User already exists")
		return
	}

	user, err := domain.NewUser(
		form.Fields["firstName"],
		form.Fields["lastName"],
		form.Fields["username"],
		form.Fields["countryCode"],
		form.Fields["phone"],
		form.Fields["email"],
		form.Fields["password"],
	)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user data: "+err.Error())
		return
	}

	// Write-then-link: the asset reaches disk before the record referencing
	// it is inserted.
	for _, file := range form.Files {
		filename := upload.UniqueFilename(file.OriginalName)
		path, err := h.sink.Store(file.Reader, upload.UserImageDir, filename)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
			return
		}
		user.Image = path
	}

	hashed, err := h.passwordHasher.Hash(user.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to register user", err)
		return
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrUserExists) {
			shared.RespondWithError(w, r, http.StatusConflict, "User already exists")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to register user", err)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID, user.Role)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to generate authentication token", err)
		return
	}

	log.Info("user registered", "user_id", user.ID)
	shared.RespondWithJSON(w, r, http.StatusCreated, shared.Envelope{
		Data:    user,
		Message: "User registered successfully",
		Token:   token,
	})
}

// Login handles POST /users/login. Unknown email and wrong password produce
// the same response so neither field is confirmed to an attacker.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to authenticate user", err)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID, user.Role)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to generate authentication token", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.Envelope{
		Data:    user,
		Message: "Login successful",
		Token:   token,
	})
}

// List handles GET /users/ (admin only) with page/limit query parameters.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 10)

	result, err := h.userStore.List(r.Context(), page, limit)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to fetch users", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.Envelope{
		Data:    result.Users,
		Message: "Users fetched successfully",
		Pagination: &shared.Pagination{
			TotalUsers:  result.TotalUsers,
			TotalPages:  result.TotalPages,
			CurrentPage: result.Page,
			Limit:       result.Limit,
		},
	})
}

// GetByID handles GET /users/{id}.
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	h.respondWithUser(w, r, id)
}

// Me handles GET /users/me, resolving the subject from the token claims.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
		return
	}
	h.respondWithUser(w, r, userID)
}

func (h *UserHandler) respondWithUser(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to fetch user", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, user, "User fetched successfully")
}

// Update handles PUT /users/{id}. The operation is declared but
// intentionally unimplemented; the intended field set is undecided.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotImplemented, "User update is not implemented")
}

// Delete handles DELETE /users/{id} (admin only). The deleted id is echoed
// back as the data payload.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.userStore.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to delete user", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, id, "User deleted successfully")
}

// parseIDParam pulls the {id} route parameter as a UUID, answering 400 and
// returning false if it is malformed.
func parseIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}
