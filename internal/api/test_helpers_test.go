package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/saleworks/catalog-api/internal/domain"
	"github.com/saleworks/catalog-api/internal/service/auth"
	"github.com/saleworks/catalog-api/internal/store"
	"github.com/saleworks/catalog-api/internal/upload"
)

// multipartBody assembles a multipart/form-data body from ordered field
// pairs and {field, filename, content} file triples.
func multipartBody(t *testing.T, fields [][2]string, files [][3]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, f := range fields {
		require.NoError(t, writer.WriteField(f[0], f[1]))
	}
	for _, f := range files {
		part, err := writer.CreateFormFile(f[0], f[1])
		require.NoError(t, err)
		_, err = part.Write([]byte(f[2]))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

// decodeEnvelope parses a recorded JSON response body.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	return envelope
}

func testSplitterAndSink(t *testing.T) (*upload.Splitter, *upload.Sink) {
	t.Helper()
	return upload.NewSplitter(upload.DefaultMaxBytes), upload.NewSink(t.TempDir())
}

// fixedJWTService mints the same token for everyone.
type fixedJWTService struct {
	token string
}

func (s *fixedJWTService) GenerateToken(_ context.Context, userID uuid.UUID, role domain.Role) (string, error) {
	return s.token, nil
}

func (s *fixedJWTService) ValidateToken(_ context.Context, token string) (*auth.Claims, error) {
	if token != s.token {
		return nil, auth.ErrInvalidToken
	}
	return &auth.Claims{UserID: uuid.New(), Role: domain.RoleStandard}, nil
}

// stubUserStore is an in-memory store.UserStore for handler tests.
type stubUserStore struct {
	users     map[uuid.UUID]*domain.User
	byEmail   map[string]*domain.User
	exists    bool
	createErr error
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{
		users:   make(map[uuid.UUID]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (s *stubUserStore) Create(_ context.Context, user *domain.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.users[user.ID] = user
	s.byEmail[user.Email] = user
	return nil
}

func (s *stubUserStore) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

func (s *stubUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := s.byEmail[email]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

func (s *stubUserStore) ExistsByEmailOrUsername(_ context.Context, _, _ string) (bool, error) {
	return s.exists, nil
}

func (s *stubUserStore) List(_ context.Context, page, limit int) (*store.UserPage, error) {
	users := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	return &store.UserPage{
		Users:      users,
		TotalUsers: int64(len(users)),
		TotalPages: 1,
		Page:       page,
		Limit:      limit,
	}, nil
}

func (s *stubUserStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

// stubCategoryStore is an in-memory store.CategoryStore for handler tests.
type stubCategoryStore struct {
	categories map[uuid.UUID]*domain.Category
}

func newStubCategoryStore() *stubCategoryStore {
	return &stubCategoryStore{categories: make(map[uuid.UUID]*domain.Category)}
}

func (s *stubCategoryStore) Create(_ context.Context, category *domain.Category) error {
	s.categories[category.ID] = category
	return nil
}

func (s *stubCategoryStore) List(_ context.Context) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	return out, nil
}

func (s *stubCategoryStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Category, error) {
	category, ok := s.categories[id]
	if !ok {
		return nil, store.ErrCategoryNotFound
	}
	return category, nil
}

func (s *stubCategoryStore) Update(_ context.Context, category *domain.Category) error {
	if _, ok := s.categories[category.ID]; !ok {
		return store.ErrCategoryNotFound
	}
	s.categories[category.ID] = category
	return nil
}

func (s *stubCategoryStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.categories[id]; !ok {
		return store.ErrCategoryNotFound
	}
	delete(s.categories, id)
	return nil
}

// stubSubCategoryStore is an in-memory store.SubCategoryStore for handler
// tests. knownCategories guards the foreign key the way the database would.
type stubSubCategoryStore struct {
	subs            map[uuid.UUID]*domain.SubCategory
	knownCategories map[uuid.UUID]bool
}

func newStubSubCategoryStore() *stubSubCategoryStore {
	return &stubSubCategoryStore{
		subs:            make(map[uuid.UUID]*domain.SubCategory),
		knownCategories: make(map[uuid.UUID]bool),
	}
}

func (s *stubSubCategoryStore) Create(_ context.Context, sub *domain.SubCategory) error {
	if !s.knownCategories[sub.CategoryID] {
		return store.ErrInvalidEntity
	}
	s.subs[sub.ID] = sub
	return nil
}

func (s *stubSubCategoryStore) List(_ context.Context) ([]*domain.SubCategory, error) {
	out := make([]*domain.SubCategory, 0, len(s.subs))
	for _, sub := range s.subs {
		out = append(out, sub)
	}
	return out, nil
}

func (s *stubSubCategoryStore) GetByID(_ context.Context, id uuid.UUID) (*domain.SubCategory, error) {
	sub, ok := s.subs[id]
	if !ok {
		return nil, store.ErrSubCategoryNotFound
	}
	return sub, nil
}

func (s *stubSubCategoryStore) Update(_ context.Context, sub *domain.SubCategory) error {
	if _, ok := s.subs[sub.ID]; !ok {
		return store.ErrSubCategoryNotFound
	}
	s.subs[sub.ID] = sub
	return nil
}

func (s *stubSubCategoryStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.subs[id]; !ok {
		return store.ErrSubCategoryNotFound
	}
	delete(s.subs, id)
	return nil
}

// stubCurrencyStore is an in-memory store.CurrencyStore for handler tests.
type stubCurrencyStore struct {
	currencies map[string]*domain.Currency
}

func newStubCurrencyStore() *stubCurrencyStore {
	return &stubCurrencyStore{currencies: make(map[string]*domain.Currency)}
}

func (s *stubCurrencyStore) Create(_ context.Context, currency *domain.Currency) error {
	if _, ok := s.currencies[currency.Name]; ok {
		return store.ErrCurrencyExists
	}
	s.currencies[currency.Name] = currency
	return nil
}

func (s *stubCurrencyStore) List(_ context.Context) ([]*domain.Currency, error) {
	out := make([]*domain.Currency, 0, len(s.currencies))
	for _, c := range s.currencies {
		out = append(out, c)
	}
	return out, nil
}

func (s *stubCurrencyStore) GetByName(_ context.Context, name string) (*domain.Currency, error) {
	currency, ok := s.currencies[name]
	if !ok {
		return nil, store.ErrCurrencyNotFound
	}
	return currency, nil
}
