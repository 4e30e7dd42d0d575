package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saleworks/catalog-api/internal/domain"
)

func newSubCategoryRouter(t *testing.T, subStore *stubSubCategoryStore) chi.Router {
	t.Helper()

	splitter, sink := testSplitterAndSink(t)
	handler := NewSubCategoryHandler(subStore, splitter, sink)

	r := chi.NewRouter()
	r.Get("/category/subcategory/", handler.List)
	r.Get("/category/subcategory/{id}", handler.GetByID)
	r.Post("/category/subcategory/", handler.Create)
	r.Put("/category/subcategory/{id}", handler.Update)
	r.Delete("/category/subcategory/{id}", handler.Delete)
	return r
}

func TestSubCategoryCreate(t *testing.T) {
	t.Parallel()

	t.Run("creates subcategory under existing category", func(t *testing.T) {
		t.Parallel()
		subStore := newStubSubCategoryStore()
		categoryID := uuid.New()
		subStore.knownCategories[categoryID] = true
		router := newSubCategoryRouter(t, subStore)

		body, contentType := multipartBody(t,
			[][2]string{{"name", "Fiction"}, {"category", categoryID.String()}},
			nil,
		)
		req := httptest.NewRequest("POST", "/category/subcategory/", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusCreated, rr.Code)

		require.Len(t, subStore.subs, 1)
		for _, sub := range subStore.subs {
			assert.Equal(t, "Fiction", sub.Name)
			assert.Equal(t, categoryID, sub.CategoryID)
		}
	})

	t.Run("missing category field yields 400", func(t *testing.T) {
		t.Parallel()
		router := newSubCategoryRouter(t, newStubSubCategoryStore())

		body, contentType := multipartBody(t, [][2]string{{"name", "Fiction"}}, nil)
		req := httptest.NewRequest("POST", "/category/subcategory/", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeEnvelope(t, rr)["message"], "category")
	})

	t.Run("malformed category id yields 400", func(t *testing.T) {
		t.Parallel()
		router := newSubCategoryRouter(t, newStubSubCategoryStore())

		body, contentType := multipartBody(t,
			[][2]string{{"name", "Fiction"}, {"category", "not-a-uuid"}},
			nil,
		)
		req := httptest.NewRequest("POST", "/category/subcategory/", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("reference to missing category yields 400", func(t *testing.T) {
		t.Parallel()
		subStore := newStubSubCategoryStore()
		router := newSubCategoryRouter(t, subStore)

		body, contentType := multipartBody(t,
			[][2]string{{"name", "Fiction"}, {"category", uuid.New().String()}},
			nil,
		)
		req := httptest.NewRequest("POST", "/category/subcategory/", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Empty(t, subStore.subs)
	})
}

func TestSubCategoryUpdateDelete(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) (*stubSubCategoryStore, chi.Router, *domain.SubCategory) {
		subStore := newStubSubCategoryStore()
		categoryID := uuid.New()
		subStore.knownCategories[categoryID] = true

		sub, err := domain.NewSubCategory("Fiction", "Made-up things", "", categoryID)
		require.NoError(t, err)
		subStore.subs[sub.ID] = sub
		return subStore, newSubCategoryRouter(t, subStore), sub
	}

	t.Run("update changes only provided fields", func(t *testing.T) {
		t.Parallel()
		subStore, router, sub := seed(t)

		body, contentType := multipartBody(t, [][2]string{{"description", "Better things"}}, nil)
		req := httptest.NewRequest("PUT", "/category/subcategory/"+sub.ID.String(), body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		updated := subStore.subs[sub.ID]
		assert.Equal(t, "Fiction", updated.Name)
		assert.Equal(t, "Better things", updated.Description)
	})

	t.Run("delete removes subcategory", func(t *testing.T) {
		t.Parallel()
		subStore, router, sub := seed(t)

		req := httptest.NewRequest("DELETE", "/category/subcategory/"+sub.ID.String(), nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, subStore.subs)
	})

	t.Run("unknown id yields 404", func(t *testing.T) {
		t.Parallel()
		_, router, _ := seed(t)

		req := httptest.NewRequest("GET", "/category/subcategory/"+uuid.New().String(), nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
