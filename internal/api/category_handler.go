package api

import (
	"errors"
	"net/http"

	"github.com/saleworks/catalog-api/internal/api/shared"
	"github.com/saleworks/catalog-api/internal/domain"
	"github.com/saleworks/catalog-api/internal/store"
	"github.com/saleworks/catalog-api/internal/upload"
)

// CategoryHandler handles the category CRUD endpoints.
type CategoryHandler struct {
	categoryStore store.CategoryStore
	splitter      *upload.Splitter
	sink          *upload.Sink
}

// NewCategoryHandler creates a new CategoryHandler with the given dependencies.
func NewCategoryHandler(
	categoryStore store.CategoryStore,
	splitter *upload.Splitter,
	sink *upload.Sink,
) *CategoryHandler {
	return &CategoryHandler{
		categoryStore: categoryStore,
		splitter:      splitter,
		sink:          sink,
	}
}

// List handles GET /category/.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Error retrieving categories", err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, categories, "Categories retrieved successfully")
}

// GetByID handles GET /category/{id}.
func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	category, err := h.categoryStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Category not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Error retrieving category", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, category, "Category retrieved successfully")
}

// Create handles POST /category/ (admin only, multipart). The image, when
// present, is written to disk before the record linking to it is inserted.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, err := h.splitter.Split(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := form.Require(categoryRequiredFields...); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	image, _, err := storeImage(h.sink, form, upload.CategoryImageDir)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	category, err := domain.NewCategory(form.Fields["name"], form.Fields["description"], image)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid category data: "+err.Error())
		return
	}

	if err := h.categoryStore.Create(r.Context(), category); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), "Error creating category", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusCreated, category, "Category created successfully")
}

// Update handles PUT /category/{id} (admin only, multipart). Absent fields
// keep their stored values; an absent file keeps the existing image. A
// replaced image's previous file stays on disk.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	category, err := h.categoryStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Category not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Error updating category", err)
		return
	}

	form, err := h.splitter.Split(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if name, ok := form.Fields["name"]; ok {
		category.Name = name
	}
	if description, ok := form.Fields["description"]; ok {
		category.Description = description
	}

	image, hasFile, err := storeImage(h.sink, form, upload.CategoryImageDir)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	if hasFile {
		category.Image = image
	}

	if err := h.categoryStore.Update(r.Context(), category); err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Category not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), "Error updating category", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, category, "Category updated successfully")
}

// Delete handles DELETE /category/{id} (admin only).
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.categoryStore.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Category not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Error deleting category", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, id, "Category deleted successfully")
}

// storeImage persists the form's file parts (in practice at most one) to the
// given type-scoped directory and returns the last stored relative path. The
// second return reports whether any file part arrived at all, so update
// paths can distinguish "no new image" from "image cleared".
func storeImage(sink *upload.Sink, form *upload.Form, dir string) (string, bool, error) {
	var path string
	hasFile := false
	for _, file := range form.Files {
		hasFile = true
		filename := upload.UniqueFilename(file.OriginalName)
		stored, err := sink.Store(file.Reader, dir, filename)
		if err != nil {
			return "", hasFile, err
		}
		path = stored
	}
	return path, hasFile, nil
}
