package api

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/saleworks/catalog-api/internal/api/shared"
	"github.com/saleworks/catalog-api/internal/domain"
	"github.com/saleworks/catalog-api/internal/store"
	"github.com/saleworks/catalog-api/internal/upload"
)

// SubCategoryHandler handles the subcategory CRUD endpoints.
type SubCategoryHandler struct {
	subCategoryStore store.SubCategoryStore
	splitter         *upload.Splitter
	sink             *upload.Sink
}

// NewSubCategoryHandler creates a new SubCategoryHandler with the given
// dependencies.
func NewSubCategoryHandler(
	subCategoryStore store.SubCategoryStore,
	splitter *upload.Splitter,
	sink *upload.Sink,
) *SubCategoryHandler {
	return &SubCategoryHandler{
		subCategoryStore: subCategoryStore,
		splitter:         splitter,
		sink:             sink,
	}
}

// List handles GET /category/subcategory/.
func (h *SubCategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	subCategories, err := h.subCategoryStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Error retrieving subcategories", err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, subCategories, "Subcategories retrieved successfully")
}

// GetByID handles GET /category/subcategory/{id}.
func (h *SubCategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	subCategory, err := h.subCategoryStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrSubCategoryNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Subcategory not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Error retrieving subcategory", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, subCategory, "Subcategory retrieved successfully")
}

// Create handles POST /category/subcategory/ (admin only, multipart). The
// category field carries the parent category's ID; a reference to a missing
// category surfaces as a 400 via the foreign key mapping.
func (h *SubCategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, err := h.splitter.Split(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := form.Require(subCategoryRequiredFields...); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	categoryID, err := uuid.Parse(form.Fields["category"])
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Field category must be a valid ID")
		return
	}

	image, _, err := storeImage(h.sink, form, upload.SubCategoryImageDir)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	subCategory, err := domain.NewSubCategory(form.Fields["name"], form.Fields["description"], image, categoryID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid subcategory data: "+err.Error())
		return
	}

	if err := h.subCategoryStore.Create(r.Context(), subCategory); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithData(w, r, http.StatusCreated, subCategory, "Subcategory created successfully")
}

// Update handles PUT /category/subcategory/{id} (admin only, multipart).
func (h *SubCategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	subCategory, err := h.subCategoryStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrSubCategoryNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Subcategory not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Error updating subcategory", err)
		return
	}

	form, err := h.splitter.Split(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if name, ok := form.Fields["name"]; ok {
		subCategory.Name = name
	}
	if description, ok := form.Fields["description"]; ok {
		subCategory.Description = description
	}
	if raw, ok := form.Fields["category"]; ok {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Field category must be a valid ID")
			return
		}
		subCategory.CategoryID = categoryID
	}

	image, hasFile, err := storeImage(h.sink, form, upload.SubCategoryImageDir)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	if hasFile {
		subCategory.Image = image
	}

	if err := h.subCategoryStore.Update(r.Context(), subCategory); err != nil {
		if errors.Is(err, store.ErrSubCategoryNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Subcategory not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, subCategory, "Subcategory updated successfully")
}

// Delete handles DELETE /category/subcategory/{id} (admin only).
func (h *SubCategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.subCategoryStore.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrSubCategoryNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Subcategory not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Error deleting subcategory", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, id, "Subcategory deleted successfully")
}
