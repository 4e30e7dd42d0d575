package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/saleworks/catalog-api/internal/api/shared"
	"github.com/saleworks/catalog-api/internal/domain"
	"github.com/saleworks/catalog-api/internal/store"
	"github.com/saleworks/catalog-api/internal/upload"
)

// AuthorHandler handles the author CRUD endpoints.
type AuthorHandler struct {
	authorStore store.AuthorStore
	splitter    *upload.Splitter
	sink        *upload.Sink
}

// NewAuthorHandler creates a new AuthorHandler with the given dependencies.
func NewAuthorHandler(
	authorStore store.AuthorStore,
	splitter *upload.Splitter,
	sink *upload.Sink,
) *AuthorHandler {
	return &AuthorHandler{
		authorStore: authorStore,
		splitter:    splitter,
		sink:        sink,
	}
}

// List handles GET /author/.
func (h *AuthorHandler) List(w http.ResponseWriter, r *http.Request) {
	authors, err := h.authorStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Error retrieving authors", err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, authors, "Authors retrieved successfully")
}

// GetByID handles GET /author/{id}.
func (h *AuthorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	author, err := h.authorStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrAuthorNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Author not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Error retrieving author", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, author, "Author retrieved successfully")
}

// Create handles POST /author/ (admin only, multipart).
func (h *AuthorHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, err := h.splitter.Split(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := form.Require(authorRequiredFields...); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	sinceYear, err := strconv.Atoi(form.Fields["sinceYear"])
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Field sinceYear must be a number")
		return
	}

	image, _, err := storeImage(h.sink, form, upload.AuthorImageDir)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	author, err := domain.NewAuthor(
		form.Fields["name"],
		sinceYear,
		form.Fields["description"],
		image,
		authorLinksFromForm(form),
	)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid author data: "+err.Error())
		return
	}

	if err := h.authorStore.Create(r.Context(), author); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), "Error creating author", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusCreated, author, "Author created successfully")
}

// Update handles PUT /author/{id} (admin only, multipart). Only fields
// present in the form overwrite stored values.
func (h *AuthorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	author, err := h.authorStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrAuthorNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Author not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Error updating author", err)
		return
	}

	form, err := h.splitter.Split(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if name, ok := form.Fields["name"]; ok {
		author.Name = name
	}
	if description, ok := form.Fields["description"]; ok {
		author.Description = description
	}
	if raw, ok := form.Fields["sinceYear"]; ok {
		sinceYear, err := strconv.Atoi(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Field sinceYear must be a number")
			return
		}
		author.SinceYear = sinceYear
	}
	if v, ok := form.Fields["facebookUrl"]; ok {
		author.Links.FacebookURL = v
	}
	if v, ok := form.Fields["instagramUrl"]; ok {
		author.Links.InstagramURL = v
	}
	if v, ok := form.Fields["youtubeUrl"]; ok {
		author.Links.YoutubeURL = v
	}
	if v, ok := form.Fields["websiteUrl"]; ok {
		author.Links.WebsiteURL = v
	}

	image, hasFile, err := storeImage(h.sink, form, upload.AuthorImageDir)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	if hasFile {
		author.Image = image
	}

	if err := h.authorStore.Update(r.Context(), author); err != nil {
		if errors.Is(err, store.ErrAuthorNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Author not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), "Error updating author", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, author, "Author updated successfully")
}

// Delete handles DELETE /author/{id} (admin only). The author's stored image
// file is left on disk.
func (h *AuthorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.authorStore.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrAuthorNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Author not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Error deleting author", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, id, "Author deleted successfully")
}

func authorLinksFromForm(form *upload.Form) domain.AuthorLinks {
	return domain.AuthorLinks{
		FacebookURL:  form.Fields["facebookUrl"],
		InstagramURL: form.Fields["instagramUrl"],
		YoutubeURL:   form.Fields["youtubeUrl"],
		WebsiteURL:   form.Fields["websiteUrl"],
	}
}
