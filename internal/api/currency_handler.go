package api

import (
	"errors"
	"net/http"

	"github.com/saleworks/catalog-api/internal/api/shared"
	"github.com/saleworks/catalog-api/internal/domain"
	"github.com/saleworks/catalog-api/internal/store"
)

// CurrencyHandler handles the currency endpoints. Currencies are plain JSON,
// no uploads attach to them.
type CurrencyHandler struct {
	currencyStore store.CurrencyStore
}

// NewCurrencyHandler creates a new CurrencyHandler with the given dependencies.
func NewCurrencyHandler(currencyStore store.CurrencyStore) *CurrencyHandler {
	return &CurrencyHandler{currencyStore: currencyStore}
}

// List handles GET /currency/.
func (h *CurrencyHandler) List(w http.ResponseWriter, r *http.Request) {
	currencies, err := h.currencyStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Error retrieving currencies", err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, currencies, "Currencies retrieved successfully")
}

// Create handles POST /currency/ (admin only). Currency names are unique;
// creating one that already exists yields a 409.
func (h *CurrencyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCurrencyRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Field name is required")
		return
	}

	currency, err := domain.NewCurrency(req.Name)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid currency data: "+err.Error())
		return
	}

	if err := h.currencyStore.Create(r.Context(), currency); err != nil {
		if errors.Is(err, store.ErrCurrencyExists) {
			shared.RespondWithError(w, r, http.StatusConflict, "Currency already exists")
			return
		}
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), "Error creating currency", err)
		return
	}

	shared.RespondWithData(w, r, http.StatusCreated, currency, "Currency created successfully")
}
