package http

import (
	"net/http"

	"github.com/MKhiriev/go-marketplace/internal/app"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/models"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	h.findProducts(w, r, models.ProductSearch{}, app.MsgListProductsFailed)
}

// searchProducts matches name and category as case-insensitive substrings.
// Supplied filters are OR-ed; without filters every product is returned.
func (h *Handler) searchProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	search := models.ProductSearch{
		Name:     query.Get("name"),
		Category: query.Get("category"),
	}

	h.findProducts(w, r, search, app.MsgSearchFailed)
}

func (h *Handler) findProducts(w http.ResponseWriter, r *http.Request, search models.ProductSearch, failure string) {
	products, err := h.services.ProductService.SearchProducts(r.Context(), search)
	if err != nil {
		logger.FromRequest(r).Err(err).
			Str("name", search.Name).
			Str("category", search.Category).
			Msg("product search failed")
		writeError(w, r, failure, http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, products, http.StatusOK)
}
