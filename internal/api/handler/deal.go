// internal/api/handler/deal.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/soumen0818/Buzdealz/internal/api/types"
	"github.com/soumen0818/Buzdealz/internal/domain"
	"github.com/soumen0818/Buzdealz/internal/service"
	"github.com/soumen0818/Buzdealz/internal/util"
)

// DealHandler handles HTTP requests for the deal catalog.
type DealHandler struct {
	service service.DealService
	logger  *slog.Logger
}

// NewDealHandler creates a new DealHandler.
func NewDealHandler(svc service.DealService, logger *slog.Logger) *DealHandler {
	return &DealHandler{
		service: svc,
		logger:  logger,
	}
}

// parsePagination reads limit/offset query parameters with catalog defaults.
func parsePagination(r *http.Request) (limit, offset int) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	offset, err = strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

// List returns a filtered page of deal views.
// GET /api/deals
func (h *DealHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)
	filter := domain.DealFilter{
		Category:   r.URL.Query().Get("category"),
		Search:     r.URL.Query().Get("search"),
		ActiveOnly: r.URL.Query().Get("activeOnly") != "false", // Default true
		Limit:      limit,
		Offset:     offset,
	}

	deals, total, err := h.service.ListDeals(r.Context(), filter)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"deals":      deals,
		"pagination": types.Pagination{Limit: limit, Offset: offset, Total: total},
	})
}

// Get returns one deal view.
// GET /api/deals/{id}
func (h *DealHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(h.logger, w, util.ErrDealNotFound)
		return
	}

	deal, err := h.service.GetDeal(r.Context(), id)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"deal": deal,
	})
}

// Create adds a deal to the catalog.
// POST /api/deals
func (h *DealHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateDealInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	deal, err := h.service.CreateDeal(r.Context(), input)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, map[string]interface{}{
		"deal": deal,
	})
}

// Categories returns the distinct categories usable as list filters.
// GET /api/deals/categories
func (h *DealHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"categories": categories,
	})
}
