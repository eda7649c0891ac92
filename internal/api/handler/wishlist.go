// internal/api/handler/wishlist.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/soumen0818/Buzdealz/internal/api/middleware"
	"github.com/soumen0818/Buzdealz/internal/api/types"
	"github.com/soumen0818/Buzdealz/internal/service"
	"github.com/soumen0818/Buzdealz/internal/util"
)

// WishlistHandler handles HTTP requests for the wishlist ledger. Every route
// sits behind the Authenticator middleware.
type WishlistHandler struct {
	service service.WishlistService
	logger  *slog.Logger
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(svc service.WishlistService, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{
		service: svc,
		logger:  logger,
	}
}

// AddRequest represents the request body for saving a deal.
type AddRequest struct {
	DealID       string `json:"dealId"`
	AlertEnabled bool   `json:"alertEnabled"`
}

// UpdateRequest represents the request body for toggling the alert flag.
// AlertEnabled is a pointer so an absent field can be rejected rather than
// silently treated as false.
type UpdateRequest struct {
	AlertEnabled *bool `json:"alertEnabled"`
}

// List returns a page of the caller's wishlist with deal views.
// GET /api/wishlist
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	ident, err := middleware.IdentityFromContext(r.Context())
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	limit, offset := parsePagination(r)
	items, total, err := h.service.List(r.Context(), ident.UserID, limit, offset)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"wishlist":   items,
		"pagination": types.Pagination{Limit: limit, Offset: offset, Total: total},
	})
}

// Count returns the caller's total wishlist entry count.
// GET /api/wishlist/count
func (h *WishlistHandler) Count(w http.ResponseWriter, r *http.Request) {
	ident, err := middleware.IdentityFromContext(r.Context())
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	count, err := h.service.Count(r.Context(), ident.UserID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"count": count,
	})
}

// Add saves a deal to the caller's wishlist (idempotent upsert).
// POST /api/wishlist
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	ident, err := middleware.IdentityFromContext(r.Context())
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	var req AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	dealID, err := uuid.Parse(req.DealID)
	if err != nil {
		respondWithError(h.logger, w, util.NewValidationError(map[string]string{
			"dealId": "must be a valid deal ID",
		}))
		return
	}

	entry, deal, err := h.service.Add(r.Context(), ident, dealID, req.AlertEnabled)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, map[string]interface{}{
		"wishlist": entry,
		"deal":     deal,
	})
}

// Update toggles the alert flag on an existing entry.
// PATCH /api/wishlist/{dealID}
func (h *WishlistHandler) Update(w http.ResponseWriter, r *http.Request) {
	ident, err := middleware.IdentityFromContext(r.Context())
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	dealID, err := uuid.Parse(chi.URLParam(r, "dealID"))
	if err != nil {
		respondWithError(h.logger, w, util.ErrEntryNotFound)
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AlertEnabled == nil {
		respondWithError(h.logger, w, util.NewValidationError(map[string]string{
			"alertEnabled": "is required",
		}))
		return
	}

	entry, err := h.service.Update(r.Context(), ident, dealID, *req.AlertEnabled)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"wishlist": entry,
	})
}

// Remove deletes an entry from the caller's wishlist.
// DELETE /api/wishlist/{dealID}
func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	ident, err := middleware.IdentityFromContext(r.Context())
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	dealID, err := uuid.Parse(chi.URLParam(r, "dealID"))
	if err != nil {
		respondWithError(h.logger, w, util.ErrEntryNotFound)
		return
	}

	if err := h.service.Remove(r.Context(), ident.UserID, dealID); err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
