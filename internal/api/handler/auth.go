// internal/api/handler/auth.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/soumen0818/Buzdealz/internal/api/middleware"
	"github.com/soumen0818/Buzdealz/internal/service"
	"github.com/soumen0818/Buzdealz/internal/util"
)

// AuthHandler handles HTTP requests for registration, login, and the current
// account.
type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service: svc,
		logger:  logger,
	}
}

// Register handles account creation.
// POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	user, tokenString, err := h.service.Register(r.Context(), input)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, map[string]interface{}{
		"message": "User registered successfully",
		"token":   tokenString,
		"user":    user,
	})
}

// Login handles credential verification.
// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	user, tokenString, err := h.service.Login(r.Context(), input)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"token":   tokenString,
		"user":    user,
	})
}

// Me returns the account behind the presented token.
// GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ident, err := middleware.IdentityFromContext(r.Context())
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	user, err := h.service.GetUser(r.Context(), ident.UserID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"user": user,
	})
}
