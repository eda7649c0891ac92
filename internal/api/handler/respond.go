// internal/api/handler/respond.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/soumen0818/Buzdealz/internal/api/types"
	"github.com/soumen0818/Buzdealz/internal/util"
)

// DefaultTimeout bounds request handling at the router level.
const DefaultTimeout = 30 * time.Second

// respondWithJSON sends payload as a JSON response with the given status code.
func respondWithJSON(logger *slog.Logger, w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError maps a domain error to a structured response with a stable
// machine-readable code. Unrecognized errors are logged and surfaced
// generically so internals never leak to the client.
func respondWithError(logger *slog.Logger, w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	resp := types.ErrorResponse{Error: "Internal server error"}

	switch {
	case isValidation(err, &resp):
		statusCode = http.StatusBadRequest
	case util.IsError(err, util.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		resp = types.ErrorResponse{Error: "Invalid input", Code: "INVALID_INPUT"}
	case util.IsError(err, util.ErrUserExists):
		statusCode = http.StatusBadRequest
		resp = types.ErrorResponse{Error: "User already exists with this email", Code: "USER_EXISTS"}
	case util.IsError(err, util.ErrInvalidCredentials):
		statusCode = http.StatusUnauthorized
		resp = types.ErrorResponse{Error: "Invalid email or password", Code: "INVALID_CREDENTIALS"}
	case util.IsError(err, util.ErrSubscriberOnly):
		statusCode = http.StatusForbidden
		resp = types.ErrorResponse{Error: "Only subscribers can enable price alerts", Code: "SUBSCRIBER_ONLY"}
	case util.IsError(err, util.ErrDealInactive):
		statusCode = http.StatusBadRequest
		resp = types.ErrorResponse{Error: "Deal is no longer active", Code: "DEAL_INACTIVE"}
	case util.IsError(err, util.ErrDealNotFound):
		statusCode = http.StatusNotFound
		resp = types.ErrorResponse{Error: "Deal not found", Code: "DEAL_NOT_FOUND"}
	case util.IsError(err, util.ErrEntryNotFound):
		statusCode = http.StatusNotFound
		resp = types.ErrorResponse{Error: "Wishlist item not found", Code: "ENTRY_NOT_FOUND"}
	case util.IsError(err, util.ErrUserNotFound):
		statusCode = http.StatusNotFound
		resp = types.ErrorResponse{Error: "User not found", Code: "USER_NOT_FOUND"}
	case util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		resp = types.ErrorResponse{Error: "Resource not found", Code: "NOT_FOUND"}
	default:
		logger.Error("Unhandled service error", "error", err)
	}

	respondWithJSON(logger, w, statusCode, resp)
}

func isValidation(err error, resp *types.ErrorResponse) bool {
	ve, ok := util.AsValidationError(err)
	if !ok {
		return false
	}
	*resp = types.ErrorResponse{
		Error:   "Invalid input",
		Code:    "VALIDATION_ERROR",
		Details: ve.Fields,
	}
	return true
}
