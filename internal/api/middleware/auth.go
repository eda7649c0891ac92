// internal/api/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/soumen0818/Buzdealz/internal/api/types"
	"github.com/soumen0818/Buzdealz/internal/token"
)

type contextKey string

const identityKey contextKey = "identity"

// ErrNoIdentity is returned when the request context carries no verified identity.
var ErrNoIdentity = errors.New("no identity in request context")

// Authenticator verifies the Authorization bearer token and stores the caller
// identity in the request context. Requests without a verifiable token are
// rejected with 401 and a code distinguishing missing, expired, and malformed
// credentials.
func Authenticator(tokens *token.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := ""
			if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
				raw = strings.TrimPrefix(header, "Bearer ")
			}

			ident, err := tokens.Verify(raw)
			if err != nil {
				writeUnauthorized(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext retrieves the verified caller identity placed by Authenticator.
func IdentityFromContext(ctx context.Context) (token.Identity, error) {
	ident, ok := ctx.Value(identityKey).(token.Identity)
	if !ok {
		return token.Identity{}, ErrNoIdentity
	}
	return ident, nil
}

func writeUnauthorized(w http.ResponseWriter, err error) {
	resp := types.ErrorResponse{}
	switch {
	case errors.Is(err, token.ErrMissingToken):
		resp.Error = "No token provided"
		resp.Code = "NO_TOKEN"
	case errors.Is(err, token.ErrExpiredToken):
		resp.Error = "Token expired"
		resp.Code = "TOKEN_EXPIRED"
	default:
		resp.Error = "Invalid token"
		resp.Code = "INVALID_TOKEN"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(resp)
}
