// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/soumen0818/Buzdealz/internal/api/handler"
	"github.com/soumen0818/Buzdealz/internal/api/middleware"
	"github.com/soumen0818/Buzdealz/internal/token"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(
	authHandler *handler.AuthHandler,
	dealHandler *handler.DealHandler,
	wishlistHandler *handler.WishlistHandler,
	tokens *token.Manager,
	authLimiter *middleware.RateLimiter,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(handler.DefaultTimeout))

	authenticate := middleware.Authenticator(tokens)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(authLimiter.Middleware())
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Get("/me", authHandler.Me)
			})
		})

		r.Route("/deals", func(r chi.Router) {
			r.Get("/", dealHandler.List)
			r.Get("/categories", dealHandler.Categories)
			r.Get("/{id}", dealHandler.Get)
			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Post("/", dealHandler.Create)
			})
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Use(authenticate)
			r.Get("/", wishlistHandler.List)
			r.Get("/count", wishlistHandler.Count)
			r.Post("/", wishlistHandler.Add)
			r.Patch("/{dealID}", wishlistHandler.Update)
			r.Delete("/{dealID}", wishlistHandler.Remove)
		})
	})

	return r
}
