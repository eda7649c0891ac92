// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	"golang.org/x/time/rate"

	router "github.com/soumen0818/Buzdealz/internal/api"
	"github.com/soumen0818/Buzdealz/internal/api/handler"
	"github.com/soumen0818/Buzdealz/internal/api/middleware"
	"github.com/soumen0818/Buzdealz/internal/config"
	"github.com/soumen0818/Buzdealz/internal/repository"
	"github.com/soumen0818/Buzdealz/internal/repository/postgres"
	"github.com/soumen0818/Buzdealz/internal/service"
	"github.com/soumen0818/Buzdealz/internal/token"
	"github.com/soumen0818/Buzdealz/internal/util"
	"github.com/soumen0818/Buzdealz/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB
	Tokens *token.Manager

	// Repositories
	UserRepository     repository.UserRepository
	DealRepository     repository.DealRepository
	WishlistRepository repository.WishlistRepository

	// Services
	AuthService     service.AuthService
	DealService     service.DealService
	WishlistService service.WishlistService

	// HTTP API
	HTTPHandler http.Handler

	authLimiter *middleware.RateLimiter
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Initialize Logger first so initialization failures are reportable
	util.InitLogger()
	app.Logger = util.GetLogger()

	// 2. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database and apply migrations
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	if err := db.RunMigrations(database); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Logger.Info("Database connection established and migrations applied.")

	// 4. Initialize Repositories
	app.UserRepository = postgres.NewUserRepository(app.DB)
	app.DealRepository = postgres.NewDealRepository(app.DB)
	app.WishlistRepository = postgres.NewWishlistRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	// 5. Initialize Token Manager and Services
	app.Tokens = token.NewManager(app.Config.JWT.Secret, app.Config.JWT.TTL)
	app.AuthService = service.NewAuthService(
		app.DB, // This is the DBTxBeginner
		app.DB, // This is the DBExecutor
		app.UserRepository,
		app.Tokens,
		app.Config.BcryptCost,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.DealService = service.NewDealService(app.DB, app.DealRepository)
	app.WishlistService = service.NewWishlistService(app.DB, app.DealRepository, app.WishlistRepository)
	app.Logger.Info("Services initialized.")

	// 6. Initialize HTTP Handlers and Router
	// Credential endpoints get a per-IP limit of roughly 20 req/min.
	app.authLimiter = middleware.NewRateLimiter(rate.Limit(20.0/60.0), 20)
	authHandler := handler.NewAuthHandler(app.AuthService, app.Logger)
	dealHandler := handler.NewDealHandler(app.DealService, app.Logger)
	wishlistHandler := handler.NewWishlistHandler(app.WishlistService, app.Logger)
	app.HTTPHandler = router.NewRouter(authHandler, dealHandler, wishlistHandler, app.Tokens, app.authLimiter, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.authLimiter != nil {
		app.authLimiter.Stop()
	}
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
