// internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/soumen0818/Buzdealz/pkg/db"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort string    `env:"SERVER_PORT" envDefault:"8080"`
	DB         db.Config `envPrefix:"DB_"`
	JWT        JWT       `envPrefix:"JWT_"`
	BcryptCost int       `env:"BCRYPT_COST" envDefault:"10"`
}

// JWT contains identity-token parameters.
type JWT struct {
	Secret string        `env:"SECRET" envDefault:"dev-secret-change-me"`
	TTL    time.Duration `env:"TTL" envDefault:"168h"` // 7 days
}

// LoadConfig loads configuration from a .env file (if present) and the
// environment. Real environment variables take precedence over .env entries.
func LoadConfig() (*AppConfig, error) {
	// Missing .env is fine outside local development.
	_ = godotenv.Load()

	cfg := AppConfig{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
