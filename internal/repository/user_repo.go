// internal/repository/user_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/soumen0818/Buzdealz/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// CreateUser adds a new user. It returns util.ErrDuplicateEntry when the
	// email is already taken (case-insensitive unique index).
	CreateUser(ctx context.Context, q DBExecutor, user *domain.User) error
	// GetUserByID retrieves a user by their ID.
	GetUserByID(ctx context.Context, q DBExecutor, id uuid.UUID) (*domain.User, error)
	// GetUserByEmail retrieves a user by email, matched case-insensitively.
	GetUserByEmail(ctx context.Context, q DBExecutor, email string) (*domain.User, error)
}
