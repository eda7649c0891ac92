// internal/domain/user.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account in the deal service.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"` // Unique, matched case-insensitively
	Name         string    `db:"name" json:"name"`
	PasswordHash string    `db:"password_hash" json:"-"` // bcrypt hash, never serialized
	IsSubscriber bool      `db:"is_subscriber" json:"isSubscriber"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// NewUser creates a new User instance with a fresh ID.
func NewUser(email, name, passwordHash string, isSubscriber bool) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		IsSubscriber: isSubscriber,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
