// internal/token/token.go
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/soumen0818/Buzdealz/internal/domain"
)

// Verification errors. Handlers map these to distinct 401 response codes.
var (
	ErrMissingToken   = errors.New("no token provided")
	ErrMalformedToken = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token expired")
)

// Identity is the authenticated caller extracted from a verified token.
//
// IsSubscriber is a snapshot taken at issuance. If the account's subscription
// status changes mid-session the token keeps the old value until re-issued;
// this staleness window is an accepted trade-off for avoiding a database
// round-trip on every authorization check.
type Identity struct {
	UserID       uuid.UUID
	Email        string
	IsSubscriber bool
}

// Claims represents the JWT claims carried by an identity token.
type Claims struct {
	jwt.RegisteredClaims
	UserID       uuid.UUID `json:"user_id"`
	Email        string    `json:"email"`
	IsSubscriber bool      `json:"is_subscriber"`
}

// DefaultTTL is the validity window for issued tokens.
const DefaultTTL = 7 * 24 * time.Hour

// Manager issues and verifies signed identity tokens backed by symmetric HMAC.
// Verification is stateless; there is no revocation list.
type Manager struct {
	secretKey string
	ttl       time.Duration
}

// NewManager creates a token Manager with the provided secret key and TTL.
// A zero ttl falls back to DefaultTTL.
func NewManager(secretKey string, ttl time.Duration) *Manager {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Manager{secretKey: secretKey, ttl: ttl}
}

// Issue creates a signed token encoding the user's identity and subscriber flag.
func (m *Manager) Issue(user *domain.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID:       user.ID,
		Email:        user.Email,
		IsSubscriber: user.IsSubscriber,
	})

	tokenString, err := token.SignedString([]byte(m.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify validates tokenString and extracts the caller identity.
// It returns ErrMissingToken for an empty credential, ErrExpiredToken for a
// token past its validity window, and ErrMalformedToken for everything else.
func (m *Manager) Verify(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, ErrMissingToken
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(m.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, ErrExpiredToken
		}
		return Identity{}, ErrMalformedToken
	}
	if !parsed.Valid {
		return Identity{}, ErrMalformedToken
	}

	return Identity{
		UserID:       claims.UserID,
		Email:        claims.Email,
		IsSubscriber: claims.IsSubscriber,
	}, nil
}
