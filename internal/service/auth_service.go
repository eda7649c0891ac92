// internal/service/auth_service.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/soumen0818/Buzdealz/internal/domain"
	"github.com/soumen0818/Buzdealz/internal/repository"
	"github.com/soumen0818/Buzdealz/internal/token"
	"github.com/soumen0818/Buzdealz/internal/util"
	"github.com/soumen0818/Buzdealz/pkg/db"
)

// RegisterInput is the payload for account registration.
type RegisterInput struct {
	Email        string `json:"email" validate:"required,email"`
	Name         string `json:"name" validate:"required,min=2"`
	Password     string `json:"password" validate:"required,min=6"`
	IsSubscriber bool   `json:"isSubscriber"`
}

// LoginInput is the payload for credential verification.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthService defines the interface for account and session-token logic.
type AuthService interface {
	// Register creates an account and issues an identity token.
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)
	// Login verifies credentials and issues an identity token.
	Login(ctx context.Context, input LoginInput) (*domain.User, string, error)
	// GetUser retrieves the account behind a verified token.
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// authService implements the AuthService interface.
type authService struct {
	dbBeginner db.DBTxBeginner
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
	tokens     *token.Manager
	bcryptCost int
	beginTx    db.BeginTxFunc
	commitTx   db.CommitTxFunc
	rollbackTx db.RollbackTxFunc
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	tokens *token.Manager,
	bcryptCost int,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &authService{
		dbBeginner: dbBeginner,
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		beginTx:    beginTx,
		commitTx:   commitTx,
		rollbackTx: rollbackTx,
	}
}

// Register creates a new account. Duplicate emails (case-insensitive) fail
// with util.ErrUserExists; the unique index backs up the in-transaction check
// against concurrent registrations.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*domain.User, string, error) {
	if err := validateStruct(input); err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("register: failed to hash password: %w", err)
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, "", fmt.Errorf("register: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, "", fmt.Errorf("register: transaction controller does not implement DBExecutor")
	}

	_, err = s.userRepo.GetUserByEmail(ctx, txExecutor, input.Email)
	if err == nil {
		return nil, "", util.ErrUserExists
	}
	if !util.IsError(err, util.ErrNotFound) {
		return nil, "", fmt.Errorf("register: failed to check existing user: %w", err)
	}

	user := domain.NewUser(input.Email, input.Name, string(hash), input.IsSubscriber)
	if err := s.userRepo.CreateUser(ctx, txExecutor, user); err != nil {
		if util.IsError(err, util.ErrDuplicateEntry) {
			return nil, "", util.ErrUserExists
		}
		return nil, "", fmt.Errorf("register: failed to create user: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, "", fmt.Errorf("register: failed to commit transaction: %w", err)
	}

	tokenString, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("register: failed to issue token: %w", err)
	}

	return user, tokenString, nil
}

// Login verifies the submitted credentials. Unknown emails and password
// mismatches are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, input LoginInput) (*domain.User, string, error) {
	if err := validateStruct(input); err != nil {
		return nil, "", err
	}

	user, err := s.userRepo.GetUserByEmail(ctx, s.dbExecutor, input.Email)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, "", util.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("login: failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	tokenString, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("login: failed to issue token: %w", err)
	}

	return user, tokenString, nil
}

// GetUser retrieves an account by ID.
func (s *authService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: failed to get user %s: %w", id, err)
	}
	return user, nil
}
