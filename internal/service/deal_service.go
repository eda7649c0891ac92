// internal/service/deal_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/soumen0818/Buzdealz/internal/domain"
	"github.com/soumen0818/Buzdealz/internal/repository"
	"github.com/soumen0818/Buzdealz/internal/util"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// CreateDealInput is the payload for adding a deal to the catalog.
// Prices arrive as fixed-point strings so no float precision is lost before
// validation.
type CreateDealInput struct {
	Title         string  `json:"title" validate:"required,min=3"`
	Description   *string `json:"description"`
	Price         string  `json:"price" validate:"required,money"`
	OriginalPrice string  `json:"originalPrice" validate:"required,money"`
	ImageURL      *string `json:"imageUrl" validate:"omitempty,url"`
	Category      *string `json:"category"`
	Merchant      *string `json:"merchant"`
	Link          *string `json:"link" validate:"omitempty,url"`
	ExpiresAt     *string `json:"expiresAt"`
}

// DealService defines the interface for deal catalog business logic.
type DealService interface {
	// ListDeals retrieves derived deal views matching the filter, newest
	// first, plus the total matching count. The offset/limit window is not a
	// stable cursor: concurrent inserts may shift a page between calls.
	ListDeals(ctx context.Context, filter domain.DealFilter) ([]domain.DealView, int64, error)
	// GetDeal retrieves one deal's derived view.
	GetDeal(ctx context.Context, id uuid.UUID) (*domain.DealView, error)
	// CreateDeal validates the input and stores a new active deal.
	CreateDeal(ctx context.Context, input CreateDealInput) (*domain.Deal, error)
	// ListCategories retrieves the distinct categories usable as filters.
	ListCategories(ctx context.Context) ([]string, error)
}

// dealService implements the DealService interface.
type dealService struct {
	dbExecutor repository.DBExecutor
	dealRepo   repository.DealRepository
}

// NewDealService creates a new instance of DealService.
func NewDealService(dbExecutor repository.DBExecutor, dealRepo repository.DealRepository) DealService {
	return &dealService{
		dbExecutor: dbExecutor,
		dealRepo:   dealRepo,
	}
}

// ListDeals retrieves a page of derived deal views.
func (s *dealService) ListDeals(ctx context.Context, filter domain.DealFilter) ([]domain.DealView, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	deals, totalCount, err := s.dealRepo.ListDeals(ctx, s.dbExecutor, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list deals: %w", err)
	}

	now := time.Now().UTC()
	views := make([]domain.DealView, 0, len(deals))
	for _, deal := range deals {
		views = append(views, *deal.View(now))
	}
	return views, totalCount, nil
}

// GetDeal retrieves one deal by ID with its derived fields computed at read time.
func (s *dealService) GetDeal(ctx context.Context, id uuid.UUID) (*domain.DealView, error) {
	deal, err := s.dealRepo.GetDealByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrDealNotFound
		}
		return nil, fmt.Errorf("get deal: failed to get deal %s: %w", id, err)
	}
	return deal.View(time.Now().UTC()), nil
}

// CreateDeal validates and stores a new deal. Prices are persisted exactly as
// submitted; discount and expiry state remain derived per read.
func (s *dealService) CreateDeal(ctx context.Context, input CreateDealInput) (*domain.Deal, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	// The money pattern already passed, so these parses cannot fail.
	price, err := decimal.NewFromString(input.Price)
	if err != nil {
		return nil, fmt.Errorf("create deal: failed to parse price: %w", err)
	}
	originalPrice, err := decimal.NewFromString(input.OriginalPrice)
	if err != nil {
		return nil, fmt.Errorf("create deal: failed to parse original price: %w", err)
	}

	var expiresAt *time.Time
	if input.ExpiresAt != nil {
		parsed, err := time.Parse(time.RFC3339, *input.ExpiresAt)
		if err != nil {
			return nil, util.NewValidationError(map[string]string{
				"expiresAt": "must be a valid RFC 3339 timestamp",
			})
		}
		expiresAt = &parsed
	}

	now := time.Now().UTC()
	deal := &domain.Deal{
		ID:            uuid.New(),
		Title:         input.Title,
		Description:   input.Description,
		Price:         price,
		OriginalPrice: originalPrice,
		ImageURL:      input.ImageURL,
		Category:      input.Category,
		Merchant:      input.Merchant,
		Link:          input.Link,
		IsActive:      true,
		ExpiresAt:     expiresAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.dealRepo.CreateDeal(ctx, s.dbExecutor, deal); err != nil {
		return nil, fmt.Errorf("create deal: %w", err)
	}
	return deal, nil
}

// ListCategories retrieves the distinct categories of active deals.
func (s *dealService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := s.dealRepo.ListCategories(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
