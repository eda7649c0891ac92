// internal/repository/deal_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/soumen0818/Buzdealz/internal/domain"
)

// DealRepository defines the interface for deal catalog data operations.
type DealRepository interface {
	// CreateDeal adds a new deal to the catalog.
	CreateDeal(ctx context.Context, q DBExecutor, deal *domain.Deal) error
	// GetDealByID retrieves a deal by its ID.
	GetDealByID(ctx context.Context, q DBExecutor, id uuid.UUID) (*domain.Deal, error)
	// ListDeals retrieves deals matching the filter ordered by creation time
	// descending, plus the total count of matching rows.
	ListDeals(ctx context.Context, q DBExecutor, filter domain.DealFilter) ([]domain.Deal, int64, error)
	// ListCategories retrieves the distinct non-empty categories of active
	// deals, ordered alphabetically. Values are deduplicated exactly as
	// stored, with no case folding.
	ListCategories(ctx context.Context, q DBExecutor) ([]string, error)
}
