// internal/repository/postgres/deal_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/soumen0818/Buzdealz/internal/domain"
	"github.com/soumen0818/Buzdealz/internal/repository"
	"github.com/soumen0818/Buzdealz/internal/util"
)

const dealColumns = `id, title, description, price, original_price, image_url, category, merchant, link, is_active, expires_at, created_at, updated_at`

// DealRepository implements repository.DealRepository for PostgreSQL.
type DealRepository struct {
	// Methods receive a DBExecutor directly, so no connection is stored.
}

// NewDealRepository creates a new DealRepository.
func NewDealRepository(db *sqlx.DB) repository.DealRepository {
	return &DealRepository{}
}

// CreateDeal inserts a new deal into the database using the provided DBExecutor.
func (r *DealRepository) CreateDeal(ctx context.Context, q repository.DBExecutor, deal *domain.Deal) error {
	query := `INSERT INTO deals (id, title, description, price, original_price, image_url, category, merchant, link, is_active, expires_at, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := q.ExecContext(ctx, query,
		deal.ID, deal.Title, deal.Description, deal.Price, deal.OriginalPrice,
		deal.ImageURL, deal.Category, deal.Merchant, deal.Link,
		deal.IsActive, deal.ExpiresAt, deal.CreatedAt, deal.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create deal: %w", err)
	}
	return nil
}

// GetDealByID retrieves a deal by its ID using the provided DBExecutor.
func (r *DealRepository) GetDealByID(ctx context.Context, q repository.DBExecutor, id uuid.UUID) (*domain.Deal, error) {
	var deal domain.Deal
	query := `SELECT ` + dealColumns + ` FROM deals WHERE id = $1`
	err := q.GetContext(ctx, &deal, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get deal by ID %s: %w", id, err)
	}
	return &deal, nil
}

// ListDeals retrieves a paginated list of deals matching the filter, newest
// first, plus the total matching count. It performs two queries: one for the
// page and one for the count.
func (r *DealRepository) ListDeals(ctx context.Context, q repository.DBExecutor, filter domain.DealFilter) ([]domain.Deal, int64, error) {
	conditions := []string{}
	args := []interface{}{}

	if filter.ActiveOnly {
		conditions = append(conditions, "is_active = TRUE")
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM deals` + where
	if err := q.GetContext(ctx, &totalCount, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count deals: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT `+dealColumns+` FROM deals%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	deals := []domain.Deal{}
	if err := q.SelectContext(ctx, &deals, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list deals: %w", err)
	}

	return deals, totalCount, nil
}

// ListCategories retrieves the distinct non-empty categories of active deals.
// Deduplication is by exact stored value, with no case folding.
func (r *DealRepository) ListCategories(ctx context.Context, q repository.DBExecutor) ([]string, error) {
	categories := []string{}
	query := `SELECT DISTINCT category FROM deals
              WHERE is_active = TRUE AND category IS NOT NULL AND category <> ''
              ORDER BY category`
	if err := q.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
