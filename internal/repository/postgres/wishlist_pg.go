// internal/repository/postgres/wishlist_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/soumen0818/Buzdealz/internal/domain"
	"github.com/soumen0818/Buzdealz/internal/repository"
	"github.com/soumen0818/Buzdealz/internal/util"
)

// WishlistRepository implements repository.WishlistRepository for PostgreSQL.
type WishlistRepository struct {
	// Methods receive a DBExecutor directly, so no connection is stored.
}

// NewWishlistRepository creates a new WishlistRepository.
func NewWishlistRepository(db *sqlx.DB) repository.WishlistRepository {
	return &WishlistRepository{}
}

// UpsertEntry inserts the entry or overwrites the alert flag of the existing
// row for the (user, deal) pair. The single ON CONFLICT statement is what
// keeps the pair unique under concurrent adds; callers must not approximate
// it with a read-then-write sequence.
func (r *WishlistRepository) UpsertEntry(ctx context.Context, q repository.DBExecutor, entry *domain.WishlistEntry) error {
	query := `INSERT INTO wishlist (id, user_id, deal_id, alert_enabled, created_at)
              VALUES ($1, $2, $3, $4, $5)
              ON CONFLICT (user_id, deal_id) DO UPDATE SET alert_enabled = EXCLUDED.alert_enabled
              RETURNING id, user_id, deal_id, alert_enabled, created_at`
	err := q.QueryRowContext(ctx, query,
		entry.ID, entry.UserID, entry.DealID, entry.AlertEnabled, entry.CreatedAt,
	).Scan(&entry.ID, &entry.UserID, &entry.DealID, &entry.AlertEnabled, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert wishlist entry: %w", err)
	}
	return nil
}

// UpdateAlert sets the alert flag on an existing entry using the provided
// DBExecutor. Returns util.ErrNotFound when the pair has no entry.
func (r *WishlistRepository) UpdateAlert(ctx context.Context, q repository.DBExecutor, userID, dealID uuid.UUID, alertEnabled bool) (*domain.WishlistEntry, error) {
	var entry domain.WishlistEntry
	query := `UPDATE wishlist SET alert_enabled = $1
              WHERE user_id = $2 AND deal_id = $3
              RETURNING id, user_id, deal_id, alert_enabled, created_at`
	err := q.QueryRowContext(ctx, query, alertEnabled, userID, dealID).Scan(
		&entry.ID, &entry.UserID, &entry.DealID, &entry.AlertEnabled, &entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update wishlist entry: %w", err)
	}
	return &entry, nil
}

// DeleteEntry removes the entry for the (user, deal) pair using the provided
// DBExecutor. Returns util.ErrNotFound when the pair has no entry.
func (r *WishlistRepository) DeleteEntry(ctx context.Context, q repository.DBExecutor, userID, dealID uuid.UUID) error {
	query := `DELETE FROM wishlist WHERE user_id = $1 AND deal_id = $2`
	result, err := q.ExecContext(ctx, query, userID, dealID)
	if err != nil {
		return fmt.Errorf("failed to delete wishlist entry: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting wishlist entry: %w", err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// wishlistDealRow is the scan target for the entry/deal LEFT JOIN. Every deal
// column is nullable because the joined row is absent when the deal was
// hard-deleted.
type wishlistDealRow struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	DealID       uuid.UUID `db:"deal_id"`
	AlertEnabled bool      `db:"alert_enabled"`
	CreatedAt    time.Time `db:"created_at"`

	DID            uuid.NullUUID       `db:"d_id"`
	DTitle         sql.NullString      `db:"d_title"`
	DDescription   sql.NullString      `db:"d_description"`
	DPrice         decimal.NullDecimal `db:"d_price"`
	DOriginalPrice decimal.NullDecimal `db:"d_original_price"`
	DImageURL      sql.NullString      `db:"d_image_url"`
	DCategory      sql.NullString      `db:"d_category"`
	DMerchant      sql.NullString      `db:"d_merchant"`
	DLink          sql.NullString      `db:"d_link"`
	DIsActive      sql.NullBool        `db:"d_is_active"`
	DExpiresAt     sql.NullTime        `db:"d_expires_at"`
	DCreatedAt     sql.NullTime        `db:"d_created_at"`
	DUpdatedAt     sql.NullTime        `db:"d_updated_at"`
}

// toEntryWithDeal converts a scanned join row into the domain shape.
func (row wishlistDealRow) toEntryWithDeal() domain.WishlistEntryWithDeal {
	out := domain.WishlistEntryWithDeal{
		Entry: domain.WishlistEntry{
			ID:           row.ID,
			UserID:       row.UserID,
			DealID:       row.DealID,
			AlertEnabled: row.AlertEnabled,
			CreatedAt:    row.CreatedAt,
		},
	}
	if !row.DID.Valid {
		return out
	}

	deal := &domain.Deal{
		ID:            row.DID.UUID,
		Title:         row.DTitle.String,
		Price:         row.DPrice.Decimal,
		OriginalPrice: row.DOriginalPrice.Decimal,
		IsActive:      row.DIsActive.Bool,
		CreatedAt:     row.DCreatedAt.Time,
		UpdatedAt:     row.DUpdatedAt.Time,
	}
	if row.DDescription.Valid {
		deal.Description = &row.DDescription.String
	}
	if row.DImageURL.Valid {
		deal.ImageURL = &row.DImageURL.String
	}
	if row.DCategory.Valid {
		deal.Category = &row.DCategory.String
	}
	if row.DMerchant.Valid {
		deal.Merchant = &row.DMerchant.String
	}
	if row.DLink.Valid {
		deal.Link = &row.DLink.String
	}
	if row.DExpiresAt.Valid {
		expiresAt := row.DExpiresAt.Time
		deal.ExpiresAt = &expiresAt
	}
	out.Deal = deal
	return out
}

// ListEntries retrieves the user's wishlist entries newest first, each
// left-joined against the deal catalog, plus the total entry count.
func (r *WishlistRepository) ListEntries(ctx context.Context, q repository.DBExecutor, userID uuid.UUID, limit, offset int) ([]domain.WishlistEntryWithDeal, int64, error) {
	rows := []wishlistDealRow{}
	query := `
        SELECT w.id, w.user_id, w.deal_id, w.alert_enabled, w.created_at,
               d.id AS d_id, d.title AS d_title, d.description AS d_description,
               d.price AS d_price, d.original_price AS d_original_price,
               d.image_url AS d_image_url, d.category AS d_category,
               d.merchant AS d_merchant, d.link AS d_link,
               d.is_active AS d_is_active, d.expires_at AS d_expires_at,
               d.created_at AS d_created_at, d.updated_at AS d_updated_at
        FROM wishlist w
        LEFT JOIN deals d ON d.id = w.deal_id
        WHERE w.user_id = $1
        ORDER BY w.created_at DESC
        LIMIT $2 OFFSET $3`
	if err := q.SelectContext(ctx, &rows, query, userID, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list wishlist entries for user %s: %w", userID, err)
	}

	totalCount, err := r.CountEntries(ctx, q, userID)
	if err != nil {
		return nil, 0, err
	}

	entries := make([]domain.WishlistEntryWithDeal, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toEntryWithDeal())
	}
	return entries, totalCount, nil
}

// CountEntries retrieves the user's total wishlist entry count using the
// provided DBExecutor.
func (r *WishlistRepository) CountEntries(ctx context.Context, q repository.DBExecutor, userID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM wishlist WHERE user_id = $1`
	if err := q.GetContext(ctx, &count, query, userID); err != nil {
		return 0, fmt.Errorf("failed to count wishlist entries for user %s: %w", userID, err)
	}
	return count, nil
}
