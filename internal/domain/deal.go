// internal/domain/deal.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Deal represents a persisted merchant offer.
// Price and OriginalPrice are authoritative; expiry and discount are
// derived per read via View and must never be written back.
type Deal struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	Title         string          `db:"title" json:"title"`
	Description   *string         `db:"description" json:"description"`
	Price         decimal.Decimal `db:"price" json:"price"`                  // NUMERIC(10, 2) in DB
	OriginalPrice decimal.Decimal `db:"original_price" json:"originalPrice"` // NUMERIC(10, 2) in DB
	ImageURL      *string         `db:"image_url" json:"imageUrl"`
	Category      *string         `db:"category" json:"category"`
	Merchant      *string         `db:"merchant" json:"merchant"`
	Link          *string         `db:"link" json:"link"`
	IsActive      bool            `db:"is_active" json:"isActive"`
	ExpiresAt     *time.Time      `db:"expires_at" json:"expiresAt"`
	CreatedAt     time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updatedAt"`
}

// DealView is a Deal enriched with computed, non-persisted fields.
type DealView struct {
	Deal
	IsExpired          bool  `json:"isExpired"`
	IsDisabled         bool  `json:"isDisabled"`
	DiscountPercentage int64 `json:"discountPercentage"`
}

// View computes the derived view of the deal at the given instant.
func (d Deal) View(now time.Time) *DealView {
	return &DealView{
		Deal:               d,
		IsExpired:          d.ExpiresAt != nil && d.ExpiresAt.Before(now),
		IsDisabled:         !d.IsActive,
		DiscountPercentage: DiscountPercentage(d.OriginalPrice, d.Price),
	}
}

// DiscountPercentage returns round(100 * (originalPrice - price) / originalPrice),
// or 0 when originalPrice is not positive.
func DiscountPercentage(originalPrice, price decimal.Decimal) int64 {
	if originalPrice.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	return originalPrice.Sub(price).
		Div(originalPrice).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}

// DealFilter holds the supported catalog listing criteria.
// Category is an exact, case-sensitive match; Search is a case-insensitive
// substring match over title or description.
type DealFilter struct {
	Category   string
	Search     string
	ActiveOnly bool
	Limit      int
	Offset     int
}
