// internal/domain/wishlist.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// WishlistEntry links one user to one deal with an alert preference.
// At most one entry exists per (UserID, DealID) pair; the storage layer
// enforces this with a composite unique constraint.
type WishlistEntry struct {
	ID           uuid.UUID `db:"id" json:"id"`
	UserID       uuid.UUID `db:"user_id" json:"userId"`
	DealID       uuid.UUID `db:"deal_id" json:"dealId"`
	AlertEnabled bool      `db:"alert_enabled" json:"alertEnabled"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// NewWishlistEntry creates a new WishlistEntry instance with a fresh ID.
func NewWishlistEntry(userID, dealID uuid.UUID, alertEnabled bool) *WishlistEntry {
	return &WishlistEntry{
		ID:           uuid.New(),
		UserID:       userID,
		DealID:       dealID,
		AlertEnabled: alertEnabled,
		CreatedAt:    time.Now().UTC(),
	}
}

// WishlistEntryWithDeal is an entry joined against the deal catalog.
// Deal is nil when the referenced deal no longer exists (the wishlist row
// survives a LEFT JOIN even though the cascade normally removes it first).
type WishlistEntryWithDeal struct {
	Entry WishlistEntry
	Deal  *Deal
}

// WishlistItem is the API-facing shape of an entry with its derived deal view.
type WishlistItem struct {
	WishlistEntry
	Deal *DealView `json:"deal"`
}
