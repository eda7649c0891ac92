// internal/repository/wishlist_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/soumen0818/Buzdealz/internal/domain"
)

// WishlistRepository defines the interface for wishlist ledger data operations.
type WishlistRepository interface {
	// UpsertEntry inserts the entry or, when a row for the (user, deal) pair
	// already exists, overwrites its alert flag. The operation is a single
	// conditional statement so concurrent calls for the same pair cannot
	// produce duplicate rows. The entry is updated in place with the
	// persisted row.
	UpsertEntry(ctx context.Context, q DBExecutor, entry *domain.WishlistEntry) error
	// UpdateAlert sets the alert flag on an existing entry. It returns
	// util.ErrNotFound when no entry exists for the pair.
	UpdateAlert(ctx context.Context, q DBExecutor, userID, dealID uuid.UUID, alertEnabled bool) (*domain.WishlistEntry, error)
	// DeleteEntry removes the entry for the pair. It returns util.ErrNotFound
	// when no entry exists.
	DeleteEntry(ctx context.Context, q DBExecutor, userID, dealID uuid.UUID) error
	// ListEntries retrieves the user's entries newest first, left-joined
	// against the deal catalog, plus the total entry count. An entry whose
	// deal was hard-deleted carries a nil Deal.
	ListEntries(ctx context.Context, q DBExecutor, userID uuid.UUID, limit, offset int) ([]domain.WishlistEntryWithDeal, int64, error)
	// CountEntries retrieves the user's total entry count regardless of the
	// referenced deals' state.
	CountEntries(ctx context.Context, q DBExecutor, userID uuid.UUID) (int64, error)
}
