// internal/service/wishlist_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/soumen0818/Buzdealz/internal/domain"
	"github.com/soumen0818/Buzdealz/internal/repository"
	"github.com/soumen0818/Buzdealz/internal/token"
	"github.com/soumen0818/Buzdealz/internal/util"
)

// WishlistService defines the interface for the wishlist ledger.
//
// Mutations take the verified caller identity so the subscriber entitlement
// can be checked before anything touches storage. The subscriber flag comes
// from the token, not the user record: a subscription change mid-session is
// only picked up when the client obtains a fresh token.
type WishlistService interface {
	// Add upserts the entry for (identity, dealID). Repeating the call is
	// safe: an existing entry has its alert flag overwritten instead of
	// erroring. Enabling alerts requires the subscriber entitlement.
	Add(ctx context.Context, ident token.Identity, dealID uuid.UUID, alertEnabled bool) (*domain.WishlistEntry, *domain.DealView, error)
	// Update sets the alert flag on an existing entry. Setting the same
	// value twice is permitted.
	Update(ctx context.Context, ident token.Identity, dealID uuid.UUID, alertEnabled bool) (*domain.WishlistEntry, error)
	// Remove deletes the entry for the pair. No soft-delete.
	Remove(ctx context.Context, userID, dealID uuid.UUID) error
	// List retrieves the user's entries newest first with their deal views.
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.WishlistItem, int64, error)
	// Count retrieves the user's total entry count regardless of deal state.
	Count(ctx context.Context, userID uuid.UUID) (int64, error)
}

// wishlistService implements the WishlistService interface.
type wishlistService struct {
	dbExecutor   repository.DBExecutor
	dealRepo     repository.DealRepository
	wishlistRepo repository.WishlistRepository
}

// NewWishlistService creates a new instance of WishlistService.
func NewWishlistService(
	dbExecutor repository.DBExecutor,
	dealRepo repository.DealRepository,
	wishlistRepo repository.WishlistRepository,
) WishlistService {
	return &wishlistService{
		dbExecutor:   dbExecutor,
		dealRepo:     dealRepo,
		wishlistRepo: wishlistRepo,
	}
}

// requireAlertEntitlement rejects alert-enabling requests from non-subscribers.
func requireAlertEntitlement(ident token.Identity, alertEnabled bool) error {
	if alertEnabled && !ident.IsSubscriber {
		return util.ErrSubscriberOnly
	}
	return nil
}

// Add saves a deal to the caller's wishlist. The storage upsert is a single
// conditional statement, so concurrent adds for the same pair settle on one
// row rather than racing into duplicates.
func (s *wishlistService) Add(ctx context.Context, ident token.Identity, dealID uuid.UUID, alertEnabled bool) (*domain.WishlistEntry, *domain.DealView, error) {
	if err := requireAlertEntitlement(ident, alertEnabled); err != nil {
		return nil, nil, err
	}

	deal, err := s.dealRepo.GetDealByID(ctx, s.dbExecutor, dealID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, nil, util.ErrDealNotFound
		}
		return nil, nil, fmt.Errorf("add to wishlist: failed to get deal %s: %w", dealID, err)
	}
	if !deal.IsActive {
		return nil, nil, util.ErrDealInactive
	}

	entry := domain.NewWishlistEntry(ident.UserID, dealID, alertEnabled)
	if err := s.wishlistRepo.UpsertEntry(ctx, s.dbExecutor, entry); err != nil {
		return nil, nil, fmt.Errorf("add to wishlist: %w", err)
	}

	return entry, deal.View(time.Now().UTC()), nil
}

// Update sets the alert flag on an existing entry.
func (s *wishlistService) Update(ctx context.Context, ident token.Identity, dealID uuid.UUID, alertEnabled bool) (*domain.WishlistEntry, error) {
	if err := requireAlertEntitlement(ident, alertEnabled); err != nil {
		return nil, err
	}

	entry, err := s.wishlistRepo.UpdateAlert(ctx, s.dbExecutor, ident.UserID, dealID, alertEnabled)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrEntryNotFound
		}
		return nil, fmt.Errorf("update wishlist: %w", err)
	}
	return entry, nil
}

// Remove deletes the entry for the (user, deal) pair.
func (s *wishlistService) Remove(ctx context.Context, userID, dealID uuid.UUID) error {
	err := s.wishlistRepo.DeleteEntry(ctx, s.dbExecutor, userID, dealID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return util.ErrEntryNotFound
		}
		return fmt.Errorf("remove from wishlist: %w", err)
	}
	return nil
}

// List retrieves a page of the user's wishlist, each entry joined with the
// current derived view of its deal. Entries whose deal was hard-deleted
// surface with a nil deal; clients must handle that.
func (s *wishlistService) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.WishlistItem, int64, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	entries, totalCount, err := s.wishlistRepo.ListEntries(ctx, s.dbExecutor, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list wishlist: %w", err)
	}

	now := time.Now().UTC()
	items := make([]domain.WishlistItem, 0, len(entries))
	for _, e := range entries {
		item := domain.WishlistItem{WishlistEntry: e.Entry}
		if e.Deal != nil {
			item.Deal = e.Deal.View(now)
		}
		items = append(items, item)
	}
	return items, totalCount, nil
}

// Count retrieves the user's total wishlist entry count.
func (s *wishlistService) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.wishlistRepo.CountEntries(ctx, s.dbExecutor, userID)
	if err != nil {
		return 0, fmt.Errorf("count wishlist: %w", err)
	}
	return count, nil
}
