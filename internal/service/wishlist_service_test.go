// internal/service/wishlist_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/soumen0818/Buzdealz/internal/domain"
	"github.com/soumen0818/Buzdealz/internal/token"
	"github.com/soumen0818/Buzdealz/internal/util"
)

func activeTestDeal() *domain.Deal {
	now := time.Now().UTC()
	return &domain.Deal{
		ID:            uuid.New(),
		Title:         "Mechanical Keyboard",
		Price:         decimal.RequireFromString("89.99"),
		OriginalPrice: decimal.RequireFromString("199.99"),
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestWishlistAdd(t *testing.T) {
	subscriber := token.Identity{UserID: uuid.New(), Email: "sub@example.com", IsSubscriber: true}
	nonSubscriber := token.Identity{UserID: uuid.New(), Email: "free@example.com", IsSubscriber: false}

	t.Run("SuccessfulAdd", func(t *testing.T) {
		ctx := context.Background()
		mockDealRepo := new(MockDealRepository)
		mockWishlistRepo := new(MockWishlistRepository)
		mockDBExecutor := new(MockDBExecutor)

		service := NewWishlistService(mockDBExecutor, mockDealRepo, mockWishlistRepo)

		deal := activeTestDeal()
		mockDealRepo.On("GetDealByID", ctx, mock.Anything, deal.ID).Return(deal, nil).Once()
		mockWishlistRepo.On("UpsertEntry", ctx, mock.Anything, mock.AnythingOfType("*domain.WishlistEntry")).Return(nil).Once()

		entry, view, err := service.Add(ctx, nonSubscriber, deal.ID, false)

		assert.NoError(t, err)
		assert.NotNil(t, entry)
		assert.Equal(t, nonSubscriber.UserID, entry.UserID)
		assert.Equal(t, deal.ID, entry.DealID)
		assert.False(t, entry.AlertEnabled)
		assert.NotNil(t, view)
		assert.Equal(t, int64(55), view.DiscountPercentage)

		mock.AssertExpectationsForObjects(t, mockDealRepo, mockWishlistRepo)
	})

	t.Run("AlertRequiresSubscriber", func(t *testing.T) {
		ctx := context.Background()
		mockDealRepo := new(MockDealRepository)
		mockWishlistRepo := new(MockWishlistRepository)
		mockDBExecutor := new(MockDBExecutor)

		service := NewWishlistService(mockDBExecutor, mockDealRepo, mockWishlistRepo)

		entry, view, err := service.Add(ctx, nonSubscriber, uuid.New(), true)

		assert.ErrorIs(t, err, util.ErrSubscriberOnly)
		assert.Nil(t, entry)
		assert.Nil(t, view)

		// The entitlement check rejects before storage is consulted.
		mockDealRepo.AssertNotCalled(t, "GetDealByID", mock.Anything, mock.Anything, mock.Anything)
		mockWishlistRepo.AssertNotCalled(t, "UpsertEntry", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("SubscriberEnablesAlert", func(t *testing.T) {
		ctx := context.Background()
		mockDealRepo := new(MockDealRepository)
		mockWishlistRepo := new(MockWishlistRepository)
		mockDBExecutor := new(MockDBExecutor)

		service := NewWishlistService(mockDBExecutor, mockDealRepo, mockWishlistRepo)

		deal := activeTestDeal()
		mockDealRepo.On("GetDealByID", ctx, mock.Anything, deal.ID).Return(deal, nil).Once()
		mockWishlistRepo.On("UpsertEntry", ctx, mock.Anything, mock.AnythingOfType("*domain.WishlistEntry")).Return(nil).Once()

		entry, _, err := service.Add(ctx, subscriber, deal.ID, true)

		assert.NoError(t, err)
		assert.True(t, entry.AlertEnabled)

		mock.AssertExpectationsForObjects(t, mockDealRepo, mockWishlistRepo)
	})

	t.Run("DealNotFound", func(t *testing.T) {
		ctx := context.Background()
		mockDealRepo := new(MockDealRepository)
		mockWishlistRepo := new(MockWishlistRepository)
		mockDBExecutor := new(MockDBExecutor)

		service := NewWishlistService(mockDBExecutor, mockDealRepo, mockWishlistRepo)

		dealID := uuid.New()
		mockDealRepo.On("GetDealByID", ctx, mock.Anything, dealID).Return(nil, util.ErrNotFound).Once()

		entry, view, err := service.Add(ctx, subscriber, dealID, false)

		assert.ErrorIs(t, err, util.ErrDealNotFound)
		assert.Nil(t, entry)
		assert.Nil(t, view)
		mockWishlistRepo.AssertNotCalled(t, "UpsertEntry", mock.Anything, mock.Anything, mock.Anything)

		mock.AssertExpectationsForObjects(t, mockDealRepo)
	})

	t.Run("DealInactive", func(t *testing.T) {
		ctx := context.Background()
		mockDealRepo := new(MockDealRepository)
		mockWishlistRepo := new(MockWishlistRepository)
		mockDBExecutor := new(MockDBExecutor)

		service := NewWishlistService(mockDBExecutor, mockDealRepo, mockWishlistRepo)

		deal := activeTestDeal()
		deal.IsActive = false
		mockDealRepo.On("GetDealByID", ctx, mock.Anything, deal.ID).Return(deal, nil).Once()

		entry, view, err := service.Add(ctx, subscriber, deal.ID, false)

		assert.ErrorIs(t, err, util.ErrDealInactive)
		assert.Nil(t, entry)
		assert.Nil(t, view)
		mockWishlistRepo.AssertNotCalled(t, "UpsertEntry", mock.Anything, mock.Anything, mock.Anything)

		mock.AssertExpectationsForObjects(t, mockDealRepo)
	})
}

func TestWishlistUpdate(t *testing.T) {
	subscriber := token.Identity{UserID: uuid.New(), Email: "sub@example.com", IsSubscriber: true}
	nonSubscriber := token.Identity{UserID: uuid.New(), Email: "free@example.com", IsSubscriber: false}

	t.Run("SuccessfulUpdate", func(t *testing.T) {
		ctx := context.Background()
		mockDealRepo := new(MockDealRepository)
		mockWishlistRepo := new(MockWishlistRepository)
		mockDBExecutor := new(MockDBExecutor)

		service := NewWishlistService(mockDBExecutor, mockDealRepo, mockWishlistRepo)

		dealID := uuid.New()
		updated := domain.NewWishlistEntry(subscriber.UserID, dealID, true)
		mockWishlistRepo.On("UpdateAlert", ctx, mock.Anything, subscriber.UserID, dealID, true).Return(updated, nil).Once()

		entry, err := service.Update(ctx, subscriber, dealID, true)

		assert.NoError(t, err)
		assert.True(t, entry.AlertEnabled)

		mock.AssertExpectationsForObjects(t, mockWishlistRepo)
	})

	t.Run("NonSubscriberDisablesAlert", func(t *testing.T) {
		// Turning alerts off never requires the entitlement.
		ctx := context.Background()
		mockDealRepo := new(MockDealRepository)
		mockWishlistRepo := new(MockWishlistRepository)
		mockDBExecutor := new(MockDBExecutor)

		service := NewWishlistService(mockDBExecutor, mockDealRepo, mockWishlistRepo)

		dealID := uuid.New()
		updated := domain.NewWishlistEntry(nonSubscriber.UserID, dealID, false)
		mockWishlistRepo.On("UpdateAlert", ctx, mock.Anything, nonSubscriber.UserID, dealID, false).Return(updated, nil).Once()

		entry, err := service.Update(ctx, nonSubscriber, dealID, false)

		assert.NoError(t, err)
		assert.False(t, entry.AlertEnabled)

		mock.AssertExpectationsForObjects(t, mockWishlistRepo)
	})

	t.Run("NonSubscriberEnablesAlert", func(t *testing.T) {
		ctx := context.Background()
		mockDealRepo := new(MockDealRepository)
		mockWishlistRepo := new(MockWishlistRepository)
		mockDBExecutor := new(MockDBExecutor)

		service := NewWishlistService(mockDBExecutor, mockDealRepo, mockWishlistRepo)

		entry, err := service.Update(ctx, nonSubscriber, uuid.New(), true)

		assert.ErrorIs(t, err, util.ErrSubscriberOnly)
		assert.Nil(t, entry)
		mockWishlistRepo.AssertNotCalled(t, "UpdateAlert", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("EntryNotFound", func(t *testing.T) {
		ctx := context.Background()
		mockDealRepo := new(MockDealRepository)
		mockWishlistRepo := new(MockWishlistRepository)
		mockDBExecutor := new(MockDBExecutor)

		service := NewWishlistService(mockDBExecutor, mockDealRepo, mockWishlistRepo)

		dealID := uuid.New()
		mockWishlistRepo.On("UpdateAlert", ctx, mock.Anything, subscriber.UserID, dealID, true).Return(nil, util.ErrNotFound).Once()

		entry, err := service.Update(ctx, subscriber, dealID, true)

		assert.ErrorIs(t, err, util.ErrEntryNotFound)
		assert.Nil(t, entry)

		mock.AssertExpectationsForObjects(t, mockWishlistRepo)
	})
}

func TestWishlistRemove(t *testing.T) {
	userID := uuid.New()

	t.Run("SuccessfulRemove", func(t *testing.T) {
		ctx := context.Background()
		mockDealRepo := new(MockDealRepository)
		mockWishlistRepo := new(MockWishlistRepository)
		mockDBExecutor := new(MockDBExecutor)

		service := NewWishlistService(mockDBExecutor, mockDealRepo, mockWishlistRepo)

		dealID := uuid.New()
		mockWishlistRepo.On("DeleteEntry", ctx, mock.Anything, userID, dealID).Return(nil).Once()

		err := service.Remove(ctx, userID, dealID)

		assert.NoError(t, err)

		mock.AssertExpectationsForObjects(t, mockWishlistRepo)
	})

	t.Run("EntryNotFound", func(t *testing.T) {
		ctx := context.Background()
		mockDealRepo := new(MockDealRepository)
		mockWishlistRepo := new(MockWishlistRepository)
		mockDBExecutor := new(MockDBExecutor)

		service := NewWishlistService(mockDBExecutor, mockDealRepo, mockWishlistRepo)

		dealID := uuid.New()
		mockWishlistRepo.On("DeleteEntry", ctx, mock.Anything, userID, dealID).Return(util.ErrNotFound).Once()

		err := service.Remove(ctx, userID, dealID)

		assert.ErrorIs(t, err, util.ErrEntryNotFound)

		mock.AssertExpectationsForObjects(t, mockWishlistRepo)
	})
}

func TestWishlistList(t *testing.T) {
	userID := uuid.New()

	t.Run("JoinsDealViews", func(t *testing.T) {
		ctx := context.Background()
		mockDealRepo := new(MockDealRepository)
		mockWishlistRepo := new(MockWishlistRepository)
		mockDBExecutor := new(MockDBExecutor)

		service := NewWishlistService(mockDBExecutor, mockDealRepo, mockWishlistRepo)

		deal := activeTestDeal()
		withDeal := domain.WishlistEntryWithDeal{
			Entry: *domain.NewWishlistEntry(userID, deal.ID, false),
			Deal:  deal,
		}
		orphaned := domain.WishlistEntryWithDeal{
			Entry: *domain.NewWishlistEntry(userID, uuid.New(), false),
			Deal:  nil, // Deal hard-deleted after the entry was created.
		}
		mockWishlistRepo.On("ListEntries", ctx, mock.Anything, userID, 20, 0).
			Return([]domain.WishlistEntryWithDeal{withDeal, orphaned}, int64(2), nil).Once()

		items, total, err := service.List(ctx, userID, 20, 0)

		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, items, 2)
		assert.NotNil(t, items[0].Deal)
		assert.Equal(t, int64(55), items[0].Deal.DiscountPercentage)
		assert.Nil(t, items[1].Deal)

		mock.AssertExpectationsForObjects(t, mockWishlistRepo)
	})

	t.Run("ClampsPagination", func(t *testing.T) {
		ctx := context.Background()
		mockDealRepo := new(MockDealRepository)
		mockWishlistRepo := new(MockWishlistRepository)
		mockDBExecutor := new(MockDBExecutor)

		service := NewWishlistService(mockDBExecutor, mockDealRepo, mockWishlistRepo)

		mockWishlistRepo.On("ListEntries", ctx, mock.Anything, userID, maxPageSize, 0).
			Return([]domain.WishlistEntryWithDeal{}, int64(0), nil).Once()

		items, total, err := service.List(ctx, userID, 5000, -3)

		assert.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, items)

		mock.AssertExpectationsForObjects(t, mockWishlistRepo)
	})
}

func TestWishlistCount(t *testing.T) {
	ctx := context.Background()
	mockDealRepo := new(MockDealRepository)
	mockWishlistRepo := new(MockWishlistRepository)
	mockDBExecutor := new(MockDBExecutor)

	service := NewWishlistService(mockDBExecutor, mockDealRepo, mockWishlistRepo)

	userID := uuid.New()
	mockWishlistRepo.On("CountEntries", ctx, mock.Anything, userID).Return(int64(3), nil).Once()

	count, err := service.Count(ctx, userID)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)

	mock.AssertExpectationsForObjects(t, mockWishlistRepo)
}
