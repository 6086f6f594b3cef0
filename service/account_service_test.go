package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"icedealer/events"
	"icedealer/models"
	"icedealer/store"
)

func TestAccountService_GetOrCreateAccount_CreatesOnFirstSight(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockStore)
	service := NewAccountService(mockStore, events.NewBus(), 5000)

	created := &models.Account{ID: 123, Balance: 5000}
	mockStore.On("GetAccount", ctx, int64(123)).Return(nil, nil)
	mockStore.On("CreateAccount", ctx, int64(123), int64(5000)).Return(created, nil)

	account, err := service.GetOrCreateAccount(ctx, 123)

	assert.NoError(t, err)
	assert.Equal(t, int64(123), account.ID)
	assert.Equal(t, int64(5000), account.Balance)
	mockStore.AssertExpectations(t)
}

func TestAccountService_GetOrCreateAccount_ReturnsExisting(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockStore)
	service := NewAccountService(mockStore, events.NewBus(), 5000)

	existing := &models.Account{ID: 123, Balance: 777, LastDaily: 1700000000}
	mockStore.On("GetAccount", ctx, int64(123)).Return(existing, nil)

	account, err := service.GetOrCreateAccount(ctx, 123)

	assert.NoError(t, err)
	assert.Equal(t, int64(777), account.Balance)
	mockStore.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountService_ApplyDelta_ClampsAtZero(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockStore)
	service := NewAccountService(mockStore, events.NewBus(), 5000)

	mockStore.On("GetAccount", ctx, int64(123)).Return(&models.Account{ID: 123, Balance: 100}, nil)
	mockStore.On("UpdateAccount", ctx, mock.MatchedBy(func(a *models.Account) bool {
		return a.ID == 123 && a.Balance == 0
	})).Return(nil)

	account, err := service.ApplyDelta(ctx, 123, -500, models.TransactionTypeSlotsLoss)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), account.Balance)
	mockStore.AssertExpectations(t)
}

func TestAccountService_ApplyDelta_AddsReward(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockStore)
	service := NewAccountService(mockStore, events.NewBus(), 5000)

	mockStore.On("GetAccount", ctx, int64(123)).Return(&models.Account{ID: 123, Balance: 1000}, nil)
	mockStore.On("UpdateAccount", ctx, mock.MatchedBy(func(a *models.Account) bool {
		return a.Balance == 1600
	})).Return(nil)

	account, err := service.ApplyDelta(ctx, 123, 600, models.TransactionTypeDailyReward)

	assert.NoError(t, err)
	assert.Equal(t, int64(1600), account.Balance)
}

func TestAccountService_ApplyDelta_UnknownAccount(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockStore)
	service := NewAccountService(mockStore, events.NewBus(), 5000)

	mockStore.On("GetAccount", ctx, int64(999)).Return(nil, nil)

	_, err := service.ApplyDelta(ctx, 999, 100, models.TransactionTypeFlipWin)

	assert.Error(t, err)
	mockStore.AssertNotCalled(t, "UpdateAccount", mock.Anything, mock.Anything)
}

func TestAccountService_ApplyDelta_SurfacesPersistenceError(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockStore)
	service := NewAccountService(mockStore, events.NewBus(), 5000)

	saveErr := errors.Join(store.ErrPersistence, errors.New("disk full"))
	mockStore.On("GetAccount", ctx, int64(123)).Return(&models.Account{ID: 123, Balance: 1000}, nil)
	mockStore.On("UpdateAccount", ctx, mock.Anything).Return(saveErr)

	_, err := service.ApplyDelta(ctx, 123, 100, models.TransactionTypeFlipWin)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrPersistence))
}

func TestAccountService_SetLastDaily(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockStore)
	service := NewAccountService(mockStore, events.NewBus(), 5000)

	mockStore.On("GetAccount", ctx, int64(123)).Return(&models.Account{ID: 123, Balance: 1000}, nil)
	mockStore.On("UpdateAccount", ctx, mock.MatchedBy(func(a *models.Account) bool {
		return a.LastDaily == 1700000000.5
	})).Return(nil)

	err := service.SetLastDaily(ctx, 123, 1700000000.5)

	assert.NoError(t, err)
	mockStore.AssertExpectations(t)
}
