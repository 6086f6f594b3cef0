package service

import (
	"context"
	"fmt"
	"sync"

	"icedealer/events"
	"icedealer/models"
	"icedealer/store"
)

// accountService implements the AccountService interface
type accountService struct {
	store           store.Store
	eventBus        *events.Bus
	startingBalance int64

	// Serializes the read-modify-persist sequence. Without it two
	// concurrent mutations of the same account could both read the
	// pre-mutation balance and one update would be lost.
	mu sync.Mutex
}

// NewAccountService creates a new account service
func NewAccountService(st store.Store, eventBus *events.Bus, startingBalance int64) AccountService {
	return &accountService{
		store:           st,
		eventBus:        eventBus,
		startingBalance: startingBalance,
	}
}

// GetOrCreateAccount retrieves an existing account or creates a new one
// with the starting balance
func (s *accountService) GetOrCreateAccount(ctx context.Context, accountID int64) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.store.GetAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	if account != nil {
		return account, nil
	}

	account, err = s.store.CreateAccount(ctx, accountID, s.startingBalance)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.eventBus.Emit(ctx, events.AccountCreatedEvent{
		AccountID:      accountID,
		InitialBalance: s.startingBalance,
	})

	return account, nil
}

// ApplyDelta adds delta to the account balance, flooring at zero, and
// persists the ledger
func (s *accountService) ApplyDelta(ctx context.Context, accountID int64, delta int64, transactionType models.TransactionType) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.store.GetAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		return nil, fmt.Errorf("account %d not found", accountID)
	}

	oldBalance := account.Balance
	newBalance := oldBalance + delta
	if newBalance < 0 {
		newBalance = 0
	}
	account.Balance = newBalance

	if err := s.store.UpdateAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to persist balance change: %w", err)
	}

	s.eventBus.Emit(ctx, events.BalanceChangeEvent{
		AccountID:       accountID,
		OldBalance:      oldBalance,
		NewBalance:      newBalance,
		ChangeAmount:    delta,
		TransactionType: transactionType,
	})

	return account, nil
}

// SetLastDaily records the timestamp of a successful daily claim
func (s *accountService) SetLastDaily(ctx context.Context, accountID int64, claimedAt float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.store.GetAccount(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		return fmt.Errorf("account %d not found", accountID)
	}

	account.LastDaily = claimedAt
	if err := s.store.UpdateAccount(ctx, account); err != nil {
		return fmt.Errorf("failed to persist daily claim: %w", err)
	}

	return nil
}
