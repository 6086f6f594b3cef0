package store

import (
	"context"
	"errors"

	"icedealer/models"
)

// ErrPersistence marks failures to write the ledger to its backing
// storage. Callers can detect it with errors.Is and decide whether to
// fail the command or continue with in-memory state.
var ErrPersistence = errors.New("ledger persistence failed")

// Store is the authoritative persisted ledger of accounts.
// GetAccount returns (nil, nil) when the account does not exist.
// ListAccounts returns accounts in their original insertion order.
type Store interface {
	GetAccount(ctx context.Context, accountID int64) (*models.Account, error)
	CreateAccount(ctx context.Context, accountID int64, initialBalance int64) (*models.Account, error)
	UpdateAccount(ctx context.Context, account *models.Account) error
	ListAccounts(ctx context.Context) ([]*models.Account, error)
}
