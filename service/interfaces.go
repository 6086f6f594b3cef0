package service

import (
	"context"
	"errors"
	"time"

	"icedealer/models"
)

// Rand is the random source injected into game and reward draws so
// tests can drive deterministic outcomes. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Errors for invalid user input. All are rejected before any state
// change, persistence, or random draw.
var (
	ErrInvalidChoice       = errors.New("invalid choice")
	ErrInvalidWager        = errors.New("bet amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// AccountService manages ledger accounts. Mutations are serialized so
// concurrent commands for the same account cannot lose an update.
type AccountService interface {
	// GetOrCreateAccount retrieves an existing account or creates a new
	// one with the starting balance, persisting it immediately.
	GetOrCreateAccount(ctx context.Context, accountID int64) (*models.Account, error)

	// ApplyDelta adds a signed delta to the balance, clamping at zero,
	// and persists the ledger. Returns the updated account.
	ApplyDelta(ctx context.Context, accountID int64, delta int64, transactionType models.TransactionType) (*models.Account, error)

	// SetLastDaily records the timestamp of a successful daily claim.
	SetLastDaily(ctx context.Context, accountID int64, claimedAt float64) error
}

// GamblingService computes game outcomes and applies the payouts.
type GamblingService interface {
	Flip(ctx context.Context, accountID int64, choice string, wager int64) (*models.FlipResult, error)
	Slots(ctx context.Context, accountID int64, wager int64) (*models.SlotsResult, error)
	HighLow(ctx context.Context, accountID int64, choice string, wager int64) (*models.HighLowResult, error)
}

// DailyService gates and applies the daily reward claim.
type DailyService interface {
	// CheckDaily reports whether the account may claim now and, if not,
	// how long remains on the cooldown.
	CheckDaily(account *models.Account, now time.Time) (bool, time.Duration)

	// Claim attempts a daily claim at the given time. A rejected claim
	// is a result, not an error: Claimed is false and Remaining is set.
	Claim(ctx context.Context, accountID int64, now time.Time) (*models.DailyResult, error)
}

// LeaderboardService reads the top accounts by balance.
type LeaderboardService interface {
	// TopAccounts returns up to limit accounts with positive balances,
	// ordered by balance descending; ties keep their original insertion
	// order in the ledger.
	TopAccounts(ctx context.Context, limit int) ([]*models.Account, error)
}
