package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"icedealer/database"
	"icedealer/models"
	"icedealer/store"
)

// Store is a Postgres-backed ledger. It satisfies the same contract
// as the flat-file store; the seq column stands in for the JSON
// document's key order so leaderboard tie-breaks behave identically.
type Store struct {
	db *database.DB
}

// New creates a new Postgres ledger store
func New(db *database.DB) *Store {
	return &Store{db: db}
}

// GetAccount retrieves an account by ID, returning (nil, nil) if absent.
func (s *Store) GetAccount(ctx context.Context, accountID int64) (*models.Account, error) {
	query := `
		SELECT id, balance, last_daily
		FROM accounts
		WHERE id = $1
	`

	var account models.Account
	err := s.db.QueryRow(ctx, query, accountID).Scan(
		&account.ID,
		&account.Balance,
		&account.LastDaily,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account %d: %w", accountID, err)
	}

	return &account, nil
}

// CreateAccount inserts a new account with the given starting balance.
func (s *Store) CreateAccount(ctx context.Context, accountID int64, initialBalance int64) (*models.Account, error) {
	query := `
		INSERT INTO accounts (id, balance)
		VALUES ($1, $2)
		RETURNING id, balance, last_daily
	`

	var account models.Account
	err := s.db.QueryRow(ctx, query, accountID, initialBalance).Scan(
		&account.ID,
		&account.Balance,
		&account.LastDaily,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: create account %d: %v", store.ErrPersistence, accountID, err)
	}

	return &account, nil
}

// UpdateAccount replaces the stored balance and daily-claim timestamp.
func (s *Store) UpdateAccount(ctx context.Context, account *models.Account) error {
	query := `
		UPDATE accounts
		SET balance = $2, last_daily = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := s.db.Exec(ctx, query, account.ID, account.Balance, account.LastDaily)
	if err != nil {
		return fmt.Errorf("%w: update account %d: %v", store.ErrPersistence, account.ID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("account %d not found", account.ID)
	}

	return nil
}

// ListAccounts returns all accounts in insertion order.
func (s *Store) ListAccounts(ctx context.Context) ([]*models.Account, error) {
	query := `
		SELECT id, balance, last_daily
		FROM accounts
		ORDER BY seq
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*models.Account
	for rows.Next() {
		var account models.Account
		if err := rows.Scan(&account.ID, &account.Balance, &account.LastDaily); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, &account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return accounts, nil
}
