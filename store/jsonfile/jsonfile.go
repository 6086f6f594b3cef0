package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	log "github.com/sirupsen/logrus"

	"icedealer/models"
	"icedealer/store"
)

// Store persists the full ledger as a single JSON object mapping
// string-encoded account IDs to {"balance", "last_daily"} records.
// The file is rewritten in full on every mutation, via a temp file
// and rename so a crash mid-write cannot corrupt it. Object keys are
// kept in account insertion order, which is what the leaderboard uses
// to break balance ties.
type Store struct {
	path string

	mu       sync.RWMutex
	accounts map[int64]*models.Account
	order    []int64
}

// New opens the ledger at path. An absent or unparseable file yields
// an empty ledger; the ledger file is created on the first mutation.
func New(path string) *Store {
	s := &Store{
		path:     path,
		accounts: make(map[int64]*models.Account),
	}

	if err := s.load(); err != nil {
		log.WithFields(log.Fields{
			"path":  path,
			"error": err,
		}).Warn("Could not load ledger file, starting with empty ledger")
		s.accounts = make(map[int64]*models.Account)
		s.order = nil
		return s
	}

	log.WithFields(log.Fields{
		"path":     path,
		"accounts": len(s.accounts),
	}).Info("Loaded ledger file")
	return s
}

// load reads the backing file, preserving the document's key order as
// the insertion order. A missing file is not an error.
func (s *Store) load() error {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read ledger: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("ledger file is not a JSON object")
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to read ledger key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected ledger key token %v", keyTok)
		}
		accountID, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid account ID %q: %w", key, err)
		}

		var account models.Account
		if err := dec.Decode(&account); err != nil {
			return fmt.Errorf("failed to decode account %d: %w", accountID, err)
		}
		account.ID = accountID

		s.accounts[accountID] = &account
		s.order = append(s.order, accountID)
	}

	return nil
}

// GetAccount retrieves an account by ID, returning (nil, nil) if absent.
func (s *Store) GetAccount(ctx context.Context, accountID int64) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[accountID]
	if !ok {
		return nil, nil
	}
	copied := *account
	return &copied, nil
}

// CreateAccount inserts a new account and persists the full ledger.
func (s *Store) CreateAccount(ctx context.Context, accountID int64, initialBalance int64) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[accountID]; exists {
		return nil, fmt.Errorf("account %d already exists", accountID)
	}

	account := &models.Account{ID: accountID, Balance: initialBalance}
	s.accounts[accountID] = account
	s.order = append(s.order, accountID)

	// Roll back the entry on save failure so a retry does not hit
	// "already exists" for an account that never reached disk.
	if err := s.save(); err != nil {
		delete(s.accounts, accountID)
		s.order = s.order[:len(s.order)-1]
		return nil, err
	}

	copied := *account
	return &copied, nil
}

// UpdateAccount replaces the stored state of an existing account and
// persists the full ledger.
func (s *Store) UpdateAccount(ctx context.Context, account *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.accounts[account.ID]
	if !ok {
		return fmt.Errorf("account %d not found", account.ID)
	}
	existing.Balance = account.Balance
	existing.LastDaily = account.LastDaily

	return s.save()
}

// ListAccounts returns all accounts in insertion order.
func (s *Store) ListAccounts(ctx context.Context) ([]*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]*models.Account, 0, len(s.order))
	for _, accountID := range s.order {
		copied := *s.accounts[accountID]
		accounts = append(accounts, &copied)
	}
	return accounts, nil
}

// save serializes the full mapping and atomically replaces the file.
// Callers must hold the write lock.
func (s *Store) save() error {
	data, err := s.encode()
	if err != nil {
		return fmt.Errorf("%w: encoding ledger: %v", store.ErrPersistence, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: creating temp file in %s: %v", store.ErrPersistence, dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing %s: %v", store.ErrPersistence, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing %s: %v", store.ErrPersistence, tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replacing %s: %v", store.ErrPersistence, s.path, err)
	}

	return nil
}

// encode writes the ledger object with keys in insertion order.
// encoding/json would sort map keys, losing the tie-break order.
func (s *Store) encode() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, accountID := range s.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(strconv.FormatInt(accountID, 10))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		record, err := json.Marshal(s.accounts[accountID])
		if err != nil {
			return nil, err
		}
		buf.Write(record)
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "    "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
