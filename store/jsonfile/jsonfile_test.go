package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"icedealer/models"
	"icedealer/store"
)

func ledgerPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "ice_ledger.json")
}

func TestStore_AbsentFileStartsEmpty(t *testing.T) {
	ctx := context.Background()
	s := New(ledgerPath(t))

	accounts, err := s.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	account, err := s.GetAccount(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestStore_CorruptFileStartsEmpty(t *testing.T) {
	ctx := context.Background()
	path := ledgerPath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json at all"), 0o644))

	s := New(path)

	accounts, err := s.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := New(ledgerPath(t))

	created, err := s.CreateAccount(ctx, 111, 5000)
	require.NoError(t, err)
	assert.Equal(t, int64(111), created.ID)
	assert.Equal(t, int64(5000), created.Balance)
	assert.Equal(t, float64(0), created.LastDaily)

	got, err := s.GetAccount(ctx, 111)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(5000), got.Balance)

	// duplicate creation is rejected
	_, err = s.CreateAccount(ctx, 111, 5000)
	assert.Error(t, err)
}

func TestStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := New(ledgerPath(t))

	_, err := s.CreateAccount(ctx, 1, 5000)
	require.NoError(t, err)

	first, err := s.GetAccount(ctx, 1)
	require.NoError(t, err)
	first.Balance = 0

	second, err := s.GetAccount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), second.Balance, "mutating a returned account must not touch the store")
}

func TestStore_UpdateUnknownAccount(t *testing.T) {
	ctx := context.Background()
	s := New(ledgerPath(t))

	err := s.UpdateAccount(ctx, &models.Account{ID: 999, Balance: 100})
	assert.Error(t, err)
}

func TestStore_RoundTripPreservesStateAndOrder(t *testing.T) {
	ctx := context.Background()
	path := ledgerPath(t)

	s := New(path)
	_, err := s.CreateAccount(ctx, 30, 500)
	require.NoError(t, err)
	_, err = s.CreateAccount(ctx, 10, 500)
	require.NoError(t, err)
	_, err = s.CreateAccount(ctx, 20, 100)
	require.NoError(t, err)

	require.NoError(t, s.UpdateAccount(ctx, &models.Account{ID: 20, Balance: 250, LastDaily: 1700000000.123456}))

	// reopen from disk
	reloaded := New(path)
	accounts, err := reloaded.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 3)

	// insertion order survives the round trip, not numeric ID order
	assert.Equal(t, int64(30), accounts[0].ID)
	assert.Equal(t, int64(10), accounts[1].ID)
	assert.Equal(t, int64(20), accounts[2].ID)

	assert.Equal(t, int64(250), accounts[2].Balance)
	assert.InDelta(t, 1700000000.123456, accounts[2].LastDaily, 1e-6)
}

func TestStore_FileFormat(t *testing.T) {
	ctx := context.Background()
	path := ledgerPath(t)

	s := New(path)
	_, err := s.CreateAccount(ctx, 123, 5000)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]map[string]json.Number
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&doc))

	record, ok := doc["123"]
	require.True(t, ok, "keys are string-encoded account IDs")
	assert.Contains(t, record, "balance")
	assert.Contains(t, record, "last_daily")

	// 4-space indentation, matching the historical file layout
	assert.Contains(t, string(raw), "\n    \"123\"")
}

func TestStore_FailedSaveRollsBackCreate(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "missing")
	path := filepath.Join(dir, "ice_ledger.json")

	// the ledger directory does not exist yet, so the temp-file write
	// behind save fails
	s := New(path)
	_, err := s.CreateAccount(ctx, 1, 5000)
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrPersistence))

	got, err := s.GetAccount(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got, "a create that never reached disk must not linger in memory")

	accounts, err := s.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	// once the directory exists, the same account can be created
	require.NoError(t, os.MkdirAll(dir, 0o755))
	created, err := s.CreateAccount(ctx, 1, 5000)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), created.Balance)
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	path := ledgerPath(t)

	s := New(path)
	for id := int64(1); id <= 5; id++ {
		_, err := s.CreateAccount(ctx, id, 1000)
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(path), entries[0].Name())
}
