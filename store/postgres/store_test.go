package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"icedealer/database"
	"icedealer/models"
)

// setupTestStore starts a throwaway PostgreSQL container, runs the
// migrations, and returns a store backed by it. The container is torn
// down with the test.
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed store test in short mode")
	}

	ctx := context.Background()

	labels := map[string]string{
		"test":      "icedealer-store",
		"test-name": t.Name(),
		"timestamp": time.Now().Format("20060102-150405"),
		"cleanup":   "auto",
	}

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("icedealer_test"),
		tcpostgres.WithUsername("test_user"),
		tcpostgres.WithPassword("test_password"),
		tcpostgres.BasicWaitStrategies(),
		testcontainers.WithLabels(labels),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := container.Terminate(cleanupCtx); err != nil {
			t.Logf("Warning: failed to terminate test container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, database.RunMigrationsWithURL(connStr))

	db, err := database.NewConnection(ctx, connStr, database.PoolSettings{})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	return New(db)
}

func TestStore_CreateGetUpdate(t *testing.T) {
	ctx := context.Background()
	st := setupTestStore(t)

	missing, err := st.GetAccount(ctx, 123)
	require.NoError(t, err)
	assert.Nil(t, missing)

	created, err := st.CreateAccount(ctx, 123, 5000)
	require.NoError(t, err)
	assert.Equal(t, int64(123), created.ID)
	assert.Equal(t, int64(5000), created.Balance)

	created.Balance = 5100
	created.LastDaily = 1700000000.5
	require.NoError(t, st.UpdateAccount(ctx, created))

	got, err := st.GetAccount(ctx, 123)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(5100), got.Balance)
	assert.InDelta(t, 1700000000.5, got.LastDaily, 1e-6)
}

func TestStore_UpdateUnknownAccountFails(t *testing.T) {
	ctx := context.Background()
	st := setupTestStore(t)

	err := st.UpdateAccount(ctx, &models.Account{ID: 999, Balance: 100})
	assert.Error(t, err)
}

func TestStore_ListAccountsKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	st := setupTestStore(t)

	for _, id := range []int64{30, 10, 20} {
		_, err := st.CreateAccount(ctx, id, 500)
		require.NoError(t, err)
	}

	accounts, err := st.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 3)

	ids := []int64{accounts[0].ID, accounts[1].ID, accounts[2].ID}
	assert.Equal(t, []int64{30, 10, 20}, ids)
}
