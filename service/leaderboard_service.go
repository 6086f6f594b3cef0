package service

import (
	"context"
	"fmt"
	"sort"

	"icedealer/models"
	"icedealer/store"
)

type leaderboardService struct {
	store store.Store
}

// NewLeaderboardService creates a new leaderboard service
func NewLeaderboardService(st store.Store) LeaderboardService {
	return &leaderboardService{store: st}
}

// TopAccounts returns up to limit accounts with positive balances,
// ordered by balance descending. The store lists accounts in their
// original insertion order and the sort is stable, so equal balances
// keep that order.
func (s *leaderboardService) TopAccounts(ctx context.Context, limit int) ([]*models.Account, error) {
	accounts, err := s.store.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	ranked := make([]*models.Account, 0, len(accounts))
	for _, account := range accounts {
		if account.Balance > 0 {
			ranked = append(ranked, account)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Balance > ranked[j].Balance
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
