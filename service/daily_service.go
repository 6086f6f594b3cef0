package service

import (
	"context"
	"sync"
	"time"

	"icedealer/events"
	"icedealer/models"
)

type dailyService struct {
	accounts  AccountService
	eventBus  *events.Bus
	rng       Rand
	rewardMin int64
	rewardMax int64
	cooldown  time.Duration

	// Serializes the full check-then-reward sequence. The account
	// service only serializes individual store operations, so without
	// this two concurrent claims could both read a stale LastDaily and
	// both pass the cooldown gate.
	mu sync.Mutex
}

// NewDailyService creates a new daily reward service
func NewDailyService(accounts AccountService, eventBus *events.Bus, rng Rand, rewardMin, rewardMax int64, cooldown time.Duration) DailyService {
	return &dailyService{
		accounts:  accounts,
		eventBus:  eventBus,
		rng:       rng,
		rewardMin: rewardMin,
		rewardMax: rewardMax,
		cooldown:  cooldown,
	}
}

// CheckDaily reports whether the cooldown has elapsed since the last
// successful claim. LastDaily of 0 means never claimed.
func (s *dailyService) CheckDaily(account *models.Account, now time.Time) (bool, time.Duration) {
	elapsedSeconds := float64(now.UnixNano())/float64(time.Second) - account.LastDaily
	elapsed := time.Duration(elapsedSeconds * float64(time.Second))

	if elapsed >= s.cooldown {
		return true, 0
	}
	return false, s.cooldown - elapsed
}

// Claim attempts a daily claim at the given time. Rejections carry the
// remaining cooldown and leave the balance untouched.
func (s *dailyService) Claim(ctx context.Context, accountID int64, now time.Time) (*models.DailyResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.accounts.GetOrCreateAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	eligible, remaining := s.CheckDaily(account, now)
	if !eligible {
		return &models.DailyResult{
			Claimed:    false,
			Remaining:  remaining,
			NewBalance: account.Balance,
		}, nil
	}

	reward := s.rewardMin + int64(s.rng.Intn(int(s.rewardMax-s.rewardMin)+1))

	updated, err := s.accounts.ApplyDelta(ctx, accountID, reward, models.TransactionTypeDailyReward)
	if err != nil {
		return nil, err
	}

	claimedAt := float64(now.UnixNano()) / float64(time.Second)
	if err := s.accounts.SetLastDaily(ctx, accountID, claimedAt); err != nil {
		return nil, err
	}

	s.eventBus.Emit(ctx, events.DailyClaimedEvent{
		AccountID:  accountID,
		Reward:     reward,
		NewBalance: updated.Balance,
	})

	return &models.DailyResult{
		Claimed:    true,
		Reward:     reward,
		NewBalance: updated.Balance,
	}, nil
}
