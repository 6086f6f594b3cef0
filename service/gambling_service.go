package service

import (
	"context"
	"fmt"
	"strings"

	"icedealer/events"
	"icedealer/models"
)

const (
	slotsJackpotMultiplier = 14
	slotsPairMultiplier    = 1

	highLowMax   = 100
	highLowPivot = 50
)

// SlotSymbols is the fixed reel alphabet. Each reel draws uniformly
// and independently from it.
var SlotSymbols = []string{"💎", "🍒", "7️⃣", "🧊", "🍊", "🔔"}

var coinSides = []models.CoinSide{models.CoinHeads, models.CoinTails}

type gamblingService struct {
	accounts AccountService
	eventBus *events.Bus
	rng      Rand
}

// NewGamblingService creates a new gambling service
func NewGamblingService(accounts AccountService, eventBus *events.Bus, rng Rand) GamblingService {
	return &gamblingService{
		accounts: accounts,
		eventBus: eventBus,
		rng:      rng,
	}
}

// validateWager checks the stake against the account before any random
// draw is consumed. Rejections leave the ledger untouched.
func (s *gamblingService) validateWager(ctx context.Context, accountID int64, wager int64) (*models.Account, error) {
	if wager <= 0 {
		return nil, ErrInvalidWager
	}

	account, err := s.accounts.GetOrCreateAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Balance < wager {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientBalance, account.Balance, wager)
	}

	return account, nil
}

// Flip resolves a coin flip bet: an even-money win if the draw matches
// the player's call.
func (s *gamblingService) Flip(ctx context.Context, accountID int64, choice string, wager int64) (*models.FlipResult, error) {
	side := models.CoinSide(strings.ToLower(choice))
	if side != models.CoinHeads && side != models.CoinTails {
		return nil, fmt.Errorf("%w: %q (want heads or tails)", ErrInvalidChoice, choice)
	}

	if _, err := s.validateWager(ctx, accountID, wager); err != nil {
		return nil, err
	}

	landed := coinSides[s.rng.Intn(len(coinSides))]

	result := &models.FlipResult{
		Choice: side,
		Landed: landed,
		Wager:  wager,
	}
	transactionType := models.TransactionTypeFlipLoss
	if landed == side {
		result.Outcome = models.OutcomeWin
		result.Delta = wager
		transactionType = models.TransactionTypeFlipWin
	} else {
		result.Outcome = models.OutcomeLose
		result.Delta = -wager
	}

	account, err := s.accounts.ApplyDelta(ctx, accountID, result.Delta, transactionType)
	if err != nil {
		return nil, err
	}
	result.NewBalance = account.Balance

	return result, nil
}

// Slots resolves a three-reel spin. Three of a kind pays 14x the
// wager; a pair on reels 0/1 or 1/2 pays 1x. A pair split across
// reels 0 and 2 does not pay — the asymmetric rule is intentional and
// pinned by tests, so do not "fix" it without a product decision.
func (s *gamblingService) Slots(ctx context.Context, accountID int64, wager int64) (*models.SlotsResult, error) {
	if _, err := s.validateWager(ctx, accountID, wager); err != nil {
		return nil, err
	}

	var reels [3]string
	for i := range reels {
		reels[i] = SlotSymbols[s.rng.Intn(len(SlotSymbols))]
	}

	result := &models.SlotsResult{
		Reels: reels,
		Wager: wager,
	}
	transactionType := models.TransactionTypeSlotsLoss
	switch {
	case reels[0] == reels[1] && reels[1] == reels[2]:
		result.Outcome = models.OutcomeWin
		result.Jackpot = true
		result.Delta = wager * slotsJackpotMultiplier
		transactionType = models.TransactionTypeSlotsWin
	case reels[0] == reels[1] || reels[1] == reels[2]:
		result.Outcome = models.OutcomeWin
		result.Delta = wager * slotsPairMultiplier
		transactionType = models.TransactionTypeSlotsWin
	default:
		result.Outcome = models.OutcomeLose
		result.Delta = -wager
	}

	account, err := s.accounts.ApplyDelta(ctx, accountID, result.Delta, transactionType)
	if err != nil {
		return nil, err
	}
	result.NewBalance = account.Balance

	if result.Jackpot {
		s.eventBus.Emit(ctx, events.JackpotHitEvent{
			AccountID: accountID,
			Symbol:    reels[0],
			Wager:     wager,
			Payout:    result.Delta,
		})
	}

	return result, nil
}

// HighLow resolves a high-low bet on a uniform draw in [1,100].
// "high" wins above the pivot, "low" below it; landing exactly on the
// pivot is a push and the ledger is not touched.
func (s *gamblingService) HighLow(ctx context.Context, accountID int64, choice string, wager int64) (*models.HighLowResult, error) {
	call := models.HighLowChoice(strings.ToLower(choice))
	if call != models.ChoiceHigh && call != models.ChoiceLow {
		return nil, fmt.Errorf("%w: %q (want high or low)", ErrInvalidChoice, choice)
	}

	account, err := s.validateWager(ctx, accountID, wager)
	if err != nil {
		return nil, err
	}

	draw := s.rng.Intn(highLowMax) + 1

	result := &models.HighLowResult{
		Choice: call,
		Draw:   draw,
		Wager:  wager,
	}

	if draw == highLowPivot {
		result.Outcome = models.OutcomePush
		result.NewBalance = account.Balance
		return result, nil
	}

	won := (call == models.ChoiceHigh && draw > highLowPivot) ||
		(call == models.ChoiceLow && draw < highLowPivot)
	transactionType := models.TransactionTypeHighLowLoss
	if won {
		result.Outcome = models.OutcomeWin
		result.Delta = wager
		transactionType = models.TransactionTypeHighLowWin
	} else {
		result.Outcome = models.OutcomeLose
		result.Delta = -wager
	}

	updated, err := s.accounts.ApplyDelta(ctx, accountID, result.Delta, transactionType)
	if err != nil {
		return nil, err
	}
	result.NewBalance = updated.Balance

	return result, nil
}
