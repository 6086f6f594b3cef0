package models

import "time"

// Outcome classifies the result of a bet for presentation.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
	OutcomePush Outcome = "push"
)

// CoinSide is a coin flip choice or result.
type CoinSide string

const (
	CoinHeads CoinSide = "heads"
	CoinTails CoinSide = "tails"
)

// HighLowChoice is the player's call in the high-low game.
type HighLowChoice string

const (
	ChoiceHigh HighLowChoice = "high"
	ChoiceLow  HighLowChoice = "low"
)

// FlipResult represents the outcome of a coin flip bet (returned to the user)
type FlipResult struct {
	Choice     CoinSide
	Landed     CoinSide
	Outcome    Outcome
	Wager      int64
	Delta      int64
	NewBalance int64
}

// SlotsResult represents the outcome of a slots spin (returned to the user)
type SlotsResult struct {
	Reels      [3]string
	Outcome    Outcome
	Jackpot    bool
	Wager      int64
	Delta      int64
	NewBalance int64
}

// HighLowResult represents the outcome of a high-low bet (returned to the user)
type HighLowResult struct {
	Choice     HighLowChoice
	Draw       int
	Outcome    Outcome
	Wager      int64
	Delta      int64
	NewBalance int64
}

// DailyResult represents the outcome of a daily claim attempt.
// When Claimed is false, Remaining holds the time left on the cooldown.
type DailyResult struct {
	Claimed    bool
	Reward     int64
	Remaining  time.Duration
	NewBalance int64
}
