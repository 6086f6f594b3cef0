package models

// TransactionType represents the reason for a balance change
type TransactionType string

const (
	// Gambling-related transactions
	TransactionTypeFlipWin     TransactionType = "flip_win"
	TransactionTypeFlipLoss    TransactionType = "flip_loss"
	TransactionTypeSlotsWin    TransactionType = "slots_win"
	TransactionTypeSlotsLoss   TransactionType = "slots_loss"
	TransactionTypeHighLowWin  TransactionType = "highlow_win"
	TransactionTypeHighLowLoss TransactionType = "highlow_loss"

	// System transactions
	TransactionTypeInitial     TransactionType = "initial"
	TransactionTypeDailyReward TransactionType = "daily_reward"
)
