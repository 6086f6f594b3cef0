package models

// Account represents one user's entry in the Ice ledger.
// LastDaily is seconds since the Unix epoch; 0 means never claimed.
type Account struct {
	ID        int64   `json:"-"`
	Balance   int64   `json:"balance"`
	LastDaily float64 `json:"last_daily"`
}
