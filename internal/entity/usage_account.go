package entity

import (
	"time"
)

// UsageAccount represents one user's analysis quota for data transfer
// between layers. It is only ever mutated through the ledger.
type UsageAccount struct {
	UserID        string    `json:"user_id"`
	Credits       int       `json:"credits"`
	LastResetDate time.Time `json:"last_reset_date"`
	AdRewardsUsed int       `json:"ad_rewards_used"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Lifetime statistics; survive monthly resets.
	TotalAttempts int `json:"total_attempts"`
	SuccessCount  int `json:"success_count"`
	FailureCount  int `json:"failure_count"`
}

// PeriodStale reports whether the account's reset marker belongs to an
// earlier calendar month than now. The comparison is month+year, not a
// rolling 30-day window.
func (a UsageAccount) PeriodStale(now time.Time) bool {
	return a.LastResetDate.Year() != now.Year() || a.LastResetDate.Month() != now.Month()
}
