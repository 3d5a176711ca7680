package constants

import "time"

// Credit and quota constants for the analysis ledger.
const (
	// MonthlyFreeCredits is the allotment every account starts each calendar
	// month with.
	MonthlyFreeCredits = 10

	// AdRewardAmount is how many credits a single confirmed rewarded-ad view
	// grants.
	AdRewardAmount = 5

	// MaxAdRewardsPerMonth caps rewarded-ad grants per calendar month.
	MaxAdRewardsPerMonth = 3

	// AttemptRetention is how long analysis attempt records are kept before
	// they are purged.
	AttemptRetention = 30 * 24 * time.Hour
)

// Vision provider constants.
const (
	// ModelCacheTTL is how long a fetched model list is reused before the
	// provider is asked again.
	ModelCacheTTL = time.Hour

	// MaxModelAttempts bounds how many models are tried for a single request
	// when the selected model is unavailable.
	MaxModelAttempts = 3
)
