package ledger

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/knitworks/pattern-analyzer/constants"
	"github.com/knitworks/pattern-analyzer/internal/common"
	"github.com/knitworks/pattern-analyzer/internal/entity"
)

// Store is what the ledger needs from a backing account store. The remote
// repository and the sqlite fallback both satisfy it.
type Store interface {
	GetOrCreate(ctx context.Context, userID string, now time.Time) (*entity.UsageAccount, error)
	ConsumeCredit(ctx context.Context, userID string, now time.Time) (bool, error)
	GrantAdReward(ctx context.Context, userID string, amount int, now time.Time) (int, error)
	RecordOutcome(ctx context.Context, userID string, succeeded bool) error
}

// Ledger tracks the monthly analysis quota per user. The remote store is
// authoritative; when it is unreachable the ledger falls back silently to
// the local store. Only when both paths fail does an operation error.
type Ledger struct {
	remote Store // may be nil in local-only mode
	local  Store
	log    *slog.Logger
	now    func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

func New(remote, local Store, logger *slog.Logger, opts ...Option) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Ledger{
		remote: remote,
		local:  local,
		log:    logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// GetRemainingCredits reads the current balance, creating the account with
// the full monthly allotment on first use.
func (l *Ledger) GetRemainingCredits(ctx context.Context, userID string) (int, error) {
	acct, err := l.Account(ctx, userID)
	if err != nil {
		return 0, err
	}
	return acct.Credits, nil
}

// Account loads the full account document (balance plus lifetime stats).
func (l *Ledger) Account(ctx context.Context, userID string) (*entity.UsageAccount, error) {
	if userID == "" {
		return nil, common.ErrNotAuthenticated
	}
	now := l.now()

	if l.remote != nil {
		acct, err := l.remote.GetOrCreate(ctx, userID, now)
		if err == nil {
			return acct, nil
		}
		l.log.Warn("ledger.account.fallback", "user_id", userID, "err", err)
	}

	acct, err := l.local.GetOrCreate(ctx, userID, now)
	if err != nil {
		l.log.Error("ledger.account.unavailable", "user_id", userID, "err", err)
		return nil, common.WrapError(common.ErrStorageUnavailable, "load usage account")
	}
	return acct, nil
}

// ConsumeCredit atomically spends one credit. It returns false, without
// error, when the balance is already zero.
func (l *Ledger) ConsumeCredit(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, common.ErrNotAuthenticated
	}
	now := l.now()

	if l.remote != nil {
		ok, err := l.remote.ConsumeCredit(ctx, userID, now)
		if err == nil {
			l.log.Info("ledger.consume", "user_id", userID, "consumed", ok)
			return ok, nil
		}
		l.log.Warn("ledger.consume.fallback", "user_id", userID, "err", err)
	}

	ok, err := l.local.ConsumeCredit(ctx, userID, now)
	if err != nil {
		l.log.Error("ledger.consume.unavailable", "user_id", userID, "err", err)
		return false, common.WrapError(common.ErrStorageUnavailable, "consume credit")
	}
	return ok, nil
}

// GrantAdReward adds credits for a confirmed rewarded-ad view, bounded by
// the per-period cap. Returns the new balance.
func (l *Ledger) GrantAdReward(ctx context.Context, userID string, amount int) (int, error) {
	if userID == "" {
		return 0, common.ErrNotAuthenticated
	}
	if amount <= 0 {
		amount = constants.AdRewardAmount
	}
	now := l.now()

	if l.remote != nil {
		balance, err := l.remote.GrantAdReward(ctx, userID, amount, now)
		if err == nil || errors.Is(err, common.ErrAdRewardLimitReached) {
			return balance, err
		}
		l.log.Warn("ledger.reward.fallback", "user_id", userID, "err", err)
	}

	balance, err := l.local.GrantAdReward(ctx, userID, amount, now)
	if errors.Is(err, common.ErrAdRewardLimitReached) {
		return 0, err
	}
	if err != nil {
		l.log.Error("ledger.reward.unavailable", "user_id", userID, "err", err)
		return 0, common.WrapError(common.ErrStorageUnavailable, "grant ad reward")
	}
	l.log.Info("ledger.reward.granted", "user_id", userID, "amount", amount, "balance", balance)
	return balance, nil
}

// GetRemainingAdRewards reports how many rewarded-ad grants are left this
// period, floored at zero.
func (l *Ledger) GetRemainingAdRewards(ctx context.Context, userID string) (int, error) {
	acct, err := l.Account(ctx, userID)
	if err != nil {
		return 0, err
	}
	remaining := constants.MaxAdRewardsPerMonth - acct.AdRewardsUsed
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// RecordOutcome bumps the lifetime attempt counters. Accounting noise never
// fails an analysis, so errors are logged and swallowed.
func (l *Ledger) RecordOutcome(ctx context.Context, userID string, succeeded bool) {
	if userID == "" {
		return
	}
	if l.remote != nil {
		if err := l.remote.RecordOutcome(ctx, userID, succeeded); err == nil {
			return
		}
	}
	if err := l.local.RecordOutcome(ctx, userID, succeeded); err != nil {
		l.log.Warn("ledger.outcome.dropped", "user_id", userID, "err", err)
	}
}
