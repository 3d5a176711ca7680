package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/knitworks/pattern-analyzer/constants"
	"github.com/knitworks/pattern-analyzer/gen/ent"
	"github.com/knitworks/pattern-analyzer/gen/ent/usageaccount"
	"github.com/knitworks/pattern-analyzer/internal/common"
	"github.com/knitworks/pattern-analyzer/internal/entity"
)

// UsageRepository is the remote, authoritative store for credit accounts.
// All balance mutations are single conditional UPDATE statements so that
// concurrent callers cannot double-spend.
type UsageRepository interface {
	// GetOrCreate loads the account, creating it with the full monthly
	// allotment on first use. A stale period is reset before returning.
	GetOrCreate(ctx context.Context, userID string, now time.Time) (*entity.UsageAccount, error)
	// ConsumeCredit atomically decrements the balance when it is positive.
	// Returns false, not an error, when the balance is already zero.
	ConsumeCredit(ctx context.Context, userID string, now time.Time) (bool, error)
	// GrantAdReward adds amount when the per-period grant counter is below
	// the cap, and returns the new balance.
	GrantAdReward(ctx context.Context, userID string, amount int, now time.Time) (int, error)
	// RecordOutcome bumps the lifetime attempt counters.
	RecordOutcome(ctx context.Context, userID string, succeeded bool) error
}

type usageRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewUsageRepository(entc *ent.Client, log *slog.Logger) UsageRepository {
	if log == nil {
		log = slog.Default()
	}
	return &usageRepo{ent: entc, log: log}
}

func (r *usageRepo) GetOrCreate(ctx context.Context, userID string, now time.Time) (*entity.UsageAccount, error) {
	if _, err := r.resetIfStale(ctx, userID, now); err != nil {
		return nil, err
	}

	acct, err := r.ent.UsageAccount.Query().
		Where(usageaccount.UserID(userID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		created, cerr := r.ent.UsageAccount.Create().
			SetUserID(userID).
			SetCredits(constants.MonthlyFreeCredits).
			SetLastResetDate(now).
			Save(ctx)
		if ent.IsConstraintError(cerr) {
			// Lost a create race; the other writer's row is authoritative.
			acct, err = r.ent.UsageAccount.Query().
				Where(usageaccount.UserID(userID)).
				Only(ctx)
		} else if cerr != nil {
			r.log.Error("usage_account create failed", "user_id", userID, "err", cerr)
			return nil, cerr
		} else {
			r.log.Info("usage_account created", "user_id", userID, "credits", created.Credits)
			acct, err = created, nil
		}
	}
	if err != nil {
		return nil, err
	}
	return toUsageEntity(acct), nil
}

func (r *usageRepo) ConsumeCredit(ctx context.Context, userID string, now time.Time) (bool, error) {
	// A stale period refills to the full allotment before the decrement.
	if _, err := r.resetIfStale(ctx, userID, now); err != nil {
		return false, err
	}

	n, err := r.ent.UsageAccount.Update().
		Where(
			usageaccount.UserID(userID),
			usageaccount.CreditsGT(0),
		).
		AddCredits(-1).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		r.log.Error("consume credit failed", "user_id", userID, "err", err)
		return false, err
	}
	if n == 0 {
		r.log.Info("consume credit rejected, balance exhausted", "user_id", userID)
		return false, nil
	}
	return true, nil
}

func (r *usageRepo) GrantAdReward(ctx context.Context, userID string, amount int, now time.Time) (int, error) {
	if _, err := r.resetIfStale(ctx, userID, now); err != nil {
		return 0, err
	}

	n, err := r.ent.UsageAccount.Update().
		Where(
			usageaccount.UserID(userID),
			usageaccount.AdRewardsUsedLT(constants.MaxAdRewardsPerMonth),
		).
		AddCredits(amount).
		AddAdRewardsUsed(1).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		r.log.Error("grant ad reward failed", "user_id", userID, "err", err)
		return 0, err
	}
	if n == 0 {
		return 0, common.ErrAdRewardLimitReached
	}

	acct, err := r.ent.UsageAccount.Query().
		Where(usageaccount.UserID(userID)).
		Only(ctx)
	if err != nil {
		return 0, err
	}
	r.log.Info("ad reward granted",
		"user_id", userID,
		"amount", amount,
		"credits", acct.Credits,
		"rewards_used", acct.AdRewardsUsed,
	)
	return acct.Credits, nil
}

func (r *usageRepo) RecordOutcome(ctx context.Context, userID string, succeeded bool) error {
	upd := r.ent.UsageAccount.Update().
		Where(usageaccount.UserID(userID)).
		AddTotalAttempts(1)
	if succeeded {
		upd.AddSuccessCount(1)
	} else {
		upd.AddFailureCount(1)
	}
	_, err := upd.Save(ctx)
	if err != nil {
		r.log.Error("record outcome failed", "user_id", userID, "err", err)
	}
	return err
}

// resetIfStale refills the account once per calendar month. The WHERE clause
// makes the refill idempotent under concurrency: only the writer that still
// observes a reset date before the current month applies it.
func (r *usageRepo) resetIfStale(ctx context.Context, userID string, now time.Time) (bool, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	n, err := r.ent.UsageAccount.Update().
		Where(
			usageaccount.UserID(userID),
			usageaccount.LastResetDateLT(monthStart),
		).
		SetCredits(constants.MonthlyFreeCredits).
		SetAdRewardsUsed(0).
		SetLastResetDate(now).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		r.log.Info("monthly credits reset", "user_id", userID, "credits", constants.MonthlyFreeCredits)
	}
	return n > 0, nil
}

func toUsageEntity(a *ent.UsageAccount) *entity.UsageAccount {
	return &entity.UsageAccount{
		UserID:        a.UserID,
		Credits:       a.Credits,
		LastResetDate: a.LastResetDate,
		AdRewardsUsed: a.AdRewardsUsed,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
		TotalAttempts: a.TotalAttempts,
		SuccessCount:  a.SuccessCount,
		FailureCount:  a.FailureCount,
	}
}
