package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/knitworks/pattern-analyzer/constants"
	"github.com/knitworks/pattern-analyzer/internal/common"
	"github.com/knitworks/pattern-analyzer/internal/entity"
)

func newTestLedger(t *testing.T, now *time.Time) *Ledger {
	t.Helper()
	local, err := OpenLocal(":memory:", nil)
	if err != nil {
		t.Fatalf("OpenLocal: %v", err)
	}
	t.Cleanup(func() { _ = local.Close() })

	return New(nil, local, nil, WithClock(func() time.Time { return *now }))
}

func TestConsumeCredit_Monotonic(t *testing.T) {
	now := time.Date(2026, time.August, 10, 9, 0, 0, 0, time.UTC)
	l := newTestLedger(t, &now)
	ctx := context.Background()

	balance, err := l.GetRemainingCredits(ctx, "u1")
	if err != nil {
		t.Fatalf("GetRemainingCredits: %v", err)
	}
	if balance != constants.MonthlyFreeCredits {
		t.Fatalf("fresh balance = %d, want %d", balance, constants.MonthlyFreeCredits)
	}

	for i := constants.MonthlyFreeCredits; i > 0; i-- {
		ok, err := l.ConsumeCredit(ctx, "u1")
		if err != nil {
			t.Fatalf("ConsumeCredit: %v", err)
		}
		if !ok {
			t.Fatalf("consume %d rejected with balance remaining", i)
		}
		got, _ := l.GetRemainingCredits(ctx, "u1")
		if got != i-1 {
			t.Fatalf("balance after consume = %d, want %d", got, i-1)
		}
	}

	// Exhausted: further consumes return false and leave the balance at 0.
	for i := 0; i < 3; i++ {
		ok, err := l.ConsumeCredit(ctx, "u1")
		if err != nil {
			t.Fatalf("ConsumeCredit at zero: %v", err)
		}
		if ok {
			t.Fatal("consumed a credit from an empty balance")
		}
	}
	if got, _ := l.GetRemainingCredits(ctx, "u1"); got != 0 {
		t.Fatalf("balance after exhaustion = %d, want 0", got)
	}
}

func TestMonthlyReset_Idempotent(t *testing.T) {
	now := time.Date(2026, time.July, 28, 9, 0, 0, 0, time.UTC)
	l := newTestLedger(t, &now)
	ctx := context.Background()

	if _, err := l.GetRemainingCredits(ctx, "u1"); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	for i := 0; i < 4; i++ {
		if _, err := l.ConsumeCredit(ctx, "u1"); err != nil {
			t.Fatalf("ConsumeCredit: %v", err)
		}
	}

	// Same month: repeated reads never change the balance.
	first, _ := l.GetRemainingCredits(ctx, "u1")
	second, _ := l.GetRemainingCredits(ctx, "u1")
	if first != second || first != constants.MonthlyFreeCredits-4 {
		t.Fatalf("same-month reads = %d, %d; want %d", first, second, constants.MonthlyFreeCredits-4)
	}

	// Month boundary: exactly one refill no matter how many reads observe it.
	now = time.Date(2026, time.August, 1, 0, 30, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		got, err := l.GetRemainingCredits(ctx, "u1")
		if err != nil {
			t.Fatalf("GetRemainingCredits after boundary: %v", err)
		}
		if got != constants.MonthlyFreeCredits {
			t.Fatalf("post-reset balance = %d, want %d", got, constants.MonthlyFreeCredits)
		}
	}
}

func TestConsumeCredit_RefillsBeforeDecrementOnStalePeriod(t *testing.T) {
	now := time.Date(2026, time.July, 28, 9, 0, 0, 0, time.UTC)
	l := newTestLedger(t, &now)
	ctx := context.Background()

	if _, err := l.GetRemainingCredits(ctx, "u1"); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	// Drain completely in July.
	for i := 0; i < constants.MonthlyFreeCredits; i++ {
		if _, err := l.ConsumeCredit(ctx, "u1"); err != nil {
			t.Fatalf("ConsumeCredit: %v", err)
		}
	}

	// First consume in August refills, then decrements.
	now = time.Date(2026, time.August, 2, 9, 0, 0, 0, time.UTC)
	ok, err := l.ConsumeCredit(ctx, "u1")
	if err != nil || !ok {
		t.Fatalf("ConsumeCredit after boundary = %v, %v", ok, err)
	}
	if got, _ := l.GetRemainingCredits(ctx, "u1"); got != constants.MonthlyFreeCredits-1 {
		t.Fatalf("balance = %d, want %d", got, constants.MonthlyFreeCredits-1)
	}
}

func TestGrantAdReward_Cap(t *testing.T) {
	now := time.Date(2026, time.August, 10, 9, 0, 0, 0, time.UTC)
	l := newTestLedger(t, &now)
	ctx := context.Background()

	if _, err := l.GetRemainingCredits(ctx, "u1"); err != nil {
		t.Fatalf("seed account: %v", err)
	}

	want := constants.MonthlyFreeCredits
	for i := 0; i < constants.MaxAdRewardsPerMonth; i++ {
		balance, err := l.GrantAdReward(ctx, "u1", constants.AdRewardAmount)
		if err != nil {
			t.Fatalf("GrantAdReward %d: %v", i+1, err)
		}
		want += constants.AdRewardAmount
		if balance != want {
			t.Fatalf("balance after grant %d = %d, want %d", i+1, balance, want)
		}
	}

	// Over the cap: typed failure, balance untouched.
	if _, err := l.GrantAdReward(ctx, "u1", constants.AdRewardAmount); !errors.Is(err, common.ErrAdRewardLimitReached) {
		t.Fatalf("over-cap grant error = %v, want ErrAdRewardLimitReached", err)
	}
	if got, _ := l.GetRemainingCredits(ctx, "u1"); got != want {
		t.Fatalf("balance after rejected grant = %d, want %d", got, want)
	}

	if rem, _ := l.GetRemainingAdRewards(ctx, "u1"); rem != 0 {
		t.Fatalf("remaining ad rewards = %d, want 0", rem)
	}

	// New period resets the grant counter with the credits.
	now = time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)
	if rem, _ := l.GetRemainingAdRewards(ctx, "u1"); rem != constants.MaxAdRewardsPerMonth {
		t.Fatalf("remaining ad rewards after reset = %d, want %d", rem, constants.MaxAdRewardsPerMonth)
	}
}

func TestLedger_RequiresUserID(t *testing.T) {
	now := time.Date(2026, time.August, 10, 9, 0, 0, 0, time.UTC)
	l := newTestLedger(t, &now)
	ctx := context.Background()

	if _, err := l.GetRemainingCredits(ctx, ""); !errors.Is(err, common.ErrNotAuthenticated) {
		t.Fatalf("empty user error = %v, want ErrNotAuthenticated", err)
	}
	if _, err := l.ConsumeCredit(ctx, ""); !errors.Is(err, common.ErrNotAuthenticated) {
		t.Fatalf("empty user consume error = %v, want ErrNotAuthenticated", err)
	}
}

func TestRecordOutcome_LifetimeStatsSurviveReset(t *testing.T) {
	now := time.Date(2026, time.July, 20, 9, 0, 0, 0, time.UTC)
	l := newTestLedger(t, &now)
	ctx := context.Background()

	if _, err := l.GetRemainingCredits(ctx, "u1"); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	l.RecordOutcome(ctx, "u1", true)
	l.RecordOutcome(ctx, "u1", false)
	l.RecordOutcome(ctx, "u1", true)

	now = time.Date(2026, time.August, 3, 9, 0, 0, 0, time.UTC)
	acct, err := l.Account(ctx, "u1")
	if err != nil {
		t.Fatalf("Account: %v", err)
	}
	if acct.Credits != constants.MonthlyFreeCredits {
		t.Fatalf("credits after reset = %d, want %d", acct.Credits, constants.MonthlyFreeCredits)
	}
	if acct.TotalAttempts != 3 || acct.SuccessCount != 2 || acct.FailureCount != 1 {
		t.Fatalf("lifetime stats = %d/%d/%d, want 3/2/1",
			acct.TotalAttempts, acct.SuccessCount, acct.FailureCount)
	}
}

var errRemoteDown = errors.New("remote down")

// downStore simulates an unreachable remote so the fallback path runs.
type downStore struct{}

func (downStore) GetOrCreate(context.Context, string, time.Time) (*entity.UsageAccount, error) {
	return nil, errRemoteDown
}

func (downStore) ConsumeCredit(context.Context, string, time.Time) (bool, error) {
	return false, errRemoteDown
}

func (downStore) GrantAdReward(context.Context, string, int, time.Time) (int, error) {
	return 0, errRemoteDown
}

func (downStore) RecordOutcome(context.Context, string, bool) error {
	return errRemoteDown
}

func TestRemoteFailure_FallsBackToLocal(t *testing.T) {
	now := time.Date(2026, time.August, 10, 9, 0, 0, 0, time.UTC)
	local, err := OpenLocal(":memory:", nil)
	if err != nil {
		t.Fatalf("OpenLocal: %v", err)
	}
	t.Cleanup(func() { _ = local.Close() })

	l := New(downStore{}, local, nil, WithClock(func() time.Time { return now }))
	ctx := context.Background()

	balance, err := l.GetRemainingCredits(ctx, "u1")
	if err != nil {
		t.Fatalf("GetRemainingCredits with remote down: %v", err)
	}
	if balance != constants.MonthlyFreeCredits {
		t.Fatalf("balance = %d, want %d", balance, constants.MonthlyFreeCredits)
	}

	ok, err := l.ConsumeCredit(ctx, "u1")
	if err != nil || !ok {
		t.Fatalf("ConsumeCredit with remote down = %v, %v", ok, err)
	}

	if _, err := l.GrantAdReward(ctx, "u1", 0); err != nil {
		t.Fatalf("GrantAdReward with remote down: %v", err)
	}

	l.RecordOutcome(ctx, "u1", true)
	acct, err := l.Account(ctx, "u1")
	if err != nil {
		t.Fatalf("Account: %v", err)
	}
	if acct.TotalAttempts != 1 || acct.SuccessCount != 1 {
		t.Fatalf("stats = %d/%d, want 1/1", acct.TotalAttempts, acct.SuccessCount)
	}
}
