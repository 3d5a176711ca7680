package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	"github.com/knitworks/pattern-analyzer/constants"
	"github.com/knitworks/pattern-analyzer/internal/common"
	"github.com/knitworks/pattern-analyzer/internal/entity"
)

// LocalStore is the on-device fallback for the credit ledger. It preserves
// the remote contract on a best-effort basis; it only serves traffic while
// the authoritative store is unreachable.
type LocalStore struct {
	db  *sql.DB
	log *slog.Logger
}

const localSchema = `
CREATE TABLE IF NOT EXISTS usage_account (
	user_id         TEXT PRIMARY KEY,
	credits         INTEGER NOT NULL,
	last_reset_date INTEGER NOT NULL,
	ad_rewards_used INTEGER NOT NULL DEFAULT 0,
	created_at      INTEGER NOT NULL,
	updated_at      INTEGER NOT NULL,
	total_attempts  INTEGER NOT NULL DEFAULT 0,
	success_count   INTEGER NOT NULL DEFAULT 0,
	failure_count   INTEGER NOT NULL DEFAULT 0
);
`

// OpenLocal opens (or creates) the sqlite-backed local ledger store.
// Use ":memory:" for tests.
func OpenLocal(path string, logger *slog.Logger) (*LocalStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open local ledger: %w", err)
	}
	// A single writer keeps the fallback simple; sqlite serializes anyway.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(localSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create local ledger schema: %w", err)
	}
	logger.Debug("local ledger store opened", "path", path)
	return &LocalStore{db: db, log: logger}, nil
}

func (s *LocalStore) Close() error {
	return s.db.Close()
}

func (s *LocalStore) GetOrCreate(ctx context.Context, userID string, now time.Time) (*entity.UsageAccount, error) {
	if err := s.resetIfStale(ctx, userID, now); err != nil {
		return nil, err
	}

	acct, err := s.get(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO usage_account (user_id, credits, last_reset_date, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(user_id) DO NOTHING`,
			userID, constants.MonthlyFreeCredits, now.Unix(), now.Unix(), now.Unix())
		if err != nil {
			return nil, err
		}
		s.log.Info("local usage account created", "user_id", userID)
		return s.get(ctx, userID)
	}
	return acct, err
}

func (s *LocalStore) ConsumeCredit(ctx context.Context, userID string, now time.Time) (bool, error) {
	if err := s.resetIfStale(ctx, userID, now); err != nil {
		return false, err
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE usage_account
		SET credits = credits - 1, updated_at = ?
		WHERE user_id = ? AND credits > 0`,
		now.Unix(), userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *LocalStore) GrantAdReward(ctx context.Context, userID string, amount int, now time.Time) (int, error) {
	if err := s.resetIfStale(ctx, userID, now); err != nil {
		return 0, err
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE usage_account
		SET credits = credits + ?, ad_rewards_used = ad_rewards_used + 1, updated_at = ?
		WHERE user_id = ? AND ad_rewards_used < ?`,
		amount, now.Unix(), userID, constants.MaxAdRewardsPerMonth)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, common.ErrAdRewardLimitReached
	}

	acct, err := s.get(ctx, userID)
	if err != nil {
		return 0, err
	}
	return acct.Credits, nil
}

func (s *LocalStore) RecordOutcome(ctx context.Context, userID string, succeeded bool) error {
	col := "failure_count"
	if succeeded {
		col = "success_count"
	}
	_, err := s.db.ExecContext(ctx, fmt.Sprintf(`
		UPDATE usage_account
		SET total_attempts = total_attempts + 1, %s = %s + 1
		WHERE user_id = ?`, col, col), userID)
	return err
}

func (s *LocalStore) get(ctx context.Context, userID string) (*entity.UsageAccount, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT credits, last_reset_date, ad_rewards_used, created_at, updated_at,
		       total_attempts, success_count, failure_count
		FROM usage_account WHERE user_id = ?`, userID)

	var a entity.UsageAccount
	var reset, created, updated int64
	a.UserID = userID
	err := row.Scan(&a.Credits, &reset, &a.AdRewardsUsed, &created, &updated,
		&a.TotalAttempts, &a.SuccessCount, &a.FailureCount)
	if err != nil {
		return nil, err
	}
	a.LastResetDate = time.Unix(reset, 0).UTC()
	a.CreatedAt = time.Unix(created, 0).UTC()
	a.UpdatedAt = time.Unix(updated, 0).UTC()
	return &a, nil
}

func (s *LocalStore) resetIfStale(ctx context.Context, userID string, now time.Time) error {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	res, err := s.db.ExecContext(ctx, `
		UPDATE usage_account
		SET credits = ?, ad_rewards_used = 0, last_reset_date = ?, updated_at = ?
		WHERE user_id = ? AND last_reset_date < ?`,
		constants.MonthlyFreeCredits, now.Unix(), now.Unix(), userID, monthStart.Unix())
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		s.log.Info("local monthly credits reset", "user_id", userID)
	}
	return nil
}
