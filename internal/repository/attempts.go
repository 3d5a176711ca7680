package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/knitworks/pattern-analyzer/gen/ent"
	"github.com/knitworks/pattern-analyzer/gen/ent/analysisattempt"
	"github.com/knitworks/pattern-analyzer/gen/ent/usageaccount"
	"github.com/knitworks/pattern-analyzer/internal/entity"
)

// AttemptRepository is the append-only audit trail of analysis runs.
type AttemptRepository interface {
	Append(ctx context.Context, userID, fileHash, fileName string, succeeded bool, at time.Time) (uuid.UUID, error)
	ListSince(ctx context.Context, userID string, since time.Time) ([]entity.AnalysisAttempt, error)
	// PurgeOlderThan deletes records outside the retention window and
	// returns how many were removed.
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

type attemptRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewAttemptRepository(entc *ent.Client, log *slog.Logger) AttemptRepository {
	if log == nil {
		log = slog.Default()
	}
	return &attemptRepo{ent: entc, log: log}
}

func (r *attemptRepo) Append(ctx context.Context, userID, fileHash, fileName string, succeeded bool, at time.Time) (uuid.UUID, error) {
	acct, err := r.ent.UsageAccount.Query().
		Where(usageaccount.UserID(userID)).
		Only(ctx)
	if err != nil {
		r.log.Error("attempt append: account lookup failed", "user_id", userID, "err", err)
		return uuid.Nil, err
	}

	rec, err := r.ent.AnalysisAttempt.Create().
		SetAccountID(acct.ID).
		SetUserID(userID).
		SetFileHash(fileHash).
		SetFileName(fileName).
		SetSucceeded(succeeded).
		SetAttemptedAt(at).
		Save(ctx)
	if err != nil {
		r.log.Error("attempt append failed", "user_id", userID, "err", err)
		return uuid.Nil, err
	}
	return rec.ID, nil
}

func (r *attemptRepo) ListSince(ctx context.Context, userID string, since time.Time) ([]entity.AnalysisAttempt, error) {
	rows, err := r.ent.AnalysisAttempt.Query().
		Where(
			analysisattempt.UserID(userID),
			analysisattempt.AttemptedAtGTE(since),
		).
		Order(ent.Desc(analysisattempt.FieldAttemptedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entity.AnalysisAttempt, 0, len(rows))
	for _, a := range rows {
		out = append(out, entity.AnalysisAttempt{
			ID:          a.ID,
			UserID:      a.UserID,
			FileHash:    a.FileHash,
			FileName:    a.FileName,
			Succeeded:   a.Succeeded,
			AttemptedAt: a.AttemptedAt,
		})
	}
	return out, nil
}

func (r *attemptRepo) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := r.ent.AnalysisAttempt.Delete().
		Where(analysisattempt.AttemptedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		r.log.Error("attempt purge failed", "cutoff", cutoff, "err", err)
		return 0, err
	}
	if n > 0 {
		r.log.Info("purged old analysis attempts", "count", n, "cutoff", cutoff)
	}
	return n, nil
}
