package stats

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/knitworks/pattern-analyzer/internal/entity"
)

type stubAccounts struct {
	acct entity.UsageAccount
}

func (s *stubAccounts) Account(context.Context, string) (*entity.UsageAccount, error) {
	a := s.acct
	return &a, nil
}

type stubAttempts struct {
	attempts []entity.AnalysisAttempt
}

func (s *stubAttempts) Append(context.Context, string, string, string, bool, time.Time) (uuid.UUID, error) {
	return uuid.Nil, nil
}

func (s *stubAttempts) ListSince(context.Context, string, time.Time) ([]entity.AnalysisAttempt, error) {
	return s.attempts, nil
}

func (s *stubAttempts) PurgeOlderThan(context.Context, time.Time) (int, error) {
	return 0, nil
}

func newTestService() *Service {
	accounts := &stubAccounts{acct: entity.UsageAccount{
		UserID:        "u1",
		Credits:       7,
		AdRewardsUsed: 1,
		TotalAttempts: 4,
		SuccessCount:  3,
		FailureCount:  1,
	}}
	attempts := &stubAttempts{attempts: []entity.AnalysisAttempt{
		{
			ID:          uuid.New(),
			UserID:      "u1",
			FileHash:    "abc123",
			FileName:    "sweater.pdf",
			Succeeded:   true,
			AttemptedAt: time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:          uuid.New(),
			UserID:      "u1",
			FileHash:    "def456",
			FileName:    "scarf.jpg",
			Succeeded:   false,
			AttemptedAt: time.Date(2026, 8, 9, 9, 0, 0, 0, time.UTC),
		},
	}}
	return NewService(attempts, accounts, nil)
}

func TestUsageStats_Aggregates(t *testing.T) {
	s := newTestService()

	st, err := s.UsageStats(context.Background(), "u1", time.Time{})
	if err != nil {
		t.Fatalf("UsageStats: %v", err)
	}
	if st.Credits != 7 || st.AdRewardsUsed != 1 {
		t.Errorf("credits/rewards = %d/%d, want 7/1", st.Credits, st.AdRewardsUsed)
	}
	if st.SuccessRate != 0.75 {
		t.Errorf("success rate = %v, want 0.75", st.SuccessRate)
	}
	if len(st.RecentAttempts) != 2 {
		t.Errorf("recent attempts = %d, want 2", len(st.RecentAttempts))
	}
}

func TestExportUsageXLSX_RoundTrips(t *testing.T) {
	s := newTestService()

	data, err := s.ExportUsageXLSX(context.Background(), "u1", time.Time{})
	if err != nil {
		t.Fatalf("ExportUsageXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Attempts")
	if err != nil {
		t.Fatalf("read Attempts sheet: %v", err)
	}
	// header plus two attempts
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[1][1] != "sweater.pdf" || rows[1][3] != "success" {
		t.Errorf("first attempt row = %v", rows[1])
	}
	if rows[2][3] != "failure" {
		t.Errorf("second attempt row = %v", rows[2])
	}

	summary, err := f.GetRows("Summary")
	if err != nil {
		t.Fatalf("read Summary sheet: %v", err)
	}
	if len(summary) != 6 {
		t.Fatalf("summary rows = %d, want 6", len(summary))
	}
	if summary[0][0] != "Remaining Credits" || summary[0][1] != "7" {
		t.Errorf("summary first row = %v", summary[0])
	}
}
