package stats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/knitworks/pattern-analyzer/internal/entity"
	"github.com/knitworks/pattern-analyzer/internal/repository"
)

// AccountReader loads the usage account backing the summary rows.
type AccountReader interface {
	Account(ctx context.Context, userID string) (*entity.UsageAccount, error)
}

// UsageStats is the aggregate view served over the API.
type UsageStats struct {
	Credits        int
	AdRewardsUsed  int
	TotalAttempts  int
	SuccessCount   int
	FailureCount   int
	SuccessRate    float64
	RecentAttempts []entity.AnalysisAttempt
}

// Service produces usage summaries and XLSX exports of the attempt history.
type Service struct {
	attempts repository.AttemptRepository
	accounts AccountReader
	logger   *slog.Logger
}

func NewService(attempts repository.AttemptRepository, accounts AccountReader, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{attempts: attempts, accounts: accounts, logger: logger}
}

// UsageStats aggregates the account counters with the recent attempt list.
func (s *Service) UsageStats(ctx context.Context, userID string, since time.Time) (*UsageStats, error) {
	acct, err := s.accounts.Account(ctx, userID)
	if err != nil {
		return nil, err
	}
	recent, err := s.attempts.ListSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	st := &UsageStats{
		Credits:        acct.Credits,
		AdRewardsUsed:  acct.AdRewardsUsed,
		TotalAttempts:  acct.TotalAttempts,
		SuccessCount:   acct.SuccessCount,
		FailureCount:   acct.FailureCount,
		RecentAttempts: recent,
	}
	if st.TotalAttempts > 0 {
		st.SuccessRate = float64(st.SuccessCount) / float64(st.TotalAttempts)
	}
	return st, nil
}

// ExportUsageXLSX returns an XLSX workbook (as bytes) with the user's
// attempt history since the given time plus a summary sheet.
func (s *Service) ExportUsageXLSX(ctx context.Context, userID string, since time.Time) ([]byte, error) {
	start := time.Now()

	st, err := s.UsageStats(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("load usage stats: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Attempts"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{"Attempted At", "File Name", "File Hash", "Outcome"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, a := range st.RecentAttempts {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, a.AttemptedAt.UTC().Format("2006-01-02 15:04:05"))
		write(2, a.FileName)
		write(3, a.FileHash)
		if a.Succeeded {
			write(4, "success")
		} else {
			write(4, "failure")
		}
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 20)
	_ = f.SetColWidth(sheet, "B", "B", 36)
	_ = f.SetColWidth(sheet, "C", "C", 66)
	_ = f.SetColWidth(sheet, "D", "D", 10)

	const summary = "Summary"
	if _, err := f.NewSheet(summary); err != nil {
		return nil, err
	}
	summaryRows := [][2]any{
		{"Remaining Credits", st.Credits},
		{"Ad Rewards Used", st.AdRewardsUsed},
		{"Total Attempts", st.TotalAttempts},
		{"Successes", st.SuccessCount},
		{"Failures", st.FailureCount},
		{"Success Rate", fmt.Sprintf("%.1f%%", st.SuccessRate*100)},
	}
	for i, kv := range summaryRows {
		keyCell, _ := excelize.CoordinatesToCellName(1, i+1)
		valCell, _ := excelize.CoordinatesToCellName(2, i+1)
		_ = f.SetCellValue(summary, keyCell, kv[0])
		_ = f.SetCellValue(summary, valCell, kv[1])
	}
	_ = f.SetColWidth(summary, "A", "A", 22)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"user_id", userID,
		"rows", len(st.RecentAttempts),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
