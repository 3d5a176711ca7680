package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	patternsv1 "github.com/knitworks/pattern-analyzer/gen/patterns/v1"
	"github.com/knitworks/pattern-analyzer/internal/analysis"
	"github.com/knitworks/pattern-analyzer/internal/common"
	"github.com/knitworks/pattern-analyzer/internal/entity"
	"github.com/knitworks/pattern-analyzer/internal/stats"
)

// Analyzer runs the document pipeline.
type Analyzer interface {
	Analyze(ctx context.Context, req analysis.Request) (*analysis.Result, error)
}

// Ledger is the credit surface the service exposes.
type Ledger interface {
	GetRemainingCredits(ctx context.Context, userID string) (int, error)
	GetRemainingAdRewards(ctx context.Context, userID string) (int, error)
	GrantAdReward(ctx context.Context, userID string, amount int) (int, error)
}

// StatsProvider serves usage aggregates and exports.
type StatsProvider interface {
	UsageStats(ctx context.Context, userID string, since time.Time) (*stats.UsageStats, error)
	ExportUsageXLSX(ctx context.Context, userID string, since time.Time) ([]byte, error)
}

// ModelCatalog refreshes the vision model listing.
type ModelCatalog interface {
	RefreshModels(ctx context.Context) []string
}

// AnalysisService is the gRPC surface over the analysis pipeline and the
// usage ledger.
type AnalysisService struct {
	patternsv1.UnimplementedAnalysisServiceServer
	analyzer Analyzer
	ledger   Ledger
	stats    StatsProvider
	models   ModelCatalog
	logger   *slog.Logger
}

func NewAnalysisService(analyzer Analyzer, ledger Ledger, statsProvider StatsProvider, models ModelCatalog, logger *slog.Logger) *AnalysisService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalysisService{
		analyzer: analyzer,
		ledger:   ledger,
		stats:    statsProvider,
		models:   models,
		logger:   logger,
	}
}

func (s *AnalysisService) Analyze(ctx context.Context, req *patternsv1.AnalyzeRequest) (*patternsv1.AnalyzeResponse, error) {
	userID := strings.TrimSpace(req.GetUserId())
	if userID == "" {
		return nil, common.UnauthenticatedError("user_id is required")
	}
	if req.GetFileName() == "" {
		return nil, common.InvalidArgumentError("file_name is required")
	}

	res, err := s.analyzer.Analyze(ctx, analysis.Request{
		UserID:    userID,
		FileName:  req.GetFileName(),
		Data:      req.GetData(),
		Paginated: req.GetPaginated(),
	})
	if err != nil {
		s.logger.Warn("rpc.analyze.failed",
			"user_id", userID,
			"file", req.GetFileName(),
			"reason", common.ReasonKey(err),
			"credit_used", common.CreditUsed(err),
		)
		return nil, toStatusError(err)
	}

	return &patternsv1.AnalyzeResponse{
		Analysis:         toProtoAnalysis(res.Analysis),
		Status:           string(res.Status),
		CreditsRemaining: int32(res.CreditsRemaining),
		FileHash:         res.FileHash,
	}, nil
}

func (s *AnalysisService) GetCredits(ctx context.Context, req *patternsv1.GetCreditsRequest) (*patternsv1.GetCreditsResponse, error) {
	userID := strings.TrimSpace(req.GetUserId())
	if userID == "" {
		return nil, common.UnauthenticatedError("user_id is required")
	}

	credits, err := s.ledger.GetRemainingCredits(ctx, userID)
	if err != nil {
		return nil, toStatusError(err)
	}
	rewards, err := s.ledger.GetRemainingAdRewards(ctx, userID)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &patternsv1.GetCreditsResponse{
		Credits:            int32(credits),
		RemainingAdRewards: int32(rewards),
	}, nil
}

func (s *AnalysisService) GrantAdReward(ctx context.Context, req *patternsv1.GrantAdRewardRequest) (*patternsv1.GrantAdRewardResponse, error) {
	userID := strings.TrimSpace(req.GetUserId())
	if userID == "" {
		return nil, common.UnauthenticatedError("user_id is required")
	}

	credits, err := s.ledger.GrantAdReward(ctx, userID, int(req.GetAmount()))
	if err != nil {
		return nil, toStatusError(err)
	}
	rewards, err := s.ledger.GetRemainingAdRewards(ctx, userID)
	if err != nil {
		return nil, toStatusError(err)
	}
	s.logger.Info("rpc.reward.granted", "user_id", userID, "credits", credits)
	return &patternsv1.GrantAdRewardResponse{
		Credits:            int32(credits),
		RemainingAdRewards: int32(rewards),
	}, nil
}

func (s *AnalysisService) GetUsageStats(ctx context.Context, req *patternsv1.GetUsageStatsRequest) (*patternsv1.GetUsageStatsResponse, error) {
	userID := strings.TrimSpace(req.GetUserId())
	if userID == "" {
		return nil, common.UnauthenticatedError("user_id is required")
	}
	since, err := parseSinceDate(req.GetSinceDate())
	if err != nil {
		return nil, common.InvalidArgumentError("since_date must be YYYY-MM-DD")
	}

	st, err := s.stats.UsageStats(ctx, userID, since)
	if err != nil {
		return nil, toStatusError(err)
	}

	attempts := make([]*patternsv1.AnalysisAttempt, 0, len(st.RecentAttempts))
	for _, a := range st.RecentAttempts {
		attempts = append(attempts, toProtoAttempt(a))
	}
	return &patternsv1.GetUsageStatsResponse{
		Credits:        int32(st.Credits),
		AdRewardsUsed:  int32(st.AdRewardsUsed),
		TotalAttempts:  int32(st.TotalAttempts),
		SuccessCount:   int32(st.SuccessCount),
		FailureCount:   int32(st.FailureCount),
		SuccessRate:    st.SuccessRate,
		RecentAttempts: attempts,
	}, nil
}

func (s *AnalysisService) ExportUsage(ctx context.Context, req *patternsv1.ExportUsageRequest) (*patternsv1.ExportUsageResponse, error) {
	userID := strings.TrimSpace(req.GetUserId())
	if userID == "" {
		return nil, common.UnauthenticatedError("user_id is required")
	}
	since, err := parseSinceDate(req.GetSinceDate())
	if err != nil {
		return nil, common.InvalidArgumentError("since_date must be YYYY-MM-DD")
	}

	xlsx, err := s.stats.ExportUsageXLSX(ctx, userID, since)
	if err != nil {
		s.logger.Error("rpc.export.failed", "user_id", userID, "err", err)
		return nil, toStatusError(err)
	}
	return &patternsv1.ExportUsageResponse{Xlsx: xlsx}, nil
}

func (s *AnalysisService) RefreshModels(ctx context.Context, _ *patternsv1.RefreshModelsRequest) (*patternsv1.RefreshModelsResponse, error) {
	models := s.models.RefreshModels(ctx)
	return &patternsv1.RefreshModelsResponse{Models: models}, nil
}

// parseSinceDate interprets an optional YYYY-MM-DD bound; empty means the
// beginning of time.
func parseSinceDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}

func toProtoAnalysis(a *entity.PatternAnalysis) *patternsv1.PatternAnalysis {
	if a == nil {
		return nil
	}
	parts := make([]*patternsv1.PatternPart, 0, len(a.Parts))
	for _, p := range a.Parts {
		guide := make([]*patternsv1.StitchPoint, 0, len(p.StitchGuide))
		for _, sp := range p.StitchGuide {
			guide = append(guide, &patternsv1.StitchPoint{
				Row:          int32(sp.Row),
				TargetStitch: int32(sp.TargetStitch),
			})
		}
		parts = append(parts, &patternsv1.PatternPart{
			PartName:    p.PartName,
			StartRow:    int32(p.StartRow),
			TargetRow:   int32(p.TargetRow),
			StitchGuide: guide,
		})
	}
	return &patternsv1.PatternAnalysis{
		ProjectName: a.ProjectName,
		Parts:       parts,
	}
}

func toProtoAttempt(a entity.AnalysisAttempt) *patternsv1.AnalysisAttempt {
	return &patternsv1.AnalysisAttempt{
		Id:          a.ID.String(),
		FileName:    a.FileName,
		FileHash:    a.FileHash,
		Succeeded:   a.Succeeded,
		AttemptedAt: a.AttemptedAt.UTC().Format(time.RFC3339Nano),
	}
}

// toStatusError maps domain errors onto gRPC codes, with the stable reason
// key as the message so clients can localize it.
func toStatusError(err error) error {
	key := common.ReasonKey(err)
	switch {
	case errors.Is(err, common.ErrFileTooLarge),
		errors.Is(err, common.ErrUnsupportedFileType):
		return common.InvalidArgumentError(key)
	case errors.Is(err, common.ErrInsufficientCredits),
		errors.Is(err, common.ErrAdRewardLimitReached):
		return common.ResourceExhaustedError(key)
	case errors.Is(err, common.ErrNotAuthenticated):
		return common.UnauthenticatedError(key)
	case errors.Is(err, common.ErrStorageUnavailable),
		errors.Is(err, common.ErrNetwork):
		return common.UnavailableError(key)
	default:
		return common.InternalError(key)
	}
}
