package analysis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/knitworks/pattern-analyzer/constants"
	"github.com/knitworks/pattern-analyzer/internal/common"
	"github.com/knitworks/pattern-analyzer/internal/convert"
	"github.com/knitworks/pattern-analyzer/internal/entity"
	"github.com/knitworks/pattern-analyzer/internal/parser"
)

// emptyPageResult stands in for a page that produced nothing usable, so
// consolidation still sees every page slot.
const emptyPageResult = `{"projectName": "", "parts": []}`

// VisionProvider is the slice of the vision client the orchestrator needs.
type VisionProvider interface {
	Analyze(ctx context.Context, payload []byte, mediaType, instruction string) (string, error)
	AnalyzeText(ctx context.Context, instruction string) (string, error)
}

// CreditLedger gates and settles analysis runs against the monthly quota.
type CreditLedger interface {
	GetRemainingCredits(ctx context.Context, userID string) (int, error)
	ConsumeCredit(ctx context.Context, userID string) (bool, error)
	RecordOutcome(ctx context.Context, userID string, succeeded bool)
}

// PageRenderer turns uploads into vision-sized payloads.
type PageRenderer interface {
	RenderPDF(ctx context.Context, path string) ([]convert.Page, error)
	PrepareImage(data []byte, mediaType string) ([]byte, string, error)
}

// AttemptRecorder appends to the audit trail. It may be nil; auditing never
// blocks an analysis.
type AttemptRecorder interface {
	Append(ctx context.Context, userID, fileHash, fileName string, succeeded bool, at time.Time) (uuid.UUID, error)
}

// Request is one uploaded document to analyze. Paginated forces the
// page-by-page strategy for PDFs instead of trying a whole-document
// submission first.
type Request struct {
	UserID    string
	FileName  string
	Data      []byte
	Paginated bool
}

// Result is the outcome of a run. Analysis is set only on success;
// CreditsRemaining reflects the balance after settlement.
type Result struct {
	Analysis         *entity.PatternAnalysis
	Status           constants.AnalysisStatus
	CreditsRemaining int
	FileHash         string
}

// Orchestrator drives an upload through validation, the credit gate, the
// vision pipeline and settlement. Images go through a single vision call.
// PDFs try a whole-document submission first, then fall back to per-page
// analysis with a consolidation pass.
type Orchestrator struct {
	vision   VisionProvider
	ledger   CreditLedger
	renderer PageRenderer
	attempts AttemptRecorder
	logger   *slog.Logger
	now      func() time.Time
}

func NewOrchestrator(vision VisionProvider, ledger CreditLedger, renderer PageRenderer, attempts AttemptRecorder, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		vision:   vision,
		ledger:   ledger,
		renderer: renderer,
		attempts: attempts,
		logger:   logger,
		now:      time.Now,
	}
}

// Analyze runs the full pipeline for one upload.
//
// A credit is spent only once the run is past the point of meaningful
// work: on a confirmed parse for images, and after at least one page has
// parsed for PDFs. Failures before that point cost nothing; a failure
// after it surfaces as ErrAnalysisFailedCreditUsed.
func (o *Orchestrator) Analyze(ctx context.Context, req Request) (*Result, error) {
	hash := sha256.Sum256(req.Data)
	hashHex := hex.EncodeToString(hash[:])
	log := o.logger.With("user_id", req.UserID, "file", req.FileName, "hash", hashHex[:12])
	if reqID := common.RequestIDFromContext(ctx); reqID != "" {
		log = log.With("req_id", reqID)
	}

	format, err := o.validate(req)
	if err != nil {
		log.Warn("analysis.rejected", "error", err)
		return o.settle(ctx, req, hashHex, nil, false, err)
	}

	credits, err := o.ledger.GetRemainingCredits(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if credits <= 0 {
		log.Info("analysis.blocked", "reason", "no credits")
		return &Result{Status: constants.AnalysisStatusFailedFree, FileHash: hashHex}, common.ErrInsufficientCredits
	}

	var (
		analysis *entity.PatternAnalysis
		charged  bool
	)
	switch format {
	case constants.PDF:
		if !req.Paginated {
			analysis, err = o.analyzeDocument(ctx, req, log)
		}
		if req.Paginated || err != nil {
			if err != nil {
				log.Warn("analysis.whole_doc.fallback", "error", err)
			}
			analysis, charged, err = o.analyzePDF(ctx, req, log)
		}
	default:
		analysis, charged, err = o.analyzeImage(ctx, req, log)
	}
	if err != nil {
		if charged {
			err = common.NewAppError("ANALYSIS_CHARGED", err.Error(), common.ErrAnalysisFailedCreditUsed)
		}
		return o.settle(ctx, req, hashHex, nil, false, err)
	}

	if !charged {
		if err := o.charge(ctx, req.UserID, log); err != nil {
			return o.settle(ctx, req, hashHex, nil, false, err)
		}
	}
	return o.settle(ctx, req, hashHex, analysis, true, nil)
}

func (o *Orchestrator) validate(req Request) (constants.Format, error) {
	if len(req.Data) == 0 {
		return "", common.NewAppError("EMPTY_UPLOAD", "upload is empty", common.ErrUnsupportedFileType)
	}
	if len(req.Data) > constants.MaxUploadBytes {
		return "", common.NewAppError("UPLOAD_TOO_LARGE",
			fmt.Sprintf("%d bytes exceeds the %d byte limit", len(req.Data), constants.MaxUploadBytes),
			common.ErrFileTooLarge)
	}

	ext := constants.NormalizeExt(filepath.Ext(req.FileName))
	format := constants.MapExtToFormat(ext)
	if format == "" {
		return "", common.NewAppError("UNSUPPORTED_TYPE",
			fmt.Sprintf("extension %q is not supported", ext), common.ErrUnsupportedFileType)
	}
	return format, nil
}

// analyzeImage is the single-shot path. The credit is charged by the
// caller after the parse is confirmed, so charged is always false here.
func (o *Orchestrator) analyzeImage(ctx context.Context, req Request, log *slog.Logger) (*entity.PatternAnalysis, bool, error) {
	payload, mediaType, err := o.renderer.PrepareImage(req.Data, constants.MediaType(req.FileName))
	if err != nil {
		return nil, false, err
	}

	raw, err := o.vision.Analyze(ctx, payload, mediaType, singleShotPrompt)
	if err != nil {
		return nil, false, err
	}

	analysis, err := parser.Parse(raw)
	if err != nil {
		return nil, false, err
	}
	log.Info("analysis.single_shot.parsed", "parts", len(analysis.Parts))
	return analysis, false, nil
}

// analyzeDocument submits the whole PDF as a single document attachment.
// Any failure here sends the run down the page-by-page path instead.
func (o *Orchestrator) analyzeDocument(ctx context.Context, req Request, log *slog.Logger) (*entity.PatternAnalysis, error) {
	raw, err := o.vision.Analyze(ctx, req.Data, "application/pdf", singleShotPrompt)
	if err != nil {
		return nil, err
	}
	analysis, err := parser.Parse(raw)
	if err != nil {
		return nil, err
	}
	log.Info("analysis.whole_doc.parsed", "parts", len(analysis.Parts))
	return analysis, nil
}

// analyzePDF is the two-stage path: per-page partial analyses, then a
// text-only consolidation pass. The credit is charged between the stages,
// once at least one page has produced a usable partial result.
func (o *Orchestrator) analyzePDF(ctx context.Context, req Request, log *slog.Logger) (*entity.PatternAnalysis, bool, error) {
	path, cleanup, err := o.spool(req)
	if err != nil {
		return nil, false, err
	}
	defer cleanup()

	pages, err := o.renderer.RenderPDF(ctx, path)
	if err != nil {
		return nil, false, err
	}

	results := make([]string, 0, len(pages))
	parsed := 0
	for _, pg := range pages {
		doc := o.analyzePage(ctx, pg, len(pages), log)
		if doc == "" {
			doc = emptyPageResult
		} else {
			parsed++
		}
		results = append(results, doc)
	}
	log.Info("analysis.pages.done", "pages", len(pages), "parsed", parsed)

	if parsed == 0 {
		return nil, false, common.NewAppError("NO_PAGE_RESULTS",
			"no page produced a usable result", common.ErrParsingFailed)
	}

	// The page stage did real work; the run is now chargeable even if
	// consolidation fails.
	if err := o.charge(ctx, req.UserID, log); err != nil {
		return nil, false, err
	}

	raw, err := o.vision.AnalyzeText(ctx, consolidationPrompt(results, req.FileName))
	if err != nil {
		return nil, true, err
	}
	analysis, err := parser.Parse(raw)
	if err != nil {
		return nil, true, err
	}
	log.Info("analysis.consolidated", "parts", len(analysis.Parts))
	return analysis, true, nil
}

// analyzePage returns the page's extracted JSON document, or "" when the
// page produced nothing usable. Page failures never abort the run.
func (o *Orchestrator) analyzePage(ctx context.Context, pg convert.Page, totalPages int, log *slog.Logger) string {
	if pg.Err != nil {
		log.Warn("analysis.page.skipped", "page", pg.Number, "error", pg.Err)
		return ""
	}

	raw, err := o.vision.Analyze(ctx, pg.Data, pg.MediaType, pagePrompt(pg.Number, totalPages))
	if err != nil {
		log.Warn("analysis.page.failed", "page", pg.Number, "error", err)
		return ""
	}

	doc, err := parser.ExtractJSON(raw)
	if err != nil {
		log.Warn("analysis.page.unparseable", "page", pg.Number, "error", err)
		return ""
	}
	return string(doc)
}

func (o *Orchestrator) charge(ctx context.Context, userID string, log *slog.Logger) error {
	ok, err := o.ledger.ConsumeCredit(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		// The gate passed earlier, so the balance drained mid-run.
		log.Warn("analysis.charge.raced")
		return common.ErrInsufficientCredits
	}
	return nil
}

// settle records the outcome, fetches the closing balance and shapes the
// final result. It passes the run's error through.
func (o *Orchestrator) settle(ctx context.Context, req Request, hashHex string, analysis *entity.PatternAnalysis, succeeded bool, runErr error) (*Result, error) {
	o.ledger.RecordOutcome(ctx, req.UserID, succeeded)
	if o.attempts != nil {
		if _, err := o.attempts.Append(ctx, req.UserID, hashHex, req.FileName, succeeded, o.now()); err != nil {
			o.logger.Warn("analysis.audit.dropped", "user_id", req.UserID, "error", err)
		}
	}

	res := &Result{Analysis: analysis, FileHash: hashHex}
	switch {
	case succeeded:
		res.Status = constants.AnalysisStatusSucceeded
	case common.CreditUsed(runErr):
		res.Status = constants.AnalysisStatusFailedCharged
	default:
		res.Status = constants.AnalysisStatusFailedFree
	}

	if balance, err := o.ledger.GetRemainingCredits(ctx, req.UserID); err == nil {
		res.CreditsRemaining = balance
	}
	return res, runErr
}

// spool writes the upload to a temp file for the external renderer.
func (o *Orchestrator) spool(req Request) (string, func(), error) {
	f, err := os.CreateTemp("", "upload-*.pdf")
	if err != nil {
		return "", nil, err
	}
	name := f.Name()
	cleanup := func() { _ = os.Remove(name) }

	if _, err := f.Write(req.Data); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return name, cleanup, nil
}
