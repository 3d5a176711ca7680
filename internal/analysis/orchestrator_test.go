package analysis

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/knitworks/pattern-analyzer/constants"
	"github.com/knitworks/pattern-analyzer/internal/common"
	"github.com/knitworks/pattern-analyzer/internal/convert"
)

type fakeLedger struct {
	credits  int
	consumed int
	outcomes []bool
}

func (f *fakeLedger) GetRemainingCredits(context.Context, string) (int, error) {
	return f.credits, nil
}

func (f *fakeLedger) ConsumeCredit(context.Context, string) (bool, error) {
	if f.credits <= 0 {
		return false, nil
	}
	f.credits--
	f.consumed++
	return true, nil
}

func (f *fakeLedger) RecordOutcome(_ context.Context, _ string, succeeded bool) {
	f.outcomes = append(f.outcomes, succeeded)
}

type fakeVision struct {
	responses      []string // per Analyze call; "" simulates a failure
	calls          int
	mediaTypes     []string
	textResponse   string
	textErr        error
	lastTextPrompt string
}

func (f *fakeVision) Analyze(_ context.Context, _ []byte, mediaType, _ string) (string, error) {
	i := f.calls
	f.calls++
	f.mediaTypes = append(f.mediaTypes, mediaType)
	if i < len(f.responses) && f.responses[i] != "" {
		return f.responses[i], nil
	}
	return "", common.NewAppError("VISION_REQUEST", "stubbed failure", common.ErrNetwork)
}

func (f *fakeVision) AnalyzeText(_ context.Context, instruction string) (string, error) {
	f.lastTextPrompt = instruction
	return f.textResponse, f.textErr
}

type fakeRenderer struct {
	pages     []convert.Page
	renderErr error
}

func (f *fakeRenderer) RenderPDF(context.Context, string) ([]convert.Page, error) {
	return f.pages, f.renderErr
}

func (f *fakeRenderer) PrepareImage(data []byte, mediaType string) ([]byte, string, error) {
	return data, mediaType, nil
}

type recordedAttempt struct {
	fileName  string
	succeeded bool
}

type fakeAttempts struct {
	records []recordedAttempt
}

func (f *fakeAttempts) Append(_ context.Context, _, _, fileName string, succeeded bool, _ time.Time) (uuid.UUID, error) {
	f.records = append(f.records, recordedAttempt{fileName: fileName, succeeded: succeeded})
	return uuid.New(), nil
}

func analysisJSON(project, part string, targetRow int) string {
	return "```json\n" +
		`{"projectName": "` + project + `", "parts": [{"partName": "` + part + `", "targetRow": ` + strconv.Itoa(targetRow) + `}]}` +
		"\n```"
}

func pageJSON(part string) string {
	return `{"projectName": "Sweater", "parts": [{"partName": "` + part + `", "targetRow": 40}]}`
}

func TestAnalyze_ImageEndToEnd(t *testing.T) {
	ledger := &fakeLedger{credits: 3}
	vision := &fakeVision{responses: []string{analysisJSON("Sweater", "Back", 40)}}
	attempts := &fakeAttempts{}
	o := NewOrchestrator(vision, ledger, &fakeRenderer{}, attempts, nil)

	res, err := o.Analyze(context.Background(), Request{
		UserID:   "u1",
		FileName: "pattern.jpg",
		Data:     []byte("jpeg bytes"),
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Status != constants.AnalysisStatusSucceeded {
		t.Fatalf("status = %s, want SUCCEEDED", res.Status)
	}
	if res.Analysis.ProjectName != "Sweater" {
		t.Errorf("project = %q, want Sweater", res.Analysis.ProjectName)
	}
	if res.Analysis.Parts[0].PartName != "Back" || res.Analysis.Parts[0].TargetRow != 40 {
		t.Errorf("part = %+v", res.Analysis.Parts[0])
	}
	if res.CreditsRemaining != 2 {
		t.Errorf("credits remaining = %d, want 2", res.CreditsRemaining)
	}
	if ledger.consumed != 1 {
		t.Errorf("consumed = %d, want 1", ledger.consumed)
	}
	if len(attempts.records) != 1 || !attempts.records[0].succeeded {
		t.Errorf("attempt audit = %+v", attempts.records)
	}
}

func TestAnalyze_PDFPageFailureStillConsolidates(t *testing.T) {
	pageData := []byte("jpeg")
	pages := []convert.Page{
		{Number: 1, Data: pageData, MediaType: "image/jpeg"},
		{Number: 2, Data: pageData, MediaType: "image/jpeg"},
		{Number: 3, Err: common.ErrImageProcessingFailed},
		{Number: 4, Data: pageData, MediaType: "image/jpeg"},
		{Number: 5, Data: pageData, MediaType: "image/jpeg"},
	}
	vision := &fakeVision{
		responses:    []string{pageJSON("P1"), pageJSON("P2"), pageJSON("P4"), pageJSON("P5")},
		textResponse: analysisJSON("Sweater", "Back", 40),
	}
	ledger := &fakeLedger{credits: 3}
	o := NewOrchestrator(vision, ledger, &fakeRenderer{pages: pages}, nil, nil)

	res, err := o.Analyze(context.Background(), Request{
		UserID:    "u1",
		FileName:  "pattern.pdf",
		Data:      []byte("%PDF-1.4"),
		Paginated: true,
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Status != constants.AnalysisStatusSucceeded {
		t.Fatalf("status = %s, want SUCCEEDED", res.Status)
	}

	// Consolidation must see all five page slots: four real results and
	// one placeholder for the broken page.
	for _, part := range []string{"P1", "P2", "P4", "P5"} {
		if !strings.Contains(vision.lastTextPrompt, part) {
			t.Errorf("consolidation prompt missing %s", part)
		}
	}
	if got := strings.Count(vision.lastTextPrompt, emptyPageResult); got != 1 {
		t.Errorf("placeholder count = %d, want 1", got)
	}
	if ledger.consumed != 1 {
		t.Errorf("consumed = %d, want 1", ledger.consumed)
	}
}

func TestAnalyze_PDFWholeDocument(t *testing.T) {
	ledger := &fakeLedger{credits: 3}
	vision := &fakeVision{responses: []string{analysisJSON("Sweater", "Back", 40)}}
	renderer := &fakeRenderer{renderErr: common.ErrImageProcessingFailed}
	o := NewOrchestrator(vision, ledger, renderer, nil, nil)

	res, err := o.Analyze(context.Background(), Request{
		UserID:   "u1",
		FileName: "pattern.pdf",
		Data:     []byte("%PDF-1.4"),
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Status != constants.AnalysisStatusSucceeded {
		t.Fatalf("status = %s, want SUCCEEDED", res.Status)
	}
	if vision.calls != 1 || vision.mediaTypes[0] != "application/pdf" {
		t.Errorf("calls = %d media = %v, want one application/pdf call", vision.calls, vision.mediaTypes)
	}
	if ledger.consumed != 1 {
		t.Errorf("consumed = %d, want 1", ledger.consumed)
	}
}

func TestAnalyze_PDFWholeDocumentFailureFallsBackToPages(t *testing.T) {
	pages := []convert.Page{
		{Number: 1, Data: []byte("jpeg"), MediaType: "image/jpeg"},
	}
	vision := &fakeVision{
		responses:    []string{"", pageJSON("P1")}, // whole-document shot fails
		textResponse: analysisJSON("Sweater", "Back", 40),
	}
	ledger := &fakeLedger{credits: 3}
	o := NewOrchestrator(vision, ledger, &fakeRenderer{pages: pages}, nil, nil)

	res, err := o.Analyze(context.Background(), Request{
		UserID:   "u1",
		FileName: "pattern.pdf",
		Data:     []byte("%PDF-1.4"),
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Status != constants.AnalysisStatusSucceeded {
		t.Fatalf("status = %s, want SUCCEEDED", res.Status)
	}
	if vision.calls != 2 {
		t.Errorf("vision calls = %d, want 2 (whole document, then page 1)", vision.calls)
	}
	if vision.mediaTypes[0] != "application/pdf" || vision.mediaTypes[1] != "image/jpeg" {
		t.Errorf("media types = %v", vision.mediaTypes)
	}
	if ledger.consumed != 1 {
		t.Errorf("consumed = %d, want 1", ledger.consumed)
	}
}

func TestAnalyze_ConsolidationFailureIsCharged(t *testing.T) {
	pages := []convert.Page{
		{Number: 1, Data: []byte("jpeg"), MediaType: "image/jpeg"},
	}
	vision := &fakeVision{
		responses: []string{pageJSON("P1")},
		textErr:   common.NewAppError("VISION_REQUEST", "timeout", common.ErrNetwork),
	}
	ledger := &fakeLedger{credits: 3}
	attempts := &fakeAttempts{}
	o := NewOrchestrator(vision, ledger, &fakeRenderer{pages: pages}, attempts, nil)

	res, err := o.Analyze(context.Background(), Request{
		UserID:    "u1",
		FileName:  "pattern.pdf",
		Data:      []byte("%PDF-1.4"),
		Paginated: true,
	})
	if !errors.Is(err, common.ErrAnalysisFailedCreditUsed) {
		t.Fatalf("err = %v, want ErrAnalysisFailedCreditUsed", err)
	}
	if res.Status != constants.AnalysisStatusFailedCharged {
		t.Fatalf("status = %s, want FAILED_CHARGED", res.Status)
	}
	if ledger.consumed != 1 {
		t.Errorf("consumed = %d, want 1", ledger.consumed)
	}
	if res.CreditsRemaining != 2 {
		t.Errorf("credits remaining = %d, want 2", res.CreditsRemaining)
	}
	if res.Analysis != nil {
		t.Errorf("analysis = %+v, want nil on failure", res.Analysis)
	}

	// A charged failure is still a failure everywhere it is recorded.
	if len(ledger.outcomes) != 1 || ledger.outcomes[0] {
		t.Errorf("recorded outcomes = %v, want one failure", ledger.outcomes)
	}
	if len(attempts.records) != 1 || attempts.records[0].succeeded {
		t.Errorf("attempt audit = %+v, want one failed attempt", attempts.records)
	}
}

func TestAnalyze_AllPagesFailedIsFree(t *testing.T) {
	pages := []convert.Page{
		{Number: 1, Err: common.ErrImageProcessingFailed},
		{Number: 2, Err: common.ErrImageProcessingFailed},
	}
	ledger := &fakeLedger{credits: 3}
	o := NewOrchestrator(&fakeVision{}, ledger, &fakeRenderer{pages: pages}, nil, nil)

	res, err := o.Analyze(context.Background(), Request{
		UserID:    "u1",
		FileName:  "pattern.pdf",
		Data:      []byte("%PDF-1.4"),
		Paginated: true,
	})
	if !errors.Is(err, common.ErrParsingFailed) {
		t.Fatalf("err = %v, want ErrParsingFailed", err)
	}
	if res.Status != constants.AnalysisStatusFailedFree {
		t.Fatalf("status = %s, want FAILED_FREE", res.Status)
	}
	if ledger.consumed != 0 {
		t.Errorf("consumed = %d, want 0", ledger.consumed)
	}
}

func TestAnalyze_OversizedUploadNeverTouchesQuota(t *testing.T) {
	ledger := &fakeLedger{credits: 3}
	o := NewOrchestrator(&fakeVision{}, ledger, &fakeRenderer{}, nil, nil)
	big := make([]byte, constants.MaxUploadBytes+1)

	for i := 0; i < 2; i++ {
		res, err := o.Analyze(context.Background(), Request{
			UserID:   "u1",
			FileName: "huge.pdf",
			Data:     big,
		})
		if !errors.Is(err, common.ErrFileTooLarge) {
			t.Fatalf("attempt %d err = %v, want ErrFileTooLarge", i+1, err)
		}
		if res.Status != constants.AnalysisStatusFailedFree {
			t.Fatalf("attempt %d status = %s, want FAILED_FREE", i+1, res.Status)
		}
	}
	if ledger.consumed != 0 || ledger.credits != 3 {
		t.Fatalf("quota touched: consumed=%d credits=%d", ledger.consumed, ledger.credits)
	}
}

func TestAnalyze_UnsupportedExtension(t *testing.T) {
	ledger := &fakeLedger{credits: 3}
	o := NewOrchestrator(&fakeVision{}, ledger, &fakeRenderer{}, nil, nil)

	_, err := o.Analyze(context.Background(), Request{
		UserID:   "u1",
		FileName: "pattern.docx",
		Data:     []byte("doc"),
	})
	if !errors.Is(err, common.ErrUnsupportedFileType) {
		t.Fatalf("err = %v, want ErrUnsupportedFileType", err)
	}
	if ledger.consumed != 0 {
		t.Errorf("consumed = %d, want 0", ledger.consumed)
	}
}

func TestAnalyze_NoCredits(t *testing.T) {
	ledger := &fakeLedger{credits: 0}
	vision := &fakeVision{}
	o := NewOrchestrator(vision, ledger, &fakeRenderer{}, nil, nil)

	_, err := o.Analyze(context.Background(), Request{
		UserID:   "u1",
		FileName: "pattern.jpg",
		Data:     []byte("jpeg"),
	})
	if !errors.Is(err, common.ErrInsufficientCredits) {
		t.Fatalf("err = %v, want ErrInsufficientCredits", err)
	}
	if vision.calls != 0 {
		t.Errorf("vision called %d times before the gate", vision.calls)
	}
}

func TestAnalyze_ImageVisionFailureIsFree(t *testing.T) {
	ledger := &fakeLedger{credits: 3}
	attempts := &fakeAttempts{}
	o := NewOrchestrator(&fakeVision{}, ledger, &fakeRenderer{}, attempts, nil)

	res, err := o.Analyze(context.Background(), Request{
		UserID:   "u1",
		FileName: "pattern.png",
		Data:     []byte("png"),
	})
	if !errors.Is(err, common.ErrNetwork) {
		t.Fatalf("err = %v, want ErrNetwork", err)
	}
	if res.Status != constants.AnalysisStatusFailedFree {
		t.Fatalf("status = %s, want FAILED_FREE", res.Status)
	}
	if ledger.consumed != 0 {
		t.Errorf("consumed = %d, want 0", ledger.consumed)
	}
	if len(attempts.records) != 1 || attempts.records[0].succeeded {
		t.Errorf("attempt audit = %+v", attempts.records)
	}
}
