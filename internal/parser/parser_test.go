package parser

import (
	"errors"
	"testing"

	"github.com/knitworks/pattern-analyzer/internal/common"
)

const fencedResponse = "Here is the analysis you asked for:\n```json\n" +
	`{"projectName": "Sweater", "parts": [{"partName": "Back", "startRow": 1, "targetRow": 40, "stitchGuide": [{"row": 5, "targetStitch": 40}]}]}` +
	"\n```\nLet me know if anything is unclear."

func TestParse_FencedResponse(t *testing.T) {
	got, err := Parse(fencedResponse)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.ProjectName != "Sweater" {
		t.Errorf("project = %q, want Sweater", got.ProjectName)
	}
	if len(got.Parts) != 1 {
		t.Fatalf("parts = %d, want 1", len(got.Parts))
	}
	p := got.Parts[0]
	if p.PartName != "Back" || p.StartRow != 1 || p.TargetRow != 40 {
		t.Errorf("part = %+v", p)
	}
	if len(p.StitchGuide) != 1 || p.StitchGuide[0].Row != 5 || p.StitchGuide[0].TargetStitch != 40 {
		t.Errorf("guide = %+v", p.StitchGuide)
	}
}

func TestParse_BareJSONWithSurroundingProse(t *testing.T) {
	response := `Sure! The pattern has one part. {"projectName": "Scarf", "parts": []} Happy knitting!`

	got, err := Parse(response)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.ProjectName != "Scarf" {
		t.Errorf("project = %q, want Scarf", got.ProjectName)
	}
	if got.Parts == nil || len(got.Parts) != 0 {
		t.Errorf("parts = %v, want empty non-nil slice", got.Parts)
	}
}

func TestParse_NoJSON(t *testing.T) {
	_, err := Parse("I could not find any knitting instructions in this image.")
	if !errors.Is(err, common.ErrParsingFailed) {
		t.Fatalf("err = %v, want ErrParsingFailed", err)
	}
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse(`{"projectName": "Sweater", "parts": [{]}`)
	if !errors.Is(err, common.ErrParsingFailed) {
		t.Fatalf("err = %v, want ErrParsingFailed", err)
	}
}

func TestParse_InvalidUTF8(t *testing.T) {
	_, err := Parse("{\"projectName\": \"\xff\xfe\"}")
	if !errors.Is(err, common.ErrInvalidResponse) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestParse_WrongShapeRejected(t *testing.T) {
	_, err := Parse(`{"projectName": 12, "parts": "none"}`)
	if !errors.Is(err, common.ErrParsingFailed) {
		t.Fatalf("err = %v, want ErrParsingFailed", err)
	}
}

func TestParse_NullsAndOmissionsRepaired(t *testing.T) {
	response := `{"parts": [{"partName": null, "targetRow": null, "stitchGuide": [{"row": null, "targetStitch": 10}, {"row": 3, "targetStitch": null}]}]}`

	got, err := Parse(response)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.ProjectName != "Untitled Project" {
		t.Errorf("project = %q, want default", got.ProjectName)
	}
	p := got.Parts[0]
	if p.PartName != "Part 1" {
		t.Errorf("part name = %q, want Part 1", p.PartName)
	}
	if len(p.StitchGuide) != 0 {
		t.Errorf("guide = %+v, want all entries dropped", p.StitchGuide)
	}
	if p.StartRow != 1 || p.TargetRow != 1 {
		t.Errorf("rows = %d/%d, want 1/1", p.StartRow, p.TargetRow)
	}
}

func TestExtractJSON_FenceWinsOverBraces(t *testing.T) {
	response := "{\"decoy\": true}\n```json\n{\"projectName\": \"Hat\"}\n```"

	doc, err := ExtractJSON(response)
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	if string(doc) != `{"projectName": "Hat"}` {
		t.Fatalf("doc = %s", doc)
	}
}
