package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/knitworks/pattern-analyzer/internal/common"
	"github.com/knitworks/pattern-analyzer/internal/entity"
)

// rawAnalysis mirrors the model's output shape before normalization.
// Everything is optional; normalization supplies defaults and drops what
// cannot be repaired.
type rawAnalysis struct {
	ProjectName *string   `json:"projectName"`
	Parts       []rawPart `json:"parts"`
}

type rawPart struct {
	PartName    *string          `json:"partName"`
	StartRow    *int             `json:"startRow"`
	TargetRow   *int             `json:"targetRow"`
	StitchGuide []rawStitchPoint `json:"stitchGuide"`
}

type rawStitchPoint struct {
	Row          json.RawMessage `json:"row"`
	TargetStitch *int            `json:"targetStitch"`
}

// Parse turns a raw model response into a validated, normalized analysis.
func Parse(response string) (*entity.PatternAnalysis, error) {
	doc, err := ExtractJSON(response)
	if err != nil {
		return nil, err
	}
	if err := validateAgainstSchema(BuildAnalysisJSONSchema(), doc); err != nil {
		return nil, common.NewAppError("SCHEMA_VALIDATION", err.Error(), common.ErrParsingFailed)
	}

	var raw rawAnalysis
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, common.NewAppError("JSON_DECODE", err.Error(), common.ErrParsingFailed)
	}
	return normalize(raw), nil
}

// ExtractJSON pulls the JSON document out of a model response. A fenced
// ```json block wins; otherwise the span from the first "{" to the last
// "}" is taken.
func ExtractJSON(response string) ([]byte, error) {
	if !utf8.ValidString(response) {
		return nil, common.ErrInvalidResponse
	}

	if i := strings.Index(response, "```json"); i >= 0 {
		rest := response[i+len("```json"):]
		if j := strings.Index(rest, "```"); j >= 0 {
			return []byte(strings.TrimSpace(rest[:j])), nil
		}
	}

	start := strings.IndexByte(response, '{')
	end := strings.LastIndexByte(response, '}')
	if start < 0 || end <= start {
		return nil, common.NewAppError("NO_JSON", "response contains no JSON object", common.ErrParsingFailed)
	}
	return []byte(response[start : end+1]), nil
}

func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
