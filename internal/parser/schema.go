package parser

// BuildAnalysisJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map, used to validate model output before normalization. The
// schema is deliberately loose: models routinely omit fields, emit nulls,
// or write row ranges as strings, and normalization repairs all of that.
// Validation here only rejects responses whose shape is beyond repair.
func BuildAnalysisJSONSchema() map[string]any {
	rowProp := map[string]any{
		// a single row number, or a range like "34~37" a model ignored
		// instructions about
		"type": []string{"integer", "string", "null"},
	}

	stitchPoint := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"row":          rowProp,
			"targetStitch": map[string]any{"type": []string{"integer", "null"}},
		},
	}

	part := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"partName":  map[string]any{"type": []string{"string", "null"}},
			"startRow":  map[string]any{"type": []string{"integer", "null"}},
			"targetRow": map[string]any{"type": []string{"integer", "null"}},
			"stitchGuide": map[string]any{
				"type":  []string{"array", "null"},
				"items": stitchPoint,
			},
		},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"projectName": map[string]any{"type": []string{"string", "null"}},
			"parts": map[string]any{
				"type":  []string{"array", "null"},
				"items": part,
			},
		},
	}
}
