package parser

import (
	"encoding/json"
	"testing"
)

func TestExpandRow(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []int
	}{
		{"integer", `7`, []int{7}},
		{"numeric string", `"12"`, []int{12}},
		{"dash range", `"5-8"`, []int{5, 6, 7, 8}},
		{"tilde range", `"34~36"`, []int{34, 35, 36}},
		{"range with row suffix", `"50~51단"`, []int{50, 51}},
		{"single with row suffix", `"9단"`, []int{9}},
		{"spaced range", `"5 - 7"`, []int{5, 6, 7}},
		{"null", `null`, nil},
		{"zero", `0`, nil},
		{"negative", `-3`, nil},
		{"inverted range", `"8-5"`, nil},
		{"absurd range", `"1~999999"`, nil},
		{"prose", `"the fifth row"`, nil},
		{"empty string", `""`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expandRow(json.RawMessage(tt.raw))
			if len(got) != len(tt.want) {
				t.Fatalf("expandRow(%s) = %v, want %v", tt.raw, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("expandRow(%s) = %v, want %v", tt.raw, got, tt.want)
				}
			}
		})
	}
}

func TestNormalizeGuide_RangeExpansionSharesStitchCount(t *testing.T) {
	stitch := 40
	guide := normalizeGuide([]rawStitchPoint{
		{Row: json.RawMessage(`"5-8"`), TargetStitch: &stitch},
	})

	if len(guide) != 4 {
		t.Fatalf("guide has %d entries, want 4", len(guide))
	}
	for i, sp := range guide {
		if sp.Row != 5+i {
			t.Errorf("entry %d row = %d, want %d", i, sp.Row, 5+i)
		}
		if sp.TargetStitch != 40 {
			t.Errorf("entry %d stitch = %d, want 40", i, sp.TargetStitch)
		}
	}
}

func TestNormalizeGuide_DuplicateRowsLastWins(t *testing.T) {
	a, b := 30, 50
	guide := normalizeGuide([]rawStitchPoint{
		{Row: json.RawMessage(`10`), TargetStitch: &a},
		{Row: json.RawMessage(`10`), TargetStitch: &b},
	})

	if len(guide) != 1 {
		t.Fatalf("guide has %d entries, want 1", len(guide))
	}
	if guide[0].TargetStitch != 50 {
		t.Fatalf("stitch = %d, want the later value 50", guide[0].TargetStitch)
	}
}

func TestNormalizeGuide_SortedByRow(t *testing.T) {
	s := 20
	guide := normalizeGuide([]rawStitchPoint{
		{Row: json.RawMessage(`30`), TargetStitch: &s},
		{Row: json.RawMessage(`1`), TargetStitch: &s},
		{Row: json.RawMessage(`15`), TargetStitch: &s},
	})

	want := []int{1, 15, 30}
	for i, sp := range guide {
		if sp.Row != want[i] {
			t.Fatalf("rows = %v-ish at %d, want %v", sp.Row, i, want)
		}
	}
}

func TestNormalizePart_TargetRowFallsBackToLastGuidedRow(t *testing.T) {
	s := 60
	part := normalizePart(rawPart{
		StitchGuide: []rawStitchPoint{
			{Row: json.RawMessage(`12`), TargetStitch: &s},
			{Row: json.RawMessage(`48`), TargetStitch: &s},
		},
	}, 0)

	if part.TargetRow != 48 {
		t.Fatalf("targetRow = %d, want 48", part.TargetRow)
	}
}
