package entity

import (
	"testing"
	"time"
)

func TestEffectiveStitch_LastKnownValue(t *testing.T) {
	part := PatternPart{
		PartName:  "Back",
		TargetRow: 20,
		StitchGuide: []StitchPoint{
			{Row: 1, TargetStitch: 40},
			{Row: 10, TargetStitch: 60},
		},
	}

	cases := []struct {
		row    int
		want   int
		wantOK bool
	}{
		{row: 1, want: 40, wantOK: true},
		{row: 5, want: 40, wantOK: true},
		{row: 10, want: 60, wantOK: true},
		{row: 15, want: 60, wantOK: true},
		{row: 0, wantOK: false},
	}
	for _, tc := range cases {
		got, ok := part.EffectiveStitch(tc.row)
		if ok != tc.wantOK {
			t.Fatalf("EffectiveStitch(%d) ok = %v, want %v", tc.row, ok, tc.wantOK)
		}
		if ok && got != tc.want {
			t.Fatalf("EffectiveStitch(%d) = %d, want %d", tc.row, got, tc.want)
		}
	}
}

func TestEffectiveStitch_EmptyGuide(t *testing.T) {
	part := PatternPart{PartName: "Sleeve", TargetRow: 30}
	if _, ok := part.EffectiveStitch(10); ok {
		t.Fatal("expected no data for empty guide")
	}
}

func TestNextStitchChange(t *testing.T) {
	part := PatternPart{
		StitchGuide: []StitchPoint{
			{Row: 1, TargetStitch: 40},
			{Row: 10, TargetStitch: 60},
		},
	}

	next, ok := part.NextStitchChange(3)
	if !ok || next.Row != 10 || next.TargetStitch != 60 {
		t.Fatalf("NextStitchChange(3) = %+v, %v", next, ok)
	}
	if _, ok := part.NextStitchChange(10); ok {
		t.Fatal("expected no change after last listed row")
	}
}

func TestSortStitchGuide(t *testing.T) {
	part := PatternPart{
		StitchGuide: []StitchPoint{
			{Row: 10, TargetStitch: 60},
			{Row: 1, TargetStitch: 40},
			{Row: 5, TargetStitch: 50},
		},
	}
	part.SortStitchGuide()

	for i, want := range []int{1, 5, 10} {
		if part.StitchGuide[i].Row != want {
			t.Fatalf("guide[%d].Row = %d, want %d", i, part.StitchGuide[i].Row, want)
		}
	}
}

func TestPeriodStale(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		reset time.Time
		want  bool
	}{
		{"same month", time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), false},
		{"previous month", time.Date(2026, time.July, 31, 23, 0, 0, 0, time.UTC), true},
		{"same month last year", time.Date(2025, time.August, 31, 12, 0, 0, 0, time.UTC), true},
	}
	for _, tc := range cases {
		acct := UsageAccount{LastResetDate: tc.reset}
		if got := acct.PeriodStale(now); got != tc.want {
			t.Fatalf("%s: PeriodStale = %v, want %v", tc.name, got, tc.want)
		}
	}
}
