package entity

import "sort"

// PatternAnalysis is the validated result of analyzing a pattern document.
// Parts may be empty when the model found nothing, but is never nil.
type PatternAnalysis struct {
	ProjectName string        `json:"projectName"`
	Parts       []PatternPart `json:"parts"`
}

// PatternPart is one garment section (front, back, sleeve, ...) with its row
// target and an optional per-row stitch guide.
type PatternPart struct {
	PartName    string        `json:"partName"`
	StartRow    int           `json:"startRow"`
	TargetRow   int           `json:"targetRow"`
	StitchGuide []StitchPoint `json:"stitchGuide,omitempty"`
}

// StitchPoint maps a row to its target stitch count. The guide is a sparse
// lookup: rows between listed points inherit the last listed value.
type StitchPoint struct {
	Row          int `json:"row"`
	TargetStitch int `json:"targetStitch"`
}

// EffectiveStitch returns the target stitch count in effect at row: the value
// of the greatest listed row ≤ row. ok is false when no listed row qualifies.
func (p PatternPart) EffectiveStitch(row int) (stitch int, ok bool) {
	for _, g := range p.StitchGuide {
		if g.Row <= row {
			stitch, ok = g.TargetStitch, true
		}
	}
	return stitch, ok
}

// NextStitchChange returns the first listed point strictly after row, for
// previewing upcoming shaping. ok is false when the guide ends before then.
func (p PatternPart) NextStitchChange(row int) (StitchPoint, bool) {
	for _, g := range p.StitchGuide {
		if g.Row > row {
			return g, true
		}
	}
	return StitchPoint{}, false
}

// SortStitchGuide orders the guide by row ascending. Lookup helpers assume
// this order.
func (p *PatternPart) SortStitchGuide() {
	sort.Slice(p.StitchGuide, func(i, j int) bool {
		return p.StitchGuide[i].Row < p.StitchGuide[j].Row
	})
}
