package parser

import (
	"encoding/json"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/knitworks/pattern-analyzer/internal/entity"
)

// rowRange matches "34-37", "34~37" and the same with a trailing row-count
// suffix some patterns carry ("34~37단").
var rowRange = regexp.MustCompile(`^(\d+)\s*[-~]\s*(\d+)`)

// maxRangeSpan caps how many rows a single range entry may expand to, so a
// hallucinated "1~999999" cannot blow up the guide.
const maxRangeSpan = 1000

// normalize repairs a raw analysis into the canonical form: defaults
// filled, row ranges expanded, duplicates collapsed, guides sorted.
func normalize(raw rawAnalysis) *entity.PatternAnalysis {
	out := &entity.PatternAnalysis{
		ProjectName: "Untitled Project",
		Parts:       make([]entity.PatternPart, 0, len(raw.Parts)),
	}
	if raw.ProjectName != nil {
		if name := strings.TrimSpace(*raw.ProjectName); name != "" {
			out.ProjectName = name
		}
	}

	for i, rp := range raw.Parts {
		part := normalizePart(rp, i)
		out.Parts = append(out.Parts, part)
	}
	return out
}

func normalizePart(rp rawPart, index int) entity.PatternPart {
	part := entity.PatternPart{
		PartName: "Part " + strconv.Itoa(index+1),
		StartRow: 1,
	}
	if rp.PartName != nil {
		if name := strings.TrimSpace(*rp.PartName); name != "" {
			part.PartName = name
		}
	}
	if rp.StartRow != nil && *rp.StartRow > 0 {
		part.StartRow = *rp.StartRow
	}

	part.StitchGuide = normalizeGuide(rp.StitchGuide)

	switch {
	case rp.TargetRow != nil && *rp.TargetRow > 0:
		part.TargetRow = *rp.TargetRow
	case len(part.StitchGuide) > 0:
		// fall back to the last guided row
		part.TargetRow = part.StitchGuide[len(part.StitchGuide)-1].Row
	default:
		part.TargetRow = part.StartRow
	}
	return part
}

// normalizeGuide expands range rows, drops entries missing a usable row or
// stitch count, collapses duplicate rows (last occurrence wins) and sorts.
func normalizeGuide(raw []rawStitchPoint) []entity.StitchPoint {
	if len(raw) == 0 {
		return nil
	}

	byRow := make(map[int]int, len(raw))
	for _, sp := range raw {
		if sp.TargetStitch == nil || *sp.TargetStitch < 0 {
			continue
		}
		for _, row := range expandRow(sp.Row) {
			byRow[row] = *sp.TargetStitch
		}
	}
	if len(byRow) == 0 {
		return nil
	}

	out := make([]entity.StitchPoint, 0, len(byRow))
	for row, stitch := range byRow {
		out = append(out, entity.StitchPoint{Row: row, TargetStitch: stitch})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Row < out[j].Row })
	return out
}

// expandRow turns a raw row value into the concrete rows it covers. A JSON
// number yields itself; a string may be a bare number or a range. Anything
// else yields nothing.
func expandRow(raw []byte) []int {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return nil
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n <= 0 {
			return nil
		}
		return []int{n}
	}

	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		return nil
	}
	str = strings.TrimSpace(str)

	if n, err := strconv.Atoi(strings.TrimSuffix(str, "단")); err == nil {
		if n <= 0 {
			return nil
		}
		return []int{n}
	}

	m := rowRange.FindStringSubmatch(str)
	if m == nil {
		return nil
	}
	lo, _ := strconv.Atoi(m[1])
	hi, _ := strconv.Atoi(m[2])
	if lo <= 0 || hi < lo || hi-lo >= maxRangeSpan {
		return nil
	}
	rows := make([]int, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		rows = append(rows, r)
	}
	return rows
}
