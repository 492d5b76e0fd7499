// Package layout reconstructs visual text lines from raw character
// geometry and calibrates per-page font-size thresholds for the heading
// heuristics.
package layout

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/dgallion1/doclens/internal/geometry"
)

// Line is one visual text line with aggregated font and position
// attributes. Immutable after construction.
type Line struct {
	Text       string
	AvgSize    float64
	MaxSize    float64
	LeftMargin float64
	Bold       bool
	Position   float64 // distance from page top
	Page       int
}

// BuildLines groups characters sharing the same rounded vertical position
// into lines, ordered top of page first. Characters within a line are
// ordered left to right and concatenated. Lines whose text is empty after
// trimming are skipped.
//
// Characters with no shared rounding key stay separate lines even when
// visually adjacent; occasional line splitting is a known cost of the
// grouping scheme.
func BuildLines(chars []geometry.Char, page int) []Line {
	if len(chars) == 0 {
		return nil
	}

	groups := make(map[int][]geometry.Char)
	for _, c := range chars {
		key := int(math.Round(c.Y))
		groups[key] = append(groups[key], c)
	}

	keys := make([]int, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	lines := make([]Line, 0, len(keys))
	for _, k := range keys {
		group := groups[k]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].X < group[j].X
		})

		var sb strings.Builder
		var sizeSum, maxSize float64
		leftMargin := math.Inf(1)
		bold := false
		for _, c := range group {
			sb.WriteString(c.Text)
			sizeSum += c.Size
			if c.Size > maxSize {
				maxSize = c.Size
			}
			if c.X < leftMargin {
				leftMargin = c.X
			}
			if !bold && strings.Contains(strings.ToLower(c.Font), "bold") {
				bold = true
			}
		}

		text := strings.TrimSpace(norm.NFC.String(sb.String()))
		if text == "" {
			continue
		}

		lines = append(lines, Line{
			Text:       text,
			AvgSize:    sizeSum / float64(len(group)),
			MaxSize:    maxSize,
			LeftMargin: leftMargin,
			Bold:       bold,
			Position:   float64(k),
			Page:       page,
		})
	}
	return lines
}

// Texts returns the line texts in reading order.
func Texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}
