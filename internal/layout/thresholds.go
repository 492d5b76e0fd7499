package layout

import (
	"sort"
	"strings"
)

// Thresholds are the per-page font sizes separating heading levels.
// Any line at or above H1 scores as H1, between H2 and H1 as H2, and so
// on; below H3 is implicitly H4.
type Thresholds struct {
	H1 float64
	H2 float64
	H3 float64
}

// structuralKeywords mark font sizes that carry section-like text even
// when the size is also used for longer runs.
var structuralKeywords = []string{"summary", "background", "appendix", "phase", "section"}

const defaultFontSize = 12

// Calibrate derives the page's heading-size thresholds from how each
// distinct font size is used. A size qualifies as a heading-candidate size
// when its average line length stays under shortLineAvgLen characters or
// it carries at least one structural-keyword hit. The top three candidate
// sizes (descending) map to H1/H2/H3, degrading gracefully when fewer
// exist; with no candidates the largest sizes on the page are used.
func Calibrate(lines []Line, shortLineAvgLen float64) Thresholds {
	type usage struct {
		count      int
		totalChars int
		keywords   int
	}

	stats := make(map[float64]*usage)
	var sizes []float64
	for _, l := range lines {
		if l.AvgSize <= 0 {
			continue
		}
		u := stats[l.AvgSize]
		if u == nil {
			u = &usage{}
			stats[l.AvgSize] = u
			sizes = append(sizes, l.AvgSize)
		}
		u.count++
		u.totalChars += len(l.Text)
		lower := strings.ToLower(l.Text)
		for _, kw := range structuralKeywords {
			if strings.Contains(lower, kw) {
				u.keywords++
				break
			}
		}
	}
	if len(sizes) == 0 {
		return Thresholds{H1: defaultFontSize, H2: defaultFontSize, H3: defaultFontSize}
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	var headingSizes []float64
	for _, size := range sizes {
		u := stats[size]
		avgLen := float64(u.totalChars) / float64(u.count)
		if avgLen < shortLineAvgLen || u.keywords > 0 {
			headingSizes = append(headingSizes, size)
		}
	}

	switch {
	case len(headingSizes) >= 3:
		return Thresholds{H1: headingSizes[0], H2: headingSizes[1], H3: headingSizes[2]}
	case len(headingSizes) == 2:
		return Thresholds{H1: headingSizes[0], H2: headingSizes[1], H3: headingSizes[1]}
	case len(headingSizes) == 1:
		return Thresholds{H1: headingSizes[0], H2: headingSizes[0], H3: headingSizes[0]}
	}

	// No size looks heading-like; fall back to the largest sizes overall.
	th := Thresholds{H1: sizes[0], H2: sizes[0], H3: sizes[0]}
	if len(sizes) > 1 {
		th.H2 = sizes[1]
		th.H3 = sizes[1]
	}
	if len(sizes) > 2 {
		th.H3 = sizes[2]
	}
	return th
}
