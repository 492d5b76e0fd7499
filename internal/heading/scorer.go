package heading

import (
	"strings"

	"github.com/dgallion1/doclens/internal/config"
	"github.com/dgallion1/doclens/internal/layout"
)

// Scorer turns text lines into heading candidates using the page's
// calibrated font-size thresholds.
type Scorer struct {
	t config.Tuning
}

func NewScorer(t config.Tuning) *Scorer {
	return &Scorer{t: t}
}

// Score evaluates one line. It returns false when the line is rejected by
// the hard filters or its confidence stays at or under the page
// acceptance floor.
func (s *Scorer) Score(line layout.Line, th layout.Thresholds) (Candidate, bool) {
	text := strings.TrimSpace(line.Text)

	if len(text) < s.t.MinHeadingLen || len(text) > s.t.MaxHeadingLen {
		return Candidate{}, false
	}
	if isDefinitelyNotHeading(text) {
		return Candidate{}, false
	}

	confidence := 0.0
	level := LevelH4

	// Font-size band relative to the page thresholds. The band also sets
	// the tentative level.
	switch {
	case line.AvgSize >= th.H1:
		confidence += s.t.BandBoostH1
		level = LevelH1
	case line.AvgSize >= th.H2:
		confidence += s.t.BandBoostH2
		level = LevelH2
	case line.AvgSize >= th.H3:
		confidence += s.t.BandBoostH3
		level = LevelH3
	default:
		confidence += s.t.BandBoostH4
	}

	// Textual pattern rules. The suggested level wins over the font band
	// only for strong matches.
	boost, patternLevel := analyzePatterns(text)
	confidence += boost
	if patternLevel != "" && boost > s.t.LevelOverrideBoost {
		level = patternLevel
	}

	if line.Bold {
		confidence += s.t.BoldBonus
	}
	if line.LeftMargin < s.t.LeftMarginMax {
		confidence += s.t.LeftAlignBonus
	}

	if len(text) < s.t.ShortTextLen {
		confidence += s.t.LengthBonus
	}
	if len(text) < s.t.VeryShortTextLen {
		confidence += s.t.LengthBonus
	}

	if IsWellFormed(text) {
		confidence += s.t.WellFormedBonus
	}
	if IsIncomplete(text) {
		confidence -= s.t.IncompletePenalty
	}

	if confidence <= s.t.PageConfidenceFloor {
		return Candidate{}, false
	}

	return Candidate{
		Text:       text,
		Level:      level,
		Page:       line.Page,
		Confidence: clamp01(confidence),
		FontSize:   line.AvgSize,
		Position:   line.Position,
	}, true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
