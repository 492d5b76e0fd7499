package heading

import (
	"strings"
	"testing"

	"github.com/dgallion1/doclens/internal/config"
	"github.com/dgallion1/doclens/internal/layout"
)

var testThresholds = layout.Thresholds{H1: 18, H2: 15, H3: 13}

func scoreLine(t *testing.T, line layout.Line) (Candidate, bool) {
	t.Helper()
	return NewScorer(config.DefaultTuning()).Score(line, testThresholds)
}

func TestScoreNumberedSectionAtH1Size(t *testing.T) {
	c, ok := scoreLine(t, layout.Line{
		Text:       "1. Introduction",
		AvgSize:    18,
		LeftMargin: 50,
		Position:   100,
		Page:       1,
	})
	if !ok {
		t.Fatal("expected candidate for numbered section at H1 size")
	}
	if c.Level != LevelH1 {
		t.Errorf("level = %s, want H1", c.Level)
	}
	if c.Page != 1 || c.Position != 100 {
		t.Errorf("page/position = %d/%v, want 1/100", c.Page, c.Position)
	}
	if c.Confidence != 1.0 {
		t.Errorf("confidence = %v, want clamped 1.0", c.Confidence)
	}
}

func TestScorePatternOverridesFontBand(t *testing.T) {
	// Numbered subsection at body size: the strong pattern sets H2 even
	// though the font band says H4.
	c, ok := scoreLine(t, layout.Line{
		Text:       "2.1 Evaluation Criteria",
		AvgSize:    11,
		Bold:       true,
		LeftMargin: 50,
	})
	if !ok {
		t.Fatal("expected candidate")
	}
	if c.Level != LevelH2 {
		t.Errorf("level = %s, want H2", c.Level)
	}
}

func TestScoreRejectsEmail(t *testing.T) {
	// Email shapes never become candidates, whatever their font size.
	if _, ok := scoreLine(t, layout.Line{Text: "director@library.on.ca", AvgSize: 20}); ok {
		t.Error("expected email line to be rejected")
	}
}

func TestScoreRejectsByLength(t *testing.T) {
	if _, ok := scoreLine(t, layout.Line{Text: "ab", AvgSize: 20}); ok {
		t.Error("expected too-short text to be rejected")
	}
	if _, ok := scoreLine(t, layout.Line{Text: strings.Repeat("x ", 101), AvgSize: 20}); ok {
		t.Error("expected too-long text to be rejected")
	}
}

func TestScoreRejectsBodyTextBelowFloor(t *testing.T) {
	// A plain mixed-shape line at body size collects only the H4 band,
	// margin, and length bonuses, staying at the floor.
	if _, ok := scoreLine(t, layout.Line{
		Text:       "some plain words here that match nothing structural at all, truly",
		AvgSize:    11,
		LeftMargin: 50,
	}); ok {
		t.Error("expected low-signal body line to be rejected")
	}
}

func TestScoreConfidenceClamped(t *testing.T) {
	c, ok := scoreLine(t, layout.Line{
		Text:       "Appendix A: Funding Model",
		AvgSize:    18,
		Bold:       true,
		LeftMargin: 40,
	})
	if !ok {
		t.Fatal("expected candidate")
	}
	if c.Confidence > 1.0 {
		t.Errorf("confidence = %v, want <= 1.0", c.Confidence)
	}
	if c.Level != LevelH2 {
		t.Errorf("level = %s, want H2 from appendix pattern", c.Level)
	}
}
