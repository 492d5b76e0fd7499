// Package heading classifies text lines as heading candidates by
// combining font-size bands, textual pattern rules, and formatting
// signals into a bounded confidence score.
package heading

// Heading levels. H4 is the implicit lowest band.
const (
	LevelH1 = "H1"
	LevelH2 = "H2"
	LevelH3 = "H3"
	LevelH4 = "H4"
)

// Candidate is a line provisionally classified as a heading, before
// whole-document consistency checks.
type Candidate struct {
	Text       string
	Level      string
	Page       int
	Confidence float64 // in [0,1]; heuristic, not a calibrated probability
	FontSize   float64
	Position   float64 // distance from page top
}

// Depth returns the ancestor-slot depth of a level (H1=0 .. H4=3).
func Depth(level string) int {
	switch level {
	case LevelH1:
		return 0
	case LevelH2:
		return 1
	case LevelH3:
		return 2
	default:
		return 3
	}
}
