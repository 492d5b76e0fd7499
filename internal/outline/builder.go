package outline

import (
	"sort"
	"strings"

	"github.com/dgallion1/doclens/internal/config"
	"github.com/dgallion1/doclens/internal/heading"
)

// Builder consumes scored candidates in document order and emits the
// final outline. It is stateful across one document and must process
// candidates sequentially; it is not safe for concurrent use.
type Builder struct {
	t     config.Tuning
	trace []Decision
}

func NewBuilder(t config.Tuning) *Builder {
	return &Builder{t: t}
}

// Build filters and orders candidates into outline items. Candidates are
// re-sorted into reading order first; the running hierarchy path and the
// duplicate set only advance on accepted candidates.
func (b *Builder) Build(candidates []heading.Candidate) []Item {
	b.trace = nil
	items := []Item{} // never nil: the serialized outline is always an array
	if len(candidates) == 0 {
		return items
	}

	sorted := make([]heading.Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Page != sorted[j].Page {
			return sorted[i].Page < sorted[j].Page
		}
		return sorted[i].Position < sorted[j].Position
	})

	var path []string // ancestor labels, H1=0 .. H4=3
	seen := make(map[string]bool)

	for _, c := range sorted {
		key := strings.ToLower(strings.TrimSpace(c.Text))
		if seen[key] {
			b.record(c, false, "duplicate text")
			continue
		}
		if reason := b.check(c, items); reason != "" {
			b.record(c, false, reason)
			continue
		}

		// A new heading at level k closes any deeper context: keep at
		// most k ancestor slots, then push this heading's label.
		depth := heading.Depth(c.Level)
		if depth < len(path) {
			path = path[:depth]
		}
		path = append(path, truncateLabel(c.Text, b.t.PathLabelLen))

		seen[key] = true
		b.record(c, true, "")
		items = append(items, Item{
			Level:    c.Level,
			Text:     c.Text,
			Page:     c.Page,
			Position: c.Position,
		})
	}

	if len(items) > b.t.MaxOutlineItems {
		items = items[:b.t.MaxOutlineItems]
	}
	return items
}

// Trace returns the accept/reject decision for every candidate of the
// last Build call.
func (b *Builder) Trace() []Decision {
	return b.trace
}

// check applies the whole-document quality filters. It returns an empty
// string when the candidate passes, else the rejection reason.
func (b *Builder) check(c heading.Candidate, accepted []Item) string {
	// Stricter floor than the page scorer: this stage has document-wide
	// context.
	if c.Confidence < b.t.BuilderConfidenceFloor {
		return "confidence below floor"
	}
	if isSentenceFragment(c.Text) {
		return "sentence fragment"
	}
	if breaksHierarchyPath(c.Text) {
		return "breaks hierarchy path"
	}
	if !isMeaningfulHeading(c.Text) {
		return "not a meaningful heading"
	}
	if b.isContextualDuplicate(c.Text, accepted) {
		return "contextual duplicate"
	}
	return ""
}

// isContextualDuplicate compares the candidate against the most recently
// accepted headings: an exact case-insensitive match or a word-set
// overlap above the configured ratio counts as a duplicate.
func (b *Builder) isContextualDuplicate(text string, accepted []Item) bool {
	start := len(accepted) - b.t.RecentDuplicateWindow
	if start < 0 {
		start = 0
	}
	lower := strings.ToLower(strings.TrimSpace(text))
	words := wordSet(lower)

	for _, item := range accepted[start:] {
		other := strings.ToLower(strings.TrimSpace(item.Text))
		if lower == other {
			return true
		}
		otherWords := wordSet(other)
		if len(words) == 0 || len(otherWords) == 0 {
			continue
		}
		overlap := 0
		for w := range words {
			if otherWords[w] {
				overlap++
			}
		}
		smaller := len(words)
		if len(otherWords) < smaller {
			smaller = len(otherWords)
		}
		if float64(overlap)/float64(smaller) > b.t.DuplicateOverlap {
			return true
		}
	}
	return false
}

func (b *Builder) record(c heading.Candidate, accepted bool, reason string) {
	b.trace = append(b.trace, Decision{
		Text:     c.Text,
		Page:     c.Page,
		Accepted: accepted,
		Reason:   reason,
	})
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(s) {
		set[w] = true
	}
	return set
}

func truncateLabel(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
