package heading

import (
	"regexp"
	"strings"
	"unicode"
)

// Hard rejection filters. Any match means the line is discarded before
// scoring starts.

var (
	dateRe        = regexp.MustCompile(`^\w+\s+\d{1,2},?\s+\d{4}`)
	numericOnlyRe = regexp.MustCompile(`^[\d$,.\s%\-()]+$`)
	timelineRe    = regexp.MustCompile(`^\w+ \d{4}\s*-?\s*$`)
)

var fragmentStarts = []string{
	"and ", "or ", "but ", "the ", "a ", "an ", "of ", "in ", "to ", "for ",
}

var fragmentEnds = []string{
	" and", " or", " of", " in", " to", " for", " the", " a",
}

// IsNonHeading reports text shapes that never form headings: dates,
// emails, URLs, full sentences, pure numeric or currency strings, and
// lone short tokens.
func IsNonHeading(text string) bool {
	if dateRe.MatchString(text) {
		return true
	}
	if strings.Contains(text, "@") && strings.Contains(text, ".") {
		return true
	}
	if strings.HasPrefix(text, "http://") || strings.HasPrefix(text, "https://") || strings.HasPrefix(text, "www.") {
		return true
	}
	// A long, space-separated run ending in a period is a sentence.
	if strings.HasSuffix(text, ".") && len(text) > 40 && strings.Contains(text, " ") {
		return true
	}
	if numericOnlyRe.MatchString(text) {
		return true
	}
	if len(strings.Fields(text)) == 1 && len(text) < 8 {
		return true
	}
	return false
}

// IsContentFragment reports lines that read like the middle of a
// sentence rather than a heading.
func IsContentFragment(text string) bool {
	lower := strings.ToLower(text)
	for _, s := range fragmentStarts {
		if strings.HasPrefix(lower, s) {
			return true
		}
	}
	for _, e := range fragmentEnds {
		if strings.HasSuffix(lower, e) {
			return true
		}
	}
	if timelineRe.MatchString(text) || strings.Contains(lower, "timeline:") {
		return true
	}
	if len(strings.Fields(text)) < 2 && !strings.HasSuffix(text, ":") && !IsAllCaps(text) {
		return true
	}
	return false
}

// isDefinitelyNotHeading combines the negative filters with two extra
// shapes: lone short tokens and multi-sentence runs.
func isDefinitelyNotHeading(text string) bool {
	if IsNonHeading(text) || IsContentFragment(text) {
		return true
	}
	words := strings.Fields(text)
	if len(words) == 1 && len(text) < 4 {
		return true
	}
	if strings.Count(text, ".") > 1 && len(text) > 60 {
		return true
	}
	return false
}

var (
	wellFormedSectionRe = regexp.MustCompile(`(?i)^(Summary|Background|Introduction|Overview|Conclusion)$`)
	appendixRe          = regexp.MustCompile(`(?i)^appendix [a-z]:`)
	phaseRe             = regexp.MustCompile(`(?i)^phase [ivx]+:`)
	titleCaseColonRe    = regexp.MustCompile(`^[A-Z][a-z]+(\s+[A-Z][a-z]*)*:$`)
	numberedSectionRe   = regexp.MustCompile(`^\d+\.\s+[A-Z][a-z]`)
	numberedSubRe       = regexp.MustCompile(`^\d+\.\d+\s+[A-Z][a-z]`)
)

// IsWellFormed reports text matching a closed set of complete heading
// shapes: named sections, numbered sections, title-case colon phrases,
// and complete questions.
func IsWellFormed(text string) bool {
	if (strings.HasPrefix(text, "What ") || strings.HasPrefix(text, "How ") || strings.HasPrefix(text, "Why ")) &&
		strings.HasSuffix(text, "?") {
		return true
	}
	if wellFormedSectionRe.MatchString(text) ||
		appendixRe.MatchString(text) ||
		phaseRe.MatchString(text) ||
		titleCaseColonRe.MatchString(text) ||
		numberedSectionRe.MatchString(text) {
		return true
	}
	if (strings.HasPrefix(text, "For each ") || strings.HasPrefix(text, "For the ")) &&
		strings.HasSuffix(text, ":") {
		return true
	}
	return false
}

var incompleteEnds = []string{
	" to", " and", " or", " of", " in", " for", " the", " a", " an",
}

var incompleteStarts = []string{
	"to ", "and ", "or ", "of ", "in ", "for ",
}

// IsIncomplete reports text that trails off mid-phrase or sprawls past
// heading length.
func IsIncomplete(text string) bool {
	for _, e := range incompleteEnds {
		if strings.HasSuffix(text, e) {
			return true
		}
	}
	for _, s := range incompleteStarts {
		if strings.HasPrefix(text, s) {
			return true
		}
	}
	if strings.Contains(text, "...") || strings.Count(text, " ") > 12 {
		return true
	}
	return false
}

// IsAllCaps reports whether text has letters and none of them lowercase.
func IsAllCaps(text string) bool {
	hasLetter := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// IsTitleCase reports whether every word starts uppercase, in the manner
// of strings.Title output.
func IsTitleCase(text string) bool {
	words := strings.Fields(text)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		r := []rune(w)[0]
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
