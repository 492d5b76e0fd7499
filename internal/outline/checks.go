package outline

import (
	"regexp"
	"strings"

	"github.com/dgallion1/doclens/internal/heading"
)

// Whole-document candidate checks. These are deliberately more permissive
// than the page-level filters: known structural section names pass even
// when they would look fragment-like in isolation.

var structuralSingles = []string{
	"summary", "background", "timeline", "milestones", "preamble",
	"membership", "chair", "term", "meetings", "acknowledgements",
	"references", "content", "trademarks",
}

var documentHeaders = []string{
	"revision history", "table of contents", "acknowledgements",
	"references", "trademarks", "documents and web sites",
}

var connectivePhrases = []string{
	" is to ", " are to ", " will be ", " has been ", " have been ",
	" can be ", " should be ", " must be ", " to be ", " that ",
	" which ", " where ", " when ", " while ", " during ",
}

var trailingIncomplete = []string{
	" to", " and", " or", " of", " in", " for", " the", " a", " an",
	" that", " which",
}

var (
	looseNumberedRe    = regexp.MustCompile(`^\d+\.\s+[A-Za-z]`)
	looseNumberedSubRe = regexp.MustCompile(`^\d+\.\d+\s+[A-Za-z]`)
	yearPrefixRe       = regexp.MustCompile(`^\d{4}[\s\-]`)
	pureNumericRe      = regexp.MustCompile(`^[\d\s\-.()]+$`)
	pageNumberRe       = regexp.MustCompile(`^page \d+`)
	appendixHeadRe     = regexp.MustCompile(`(?i)^Appendix [A-Z]:`)
	namedSectionRe     = regexp.MustCompile(`(?i)^(Summary|Background|Introduction|Overview|Conclusion|Timeline|Milestones|Acknowledgements|References)$`)
	namedRoleRe        = regexp.MustCompile(`(?i)^(Chair|Term|Meetings|Membership|Preamble|Content|Audience|Duration|Outcomes|Trademarks)$`)
	phaseHeadRe        = regexp.MustCompile(`(?i)^Phase [IVX]+:`)
	titleColonRe       = regexp.MustCompile(`^[A-Z][a-z]+(\s+[A-Z][a-z]*)*:$`)
)

var businessTerms = []string{
	"business plan", "requirements", "evaluation", "approach",
	"implementation", "methodology", "milestones", "funding",
	"terms of reference", "accountability", "communication",
	"intended audience", "career paths", "learning objectives",
	"entry requirements", "structure and course", "keeping it current",
	"business outcomes", "documents and web sites",
}

var articleStarts = []string{
	"the ", "a ", "an ", "and ", "or ", "but ", "to ", "of ", "in ", "for ",
}

// isSentenceFragment flags text that reads like a broken-off sentence,
// exempting known structural names and numbered shapes.
func isSentenceFragment(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))

	if equalsAny(lower, structuralSingles) {
		return false
	}
	if containsAny(lower, documentHeaders) {
		return false
	}
	if looseNumberedRe.MatchString(text) || looseNumberedSubRe.MatchString(text) {
		return false
	}

	if text != "" {
		r := []rune(text)[0]
		if r >= 'a' && r <= 'z' {
			return true
		}
	}
	if containsAny(lower, connectivePhrases) {
		return true
	}
	if !strings.HasSuffix(text, ":") {
		for _, suffix := range trailingIncomplete {
			if strings.HasSuffix(text, suffix) {
				return true
			}
		}
	}
	if len(strings.Fields(text)) < 2 && !strings.HasSuffix(text, ":") && !heading.IsAllCaps(text) {
		return true
	}
	return false
}

// breaksHierarchyPath flags shapes that never belong in a heading path:
// timeline entries, financial data, and page-number tokens.
func breaksHierarchyPath(text string) bool {
	lower := strings.ToLower(text)
	if yearPrefixRe.MatchString(text) || strings.Contains(lower, "timeline:") {
		return true
	}
	if currencyRe.MatchString(text) {
		return true
	}
	if len(text) < 10 && (isDigits(text) || pageNumberRe.MatchString(lower)) {
		return true
	}
	return false
}

var currencyRe = regexp.MustCompile(`^[\d$,.\s%\-()]+$`)

// isMeaningfulHeading is the positive gate: the text must look like a
// heading somebody would put in a table of contents.
func isMeaningfulHeading(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 2 {
		return false
	}
	if pureNumericRe.MatchString(trimmed) {
		return false
	}
	if strings.Contains(trimmed, "@") ||
		strings.HasPrefix(trimmed, "http://") ||
		strings.HasPrefix(trimmed, "https://") ||
		strings.HasPrefix(trimmed, "www.") {
		return false
	}

	lower := strings.ToLower(trimmed)
	if containsAny(lower, documentHeaders) {
		return true
	}
	if strings.HasSuffix(trimmed, ":") {
		return true
	}
	if isWellFormedQuestion(trimmed) {
		return true
	}
	if looseNumberedRe.MatchString(trimmed) || looseNumberedSubRe.MatchString(trimmed) {
		return true
	}
	if appendixHeadRe.MatchString(trimmed) || phaseHeadRe.MatchString(trimmed) {
		return true
	}
	if namedSectionRe.MatchString(trimmed) || namedRoleRe.MatchString(trimmed) || titleColonRe.MatchString(trimmed) {
		return true
	}
	if strings.HasPrefix(trimmed, "For each ") || strings.HasPrefix(trimmed, "For the ") {
		return true
	}
	if containsAny(lower, businessTerms) && len(trimmed) < 120 {
		return true
	}
	if equalsAny(lower, structuralSingles) {
		return true
	}

	// A bare article or conjunction start marks a sentence, not a
	// heading.
	for _, s := range articleStarts {
		if strings.HasPrefix(lower, s) {
			return false
		}
	}

	if heading.IsTitleCase(trimmed) && len(trimmed) >= 2 && len(trimmed) <= 80 {
		return true
	}
	if heading.IsAllCaps(trimmed) && len(trimmed) >= 2 && len(trimmed) <= 60 {
		return true
	}
	return false
}

func isWellFormedQuestion(text string) bool {
	starters := []string{"What ", "How ", "Why ", "When ", "Where "}
	for _, s := range starters {
		if strings.HasPrefix(text, s) && strings.HasSuffix(text, "?") {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func containsAny(s string, vocab []string) bool {
	for _, v := range vocab {
		if strings.Contains(s, v) {
			return true
		}
	}
	return false
}

func equalsAny(s string, vocab []string) bool {
	for _, v := range vocab {
		if s == v {
			return true
		}
	}
	return false
}
