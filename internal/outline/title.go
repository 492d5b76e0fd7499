package outline

import (
	"regexp"
	"strings"

	"github.com/dgallion1/doclens/internal/config"
)

// Title extraction scans the first page's reconstructed lines for
// structural title patterns. Multi-line titles (common in RFP cover
// pages) are stitched back together from neighboring lines.

const untitled = "Untitled"

var (
	leadingDigitRe = regexp.MustCompile(`^\d+`)
	spaceRunRe     = regexp.MustCompile(`\s+`)
)

var monthNames = []string{
	"january", "february", "march", "april", "may", "june", "july",
	"august", "september", "october", "november", "december",
}

// ExtractTitle reconstructs the document title from first-page lines.
// It never returns an empty string.
func ExtractTitle(lines []string, t config.Tuning) string {
	trimmed := make([]string, 0, len(lines))
	for _, l := range lines {
		if s := strings.TrimSpace(l); s != "" {
			trimmed = append(trimmed, s)
		}
	}
	if len(trimmed) == 0 {
		return untitled
	}

	candidates := rfpTitles(trimmed, t)
	if len(candidates) == 0 {
		candidates = proposalTitles(trimmed, t)
	}
	if len(candidates) == 0 {
		candidates = businessPlanTitles(trimmed, t)
	}
	if len(candidates) == 0 {
		candidates = composedTitles(trimmed)
	}

	if len(candidates) > 0 {
		// The longest candidate is assumed most complete.
		best := candidates[0]
		for _, c := range candidates[1:] {
			if len(c) > len(best) {
				best = c
			}
		}
		best = strings.TrimSpace(spaceRunRe.ReplaceAllString(best, " "))
		if len(best) > t.TitleMaxLen {
			if sentence, _, found := strings.Cut(best, "."); found && len(sentence) > 30 {
				best = strings.TrimSpace(sentence)
			}
		}
		return best
	}

	// Any substantial early line naming the domain.
	for _, line := range head(trimmed, 8) {
		if len(line) > 15 && containsAny(strings.ToLower(line), t.DomainKeywords) &&
			!leadingDigitRe.MatchString(line) {
			return line
		}
	}
	return trimmed[0]
}

// rfpTitles reconstructs titles around explicit "request for proposal"
// language, looking a few lines backward and forward from the match.
func rfpTitles(lines []string, t config.Tuning) []string {
	var candidates []string
	for i, line := range head(lines, 20) {
		lower := strings.ToLower(line)
		if !(strings.Contains(lower, "request for proposal") ||
			(strings.Contains(lower, "rfp") && strings.Contains(lower, "request"))) {
			continue
		}

		var parts []string
		start := i - 3
		if start < 0 {
			start = 0
		}
		for j := start; j <= i; j++ {
			prev := lines[j]
			if len(prev) > 5 && !leadingDigitRe.MatchString(prev) && !startsWithMonth(prev) {
				parts = append(parts, prev)
			}
		}
		for j := i + 1; j < i+8 && j < len(lines); j++ {
			next := lines[j]
			if len(next) > 5 && containsAny(strings.ToLower(next), t.DomainKeywords) && !startsWithMonth(next) {
				parts = append(parts, next)
			} else if len(next) < 80 && !strings.HasSuffix(next, ".") {
				parts = append(parts, next)
			} else {
				break
			}
		}

		if len(parts) > 0 {
			full := strings.TrimSpace(spaceRunRe.ReplaceAllString(strings.Join(parts, " "), " "))
			if len(full) > 20 {
				candidates = append(candidates, full)
			}
		}
	}
	return candidates
}

// proposalTitles handles "to present ... proposal" openers followed by
// continuation lines carrying domain keywords.
func proposalTitles(lines []string, t config.Tuning) []string {
	var candidates []string
	for i, line := range head(lines, 15) {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "to present") || !strings.Contains(lower, "proposal") {
			continue
		}
		parts := []string{line}
		for j := i + 1; j < i+5 && j < len(lines); j++ {
			if containsAny(strings.ToLower(lines[j]), t.DomainKeywords) {
				parts = append(parts, lines[j])
			} else {
				break
			}
		}
		if len(parts) > 1 {
			candidates = append(candidates, strings.Join(parts, " "))
		}
	}
	return candidates
}

func businessPlanTitles(lines []string, t config.Tuning) []string {
	var candidates []string
	for _, line := range head(lines, 10) {
		lower := strings.ToLower(line)
		if len(line) > 20 && strings.Contains(lower, "business plan") &&
			containsAny(lower, t.DomainKeywords) {
			candidates = append(candidates, line)
		}
	}
	return candidates
}

// composedTitles independently locates an RFP line, a proposal line, and
// a business-plan line in the first ten lines and concatenates whichever
// were found.
func composedTitles(lines []string) []string {
	var rfpLine, proposalLine, businessLine string
	for _, line := range head(lines, 10) {
		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "rfp") || strings.Contains(lower, "request for proposal"):
			rfpLine = line
		case strings.Contains(lower, "to present") && strings.Contains(lower, "proposal"):
			proposalLine = line
		case strings.Contains(lower, "business plan"):
			businessLine = line
		}
	}
	if rfpLine == "" || (proposalLine == "" && businessLine == "") {
		return nil
	}
	parts := []string{rfpLine}
	if proposalLine != "" {
		parts = append(parts, proposalLine)
	}
	if businessLine != "" {
		parts = append(parts, businessLine)
	}
	return []string{strings.Join(parts, " ")}
}

func startsWithMonth(line string) bool {
	lower := strings.ToLower(line)
	for _, m := range monthNames {
		if strings.HasPrefix(lower, m) {
			return true
		}
	}
	return false
}

func head(lines []string, n int) []string {
	if len(lines) < n {
		return lines
	}
	return lines[:n]
}
