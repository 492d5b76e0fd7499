package heading

import "strings"

// patternRule is one textual heading shape. Rules are evaluated in
// priority order and only the first match applies its boost and level
// suggestion. An empty level contributes confidence without forcing the
// level derived from the font band.
type patternRule struct {
	name  string
	match func(text, lower string) bool
	boost float64
	level string
}

var documentStructureVocab = []string{
	"revision history", "table of contents", "acknowledgements", "references",
}

var majorSections = []string{
	"summary", "background", "introduction", "overview",
	"methodology", "conclusion", "timeline", "milestones",
}

var sectionNounVocab = []string{
	"intended audience", "career paths", "learning objectives",
	"entry requirements", "business outcomes",
}

var businessVocab = []string{
	"business plan", "approach and specific", "evaluation and awarding",
	"milestones", "requirements", "terms of reference",
}

var importantSingles = []string{
	"summary", "background", "timeline", "milestones", "preamble",
	"membership", "chair", "term", "meetings", "acknowledgements",
	"references", "content", "trademarks",
}

var colonSubjectVocab = []string{
	"funding", "governance", "decision-making", "access", "support", "training",
}

var patternRules = []patternRule{
	{
		name: "document structure",
		match: func(_, lower string) bool {
			return containsAny(lower, documentStructureVocab)
		},
		boost: 0.9,
		level: LevelH1,
	},
	{
		name: "numbered section",
		match: func(text, _ string) bool {
			return numberedSectionRe.MatchString(text)
		},
		boost: 0.9,
		level: LevelH1,
	},
	{
		name: "numbered subsection",
		match: func(text, _ string) bool {
			return numberedSubRe.MatchString(text)
		},
		boost: 0.8,
		level: LevelH2,
	},
	{
		name: "appendix",
		match: func(text, _ string) bool {
			return appendixRe.MatchString(text)
		},
		boost: 0.8,
		level: LevelH2,
	},
	{
		name: "phase",
		match: func(text, _ string) bool {
			return phaseRe.MatchString(text)
		},
		boost: 0.7,
		level: LevelH3,
	},
	{
		name: "major section",
		match: func(_, lower string) bool {
			return equalsAny(lower, majorSections)
		},
		boost: 0.8,
		level: LevelH2,
	},
	{
		name: "section noun",
		match: func(_, lower string) bool {
			return containsAny(lower, sectionNounVocab)
		},
		boost: 0.8,
		level: LevelH2,
	},
	{
		name: "enumerating phrase",
		match: func(text, _ string) bool {
			return strings.HasPrefix(text, "For each ") || strings.HasPrefix(text, "For the ")
		},
		boost: 0.6,
		level: LevelH3,
	},
	{
		// Question-shaped phrases boost confidence but keep the
		// font-band level.
		name: "question",
		match: func(text, _ string) bool {
			return (strings.HasPrefix(text, "What ") ||
				strings.HasPrefix(text, "How ") ||
				strings.HasPrefix(text, "Why ")) &&
				strings.HasSuffix(text, "?")
		},
		boost: 0.3,
	},
	{
		name: "business term",
		match: func(_, lower string) bool {
			return containsAny(lower, businessVocab)
		},
		boost: 0.7,
		level: LevelH2,
	},
	{
		name: "structural single word",
		match: func(_, lower string) bool {
			return equalsAny(lower, importantSingles)
		},
		boost: 0.8,
		level: LevelH1,
	},
	{
		name: "named colon phrase",
		match: func(text, lower string) bool {
			return strings.HasSuffix(text, ":") && len(text) < 80 && len(text) > 3 &&
				containsAny(lower, colonSubjectVocab)
		},
		boost: 0.6,
		level: LevelH3,
	},
	{
		name: "colon phrase",
		match: func(text, _ string) bool {
			return strings.HasSuffix(text, ":") && len(text) < 80 && len(text) > 3
		},
		boost: 0.5,
		level: LevelH3,
	},
	{
		name: "all caps",
		match: func(text, _ string) bool {
			return IsAllCaps(text) && len(text) > 3 && len(text) < 60
		},
		boost: 0.6,
		level: LevelH2,
	},
}

// analyzePatterns runs the priority-ordered rule table and returns the
// first matching rule's boost and level suggestion.
func analyzePatterns(text string) (boost float64, level string) {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, rule := range patternRules {
		if rule.match(text, lower) {
			return rule.boost, rule.level
		}
	}
	return 0, ""
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
