package outline

import (
	"strings"
	"testing"

	"github.com/dgallion1/doclens/internal/config"
)

func TestExtractTitleRFP(t *testing.T) {
	lines := []string{
		"Ontario Library Association",
		"RFP: Request for Proposal",
		"To Present a Proposal for Developing",
		"the Business Plan for the Ontario Digital Library",
	}
	got := ExtractTitle(lines, config.DefaultTuning())
	if !strings.Contains(got, "Request for Proposal") {
		t.Errorf("title %q missing the RFP phrase", got)
	}
	if !strings.Contains(got, "Business Plan") {
		t.Errorf("title %q missing the continuation lines", got)
	}
}

func TestExtractTitleDomainKeywordFallback(t *testing.T) {
	lines := []string{
		"v2.1",
		"A Business Plan for the Ontario Digital Library",
		"March 2023",
	}
	got := ExtractTitle(lines, config.DefaultTuning())
	if got != "A Business Plan for the Ontario Digital Library" {
		t.Errorf("got %q", got)
	}
}

func TestExtractTitleFirstLineFallback(t *testing.T) {
	got := ExtractTitle([]string{"Quarterly Report", "page 1"}, config.DefaultTuning())
	if got != "Quarterly Report" {
		t.Errorf("got %q, want first line", got)
	}
}

func TestExtractTitleNeverEmpty(t *testing.T) {
	if got := ExtractTitle(nil, config.DefaultTuning()); got != "Untitled" {
		t.Errorf("got %q, want Untitled", got)
	}
	if got := ExtractTitle([]string{"  ", ""}, config.DefaultTuning()); got != "Untitled" {
		t.Errorf("got %q, want Untitled", got)
	}
}

func TestExtractTitleCollapsesWhitespace(t *testing.T) {
	lines := []string{
		"RFP: Request  for   Proposal",
		"To present a proposal for the Ontario Digital Library",
	}
	got := ExtractTitle(lines, config.DefaultTuning())
	if strings.Contains(got, "  ") {
		t.Errorf("title %q contains a run of spaces", got)
	}
}
