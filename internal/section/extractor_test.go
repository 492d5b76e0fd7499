package section

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dgallion1/doclens/internal/config"
	"github.com/dgallion1/doclens/internal/geometry"
	"github.com/dgallion1/doclens/internal/heading"
	"github.com/dgallion1/doclens/internal/outline"
)

type fakeDoc struct {
	pages []geometry.Page
}

func (d *fakeDoc) NumPages() int { return len(d.pages) }

func (d *fakeDoc) Page(n int) (geometry.Page, error) {
	if n < 1 || n > len(d.pages) {
		return geometry.Page{}, fmt.Errorf("page %d out of range", n)
	}
	return d.pages[n-1], nil
}

func (d *fakeDoc) Close() error { return nil }

// pageWith lays out one text run per given position, top to bottom.
func pageWith(texts map[float64]string) geometry.Page {
	p := geometry.Page{Width: 612, Height: 792}
	for pos, text := range texts {
		p.Chars = append(p.Chars, geometry.Char{Text: text, X: 50, Y: pos, Size: 11})
	}
	return p
}

func item(text string, page int, pos float64) outline.Item {
	return outline.Item{Level: heading.LevelH2, Text: text, Page: page, Position: pos}
}

func TestExtractBoundedBySameNextHeading(t *testing.T) {
	doc := &fakeDoc{pages: []geometry.Page{pageWith(map[float64]string{
		50:  "Preamble text",
		100: "Funding Model",
		150: "grants are allocated",
		250: "per member library",
		300: "Governance",
		350: "board composition",
	})}}

	target := item("Funding Model", 1, 100)
	next := item("Governance", 1, 300)
	got := NewExtractor(config.DefaultTuning()).Extract(doc, target, []outline.Item{target, next})

	want := "Funding Model grants are allocated per member library"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExtractSpansPages(t *testing.T) {
	doc := &fakeDoc{pages: []geometry.Page{
		pageWith(map[float64]string{
			400: "Funding Model",
			500: "first page tail",
		}),
		pageWith(map[float64]string{
			100: "full interior page",
		}),
		pageWith(map[float64]string{
			100: "before the boundary",
			300: "Governance",
		}),
	}}

	target := item("Funding Model", 1, 400)
	next := item("Governance", 3, 300)
	got := NewExtractor(config.DefaultTuning()).Extract(doc, target, []outline.Item{target, next})

	want := "Funding Model first page tail full interior page before the boundary"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExtractLastHeadingRunsToEnd(t *testing.T) {
	doc := &fakeDoc{pages: []geometry.Page{
		pageWith(map[float64]string{100: "Governance", 200: "board composition"}),
		pageWith(map[float64]string{100: "closing remarks"}),
	}}

	target := item("Governance", 1, 100)
	got := NewExtractor(config.DefaultTuning()).Extract(doc, target, []outline.Item{target})

	want := "Governance board composition closing remarks"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExtractDegenerateSpanFallsBack(t *testing.T) {
	doc := &fakeDoc{pages: []geometry.Page{pageWith(map[float64]string{
		100: "Funding Model",
		150: "some page body text",
	})}}

	// Next heading sits above the target: the crop window is empty.
	target := item("Funding Model", 1, 100)
	next := item("Governance", 1, 50)
	got := NewExtractor(config.DefaultTuning()).Extract(doc, target, []outline.Item{target, next})

	if got == "" {
		t.Fatal("expected fallback text, got empty string")
	}
	if !strings.Contains(got, "Funding Model") {
		t.Errorf("fallback %q should carry the page text", got)
	}
}

func TestExtractUnknownHeadingFallsBack(t *testing.T) {
	doc := &fakeDoc{pages: []geometry.Page{pageWith(map[float64]string{
		100: "entirely unrelated page content here",
	})}}

	got := NewExtractor(config.DefaultTuning()).Extract(doc, item("Phantom", 1, 0), nil)
	if got == "" {
		t.Fatal("expected fallback text, got empty string")
	}
}

func TestExtractFallbackFourSentencePage(t *testing.T) {
	doc := &fakeDoc{pages: []geometry.Page{pageWith(map[float64]string{
		100: "First point one. Second point two. Third point three. Fourth point four",
	})}}

	// Unknown heading routes straight to the fallback; a page that splits
	// into exactly four sentences must not trip the excerpt bound.
	got := NewExtractor(config.DefaultTuning()).Extract(doc, item("Phantom", 1, 0), nil)
	if got == "" {
		t.Fatal("expected fallback text, got empty string")
	}
	if !strings.Contains(got, "Fourth point four") {
		t.Errorf("excerpt %q should keep all four sentences", got)
	}
}

func TestExtractNeverEmptyOnBlankDocument(t *testing.T) {
	doc := &fakeDoc{pages: []geometry.Page{{Width: 612, Height: 792}, {Width: 612, Height: 792}}}

	target := item("Scanned Section", 2, 100)
	got := NewExtractor(config.DefaultTuning()).Extract(doc, target, []outline.Item{target})

	if got == "" {
		t.Fatal("expected synthesized text, got empty string")
	}
	if !strings.Contains(got, "scanned section") {
		t.Errorf("synthesized text %q should reference the heading", got)
	}
	if !strings.Contains(got, "page 2") {
		t.Errorf("synthesized text %q should reference the page", got)
	}
}
