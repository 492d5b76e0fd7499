package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/dgallion1/doclens/internal/config"
	"github.com/dgallion1/doclens/internal/geometry"
	"github.com/dgallion1/doclens/internal/heading"
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

type fakeOpener struct {
	docs map[string]*fakeDoc
}

func (o *fakeOpener) Open(path string) (geometry.Document, error) {
	doc, ok := o.docs[path]
	if !ok {
		return nil, fmt.Errorf("no such document: %s", path)
	}
	return doc, nil
}

func testConfig() config.Config {
	return config.Config{
		WorkerCount: 2,
		TopSections: 10,
		Tuning:      config.DefaultTuning(),
	}
}

func testEngine(opener geometry.Opener) *Engine {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewWithOpener(testConfig(), opener, log)
}

func textRun(text string, y, size float64) geometry.Char {
	return geometry.Char{Text: text, X: 50, Y: y, Size: size}
}

func TestExtractOutlineNumberedSection(t *testing.T) {
	doc := &fakeDoc{pages: []geometry.Page{{
		Width:  612,
		Height: 792,
		Chars: []geometry.Char{
			textRun("1. Introduction", 100, 18),
			textRun("the digital library will provide seamless access to electronic resources", 200, 11),
			textRun("membership is open to every public library in the province of ontario", 300, 11),
		},
	}}}
	eng := testEngine(&fakeOpener{docs: map[string]*fakeDoc{"a.pdf": doc}})
	defer eng.Close()

	o, err := eng.ExtractOutline(context.Background(), "a.pdf")
	if err != nil {
		t.Fatalf("ExtractOutline: %v", err)
	}
	if len(o.Outline) != 1 {
		t.Fatalf("got %d items, want 1: %+v", len(o.Outline), o.Outline)
	}
	item := o.Outline[0]
	if item.Level != heading.LevelH1 || item.Text != "1. Introduction" || item.Page != 1 {
		t.Errorf("got %+v, want H1 %q on page 1", item, "1. Introduction")
	}
	if o.Title == "" {
		t.Error("title must never be empty")
	}
}

func TestExtractOutlineOpenFailure(t *testing.T) {
	eng := testEngine(&fakeOpener{docs: map[string]*fakeDoc{}})
	defer eng.Close()

	if _, err := eng.ExtractOutline(context.Background(), "missing.pdf"); err == nil {
		t.Fatal("expected error for unreadable document")
	}
}

func TestExtractOutlineScannedDocumentDegrades(t *testing.T) {
	// Image-only pages carry no characters. Without OCR the document
	// still succeeds with an empty outline.
	doc := &fakeDoc{pages: []geometry.Page{
		{Width: 612, Height: 792},
		{Width: 612, Height: 792},
	}}
	eng := testEngine(&fakeOpener{docs: map[string]*fakeDoc{"scan.pdf": doc}})
	defer eng.Close()

	o, err := eng.ExtractOutline(context.Background(), "scan.pdf")
	if err != nil {
		t.Fatalf("ExtractOutline: %v", err)
	}
	if len(o.Outline) != 0 {
		t.Errorf("got %+v, want empty outline", o.Outline)
	}
	if o.Title != "Untitled" {
		t.Errorf("title = %q, want Untitled", o.Title)
	}

	// The serialized shape carries an empty array, not null.
	data, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"title":"Untitled","outline":[]}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestExtractSectionContent(t *testing.T) {
	doc := &fakeDoc{pages: []geometry.Page{{
		Width:  612,
		Height: 792,
		Chars: []geometry.Char{
			textRun("1. Introduction", 100, 18),
			textRun("opening paragraph", 200, 11),
			textRun("2. Governance", 400, 18),
		},
	}}}
	eng := testEngine(&fakeOpener{docs: map[string]*fakeDoc{"a.pdf": doc}})
	defer eng.Close()

	o, err := eng.ExtractOutline(context.Background(), "a.pdf")
	if err != nil {
		t.Fatalf("ExtractOutline: %v", err)
	}
	if len(o.Outline) != 2 {
		t.Fatalf("got %d items, want 2: %+v", len(o.Outline), o.Outline)
	}

	text, err := eng.ExtractSectionContent("a.pdf", o.Outline[0], o.Outline)
	if err != nil {
		t.Fatalf("ExtractSectionContent: %v", err)
	}
	want := "1. Introduction opening paragraph"
	if text != want {
		t.Errorf("got %q, want %q", text, want)
	}
}
