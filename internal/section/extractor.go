// Package section slices body text between consecutive headings, across
// page breaks, with geometric cropping and layered fallbacks.
package section

import (
	"regexp"
	"strings"

	"github.com/dgallion1/doclens/internal/config"
	"github.com/dgallion1/doclens/internal/geometry"
	"github.com/dgallion1/doclens/internal/layout"
	"github.com/dgallion1/doclens/internal/outline"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Extractor extracts the content span of one heading, bounded by the next
// heading in document order.
type Extractor struct {
	t config.Tuning
}

func NewExtractor(t config.Tuning) *Extractor {
	return &Extractor{t: t}
}

// Extract returns the body text between target and the next heading in
// all, or to the end of the document when target is last. It never
// returns an empty string: degenerate spans and lookup misses resolve
// through the fallback chain.
func (e *Extractor) Extract(doc geometry.Document, target outline.Item, all []outline.Item) string {
	idx := -1
	for i, item := range all {
		if item == target {
			idx = i
			break
		}
	}
	if idx < 0 {
		return e.Fallback(doc, target)
	}

	var next *outline.Item
	if idx+1 < len(all) {
		next = &all[idx+1]
	}

	startPage := target.Page
	endPage := doc.NumPages()
	if next != nil {
		endPage = next.Page
	}

	var content []string
	for p := startPage; p <= endPage && p <= doc.NumPages(); p++ {
		page, err := doc.Page(p)
		if err != nil {
			continue
		}

		top := 0.0
		if p == startPage {
			top = target.Position
		}
		bottom := page.Height
		if next != nil && p == endPage && next.Position < bottom {
			bottom = next.Position
		}

		if bottom <= top {
			// Degenerate crop: retry once via the fallback before
			// moving on.
			if text := e.Fallback(doc, target); strings.TrimSpace(text) != "" {
				return text
			}
			continue
		}

		if text := cropText(page, p, top, bottom); strings.TrimSpace(text) != "" {
			content = append(content, strings.TrimSpace(text))
		}
	}

	if len(content) > 0 {
		joined := strings.Join(content, " ")
		return strings.TrimSpace(whitespaceRe.ReplaceAllString(joined, " "))
	}
	return e.Fallback(doc, target)
}

// cropText reconstructs the page's line text restricted to positions in
// [top, bottom).
func cropText(page geometry.Page, pageNum int, top, bottom float64) string {
	var texts []string
	for _, line := range layout.BuildLines(page.Chars, pageNum) {
		if line.Position >= top && line.Position < bottom {
			texts = append(texts, line.Text)
		}
	}
	return strings.Join(texts, "\n")
}

func fullPageText(doc geometry.Document, pageNum int) string {
	page, err := doc.Page(pageNum)
	if err != nil {
		return ""
	}
	return cropText(page, pageNum, 0, page.Height+1)
}
