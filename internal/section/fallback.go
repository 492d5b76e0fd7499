package section

import (
	"fmt"
	"strings"

	"github.com/dgallion1/doclens/internal/geometry"
	"github.com/dgallion1/doclens/internal/outline"
)

// Fallback recovers content for a heading whose geometric span was empty
// or unusable. Stages run in order and the last one always produces text.
func (e *Extractor) Fallback(doc geometry.Document, target outline.Item) string {
	if text := e.ownPageExcerpt(doc, target.Page); text != "" {
		return text
	}
	if text := e.nearbyPageExcerpt(doc, target.Page); text != "" {
		return text
	}
	if text := e.anyPageExcerpt(doc); text != "" {
		return text
	}
	return fmt.Sprintf("This section covers %s and contains related document content (from page %d).",
		strings.ToLower(strings.TrimSpace(target.Text)), target.Page)
}

// ownPageExcerpt takes the heading's own page and keeps the first five
// sentences when the page runs longer than that.
func (e *Extractor) ownPageExcerpt(doc geometry.Document, pageNum int) string {
	text := strings.TrimSpace(fullPageText(doc, pageNum))
	if text == "" {
		return ""
	}
	sentences := strings.Split(text, ". ")
	if len(sentences) > 3 {
		return strings.Join(sentences[:min(5, len(sentences))], ". ") + "."
	}
	return text
}

// nearbyPageExcerpt scans up to two pages on either side of the heading's
// page for the first one with substantial text.
func (e *Extractor) nearbyPageExcerpt(doc geometry.Document, pageNum int) string {
	for p := pageNum - 2; p <= pageNum+2; p++ {
		if p < 1 || p > doc.NumPages() {
			continue
		}
		text := strings.TrimSpace(fullPageText(doc, p))
		if len(text) <= e.t.FallbackMinPageChars {
			continue
		}
		sentences := strings.Split(text, ". ")
		if len(sentences) > 2 {
			return strings.Join(sentences[:3], ". ") + "."
		}
		return truncateRunes(text, 500)
	}
	return ""
}

// anyPageExcerpt is the last resort before synthesis: the first page in
// the whole document with any real text, truncated.
func (e *Extractor) anyPageExcerpt(doc geometry.Document) string {
	for p := 1; p <= doc.NumPages(); p++ {
		text := strings.TrimSpace(fullPageText(doc, p))
		if len(text) <= 20 {
			continue
		}
		clean := strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
		if len([]rune(clean)) > 100 {
			return truncateRunes(clean, e.t.FallbackExcerptLen) + "..."
		}
		return clean
	}
	return ""
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
