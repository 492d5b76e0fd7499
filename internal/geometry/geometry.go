// Package geometry exposes per-character PDF text geometry behind small
// interfaces so the structure heuristics can be tested against synthetic
// pages. Vertical positions are normalized to distance from the top of the
// page: reading order is always (page ascending, position ascending).
package geometry

import "context"

// Char is one positioned glyph run on a page.
type Char struct {
	Text string
	X    float64 // left edge
	Y    float64 // distance from page top
	Size float64 // font size in points
	Font string  // font name, e.g. "Helvetica-Bold"
}

// Page holds the character geometry and dimensions of one page.
// Chars is empty for image-only (scanned) pages; that is not an error.
type Page struct {
	Chars  []Char
	Width  float64
	Height float64
}

// Document is an open PDF. Pages are numbered from 1.
type Document interface {
	NumPages() int
	Page(n int) (Page, error)
	Close() error
}

// Opener opens documents by path. Open failing is the one hard error class
// of the engine: the file itself cannot be read.
type Opener interface {
	Open(path string) (Document, error)
}

// Rasterizer renders one page to an image suitable for OCR.
type Rasterizer interface {
	RenderPage(ctx context.Context, path string, page int, dpi int) ([]byte, error)
}
