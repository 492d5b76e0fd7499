package geometry

import (
	"fmt"
	"os"

	pdflib "github.com/ledongthuc/pdf"
)

// Default page size (US Letter) used when a page carries no resolvable
// MediaBox.
const (
	defaultPageWidth  = 612
	defaultPageHeight = 792
)

// PDFOpener opens documents with the ledongthuc/pdf reader.
type PDFOpener struct{}

func (PDFOpener) Open(path string) (Document, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	return &pdfDocument{f: f, reader: reader}, nil
}

type pdfDocument struct {
	f      *os.File
	reader *pdflib.Reader
}

func (d *pdfDocument) NumPages() int {
	return d.reader.NumPage()
}

func (d *pdfDocument) Page(n int) (Page, error) {
	if n < 1 || n > d.reader.NumPage() {
		return Page{}, fmt.Errorf("page %d out of range (1..%d)", n, d.reader.NumPage())
	}

	p := d.reader.Page(n)
	width, height := pageSize(p)
	page := Page{Width: width, Height: height}
	if p.V.IsNull() {
		return page, nil
	}

	content := p.Content()
	for _, t := range content.Text {
		if t.S == "" {
			continue
		}
		page.Chars = append(page.Chars, Char{
			Text: t.S,
			X:    t.X,
			Y:    height - t.Y, // PDF y grows upward; normalize to top-based
			Size: t.FontSize,
			Font: t.Font,
		})
	}
	return page, nil
}

func (d *pdfDocument) Close() error {
	return d.f.Close()
}

func pageSize(p pdflib.Page) (width, height float64) {
	mb := p.V.Key("MediaBox")
	if mb.Kind() == pdflib.Array && mb.Len() == 4 {
		x0 := mb.Index(0).Float64()
		y0 := mb.Index(1).Float64()
		x1 := mb.Index(2).Float64()
		y1 := mb.Index(3).Float64()
		if x1 > x0 && y1 > y0 {
			return x1 - x0, y1 - y0
		}
	}
	return defaultPageWidth, defaultPageHeight
}
