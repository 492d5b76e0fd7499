// Package engine ties the geometry, layout, heading, and outline stages
// into the document-structure facade: one call from a PDF path to a
// titled outline, and one call from a heading to its body text.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dgallion1/doclens/internal/config"
	"github.com/dgallion1/doclens/internal/geometry"
	"github.com/dgallion1/doclens/internal/heading"
	"github.com/dgallion1/doclens/internal/langid"
	"github.com/dgallion1/doclens/internal/layout"
	"github.com/dgallion1/doclens/internal/ocr"
	"github.com/dgallion1/doclens/internal/outline"
	"github.com/dgallion1/doclens/internal/section"
)

// Engine infers document structure from PDF files. The zero value is not
// usable; construct with New.
type Engine struct {
	cfg      config.Config
	opener   geometry.Opener
	raster   geometry.Rasterizer
	ocr      *ocr.Client
	langs    *langid.Detector
	sections *section.Extractor
	logger   *slog.Logger
}

// New builds an engine with the default PDF opener and poppler
// rasterizer. OCR support is attached when enabled and compiled in;
// otherwise scanned pages degrade to empty output.
func New(cfg config.Config, logger *slog.Logger) *Engine {
	e := &Engine{
		cfg:      cfg,
		opener:   &geometry.PDFOpener{},
		raster:   &geometry.PopplerRasterizer{},
		sections: section.NewExtractor(cfg.Tuning),
		logger:   logger,
	}
	if cfg.OCREnabled {
		client, err := ocr.New()
		if err != nil {
			logger.Warn("OCR unavailable, scanned pages will be skipped", "error", err)
		} else {
			e.ocr = client
			e.langs = langid.New()
		}
	}
	return e
}

// NewWithOpener is New with the document source swapped out, for tests
// and non-file inputs.
func NewWithOpener(cfg config.Config, opener geometry.Opener, logger *slog.Logger) *Engine {
	e := New(cfg, logger)
	e.opener = opener
	return e
}

// Close releases the OCR engine, if any.
func (e *Engine) Close() error {
	if e.ocr != nil {
		return e.ocr.Close()
	}
	return nil
}

// ExtractOutline opens the document and infers its title and heading
// outline. Failing to open the file is the only hard error; unreadable
// pages and OCR failures degrade to partial or empty outlines.
func (e *Engine) ExtractOutline(ctx context.Context, path string) (outline.Outline, error) {
	doc, err := e.opener.Open(path)
	if err != nil {
		return outline.Outline{}, fmt.Errorf("open document: %w", err)
	}
	defer doc.Close()

	title := e.extractTitle(doc)
	items := e.buildOutline(ctx, path, doc)

	return outline.Outline{Title: title, Outline: items}, nil
}

func (e *Engine) extractTitle(doc geometry.Document) string {
	page, err := doc.Page(1)
	if err != nil {
		return "Untitled"
	}
	lines := layout.BuildLines(page.Chars, 1)
	return outline.ExtractTitle(layout.Texts(lines), e.cfg.Tuning)
}

func (e *Engine) buildOutline(ctx context.Context, path string, doc geometry.Document) []outline.Item {
	scorer := heading.NewScorer(e.cfg.Tuning)
	var candidates []heading.Candidate

	for p := 1; p <= doc.NumPages(); p++ {
		page, err := doc.Page(p)
		if err != nil {
			e.logger.Warn("skipping unreadable page", "page", p, "error", err)
			continue
		}

		lines := layout.BuildLines(page.Chars, p)
		if len(lines) == 0 {
			candidates = append(candidates, e.ocrCandidates(ctx, path, p)...)
			continue
		}

		th := layout.Calibrate(lines, e.cfg.Tuning.ShortLineAvgLen)
		for _, line := range lines {
			if c, ok := scorer.Score(line, th); ok {
				candidates = append(candidates, c)
			}
		}
	}

	return outline.NewBuilder(e.cfg.Tuning).Build(candidates)
}

// ExtractSectionContent returns the body text spanned by target, bounded
// by the next heading in all. It is never empty.
func (e *Engine) ExtractSectionContent(path string, target outline.Item, all []outline.Item) (string, error) {
	doc, err := e.opener.Open(path)
	if err != nil {
		return "", fmt.Errorf("open document: %w", err)
	}
	defer doc.Close()

	return e.sections.Extract(doc, target, all), nil
}
