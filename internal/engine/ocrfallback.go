package engine

import (
	"context"
	"strings"

	"github.com/dgallion1/doclens/internal/heading"
)

// ocrCandidates recovers heading candidates from an image-only page. Any
// failure along the way (no OCR compiled in, rasterization, recognition)
// degrades to no candidates; a scanned page never fails the document.
func (e *Engine) ocrCandidates(ctx context.Context, path string, page int) []heading.Candidate {
	if e.ocr == nil {
		return nil
	}

	image, err := e.raster.RenderPage(ctx, path, page, e.cfg.OCRResolution)
	if err != nil {
		e.logger.Warn("rasterization failed, skipping scanned page", "page", page, "error", err)
		return nil
	}

	// An English sampling pass picks the recognition language; the
	// detector falls back to English when the sample is garbage.
	lang := "eng"
	if sample, err := e.ocr.Sample(image); err == nil {
		lang = e.langs.TesseractLang(sample)
	}

	blocks, err := e.ocr.Recognize(image, lang)
	if err != nil {
		e.logger.Warn("OCR failed, skipping scanned page", "page", page, "lang", lang, "error", err)
		return nil
	}

	// Downstream quality filtering is the hierarchy builder's job; here
	// only the OCR engine's own confidence gates a block.
	t := e.cfg.Tuning
	var candidates []heading.Candidate
	for i, b := range blocks {
		text := strings.TrimSpace(b.Text)
		if text == "" || b.Confidence <= t.OCRConfidenceFloor {
			continue
		}
		conf := b.Confidence / 100
		if conf > t.OCRMaxConfidence {
			conf = t.OCRMaxConfidence
		}
		candidates = append(candidates, heading.Candidate{
			Text:       text,
			Level:      heading.LevelH3,
			Page:       page,
			Confidence: conf,
			Position:   float64(i),
		})
	}
	return candidates
}
