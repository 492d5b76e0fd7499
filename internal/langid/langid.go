// Package langid guesses the language of an OCR text sample and maps it
// to a Tesseract language code, defaulting to English whenever the guess
// is ambiguous.
package langid

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

const defaultTesseract = "eng"

// tesseractCodes maps ISO 639-1 codes to Tesseract language packs.
var tesseractCodes = map[string]string{
	"en": "eng",
	"fr": "fra",
	"de": "deu",
	"ja": "jpn",
	"zh": "chi_sim",
}

// Detector wraps a lingua detector restricted to the languages we carry
// Tesseract mappings for. Construction loads language models; build one
// and share it.
type Detector struct {
	detector lingua.LanguageDetector
}

func New() *Detector {
	languages := []lingua.Language{
		lingua.English,
		lingua.French,
		lingua.German,
		lingua.Japanese,
		lingua.Chinese,
	}
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// TesseractLang returns the Tesseract language code for the sample, or
// "eng" for empty or undecidable input.
func (d *Detector) TesseractLang(sample string) string {
	sample = strings.TrimSpace(sample)
	if sample == "" {
		return defaultTesseract
	}
	lang, ok := d.detector.DetectLanguageOf(sample)
	if !ok {
		return defaultTesseract
	}
	iso := strings.ToLower(lang.IsoCode639_1().String())
	if code, ok := tesseractCodes[iso]; ok {
		return code
	}
	return defaultTesseract
}
