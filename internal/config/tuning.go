package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning collects the empirically tuned constants of the structure
// heuristics. The defaults match the values the heuristics were calibrated
// with; changing them is a tuning decision, not a bug fix.
type Tuning struct {
	// Candidate scorer
	MinHeadingLen       int     `yaml:"min_heading_len"`
	MaxHeadingLen       int     `yaml:"max_heading_len"`
	PageConfidenceFloor float64 `yaml:"page_confidence_floor"`
	BandBoostH1         float64 `yaml:"band_boost_h1"`
	BandBoostH2         float64 `yaml:"band_boost_h2"`
	BandBoostH3         float64 `yaml:"band_boost_h3"`
	BandBoostH4         float64 `yaml:"band_boost_h4"`
	BoldBonus           float64 `yaml:"bold_bonus"`
	LeftAlignBonus      float64 `yaml:"left_align_bonus"`
	LeftMarginMax       float64 `yaml:"left_margin_max"`
	ShortTextLen        int     `yaml:"short_text_len"`
	VeryShortTextLen    int     `yaml:"very_short_text_len"`
	LengthBonus         float64 `yaml:"length_bonus"`
	WellFormedBonus     float64 `yaml:"well_formed_bonus"`
	IncompletePenalty   float64 `yaml:"incomplete_penalty"`
	LevelOverrideBoost  float64 `yaml:"level_override_boost"`

	// Threshold calibrator
	ShortLineAvgLen float64 `yaml:"short_line_avg_len"`

	// Hierarchy builder
	BuilderConfidenceFloor float64 `yaml:"builder_confidence_floor"`
	DuplicateOverlap       float64 `yaml:"duplicate_overlap"`
	RecentDuplicateWindow  int     `yaml:"recent_duplicate_window"`
	MaxOutlineItems        int     `yaml:"max_outline_items"`
	PathLabelLen           int     `yaml:"path_label_len"`

	// Title extractor
	TitleMaxLen    int      `yaml:"title_max_len"`
	DomainKeywords []string `yaml:"domain_keywords"`

	// OCR fallback
	OCRConfidenceFloor float64 `yaml:"ocr_confidence_floor"`
	OCRMaxConfidence   float64 `yaml:"ocr_max_confidence"`

	// Section fallback extractor
	FallbackMinPageChars int `yaml:"fallback_min_page_chars"`
	FallbackExcerptLen   int `yaml:"fallback_excerpt_len"`
}

func DefaultTuning() Tuning {
	return Tuning{
		MinHeadingLen:       3,
		MaxHeadingLen:       200,
		PageConfidenceFloor: 0.55,
		BandBoostH1:         0.4,
		BandBoostH2:         0.3,
		BandBoostH3:         0.2,
		BandBoostH4:         0.1,
		BoldBonus:           0.2,
		LeftAlignBonus:      0.1,
		LeftMarginMax:       80,
		ShortTextLen:        100,
		VeryShortTextLen:    50,
		LengthBonus:         0.1,
		WellFormedBonus:     0.2,
		IncompletePenalty:   0.3,
		LevelOverrideBoost:  0.3,

		ShortLineAvgLen: 60,

		BuilderConfidenceFloor: 0.6,
		DuplicateOverlap:       0.8,
		RecentDuplicateWindow:  3,
		MaxOutlineItems:        40,
		PathLabelLen:           50,

		TitleMaxLen: 150,
		DomainKeywords: []string{
			"proposal", "developing", "business", "plan",
			"ontario", "digital", "library",
		},

		OCRConfidenceFloor: 30,
		OCRMaxConfidence:   0.8,

		FallbackMinPageChars: 50,
		FallbackExcerptLen:   300,
	}
}

// LoadTuning reads a YAML tuning file. Fields absent from the file keep
// their default values.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse %s: %w", path, err)
	}
	return t, nil
}
