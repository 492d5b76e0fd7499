package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth for the HTTP API.
	APIKey string

	// Embedding endpoint (OpenAI /v1/embeddings format).
	EmbedEndpoint  string
	EmbedModel     string
	EmbedBatchSize int
	EmbedTimeout   time.Duration

	// Embedding cache (empty disables caching).
	EmbedCachePath string

	// Batch processing
	WorkerCount int
	TopSections int

	// Upload limits (serve mode)
	MaxUploadBytes int64

	// OCR
	OCREnabled    bool
	OCRResolution int

	// Heuristics tuning, optionally overridden by a YAML file.
	TuningFile string
	Tuning     Tuning
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		APIKey: os.Getenv("DOCLENS_API_KEY"),

		EmbedEndpoint:  envOr("EMBED_ENDPOINT", "http://localhost:8003"),
		EmbedModel:     envOr("EMBED_MODEL", "all-MiniLM-L6-v2"),
		EmbedBatchSize: envInt("EMBED_BATCH_SIZE", 64),
		EmbedTimeout:   envDuration("EMBED_TIMEOUT", 60*time.Second),
		EmbedCachePath: os.Getenv("EMBED_CACHE_PATH"),

		WorkerCount: envInt("WORKER_COUNT", 4),
		TopSections: envInt("TOP_SECTIONS", 10),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		OCREnabled:    envBool("OCR_ENABLED", true),
		OCRResolution: envInt("OCR_RESOLUTION", 150),

		TuningFile: os.Getenv("TUNING_FILE"),
		Tuning:     DefaultTuning(),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.TopSections <= 0 {
		cfg.TopSections = 10
	}
	if cfg.EmbedBatchSize <= 0 {
		cfg.EmbedBatchSize = 64
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.OCRResolution <= 0 {
		cfg.OCRResolution = 150
	}

	return cfg
}

// LoadWithTuning loads the environment config and, if TUNING_FILE is set,
// applies YAML overrides for the heuristic constants.
func LoadWithTuning() (Config, error) {
	cfg := Load()
	if cfg.TuningFile == "" {
		return cfg, nil
	}
	t, err := LoadTuning(cfg.TuningFile)
	if err != nil {
		return cfg, fmt.Errorf("load tuning file: %w", err)
	}
	cfg.Tuning = t
	return cfg, nil
}

func (c Config) ValidateServe() error {
	if c.APIKey == "" {
		return fmt.Errorf("DOCLENS_API_KEY is required in serve mode")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
