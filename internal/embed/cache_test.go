package embed

import (
	"context"
	"path/filepath"
	"testing"
)

type countingEmbedder struct {
	calls int
	texts []string
}

func (e *countingEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	e.calls++
	e.texts = append(e.texts, texts...)
	vecs := make([][]float32, len(texts))
	for i := range texts {
		vecs[i] = []float32{float32(len(texts[i])), 1}
	}
	return vecs, nil
}

func TestCacheHitsSkipInnerEmbedder(t *testing.T) {
	inner := &countingEmbedder{}
	cache, err := OpenCache(filepath.Join(t.TempDir(), "embed.db"), "all-MiniLM-L6-v2", inner)
	if err != nil {
		t.Fatalf("OpenCache: %v", err)
	}
	defer cache.Close()

	ctx := context.Background()
	first, err := cache.EmbedBatch(ctx, []string{"alpha", "beta"})
	if err != nil {
		t.Fatalf("first EmbedBatch: %v", err)
	}
	if inner.calls != 1 {
		t.Fatalf("inner calls = %d, want 1", inner.calls)
	}

	second, err := cache.EmbedBatch(ctx, []string{"alpha", "beta", "gamma"})
	if err != nil {
		t.Fatalf("second EmbedBatch: %v", err)
	}
	if inner.calls != 2 {
		t.Errorf("inner calls = %d, want 2", inner.calls)
	}
	// Only the miss goes through.
	if len(inner.texts) != 3 || inner.texts[2] != "gamma" {
		t.Errorf("inner saw %v, want only gamma on the second call", inner.texts)
	}

	for i := range first {
		if second[i][0] != first[i][0] {
			t.Errorf("cached vector %d = %v, want %v", i, second[i], first[i])
		}
	}
}
