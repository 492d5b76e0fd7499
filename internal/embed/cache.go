package embed

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"

	_ "modernc.org/sqlite"
)

const cacheSchema = `
CREATE TABLE IF NOT EXISTS embeddings (
	model TEXT NOT NULL,
	text_hash TEXT NOT NULL,
	vector BLOB NOT NULL,
	PRIMARY KEY (model, text_hash)
);
`

// Cache wraps an Embedder with a SQLite lookaside keyed by
// (model, sha256 of text). Misses go to the inner embedder in a single
// batch and the results are written back best-effort.
type Cache struct {
	inner Embedder
	model string
	db    *sql.DB
}

// OpenCache opens (creating if needed) the cache database at path.
func OpenCache(path, model string, inner Embedder) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open embedding cache: %w", err)
	}
	if _, err := db.Exec(cacheSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init embedding cache: %w", err)
	}
	return &Cache{inner: inner, model: model, db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	result := make([][]float32, len(texts))

	var missing []string
	var missingIdx []int
	for i, text := range texts {
		if vec, ok := c.lookup(ctx, text); ok {
			result[i] = vec
			continue
		}
		missing = append(missing, text)
		missingIdx = append(missingIdx, i)
	}
	if len(missing) == 0 {
		return result, nil
	}

	vecs, err := c.inner.EmbedBatch(ctx, missing)
	if err != nil {
		return nil, err
	}
	for j, vec := range vecs {
		result[missingIdx[j]] = vec
		c.store(ctx, missing[j], vec)
	}
	return result, nil
}

func (c *Cache) lookup(ctx context.Context, text string) ([]float32, bool) {
	var blob []byte
	err := c.db.QueryRowContext(ctx,
		`SELECT vector FROM embeddings WHERE model = ? AND text_hash = ?`,
		c.model, hashText(text)).Scan(&blob)
	if err != nil {
		return nil, false
	}
	return DeserializeVector(blob), true
}

// store is best-effort: a failed write only costs a future cache miss.
func (c *Cache) store(ctx context.Context, text string, vec []float32) {
	c.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO embeddings (model, text_hash, vector) VALUES (?, ?, ?)`,
		c.model, hashText(text), SerializeVector(vec))
}

func hashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
