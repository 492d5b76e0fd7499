// Package rank orders document sections by semantic relevance to a
// persona and task, using cosine similarity over sentence embeddings.
package rank

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"

	"github.com/dgallion1/doclens/internal/embed"
)

// Section is one ranked heading occurrence.
type Section struct {
	Document string  `json:"document"`
	Title    string  `json:"section_title"`
	Page     int     `json:"page_number"`
	Level    string  `json:"-"`
	Score    float64 `json:"-"`
}

// Ranker scores sections against a query built from a persona and a task.
type Ranker struct {
	embedder embed.Embedder
}

func New(embedder embed.Embedder) *Ranker {
	return &Ranker{embedder: embedder}
}

// Query renders the persona and task into the text the sections are
// compared against.
func Query(persona, job string) string {
	return fmt.Sprintf("User profile: %s. Task to be completed: %s", persona, job)
}

// Rank returns sections sorted by descending similarity to the query.
// The query and every section title go to the embedder in one batched
// call. With no embedder available, or one whose endpoint cannot be
// reached, Rank degrades to an empty list; callers must handle zero
// ranked sections. Errors from the model itself still propagate so
// retryable ones can be retried.
func (r *Ranker) Rank(ctx context.Context, persona, job string, sections []Section) ([]Section, error) {
	if len(sections) == 0 || r.embedder == nil {
		return nil, nil
	}

	ranked := make([]Section, len(sections))
	copy(ranked, sections)

	texts := make([]string, 0, len(sections)+1)
	texts = append(texts, Query(persona, job))
	for _, s := range sections {
		texts = append(texts, s.Title)
	}

	vecs, err := r.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		// A transport failure means the model is unavailable, which is
		// the same degraded state as having no embedder at all.
		var urlErr *url.Error
		if errors.As(err, &urlErr) && ctx.Err() == nil {
			return nil, nil
		}
		return nil, fmt.Errorf("embed sections: %w", err)
	}

	query := vecs[0]
	for i := range ranked {
		ranked[i].Score = embed.CosineSimilarity(query, vecs[i+1])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked, nil
}
