package rank

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/dgallion1/doclens/internal/embed"
)

// keywordEmbedder maps texts to fixed axes: texts mentioning "funding"
// align with the query, everything else is orthogonal.
type keywordEmbedder struct{}

func (keywordEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vecs := make([][]float32, len(texts))
	for i, text := range texts {
		if strings.Contains(strings.ToLower(text), "funding") {
			vecs[i] = []float32{1, 0}
		} else {
			vecs[i] = []float32{0, 1}
		}
	}
	return vecs, nil
}

func TestRankOrdersBySimilarity(t *testing.T) {
	sections := []Section{
		{Document: "a.pdf", Title: "Governance", Page: 2},
		{Document: "a.pdf", Title: "Funding Model", Page: 5},
		{Document: "b.pdf", Title: "Timeline", Page: 1},
	}

	ranked, err := New(keywordEmbedder{}).Rank(context.Background(),
		"budget analyst", "secure funding for the program", sections)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(ranked) != 3 {
		t.Fatalf("got %d sections, want 3", len(ranked))
	}
	if ranked[0].Title != "Funding Model" {
		t.Errorf("top section = %q, want Funding Model", ranked[0].Title)
	}
	if ranked[0].Score <= ranked[1].Score {
		t.Errorf("scores not descending: %v then %v", ranked[0].Score, ranked[1].Score)
	}
	// Ties keep input order (stable sort).
	if ranked[1].Title != "Governance" || ranked[2].Title != "Timeline" {
		t.Errorf("tied sections reordered: %+v", ranked)
	}
}

func TestRankWithoutEmbedderReturnsEmpty(t *testing.T) {
	sections := []Section{
		{Document: "a.pdf", Title: "Governance"},
		{Document: "a.pdf", Title: "Funding Model"},
	}
	ranked, err := New(nil).Rank(context.Background(), "p", "j", sections)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(ranked) != 0 {
		t.Errorf("got %+v, want empty list without an embedder", ranked)
	}
}

// failingEmbedder always returns the configured error.
type failingEmbedder struct {
	err error
}

func (f failingEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	return nil, f.err
}

func TestRankUnreachableEndpointReturnsEmpty(t *testing.T) {
	sections := []Section{{Document: "a.pdf", Title: "Governance"}}
	dialErr := &url.Error{Op: "Post", URL: "http://127.0.0.1:1/v1/embeddings",
		Err: errors.New("connect: connection refused")}

	ranked, err := New(failingEmbedder{err: dialErr}).Rank(context.Background(), "p", "j", sections)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(ranked) != 0 {
		t.Errorf("got %+v, want empty list for unreachable endpoint", ranked)
	}
}

func TestRankModelErrorPropagates(t *testing.T) {
	sections := []Section{{Document: "a.pdf", Title: "Governance"}}
	modelErr := &embed.RetryableError{StatusCode: 503, Message: "overloaded"}

	_, err := New(failingEmbedder{err: modelErr}).Rank(context.Background(), "p", "j", sections)
	var re *embed.RetryableError
	if !errors.As(err, &re) {
		t.Fatalf("got %v, want wrapped retryable error", err)
	}
}

func TestRankEmptySections(t *testing.T) {
	ranked, err := New(keywordEmbedder{}).Rank(context.Background(), "p", "j", nil)
	if err != nil || ranked != nil {
		t.Errorf("got (%v, %v), want (nil, nil)", ranked, err)
	}
}

func TestQueryFormat(t *testing.T) {
	got := Query("HR professional", "create fillable forms")
	want := "User profile: HR professional. Task to be completed: create fillable forms"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
