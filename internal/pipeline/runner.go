package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/dgallion1/doclens/internal/config"
	"github.com/dgallion1/doclens/internal/engine"
	"github.com/dgallion1/doclens/internal/heading"
	"github.com/dgallion1/doclens/internal/outline"
	"github.com/dgallion1/doclens/internal/rank"
)

// Runner executes collection jobs against an extraction engine and a
// ranker.
type Runner struct {
	engine *engine.Engine
	ranker *rank.Ranker
	cfg    config.Config
	log    *slog.Logger
}

func NewRunner(eng *engine.Engine, ranker *rank.Ranker, cfg config.Config, log *slog.Logger) *Runner {
	return &Runner{engine: eng, ranker: ranker, cfg: cfg, log: log}
}

type docResult struct {
	doc   string
	items []outline.Item
	err   error
}

// Run extracts outlines from every document in the job, ranks all
// headings against the persona and task, and refines the content of the
// top sections. A document that fails to open is logged and skipped; it
// never fails the collection.
func (r *Runner) Run(ctx context.Context, job CollectionJob, inputDir string) (Output, error) {
	outlines := r.extractOutlines(ctx, job.Documents, inputDir)

	var sections []rank.Section
	for _, doc := range job.Documents {
		for _, item := range outlines[doc] {
			sections = append(sections, rank.Section{
				Document: doc,
				Title:    item.Text,
				Page:     item.Page,
				Level:    item.Level,
			})
		}
	}

	ranked, err := r.rankWithRetry(ctx, job, sections)
	if err != nil {
		return Output{}, fmt.Errorf("rank sections: %w", err)
	}
	if len(ranked) > r.cfg.TopSections {
		ranked = ranked[:r.cfg.TopSections]
	}

	out := Output{
		Metadata: Metadata{
			InputDocuments:      job.Documents,
			Persona:             job.Persona,
			JobToBeDone:         job.JobToBeDone,
			ProcessingTimestamp: time.Now().UTC().Format(time.RFC3339),
		},
		ExtractedSections:  []ExtractedSection{},
		SubsectionAnalysis: []Subsection{},
	}
	for i, sec := range ranked {
		out.ExtractedSections = append(out.ExtractedSections, ExtractedSection{
			Document:       sec.Document,
			SectionTitle:   sec.Title,
			ImportanceRank: i + 1,
			PageNumber:     sec.Page,
		})
		out.SubsectionAnalysis = append(out.SubsectionAnalysis, Subsection{
			Document:    sec.Document,
			RefinedText: r.refine(sec, outlines[sec.Document], inputDir),
			PageNumber:  sec.Page,
		})
	}
	return out, nil
}

// extractOutlines runs outline extraction over the documents with
// bounded concurrency. Missing or unreadable documents yield no entry.
func (r *Runner) extractOutlines(ctx context.Context, docs []string, inputDir string) map[string][]outline.Item {
	results := make(chan docResult, len(docs))
	sem := make(chan struct{}, r.cfg.WorkerCount)

	for _, doc := range docs {
		sem <- struct{}{}
		go func(doc string) {
			defer func() { <-sem }()
			o, err := r.engine.ExtractOutline(ctx, filepath.Join(inputDir, doc))
			if err != nil {
				results <- docResult{doc: doc, err: err}
				return
			}
			items := o.Outline
			if len(items) == 0 {
				// No structure found; a single synthetic heading keeps
				// the document rankable.
				items = []outline.Item{syntheticOverview(doc)}
			}
			results <- docResult{doc: doc, items: items}
		}(doc)
	}

	outlines := make(map[string][]outline.Item, len(docs))
	for range docs {
		res := <-results
		if res.err != nil {
			r.log.Warn("skipping document", "document", res.doc, "error", res.err)
			continue
		}
		outlines[res.doc] = res.items
	}
	return outlines
}

// refine pulls the body text for one ranked section. Content extraction
// never fails a section: open errors fall back to the heading text.
func (r *Runner) refine(sec rank.Section, items []outline.Item, inputDir string) string {
	target, ok := findItem(items, sec)
	if !ok {
		return sec.Title
	}
	text, err := r.engine.ExtractSectionContent(filepath.Join(inputDir, sec.Document), target, items)
	if err != nil {
		r.log.Warn("content extraction failed", "document", sec.Document, "section", sec.Title, "error", err)
		return sec.Title
	}
	return text
}

func findItem(items []outline.Item, sec rank.Section) (outline.Item, bool) {
	for _, item := range items {
		if item.Text == sec.Title && item.Page == sec.Page {
			return item, true
		}
	}
	return outline.Item{}, false
}

func (r *Runner) rankWithRetry(ctx context.Context, job CollectionJob, sections []rank.Section) ([]rank.Section, error) {
	var ranked []rank.Section
	var err error
	for attempt := 0; attempt < MaxRetries; attempt++ {
		ranked, err = r.ranker.Rank(ctx, job.Persona, job.JobToBeDone, sections)
		if err == nil || !IsRetryable(err) {
			break
		}
		r.log.Warn("retryable ranking error", "attempt", attempt, "error", err)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return ranked, err
}

// syntheticOverview stands in for a document whose outline came back
// empty, so the whole document can still be ranked and excerpted.
func syntheticOverview(doc string) outline.Item {
	stem := strings.TrimSuffix(filepath.Base(doc), filepath.Ext(doc))
	return outline.Item{
		Level: heading.LevelH1,
		Text:  "Overview of " + stem,
		Page:  1,
	}
}
