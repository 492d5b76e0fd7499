package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// RunOutlineDir extracts an outline for every PDF in inDir and writes
// <stem>.json next to each into outDir. One bad PDF is logged and
// skipped. It errors only when inDir holds no PDFs at all or outDir
// cannot be created.
func (r *Runner) RunOutlineDir(ctx context.Context, inDir, outDir string) error {
	entries, err := os.ReadDir(inDir)
	if err != nil {
		return fmt.Errorf("read input dir: %w", err)
	}

	var pdfs []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			pdfs = append(pdfs, e.Name())
		}
	}
	if len(pdfs) == 0 {
		return fmt.Errorf("no PDFs found in %s", inDir)
	}
	sort.Strings(pdfs)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	sem := make(chan struct{}, r.cfg.WorkerCount)
	var wg sync.WaitGroup
	for _, name := range pdfs {
		sem <- struct{}{}
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := r.outlineOne(ctx, inDir, outDir, name); err != nil {
				r.log.Error("outline extraction failed", "document", name, "error", err)
			}
		}(name)
	}
	wg.Wait()
	return nil
}

func (r *Runner) outlineOne(ctx context.Context, inDir, outDir, name string) error {
	start := time.Now()
	o, err := r.engine.ExtractOutline(ctx, filepath.Join(inDir, name))
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal outline: %w", err)
	}

	stem := strings.TrimSuffix(name, filepath.Ext(name))
	outPath := filepath.Join(outDir, stem+".json")
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	r.log.Info("outline written", "document", name, "output", outPath, "headings", len(o.Outline), "duration", time.Since(start).String())
	return nil
}
