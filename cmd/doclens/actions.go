package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/doclens/internal/api"
	"github.com/dgallion1/doclens/internal/config"
	"github.com/dgallion1/doclens/internal/embed"
	"github.com/dgallion1/doclens/internal/engine"
	"github.com/dgallion1/doclens/internal/pipeline"
	"github.com/dgallion1/doclens/internal/rank"
	"github.com/urfave/cli/v2"
)

// outlineAction extracts outlines: a directory of PDFs with --input, or a
// single PDF argument printed to stdout.
func outlineAction(c *cli.Context, log *slog.Logger) error {
	cfg, err := config.LoadWithTuning()
	if err != nil {
		return err
	}

	eng := engine.New(cfg, log)
	defer eng.Close()

	if dir := c.String("input"); dir != "" {
		runner := pipeline.NewRunner(eng, rank.New(nil), cfg, log)
		return runner.RunOutlineDir(c.Context, dir, c.String("output"))
	}

	if c.NArg() != 1 {
		return fmt.Errorf("expected a PDF file argument or --input directory")
	}
	o, err := eng.ExtractOutline(c.Context, c.Args().First())
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(o)
}

func rankAction(c *cli.Context, log *slog.Logger) error {
	cfg, err := config.LoadWithTuning()
	if err != nil {
		return err
	}

	if c.NArg() != 1 {
		return fmt.Errorf("expected a job JSON file argument")
	}
	job, err := pipeline.LoadJob(c.Args().First())
	if err != nil {
		return err
	}

	embedder, closeEmbedder, err := buildEmbedder(cfg)
	if err != nil {
		return err
	}
	defer closeEmbedder()

	eng := engine.New(cfg, log)
	defer eng.Close()

	runner := pipeline.NewRunner(eng, rank.New(embedder), cfg, log)
	out, err := runner.Run(c.Context, job, c.String("input"))
	if err != nil {
		return err
	}

	dst := os.Stdout
	if path := c.String("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		dst = f
	}
	enc := json.NewEncoder(dst)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func serveAction(c *cli.Context, log *slog.Logger) error {
	cfg, err := config.LoadWithTuning()
	if err != nil {
		return err
	}
	if err := cfg.ValidateServe(); err != nil {
		return err
	}

	embedder, closeEmbedder, err := buildEmbedder(cfg)
	if err != nil {
		return err
	}
	defer closeEmbedder()

	eng := engine.New(cfg, log)
	defer eng.Close()

	runner := pipeline.NewRunner(eng, rank.New(embedder), cfg, log)
	srv := api.NewServer(eng, runner, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting doclens", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// buildEmbedder builds the embedding client, wrapped in the SQLite cache
// when EMBED_CACHE_PATH is set.
func buildEmbedder(cfg config.Config) (embed.Embedder, func(), error) {
	client := embed.NewClient(cfg)
	if cfg.EmbedCachePath == "" {
		return client, func() {}, nil
	}
	cache, err := embed.OpenCache(cfg.EmbedCachePath, cfg.EmbedModel, client)
	if err != nil {
		return nil, nil, err
	}
	return cache, func() { cache.Close() }, nil
}
