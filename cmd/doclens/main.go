package main

import (
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := &cli.App{
		Name:  "doclens",
		Usage: "infer document structure from PDFs and rank sections by relevance",
		Commands: []*cli.Command{
			{
				Name:      "outline",
				Usage:     "extract title and heading outline from PDFs",
				ArgsUsage: "[pdf file]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "directory of PDFs to process"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "directory for per-document JSON outlines", Value: "."},
				},
				Action: func(c *cli.Context) error {
					return outlineAction(c, log)
				},
			},
			{
				Name:      "rank",
				Usage:     "rank document sections against a persona and task",
				ArgsUsage: "<job.json>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "directory holding the job's PDFs", Value: "."},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output JSON file (default stdout)"},
				},
				Action: func(c *cli.Context) error {
					return rankAction(c, log)
				},
			},
			{
				Name:  "serve",
				Usage: "run the HTTP API",
				Action: func(c *cli.Context) error {
					return serveAction(c, log)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error("fatal", "error", err)
		os.Exit(1)
	}
}
