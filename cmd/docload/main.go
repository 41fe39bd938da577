// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/poiesic/docload"
	"github.com/poiesic/docload/cache"
	"github.com/poiesic/docload/core"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:      "docload",
		Usage:     "Load document collections for the retrieval pipeline",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "load",
				Usage:  "Load one document source and print its documents",
				Action: loadCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "type",
						Aliases:  []string{"t"},
						Usage:    "Source type (json, csv, textfiles, hardcoded)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "file",
						Usage: "Path to the JSON or CSV file",
					},
					&cli.StringFlag{
						Name:  "dir",
						Usage: "Path to the text file directory",
					},
					&cli.DurationFlag{
						Name:  "freshness",
						Usage: "Cache freshness window",
						Value: cache.DefaultFreshness,
					},
					&cli.BoolFlag{
						Name:  "strict",
						Usage: "Treat skipped rows and files as fatal",
					},
					&cli.IntFlag{
						Name:  "repeat",
						Usage: "Load the source N times to exercise the cache",
						Value: 1,
					},
					&cli.BoolFlag{
						Name:  "content",
						Usage: "Print document content, not just id and title",
					},
				},
			},
			{
				Name:   "warm",
				Usage:  "Load several sources concurrently to populate the cache",
				Action: warmCommand,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:  "json",
						Usage: "JSON file to warm (repeatable)",
					},
					&cli.StringSliceFlag{
						Name:  "csv",
						Usage: "CSV file to warm (repeatable)",
					},
					&cli.StringSliceFlag{
						Name:  "text",
						Usage: "Text directory to warm (repeatable)",
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of concurrent loads",
						Value: 4,
					},
				},
			},
			{
				Name:   "sample",
				Usage:  "Print the built-in sample collection",
				Action: sampleCommand,
			},
		},
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

// buildSource assembles the DataSource for the load command from its flags.
func buildSource(c *cli.Context) (core.DataSource, error) {
	typ, err := core.ParseSourceType(c.String("type"))
	if err != nil {
		return core.DataSource{}, err
	}

	src := core.DataSource{
		Type:          typ,
		FilePath:      c.String("file"),
		DirectoryPath: c.String("dir"),
	}
	if err := core.ValidateDataSource(src); err != nil {
		return core.DataSource{}, err
	}
	return src, nil
}

func loadCommand(c *cli.Context) error {
	src, err := buildSource(c)
	if err != nil {
		return err
	}

	opts := []docload.Option{docload.WithFreshness(c.Duration("freshness"))}
	if c.Bool("strict") {
		opts = append(opts, docload.WithStrictRecords())
	}

	loader, err := docload.New(opts...)
	if err != nil {
		return err
	}
	defer loader.Release()

	ctx := context.Background()
	repeat := c.Int("repeat")
	if repeat < 1 {
		repeat = 1
	}

	var docs []core.Document
	for i := 0; i < repeat; i++ {
		docs, err = loader.Load(ctx, src)
		if err != nil {
			return err
		}
	}

	out := c.App.Writer
	fmt.Fprintf(out, "%d document(s) from %s source\n", len(docs), src.Type)
	for _, doc := range docs {
		fmt.Fprintf(out, "  [%s] %s\n", doc.ID, doc.Title)
		if c.Bool("content") {
			fmt.Fprintf(out, "      %s\n", doc.Content)
		}
	}

	reportStats(c.App.ErrWriter, loader)
	return nil
}

func warmCommand(c *cli.Context) error {
	var srcs []core.DataSource
	for _, path := range c.StringSlice("json") {
		srcs = append(srcs, core.DataSource{Type: core.SourceTypeJSON, FilePath: path})
	}
	for _, path := range c.StringSlice("csv") {
		srcs = append(srcs, core.DataSource{Type: core.SourceTypeCSV, FilePath: path})
	}
	for _, path := range c.StringSlice("text") {
		srcs = append(srcs, core.DataSource{Type: core.SourceTypeTextFiles, DirectoryPath: path})
	}
	if len(srcs) == 0 {
		return fmt.Errorf("nothing to warm: pass at least one --json, --csv, or --text source")
	}

	loader, err := docload.New(docload.WithPoolSize(c.Int("pool-size")))
	if err != nil {
		return err
	}
	defer loader.Release()

	warmErr := loader.Warm(context.Background(), srcs...)
	reportStats(c.App.ErrWriter, loader)
	return warmErr
}

func sampleCommand(c *cli.Context) error {
	loader, err := docload.New()
	if err != nil {
		return err
	}
	defer loader.Release()

	docs, err := loader.Load(context.Background(), core.DataSource{Type: core.SourceTypeHardCoded})
	if err != nil {
		return err
	}

	out := c.App.Writer
	for _, doc := range docs {
		fmt.Fprintf(out, "[%s] %s\n%s\n\n", doc.ID, doc.Title, doc.Content)
	}
	return nil
}

// reportStats writes the timing report and the cache summary.
func reportStats(w io.Writer, loader *docload.Loader) {
	fmt.Fprintln(w)
	loader.PerfReport(w)

	stats := loader.CacheStats()
	fmt.Fprintf(w, "\ncache: %d entry(ies)\n", len(stats))
	for _, entry := range stats {
		fmt.Fprintf(w, "  %s: %d document(s), age %s\n",
			entry.Key, entry.Documents, entry.Age.Round(time.Millisecond))
	}
}
