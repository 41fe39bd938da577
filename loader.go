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


package docload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"golang.org/x/sync/singleflight"

	"github.com/poiesic/docload/cache"
	"github.com/poiesic/docload/core"
	"github.com/poiesic/docload/perf"
	"github.com/poiesic/docload/sources"
)

// Loader is the single entry point for loading document collections. For
// each source it consults the cache first, falls through to the matching
// parser on a miss, always routes parser output through validation, and
// stores only validated collections.
//
// A Loader is safe for concurrent use. Concurrent loads of the same
// resolved path are collapsed into one parse; independent paths proceed in
// parallel.
type Loader struct {
	cache     *cache.Cache
	perf      *perf.Tracker
	pool      *ants.Pool
	group     singleflight.Group
	parsers   map[core.SourceType]sources.Parser
	logger    *slog.Logger
	freshness time.Duration
	strict    bool
}

// Option configures a Loader.
type Option func(*Loader) error

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size used by Warm.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(l *Loader) error {
		if size < 1 {
			size = 1
		}

		if l.pool != nil {
			l.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		l.pool = pool
		return nil
	}
}

// WithFreshness sets the cache freshness window. Ignored when WithCache
// supplies a pre-built cache.
func WithFreshness(d time.Duration) Option {
	return func(l *Loader) error {
		l.freshness = d
		return nil
	}
}

// WithCache supplies a pre-built cache instance, for callers that share one
// cache across loaders or need custom cache options.
func WithCache(c *cache.Cache) Option {
	return func(l *Loader) error {
		if c == nil {
			return errors.New("cache required")
		}
		l.cache = c
		return nil
	}
}

// WithParser replaces the parser for one source type.
func WithParser(t core.SourceType, p sources.Parser) Option {
	return func(l *Loader) error {
		if p == nil {
			return fmt.Errorf("parser required for source type %s", t)
		}
		l.parsers[t] = p
		return nil
	}
}

// WithStrictRecords makes any skipped record or file fatal instead of a
// warning. The default preserves partial success: bad rows are skipped and
// only a collection with zero valid documents fails.
func WithStrictRecords() Option {
	return func(l *Loader) error {
		l.strict = true
		return nil
	}
}

// New creates a Loader with the built-in parsers and applies the provided
// options. Release must be called when the Loader is no longer needed.
func New(opts ...Option) (*Loader, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	l := &Loader{
		perf:    perf.NewTracker(),
		pool:    pool,
		parsers: make(map[core.SourceType]sources.Parser),
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			pool.Release()
			return nil, err
		}
	}

	if l.cache == nil {
		cacheOpts := []cache.Option{cache.WithLogger(l.logger)}
		if l.freshness > 0 {
			cacheOpts = append(cacheOpts, cache.WithFreshness(l.freshness))
		}
		l.cache = cache.New(cacheOpts...)
	}

	// Fill in the built-in parsers for any type not overridden.
	defaults := map[core.SourceType]sources.Parser{
		core.SourceTypeJSON:      sources.NewJSONParser(l.logger),
		core.SourceTypeCSV:       sources.NewCSVParser(l.logger),
		core.SourceTypeTextFiles: sources.NewTextDirParser(l.logger),
		core.SourceTypeHardCoded: sources.NewHardCodedParser(),
	}
	for t, p := range defaults {
		if _, ok := l.parsers[t]; !ok {
			l.parsers[t] = p
		}
	}

	return l, nil
}

// Load returns the documents of one data source, from the cache when the
// entry is still fresh, otherwise by parsing and validating the source.
// Every call is timed under "load_<type>" whether it succeeds or fails.
func (l *Loader) Load(ctx context.Context, src core.DataSource) ([]core.Document, error) {
	defer l.perf.Start("load_" + src.Type.String())()

	if err := core.ValidateDataSource(src); err != nil {
		return nil, err
	}

	parser, ok := l.parsers[src.Type]
	if !ok {
		return nil, fmt.Errorf("no parser registered for source type %s", src.Type)
	}

	// Hard-coded sources have no path, hence no cache key.
	if src.Type == core.SourceTypeHardCoded {
		docs, _, err := parser.Parse(ctx, "")
		if err != nil {
			return nil, err
		}
		if err := core.ValidateDocuments(docs, "hardcoded source"); err != nil {
			return nil, err
		}
		return docs, nil
	}

	key, err := filepath.Abs(src.Path())
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", src.Path(), err)
	}

	v, err, _ := l.group.Do(key, func() (any, error) {
		return l.loadPath(ctx, parser, src.Type, key)
	})
	if err != nil {
		return nil, err
	}
	return v.([]core.Document), nil
}

// loadPath runs the miss path for one resolved key: parse, validate, store.
func (l *Loader) loadPath(ctx context.Context, parser sources.Parser, t core.SourceType, key string) ([]core.Document, error) {
	if docs, ok := l.cache.Lookup(key); ok {
		l.logger.Debug("cache hit", "type", t.String(), "path", key)
		return docs, nil
	}

	docs, skipped, err := parser.Parse(ctx, key)
	if err != nil {
		return nil, err
	}

	if l.strict && skipped > 0 {
		return nil, fmt.Errorf("%w: %s: %d record(s) skipped",
			core.ErrMalformedInput, key, skipped)
	}

	label := fmt.Sprintf("%s source %s", t, key)
	if err := core.ValidateDocuments(docs, label); err != nil {
		return nil, err
	}

	if err := l.cache.Store(key, docs); err != nil {
		return nil, err
	}

	l.logger.Info("loaded source",
		"type", t.String(), "path", key, "documents", len(docs), "skipped", skipped)
	return docs, nil
}

// Warm loads every given source concurrently over the worker pool to
// populate the cache. Individual failures are logged and collected; the
// returned error joins them all, or is nil when every source loaded.
func (l *Loader) Warm(ctx context.Context, srcs ...core.DataSource) error {
	var (
		mu   sync.Mutex
		errs []error
		wg   sync.WaitGroup
	)

	record := func(src core.DataSource, err error) {
		l.logger.Error("warm failed",
			"type", src.Type.String(), "path", src.Path(), "err", err)
		mu.Lock()
		errs = append(errs, fmt.Errorf("%s %s: %w", src.Type, src.Path(), err))
		mu.Unlock()
	}

	for _, src := range srcs {
		src := src
		wg.Add(1)
		if err := l.pool.Submit(func() {
			defer wg.Done()
			if _, err := l.Load(ctx, src); err != nil {
				record(src, err)
			}
		}); err != nil {
			wg.Done()
			record(src, err)
		}
	}
	wg.Wait()

	return errors.Join(errs...)
}

// CacheStats returns a per-entry summary of the cache.
func (l *Loader) CacheStats() []cache.EntryStats {
	return l.cache.Stats()
}

// ClearCache removes every cache entry; the next load of any path is a miss.
func (l *Loader) ClearCache() {
	l.cache.Clear()
}

// PerfStats returns the aggregated timings of every recorded operation.
func (l *Loader) PerfStats() map[string]perf.Stats {
	return l.perf.All()
}

// PerfReport writes the textual timing report to w.
func (l *Loader) PerfReport(w io.Writer) {
	l.perf.Report(w)
}

// ResetPerf clears all recorded timings.
func (l *Loader) ResetPerf() {
	l.perf.Clear()
}

// Release frees the worker pool. The Loader should not be used afterwards.
func (l *Loader) Release() {
	if l.pool != nil {
		l.pool.Release()
	}
}
