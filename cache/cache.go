package cache

import (
	"log/slog"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/poiesic/docload/core"
)

// DefaultFreshness is the maximum age of a cache entry. Entries older than
// this are treated as absent regardless of fingerprint match.
const DefaultFreshness = 5 * time.Minute

// entry is one cached document collection. Entries are immutable once
// stored; eviction replaces or removes the whole entry.
type entry struct {
	documents   []core.Document
	fingerprint string
	insertedAt  time.Time
}

// Cache is a staleness-aware, in-memory document cache keyed by resolved
// absolute path. Construct instances with New; the zero value is not usable.
//
// Callers must treat the document slices returned by Lookup as read-only.
type Cache struct {
	entries   sync.Map // string -> *entry
	freshness time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

// Option configures a Cache.
type Option func(*Cache)

// WithFreshness sets the freshness window. Non-positive values fall back to
// DefaultFreshness.
func WithFreshness(d time.Duration) Option {
	return func(c *Cache) {
		if d > 0 {
			c.freshness = d
		}
	}
}

// WithClock overrides the time source. Intended for tests that exercise
// age-based expiry.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Cache with the default freshness window and applies the
// provided options.
func New(opts ...Option) *Cache {
	c := &Cache{
		freshness: DefaultFreshness,
		now:       time.Now,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "cache")
	return c
}

// Lookup returns the cached documents for key, or reports a miss. An entry
// older than the freshness window, or whose source no longer matches the
// stored fingerprint, is evicted and reported as a miss. The fingerprint is
// recomputed without holding any lock.
func (c *Cache) Lookup(key string) ([]core.Document, bool) {
	v, ok := c.entries.Load(key)
	if !ok {
		return nil, false
	}
	e := v.(*entry)

	if c.now().Sub(e.insertedAt) > c.freshness {
		c.entries.CompareAndDelete(key, v)
		c.logger.Debug("evicting expired cache entry", "key", key)
		return nil, false
	}

	current, err := PathFingerprint(key)
	if err != nil || current != e.fingerprint {
		c.entries.CompareAndDelete(key, v)
		c.logger.Debug("evicting stale cache entry", "key", key)
		return nil, false
	}

	return e.documents, true
}

// Store caches a validated document collection under key, overwriting any
// existing entry with a freshly computed fingerprint and timestamp. It
// fails when the path cannot be fingerprinted.
func (c *Cache) Store(key string, docs []core.Document) error {
	fingerprint, err := PathFingerprint(key)
	if err != nil {
		return err
	}

	c.entries.Store(key, &entry{
		documents:   slices.Clone(docs),
		fingerprint: fingerprint,
		insertedAt:  c.now(),
	})
	return nil
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.entries.Range(func(k, _ any) bool {
		c.entries.Delete(k)
		return true
	})
}

// Len returns the number of entries currently held, including any that a
// future lookup would evict as stale.
func (c *Cache) Len() int {
	n := 0
	c.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// EntryStats summarizes one cache entry for reporting.
type EntryStats struct {
	Key       string
	Documents int
	Age       time.Duration
}

// Stats returns a summary of every entry, sorted by key.
func (c *Cache) Stats() []EntryStats {
	now := c.now()

	var stats []EntryStats
	c.entries.Range(func(k, v any) bool {
		e := v.(*entry)
		stats = append(stats, EntryStats{
			Key:       k.(string),
			Documents: len(e.documents),
			Age:       now.Sub(e.insertedAt),
		})
		return true
	})

	sort.Slice(stats, func(i, j int) bool { return stats[i].Key < stats[j].Key })
	return stats
}
