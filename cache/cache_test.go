package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/poiesic/docload/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func sampleDocs() []core.Document {
	return []core.Document{
		{ID: "1", Title: "A", Content: "x"},
		{ID: "2", Title: "B", Content: "y"},
	}
}

func TestCacheHit(t *testing.T) {
	path := writeTempFile(t, "docs.json", "[]")
	c := New()

	require.NoError(t, c.Store(path, sampleDocs()))

	got, ok := c.Lookup(path)
	require.True(t, ok)
	assert.Equal(t, sampleDocs(), got)
	assert.Equal(t, 1, c.Len())
}

func TestCacheMissForUnknownKey(t *testing.T) {
	c := New()

	_, ok := c.Lookup("/nonexistent")
	assert.False(t, ok)
}

func TestCacheEvictsOnModification(t *testing.T) {
	path := writeTempFile(t, "docs.json", "[]")
	c := New()
	require.NoError(t, c.Store(path, sampleDocs()))

	// Push the mtime forward; content hashing is deliberately not used, so
	// the timestamp alone must trigger the eviction.
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	_, ok := c.Lookup(path)
	assert.False(t, ok)
	assert.Zero(t, c.Len(), "stale entry must be evicted eagerly at lookup")
}

func TestCacheEvictsOnAge(t *testing.T) {
	path := writeTempFile(t, "docs.json", "[]")

	current := time.Now()
	c := New(WithClock(func() time.Time { return current }))
	require.NoError(t, c.Store(path, sampleDocs()))

	// Still fresh just inside the window.
	current = current.Add(DefaultFreshness - time.Second)
	_, ok := c.Lookup(path)
	require.True(t, ok)

	// Past the window the unchanged file no longer matters.
	current = current.Add(2 * time.Second)
	_, ok = c.Lookup(path)
	assert.False(t, ok)
	assert.Zero(t, c.Len())
}

func TestCacheCustomFreshness(t *testing.T) {
	path := writeTempFile(t, "docs.json", "[]")

	current := time.Now()
	c := New(WithFreshness(time.Minute), WithClock(func() time.Time { return current }))
	require.NoError(t, c.Store(path, sampleDocs()))

	current = current.Add(61 * time.Second)
	_, ok := c.Lookup(path)
	assert.False(t, ok)
}

func TestCacheClear(t *testing.T) {
	path := writeTempFile(t, "docs.json", "[]")
	c := New()
	require.NoError(t, c.Store(path, sampleDocs()))

	c.Clear()

	_, ok := c.Lookup(path)
	assert.False(t, ok)
	assert.Zero(t, c.Len())
}

func TestCacheStoreOverwrites(t *testing.T) {
	path := writeTempFile(t, "docs.json", "[]")
	c := New()
	require.NoError(t, c.Store(path, sampleDocs()))

	replacement := []core.Document{{ID: "9", Title: "Z", Content: "q"}}
	require.NoError(t, c.Store(path, replacement))

	got, ok := c.Lookup(path)
	require.True(t, ok)
	assert.Equal(t, replacement, got)
	assert.Equal(t, 1, c.Len())
}

func TestCacheStoreMissingPath(t *testing.T) {
	c := New()

	err := c.Store(filepath.Join(t.TempDir(), "absent"), sampleDocs())
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrSourceNotFound)
}

func TestCacheStoreCopiesDocuments(t *testing.T) {
	path := writeTempFile(t, "docs.json", "[]")
	c := New()

	docs := sampleDocs()
	require.NoError(t, c.Store(path, docs))
	docs[0].Title = "mutated"

	got, ok := c.Lookup(path)
	require.True(t, ok)
	assert.Equal(t, "A", got[0].Title)
}

func TestCacheStats(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.json")
	second := filepath.Join(dir, "b.json")
	require.NoError(t, os.WriteFile(first, []byte("[]"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("[]"), 0o644))

	current := time.Now()
	c := New(WithClock(func() time.Time { return current }))
	require.NoError(t, c.Store(first, sampleDocs()))
	require.NoError(t, c.Store(second, sampleDocs()[:1]))

	current = current.Add(30 * time.Second)
	stats := c.Stats()
	require.Len(t, stats, 2)
	assert.Equal(t, first, stats[0].Key)
	assert.Equal(t, 2, stats[0].Documents)
	assert.Equal(t, 30*time.Second, stats[0].Age)
	assert.Equal(t, second, stats[1].Key)
	assert.Equal(t, 1, stats[1].Documents)
}

func TestCacheConcurrentAccess(t *testing.T) {
	dir := t.TempDir()
	paths := make([]string, 8)
	for i := range paths {
		paths[i] = filepath.Join(dir, fmt.Sprintf("f%d.json", i))
		require.NoError(t, os.WriteFile(paths[i], []byte("[]"), 0o644))
	}

	c := New()

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			path := paths[i%len(paths)]
			switch i % 3 {
			case 0:
				_ = c.Store(path, sampleDocs())
			case 1:
				if docs, ok := c.Lookup(path); ok && len(docs) != 2 {
					t.Errorf("observed partially written entry: %d documents", len(docs))
				}
			default:
				c.Stats()
			}
		}(i)
	}
	wg.Wait()
}

func TestPathFingerprint(t *testing.T) {
	t.Run("stable while unchanged", func(t *testing.T) {
		path := writeTempFile(t, "f.txt", "content")

		first, err := PathFingerprint(path)
		require.NoError(t, err)
		second, err := PathFingerprint(path)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("changes with the modification time", func(t *testing.T) {
		path := writeTempFile(t, "f.txt", "content")
		before, err := PathFingerprint(path)
		require.NoError(t, err)

		future := time.Now().Add(3 * time.Second)
		require.NoError(t, os.Chtimes(path, future, future))

		after, err := PathFingerprint(path)
		require.NoError(t, err)
		assert.NotEqual(t, before, after)
	})

	t.Run("works for directories", func(t *testing.T) {
		dir := t.TempDir()
		fp, err := PathFingerprint(dir)
		require.NoError(t, err)
		assert.NotEmpty(t, fp)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := PathFingerprint(filepath.Join(t.TempDir(), "absent"))
		assert.ErrorIs(t, err, core.ErrSourceNotFound)
	})
}
