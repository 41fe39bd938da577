package sources

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/poiesic/docload/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVParser(t *testing.T) {
	ctx := context.Background()
	parser := NewCSVParser(nil)

	t.Run("parses data rows in order, header excluded", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "docs.csv",
			"Id,Title,Content\n1,A,hello\n2,B,world\n")

		docs, skipped, err := parser.Parse(ctx, path)
		require.NoError(t, err)
		assert.Zero(t, skipped)
		require.Len(t, docs, 2)
		assert.Equal(t, core.Document{ID: "1", Title: "A", Content: "hello"}, docs[0])
		assert.Equal(t, core.Document{ID: "2", Title: "B", Content: "world"}, docs[1])
	})

	t.Run("quoted commas do not split the row", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "quoted.csv",
			"Id,Title,Content\n1,\"Paris, France\",\"The Louvre, the Orsay\"\n")

		docs, _, err := parser.Parse(ctx, path)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "Paris, France", docs[0].Title)
		assert.Equal(t, "The Louvre, the Orsay", docs[0].Content)
	})

	t.Run("extra columns beyond the first three are ignored", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "wide.csv",
			"Id,Title,Content,Tags\n1,A,hello,travel\n")

		docs, _, err := parser.Parse(ctx, path)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, core.Document{ID: "1", Title: "A", Content: "hello"}, docs[0])
	})

	t.Run("bad rows are skipped, not fatal", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "partial.csv",
			"Id,Title,Content\n1,A,hello\n2,,world\nonly-one-column\n3,C,bye\n")

		docs, skipped, err := parser.Parse(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, 2, skipped)
		require.Len(t, docs, 2)
		assert.Equal(t, "1", docs[0].ID)
		assert.Equal(t, "3", docs[1].ID)
	})

	t.Run("header with fewer than three columns is malformed", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "narrow.csv", "Id,Title\n1,A\n")

		_, _, err := parser.Parse(ctx, path)
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrMalformedInput)
		assert.Contains(t, err.Error(), path)
	})

	t.Run("empty file is an empty source", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "empty.csv", "\n\n")

		_, _, err := parser.Parse(ctx, path)
		assert.ErrorIs(t, err, core.ErrEmptySource)
	})

	t.Run("header-only file yields zero documents for the validator", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "headeronly.csv", "Id,Title,Content\n")

		docs, skipped, err := parser.Parse(ctx, path)
		require.NoError(t, err)
		assert.Zero(t, skipped)
		assert.Empty(t, docs)
	})

	t.Run("crlf line endings", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "crlf.csv",
			"Id,Title,Content\r\n1,A,hello\r\n")

		docs, _, err := parser.Parse(ctx, path)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "hello", docs[0].Content)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := parser.Parse(ctx, filepath.Join(t.TempDir(), "absent.csv"))
		assert.ErrorIs(t, err, core.ErrSourceNotFound)
	})
}

func TestSplitQuoted(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "plain fields", line: "a,b,c", want: []string{"a", "b", "c"}},
		{name: "quoted comma", line: `a,"b,c",d`, want: []string{"a", "b,c", "d"}},
		{name: "quotes are stripped", line: `"a","b"`, want: []string{"a", "b"}},
		{name: "empty fields", line: "a,,c", want: []string{"a", "", "c"}},
		{name: "unterminated quote swallows the rest", line: `a,"b,c`, want: []string{"a", "b,c"}},
		{name: "single field", line: "alone", want: []string{"alone"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitQuoted(tt.line))
		})
	}
}
