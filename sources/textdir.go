package sources

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/poiesic/docload/core"
)

// TextDirParser reads every *.txt file in the immediate (non-recursive)
// listing of a directory. Each file becomes one document: the filename minus
// its extension, with underscores and hyphens replaced by spaces, is the
// title; the file contents are the content; identifiers are assigned
// sequentially from "1" in listing order.
type TextDirParser struct {
	logger *slog.Logger
}

var _ Parser = (*TextDirParser)(nil)

// NewTextDirParser creates a TextDirParser. A nil logger falls back to
// slog.Default().
func NewTextDirParser(logger *slog.Logger) *TextDirParser {
	if logger == nil {
		logger = slog.Default()
	}
	return &TextDirParser{logger: logger.With("parser", "textdir")}
}

// Parse enumerates the directory at path. Files that are empty or cannot be
// read are skipped with a warning; the call fails only when the directory
// itself cannot be listed.
func (p *TextDirParser) Parse(ctx context.Context, path string) ([]core.Document, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, 0, pathError(path, err)
	}

	var docs []core.Document
	skipped := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			continue
		}

		filePath := filepath.Join(path, entry.Name())
		data, err := os.ReadFile(filePath)
		if err != nil {
			p.logger.Warn("skipping unreadable text file", "path", filePath, "err", err)
			skipped++
			continue
		}

		content := string(data)
		if strings.TrimSpace(content) == "" {
			p.logger.Warn("skipping empty text file", "path", filePath)
			skipped++
			continue
		}

		docs = append(docs, core.Document{
			ID:      strconv.Itoa(len(docs) + 1),
			Title:   titleFromFilename(entry.Name()),
			Content: content,
		})
	}

	p.logger.Debug("parsed text directory",
		"path", path, "documents", len(docs), "skipped", skipped)
	return docs, skipped, nil
}

// titleFromFilename derives a document title from a filename: the extension
// is dropped and separator characters become spaces.
func titleFromFilename(name string) string {
	title := strings.TrimSuffix(name, filepath.Ext(name))
	title = strings.ReplaceAll(title, "_", " ")
	title = strings.ReplaceAll(title, "-", " ")
	return title
}
