package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/docload/core"
)

// JSONParser reads a JSON file whose top-level value is an array of document
// objects with string Id, Title, and Content fields.
type JSONParser struct {
	logger *slog.Logger
}

var _ Parser = (*JSONParser)(nil)

// NewJSONParser creates a JSONParser. A nil logger falls back to slog.Default().
func NewJSONParser(logger *slog.Logger) *JSONParser {
	if logger == nil {
		logger = slog.Default()
	}
	return &JSONParser{logger: logger.With("parser", "json")}
}

// jsonDocument is the wire shape of one array element.
type jsonDocument struct {
	ID      string `json:"Id"`
	Title   string `json:"Title"`
	Content string `json:"Content"`
}

// Parse reads and decodes the JSON array at path.
func (p *JSONParser) Parse(ctx context.Context, path string) ([]core.Document, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, pathError(path, err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, 0, fmt.Errorf("%w: %s contains no content", core.ErrEmptySource, path)
	}

	var records []jsonDocument
	if err := json.Unmarshal([]byte(text), &records); err != nil {
		return nil, 0, fmt.Errorf("%w: %s: expected a JSON array of document objects: %v",
			core.ErrMalformedInput, path, err)
	}

	docs := make([]core.Document, len(records))
	for i, r := range records {
		docs[i] = core.Document{ID: r.ID, Title: r.Title, Content: r.Content}
	}

	p.logger.Debug("parsed json source", "path", path, "documents", len(docs))
	return docs, 0, nil
}
