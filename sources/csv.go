package sources

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/docload/core"
)

// csvRequiredColumns is the minimum number of header columns: Id, Title,
// Content. Extra columns are ignored.
const csvRequiredColumns = 3

// CSVParser reads a comma-separated file whose first line is a header
// declaring at least Id, Title, and Content columns.
//
// Fields may be wrapped in double quotes so that embedded commas do not
// split the row. The quote is a toggle with no escape sequence; quote
// characters themselves never appear in field values.
type CSVParser struct {
	logger *slog.Logger
}

var _ Parser = (*CSVParser)(nil)

// NewCSVParser creates a CSVParser. A nil logger falls back to slog.Default().
func NewCSVParser(logger *slog.Logger) *CSVParser {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVParser{logger: logger.With("parser", "csv")}
}

// Parse reads the CSV table at path. Rows with too few columns or empty
// required fields are skipped with a warning; only top-level failures and a
// structurally invalid header are fatal.
func (p *CSVParser) Parse(ctx context.Context, path string) ([]core.Document, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, pathError(path, err)
	}

	lines := splitLines(string(data))
	if len(lines) == 0 {
		return nil, 0, fmt.Errorf("%w: %s contains no content", core.ErrEmptySource, path)
	}

	header := splitQuoted(lines[0])
	if len(header) < csvRequiredColumns {
		return nil, 0, fmt.Errorf("%w: %s: header declares %d column(s), need at least %d (Id,Title,Content)",
			core.ErrMalformedInput, path, len(header), csvRequiredColumns)
	}

	var docs []core.Document
	skipped := 0
	for i, line := range lines[1:] {
		row := i + 2 // 1-based line number including the header

		fields := splitQuoted(line)
		if len(fields) < csvRequiredColumns {
			p.logger.Warn("skipping csv row with too few columns",
				"path", path, "row", row, "columns", len(fields))
			skipped++
			continue
		}

		doc := core.Document{
			ID:      strings.TrimSpace(fields[0]),
			Title:   strings.TrimSpace(fields[1]),
			Content: strings.TrimSpace(fields[2]),
		}
		if !doc.Complete() {
			p.logger.Warn("skipping csv row with empty required field",
				"path", path, "row", row)
			skipped++
			continue
		}

		docs = append(docs, doc)
	}

	p.logger.Debug("parsed csv source",
		"path", path, "documents", len(docs), "skipped", skipped)
	return docs, skipped, nil
}

// splitLines splits file content into non-empty lines, tolerating both LF
// and CRLF endings.
func splitLines(content string) []string {
	raw := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// splitQuoted splits a line on commas, treating the double quote as an
// in-quotes toggle. Commas inside quoted stretches do not split; quote
// characters are dropped from the output. There is no escaping of embedded
// quotes.
func splitQuoted(line string) []string {
	var fields []string
	var field strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}
	return append(fields, field.String())
}
