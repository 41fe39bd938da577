package core

import (
	"fmt"
	"strings"
)

// Document is the normalized record every source format is parsed into.
// It is immutable once it has passed validation; parsers construct one
// Document per source unit (JSON array element, CSV data row, text file).
type Document struct {
	ID      string
	Title   string
	Content string
}

// Complete reports whether all required fields are non-empty after trimming.
func (d *Document) Complete() bool {
	return strings.TrimSpace(d.ID) != "" &&
		strings.TrimSpace(d.Title) != "" &&
		strings.TrimSpace(d.Content) != ""
}

// SourceType selects which parser the loader invokes for a data source.
type SourceType int

const (
	// SourceTypeJSON reads a JSON array of document objects from a file.
	SourceTypeJSON SourceType = iota + 1
	// SourceTypeCSV reads a headered CSV table from a file.
	SourceTypeCSV
	// SourceTypeTextFiles reads every *.txt file in a flat directory.
	SourceTypeTextFiles
	// SourceTypeHardCoded serves the built-in sample collection.
	SourceTypeHardCoded
)

// String returns the canonical lowercase name of the source type.
func (t SourceType) String() string {
	switch t {
	case SourceTypeJSON:
		return "json"
	case SourceTypeCSV:
		return "csv"
	case SourceTypeTextFiles:
		return "textfiles"
	case SourceTypeHardCoded:
		return "hardcoded"
	default:
		return fmt.Sprintf("sourcetype(%d)", int(t))
	}
}

// ParseSourceType converts a case-insensitive name into a SourceType.
func ParseSourceType(name string) (SourceType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return SourceTypeJSON, nil
	case "csv":
		return SourceTypeCSV, nil
	case "textfiles", "text":
		return SourceTypeTextFiles, nil
	case "hardcoded":
		return SourceTypeHardCoded, nil
	default:
		return 0, fmt.Errorf("unknown source type %q: must be one of json, csv, textfiles, hardcoded", name)
	}
}

// DataSource describes one document collection to load.
// FilePath is used by the JSON and CSV types, DirectoryPath by TextFiles.
// The HardCoded type needs no path at all.
type DataSource struct {
	Type          SourceType
	FilePath      string
	DirectoryPath string
}

// Path returns the locator relevant to the source type.
func (s DataSource) Path() string {
	if s.Type == SourceTypeTextFiles {
		return s.DirectoryPath
	}
	return s.FilePath
}
