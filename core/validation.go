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


package core

import (
	"fmt"
	"sort"
	"strings"
)

// ValidateDocuments validates a parsed document collection before it may be
// cached or returned. It is the single gate between raw parser output and
// callers, and runs identically for every source type.
//
// Validation rules:
//   - The collection must not be empty
//   - No two documents may share an identifier
//   - Every document must have a non-empty id, title, and content after
//     trimming
//
// label names the source (typically its type and resolved path) and is
// embedded in error messages.
func ValidateDocuments(docs []Document, label string) error {
	if len(docs) == 0 {
		return fmt.Errorf("%w: %s produced no valid documents", ErrEmptySource, label)
	}

	if dupes := duplicateIDs(docs); len(dupes) > 0 {
		return fmt.Errorf("%w: %s contains duplicate ids [%s]",
			ErrDuplicateIdentifier, label, strings.Join(dupes, ", "))
	}

	incomplete := 0
	for i := range docs {
		if !docs[i].Complete() {
			incomplete++
		}
	}
	if incomplete > 0 {
		return fmt.Errorf("%w: %s has %d document(s) with an empty id, title, or content",
			ErrMissingField, label, incomplete)
	}

	return nil
}

// duplicateIDs returns the sorted set of identifiers that occur more than
// once in the collection.
func duplicateIDs(docs []Document) []string {
	seen := make(map[string]int, len(docs))
	for i := range docs {
		seen[docs[i].ID]++
	}

	var dupes []string
	for id, n := range seen {
		if n > 1 {
			dupes = append(dupes, id)
		}
	}
	sort.Strings(dupes)
	return dupes
}

// ValidateDataSource checks that a DataSource names a path appropriate for
// its type. HardCoded sources need no path.
func ValidateDataSource(src DataSource) error {
	switch src.Type {
	case SourceTypeJSON, SourceTypeCSV:
		if strings.TrimSpace(src.FilePath) == "" {
			return fmt.Errorf("%s source requires FilePath", src.Type)
		}
	case SourceTypeTextFiles:
		if strings.TrimSpace(src.DirectoryPath) == "" {
			return fmt.Errorf("textfiles source requires DirectoryPath")
		}
	case SourceTypeHardCoded:
		// No path to validate.
	default:
		return fmt.Errorf("unknown source type %d", int(src.Type))
	}
	return nil
}
