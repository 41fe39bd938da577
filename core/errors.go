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
	"errors"
	"fmt"
	"io/fs"
)

// Domain errors shared by parsers, validation, cache, and the loader.
// Callers match them with errors.Is; wrapped messages carry the resolved
// path and offending identifiers or counts.
var (
	// ErrSourceNotFound indicates the source file or directory does not exist.
	ErrSourceNotFound = errors.New("source not found")

	// ErrSourceUnavailable indicates the filesystem rejected the read,
	// typically a permission error or a lock held by another process.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrEmptySource indicates a source produced no documents, either because
	// it had no content or because every row was skipped.
	ErrEmptySource = errors.New("source is empty")

	// ErrMalformedInput indicates structurally invalid input, such as a JSON
	// file whose top-level value is not an array, or a CSV header with fewer
	// than three columns.
	ErrMalformedInput = errors.New("malformed input")

	// ErrDuplicateIdentifier indicates two or more documents in one
	// collection share an identifier.
	ErrDuplicateIdentifier = errors.New("duplicate document identifier")

	// ErrMissingField indicates documents with an empty id, title, or
	// content after trimming.
	ErrMissingField = errors.New("document missing required field")
)

// PathError maps a filesystem error on a top-level source path to the
// domain taxonomy, embedding the resolved path for the operator.
func PathError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%w: %s: permission denied", ErrSourceUnavailable, path)
	}
	return fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, path, err)
}
