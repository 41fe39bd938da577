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


package sources

import (
	"context"

	"github.com/poiesic/docload/core"
)

// Parser converts one source representation into a document collection.
// Implementations must be safe for concurrent use.
type Parser interface {
	// Parse reads the source at path and returns its documents in source
	// order, along with the number of records or files that were skipped
	// with a warning. Parse does not run collection-level validation; that
	// is the caller's responsibility.
	Parse(ctx context.Context, path string) (docs []core.Document, skipped int, err error)
}

// pathError maps a filesystem error on the top-level path to the domain
// error taxonomy.
func pathError(path string, err error) error {
	return core.PathError(path, err)
}
