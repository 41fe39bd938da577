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


package retrieval

import (
	"github.com/poiesic/docload/core"
	"github.com/tmc/langchaingo/schema"
	"github.com/tmc/langchaingo/textsplitter"
)

// Metadata keys carried on converted documents.
const (
	MetadataKeyID    = "id"
	MetadataKeyTitle = "title"
)

// ToSchemaDocuments converts a loaded collection into langchaingo
// documents, preserving source order. The document identifier and title
// travel in metadata so the pipeline can attribute search hits.
func ToSchemaDocuments(docs []core.Document) []schema.Document {
	converted := make([]schema.Document, len(docs))
	for i, doc := range docs {
		converted[i] = schema.Document{
			PageContent: doc.Content,
			Metadata: map[string]any{
				MetadataKeyID:    doc.ID,
				MetadataKeyTitle: doc.Title,
			},
		}
	}
	return converted
}

// SplitDocuments converts a collection and chunks each document with the
// given splitter. Chunks inherit the source document's metadata.
func SplitDocuments(splitter textsplitter.TextSplitter, docs []core.Document) ([]schema.Document, error) {
	return textsplitter.SplitDocuments(splitter, ToSchemaDocuments(docs))
}

// DefaultSplitter returns a recursive character splitter with chunk sizes
// suited to typical embedding models.
func DefaultSplitter() textsplitter.TextSplitter {
	return textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(800),
		textsplitter.WithChunkOverlap(100),
	)
}
