// Package retrieval bridges loaded document collections to the downstream
// retrieval pipeline.
//
// The pipeline itself (embedding, vector search, chat) is an external
// collaborator; this package only converts core.Document values into the
// langchaingo schema the pipeline consumes, optionally chunking long
// documents for embedding.
package retrieval
