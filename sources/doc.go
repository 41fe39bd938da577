// Package sources provides the per-format parsers that convert raw document
// collections into the normalized core.Document model.
//
// Each parser handles one source representation:
//   - JSONParser: a JSON array of document objects
//   - CSVParser: a headered CSV table with quote-aware field splitting
//   - TextDirParser: a flat directory of *.txt files
//   - HardCodedParser: the built-in sample collection
//
// Parsers hold no shared state and are safe to call concurrently for
// different locators. Fatal failures on the top-level path (missing file,
// permission denied) are returned as wrapped core sentinel errors; bad
// individual records are skipped with a logged warning and counted, never
// raised, so partial success is the norm.
package sources
