package sources

import (
	"context"
	"slices"

	"github.com/poiesic/docload/core"
)

// sampleDocuments is the built-in collection served by the hardcoded source
// type. It lets the pipeline run end to end without any files on disk.
var sampleDocuments = []core.Document{
	{
		ID:      "1",
		Title:   "paris museums",
		Content: "The Louvre is the world's largest art museum and home to the Mona Lisa. The Musée d'Orsay, housed in a former railway station, holds the finest collection of impressionist art.",
	},
	{
		ID:      "2",
		Title:   "rome landmarks",
		Content: "The Colosseum could hold up to 80,000 spectators in antiquity. The Pantheon's concrete dome remains the largest unreinforced dome ever built.",
	},
	{
		ID:      "3",
		Title:   "tokyo neighborhoods",
		Content: "Shibuya is famous for its scramble crossing, while Asakusa preserves the atmosphere of old Tokyo around the Sensō-ji temple.",
	},
	{
		ID:      "4",
		Title:   "lisbon viewpoints",
		Content: "Lisbon is built on seven hills, and miradouros such as Senhora do Monte offer sweeping views over the terracotta rooftops to the Tagus river.",
	},
	{
		ID:      "5",
		Title:   "new york parks",
		Content: "Central Park covers 843 acres in the middle of Manhattan. The High Line repurposes an elevated freight rail line into a linear garden.",
	},
}

// HardCodedParser serves the built-in sample collection. It never touches
// the filesystem, so the loader bypasses the cache for this source type.
type HardCodedParser struct{}

var _ Parser = (*HardCodedParser)(nil)

// NewHardCodedParser creates a HardCodedParser.
func NewHardCodedParser() *HardCodedParser {
	return &HardCodedParser{}
}

// Parse returns a copy of the sample collection. The path argument is
// ignored.
func (p *HardCodedParser) Parse(_ context.Context, _ string) ([]core.Document, int, error) {
	return slices.Clone(sampleDocuments), 0, nil
}
