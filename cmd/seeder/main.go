package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// fixture is one sample document written into every generated format.
type fixture struct {
	ID      string
	Title   string
	Content string
}

var fixtures = []fixture{
	{"1", "Paris Travel Guide", "Paris, the capital of France, is known for the Eiffel Tower, the Louvre, and its cafe culture. Spring and autumn are the best seasons to visit."},
	{"2", "Tokyo Neighborhoods", "Tokyo blends the ultra-modern with the traditional, from Shibuya's neon crossings to the quiet temples of Asakusa."},
	{"3", "Hiking the Dolomites", "The Dolomites in northern Italy offer dramatic limestone peaks, alpine meadows, and a network of mountain huts for multi-day treks."},
	{"4", "Street Food in Bangkok", "Bangkok's street stalls serve pad thai, mango sticky rice, and boat noodles at all hours. Chinatown's Yaowarat Road comes alive after dark."},
	{"5", "Iceland's Ring Road", "Route 1 circles the island past waterfalls, black sand beaches, and glacial lagoons. Most travelers allow at least a week for the full loop."},
	{"6", "Museums of Vienna", "Vienna's museum quarter houses the Kunsthistorisches Museum, the Leopold, and the MUMOK, all within walking distance of the Hofburg."},
	{"7", "Sailing the Greek Islands", "The Cyclades offer short hops between islands, reliable summer winds, and harbors like Naxos and Paros that welcome small charters."},
	{"8", "Winter in Quebec City", "Quebec City's old town turns into a snow-covered postcard each winter, with toboggan runs beside the Chateau Frontenac and an ice hotel nearby."},
}

var (
	outDir    = flag.String("out", "./fixtures", "directory to write fixtures into")
	skipJSON  = flag.Bool("no-json", false, "skip the JSON fixture")
	skipCSV   = flag.Bool("no-csv", false, "skip the CSV fixture")
	skipText  = flag.Bool("no-text", false, "skip the text directory fixture")
	addBroken = flag.Bool("broken", false, "include malformed rows in the CSV fixture")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// jsonDocument matches the wire shape the JSON parser expects.
type jsonDocument struct {
	ID      string `json:"Id"`
	Title   string `json:"Title"`
	Content string `json:"Content"`
}

func writeJSON(path string) error {
	docs := make([]jsonDocument, 0, len(fixtures))
	for _, f := range fixtures {
		docs = append(docs, jsonDocument{ID: f.ID, Title: f.Title, Content: f.Content})
	}

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// csvField wraps values containing commas in quotes so the field survives
// the comma split on the way back in.
func csvField(value string) string {
	if strings.Contains(value, ",") {
		return `"` + value + `"`
	}
	return value
}

func writeCSV(path string, includeBroken bool) error {
	var sb strings.Builder
	sb.WriteString("Id,Title,Content\n")
	for _, f := range fixtures {
		sb.WriteString(csvField(f.ID))
		sb.WriteByte(',')
		sb.WriteString(csvField(f.Title))
		sb.WriteByte(',')
		sb.WriteString(csvField(f.Content))
		sb.WriteByte('\n')
	}
	if includeBroken {
		sb.WriteString("99,missing content field\n")
		sb.WriteString(",Blank Identifier,this row has no id\n")
	}
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}

func writeTextDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, f := range fixtures {
		name := strings.ToLower(strings.ReplaceAll(f.Title, " ", "_")) + ".txt"
		if err := os.WriteFile(filepath.Join(dir, name), []byte(f.Content+"\n"), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		panic(err)
	}

	if !*skipJSON {
		path := filepath.Join(*outDir, "documents.json")
		if err := writeJSON(path); err != nil {
			panic(err)
		}
		slog.Info("wrote JSON fixture", "path", path, "documents", len(fixtures))
	}

	if !*skipCSV {
		path := filepath.Join(*outDir, "documents.csv")
		if err := writeCSV(path, *addBroken); err != nil {
			panic(err)
		}
		slog.Info("wrote CSV fixture", "path", path, "documents", len(fixtures))
	}

	if !*skipText {
		dir := filepath.Join(*outDir, "text")
		if err := writeTextDir(dir); err != nil {
			panic(err)
		}
		slog.Info("wrote text fixtures", "dir", dir, "documents", len(fixtures))
	}

	fmt.Printf("fixtures written to %s\n", *outDir)
}
