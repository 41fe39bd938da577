package core

import "testing"

func TestParseSourceType(t *testing.T) {
	tests := []struct {
		input   string
		want    SourceType
		wantErr bool
	}{
		{input: "json", want: SourceTypeJSON},
		{input: "JSON", want: SourceTypeJSON},
		{input: "csv", want: SourceTypeCSV},
		{input: "textfiles", want: SourceTypeTextFiles},
		{input: "text", want: SourceTypeTextFiles},
		{input: " hardcoded ", want: SourceTypeHardCoded},
		{input: "xml", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSourceType(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSourceType(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSourceType(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("ParseSourceType(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSourceTypeString(t *testing.T) {
	pairs := map[SourceType]string{
		SourceTypeJSON:      "json",
		SourceTypeCSV:       "csv",
		SourceTypeTextFiles: "textfiles",
		SourceTypeHardCoded: "hardcoded",
	}
	for typ, want := range pairs {
		if got := typ.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(typ), got, want)
		}
	}
}

func TestDataSourcePath(t *testing.T) {
	file := DataSource{Type: SourceTypeJSON, FilePath: "a.json", DirectoryPath: "ignored"}
	if got := file.Path(); got != "a.json" {
		t.Errorf("file source Path() = %q, want %q", got, "a.json")
	}

	dir := DataSource{Type: SourceTypeTextFiles, FilePath: "ignored", DirectoryPath: "docs"}
	if got := dir.Path(); got != "docs" {
		t.Errorf("directory source Path() = %q, want %q", got, "docs")
	}
}

func TestDocumentComplete(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want bool
	}{
		{name: "complete", doc: Document{ID: "1", Title: "A", Content: "x"}, want: true},
		{name: "empty id", doc: Document{Title: "A", Content: "x"}, want: false},
		{name: "whitespace title", doc: Document{ID: "1", Title: " \t", Content: "x"}, want: false},
		{name: "empty content", doc: Document{ID: "1", Title: "A"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.doc.Complete(); got != tt.want {
				t.Fatalf("Complete() = %v, want %v", got, tt.want)
			}
		})
	}
}
