package extract

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestMarkdownExtract(t *testing.T) {
	src := `# Heading

First paragraph with *emphasis* and a
wrapped line.

Second paragraph.
`
	path := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	pages, err := (&MarkdownSource{}).Extract(path)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("Extract() produced %d pages, want 1", len(pages))
	}

	var lines []string
	for _, r := range pages[0].Runs {
		lines = append(lines, r.Text)
	}
	want := []string{
		"Heading",
		"First paragraph with emphasis and a wrapped line.",
		"Second paragraph.",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("extracted lines = %q, want %q", lines, want)
	}
}

func TestExtractDispatchesOnExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("plain text\n\nmore text"), 0o644); err != nil {
		t.Fatal(err)
	}

	pages, err := Extract(path)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(pages) != 1 || len(pages[0].Runs) != 2 {
		t.Fatalf("plain-text fallback: got %d pages, want 1 with 2 runs", len(pages))
	}
}

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()
	if len(formats) == 0 {
		t.Fatal("no formats registered")
	}
	found := false
	for _, f := range formats {
		if strings.HasPrefix(f, "Markdown (") {
			found = true
		}
	}
	if !found {
		t.Errorf("Markdown missing from SupportedFormats() = %v", formats)
	}
}
