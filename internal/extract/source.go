// Package extract supplies per-page positioned text runs from document
// files. PDF pages carry real geometry; flowed formats (EPUB, Markdown,
// DOCX, plain text) are laid out with synthetic line metrics so the
// same downstream segmentation applies.
package extract

import (
	"path/filepath"
	"strings"

	"github.com/pagemark/pagemark/internal/doc"
)

// Page is one page of raw runs, in reading order.
type Page struct {
	Runs []doc.RawRun
}

// Source defines an extraction provider for a file format.
type Source interface {
	Name() string
	Extensions() []string
	Extract(filename string) ([]Page, error)
}

var registry []Source

// Register adds a source to the registry.
func Register(s Source) {
	registry = append(registry, s)
}

// Extract produces pages of raw runs from a file, using a registered
// source or the plain-text fallback.
func Extract(filename string) ([]Page, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, s := range registry {
		for _, e := range s.Extensions() {
			if ext == e {
				return s.Extract(filename)
			}
		}
	}
	return extractPlainText(filename)
}

// SupportedFormats returns registered source names with their extensions.
func SupportedFormats() []string {
	var out []string
	for _, s := range registry {
		out = append(out, s.Name()+" ("+strings.Join(s.Extensions(), ", ")+")")
	}
	return out
}
