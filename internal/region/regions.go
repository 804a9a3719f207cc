package region

import (
	"github.com/pagemark/pagemark/internal/doc"
	"github.com/pagemark/pagemark/internal/highlight"
)

// Regions is the drawable output for one page: merged rectangles per
// highlight tier. The renderer that paints them is external.
type Regions struct {
	Visited   []doc.Rect
	Annotated []doc.Rect
}

// ForPage assembles the merged rectangle lists for a page from the
// current highlight state.
func ForPage(d *doc.Document, store *highlight.Store, page int, scale float64) Regions {
	words := d.Words(page)
	return Regions{
		Visited:   mergeIndices(words, store.VisitedWords(page), scale),
		Annotated: mergeIndices(words, store.AnnotatedWords(page), scale),
	}
}

// ForIndices merges the boxes of an arbitrary word-index set on a
// page, e.g. a live drag preview or a selection outline.
func ForIndices(d *doc.Document, page int, indices []int, scale float64) []doc.Rect {
	return mergeIndices(d.Words(page), indices, scale)
}

func mergeIndices(words []doc.WordItem, indices []int, scale float64) []doc.Rect {
	if len(indices) == 0 {
		return nil
	}
	rects := make([]doc.Rect, 0, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(words) {
			rects = append(rects, words[i].Box)
		}
	}
	return Merge(rects, scale)
}
