// Package doc holds the positioned-word model of a paginated document:
// raw text runs from an extraction source, the segmented word lists,
// and the per-page navigation indexes built over them.
package doc

// Rect is an axis-aligned box in source units, anchored to a text baseline.
type Rect struct {
	X        float64
	Top      float64
	W        float64
	H        float64
	Baseline float64
}

// Right returns the x coordinate of the rect's right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// RawRun is one positioned text run as delivered by an extraction source.
type RawRun struct {
	Text     string
	X        float64
	Baseline float64
	Height   float64 // glyph height
	Width    float64 // total advance width of Text
	Skew     float64 // non-zero means rotated text
}

// WordItem is a single word with its geometry and its position in the
// section/sentence structure of the page. Immutable once produced.
type WordItem struct {
	Text     string
	Box      Rect
	Section  int
	Sentence int
}
