package main

import "github.com/pagemark/pagemark/internal/doc"

// wordSpan is one word's place in the terminal view of a page.
type wordSpan struct {
	index int // word index on the page
	col   int // starting column, in cells
	width int // rune width of the word
}

// pageLayout maps a page's words to terminal rows so the view and the
// mouse hit test agree on where every word sits.
type pageLayout struct {
	rows     [][]wordSpan
	sections []int // section index per row, -1 for blank separator rows
}

// layoutPage wraps a page's words to the given width, inserting a
// blank row between sections.
func layoutPage(words []doc.WordItem, width int) *pageLayout {
	if width < 8 {
		width = 8
	}
	l := &pageLayout{}
	var row []wordSpan
	col := 0
	section := -1

	endRow := func(sect int) {
		l.rows = append(l.rows, row)
		l.sections = append(l.sections, sect)
		row = nil
		col = 0
	}

	for i, w := range words {
		n := len([]rune(w.Text))
		if w.Section != section {
			if section != -1 {
				endRow(section)
				endRow(-1) // separator
			}
			section = w.Section
		} else if col > 0 && col+1+n > width {
			endRow(section)
		}
		if col > 0 {
			col++
		}
		row = append(row, wordSpan{index: i, col: col, width: n})
		col += n
	}
	if len(row) > 0 {
		endRow(section)
	}
	return l
}

// hitTest resolves a (column, row) cell to a word index on the page.
func (l *pageLayout) hitTest(col, row int) (int, bool) {
	if l == nil || row < 0 || row >= len(l.rows) {
		return 0, false
	}
	for _, span := range l.rows[row] {
		if col >= span.col && col < span.col+span.width {
			return span.index, true
		}
	}
	return 0, false
}
