package extract

import (
	"strings"

	"github.com/pagemark/pagemark/internal/doc"
)

// Synthetic metrics for flowed text, in points. The paragraph advance
// exceeds 1.5x the glyph height so paragraph boundaries read as section
// breaks downstream.
const (
	pageWidth    = 612.0
	pageHeight   = 792.0
	pageMargin   = 72.0
	charWidth    = 6.0
	glyphHeight  = 10.0
	lineAdvance  = 14.0
	paraAdvance  = 32.0
	maxLineChars = int((pageWidth - 2*pageMargin) / charWidth)
)

// Flow lays paragraphs of plain text onto fixed-metric pages, one run
// per wrapped line.
func Flow(paragraphs []string) []Page {
	var pages []Page
	var runs []doc.RawRun
	y := pageMargin + glyphHeight

	flush := func() {
		pages = append(pages, Page{Runs: runs})
		runs = nil
		y = pageMargin + glyphHeight
	}

	for _, para := range paragraphs {
		for _, line := range wrapLine(para, maxLineChars) {
			if y > pageHeight-pageMargin {
				flush()
			}
			runs = append(runs, doc.RawRun{
				Text:     line,
				X:        pageMargin,
				Baseline: y,
				Height:   glyphHeight,
				Width:    charWidth * float64(len([]rune(line))),
			})
			y += lineAdvance
		}
		y += paraAdvance - lineAdvance
	}
	if len(runs) > 0 {
		flush()
	}
	return pages
}

// wrapLine greedily wraps a paragraph's words to the column limit.
// A single overlong word gets a line of its own.
func wrapLine(para string, limit int) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		if len([]rune(cur))+1+len([]rune(w)) <= limit {
			cur += " " + w
			continue
		}
		lines = append(lines, cur)
		cur = w
	}
	return append(lines, cur)
}
