package doc

import (
	"math"
	"strings"
	"unicode"
)

// sectionGapFactor is the multiple of the previous line's glyph height
// that a baseline jump must exceed to start a new section.
const sectionGapFactor = 1.5

// Segment turns one page's raw text runs into an ordered word list with
// section and sentence indices. Runs that are empty after trimming,
// rotated, or carry degenerate geometry are dropped.
func Segment(runs []RawRun) []WordItem {
	var words []WordItem

	section := 0
	sentence := 0
	lastBaseline := 0.0
	lastHeight := 0.0
	first := true

	for _, run := range runs {
		if !usableRun(run) {
			continue
		}

		if !first && math.Abs(run.Baseline-lastBaseline) > sectionGapFactor*lastHeight {
			section++
		}
		first = false
		lastBaseline = run.Baseline
		lastHeight = run.Height

		runeLen := len([]rune(run.Text))
		if runeLen == 0 {
			continue
		}

		for _, tok := range tokenize(run.Text) {
			frac := func(n int) float64 { return float64(n) / float64(runeLen) * run.Width }
			words = append(words, WordItem{
				Text: tok.text,
				Box: Rect{
					X:        run.X + frac(tok.offset),
					Top:      run.Baseline - run.Height,
					W:        frac(len([]rune(tok.text))),
					H:        run.Height,
					Baseline: run.Baseline,
				},
				Section:  section,
				Sentence: sentence,
			})
			if endsSentence(tok.text) {
				sentence++
			}
		}
	}

	return words
}

func usableRun(run RawRun) bool {
	if strings.TrimSpace(run.Text) == "" {
		return false
	}
	if run.Skew != 0 {
		return false
	}
	if run.Height <= 0 || run.Width <= 0 {
		return false
	}
	for _, v := range []float64{run.X, run.Baseline, run.Height, run.Width} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

type token struct {
	text   string
	offset int // rune offset of the token within the run text
}

// tokenize splits on whitespace, keeping each token's rune offset so
// geometry can be distributed proportionally across the run.
func tokenize(s string) []token {
	var toks []token
	start := -1
	for i, r := range []rune(s) {
		if unicode.IsSpace(r) {
			if start >= 0 {
				toks = append(toks, token{text: string([]rune(s)[start:i]), offset: start})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		rs := []rune(s)
		toks = append(toks, token{text: string(rs[start:]), offset: start})
	}
	return toks
}

func endsSentence(tok string) bool {
	t := strings.TrimSpace(tok)
	if t == "" {
		return false
	}
	switch t[len(t)-1] {
	case '.', '!', '?':
		return true
	}
	return false
}
