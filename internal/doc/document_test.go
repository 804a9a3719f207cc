package doc

import "testing"

func wordsWithSentences(sentences []int) []WordItem {
	words := make([]WordItem, len(sentences))
	for i, s := range sentences {
		words[i] = WordItem{Text: "w", Sentence: s}
	}
	return words
}

func TestDocumentPopulatedScans(t *testing.T) {
	d := New(5)
	d.SetPage(1, wordsWithSections([]int{0, 0}))
	d.SetPage(3, wordsWithSections([]int{0}))
	d.SetPage(2, nil) // parsed but empty

	if got := d.NextPopulated(0); got != 1 {
		t.Errorf("NextPopulated(0) = %d, want 1", got)
	}
	if got := d.NextPopulated(1); got != 3 {
		t.Errorf("NextPopulated(1) = %d, want 3", got)
	}
	if got := d.NextPopulated(3); got != -1 {
		t.Errorf("NextPopulated(3) = %d, want -1", got)
	}
	if got := d.PrevPopulated(3); got != 1 {
		t.Errorf("PrevPopulated(3) = %d, want 1", got)
	}
	if got := d.PrevPopulated(1); got != -1 {
		t.Errorf("PrevPopulated(1) = %d, want -1", got)
	}
	if got := d.NextUnparsed(1); got != 4 {
		t.Errorf("NextUnparsed(1) = %d, want 4", got)
	}
	if d.Parsed(2) != true || d.Populated(2) != false {
		t.Errorf("page 2 should be parsed but not populated")
	}
}

func TestDocumentSectionOf(t *testing.T) {
	d := New(2)
	d.SetPage(0, wordsWithSections([]int{0, 0, 1}))

	if s, ok := d.SectionOf(0, 2); !ok || s != 1 {
		t.Errorf("SectionOf(0, 2) = %d, %v; want 1, true", s, ok)
	}
	if _, ok := d.SectionOf(0, 3); ok {
		t.Errorf("SectionOf out of range should fail")
	}
	if _, ok := d.SectionOf(1, 0); ok {
		t.Errorf("SectionOf on unparsed page should fail")
	}
}

func TestDocumentSentenceRun(t *testing.T) {
	d := New(1)
	d.SetPage(0, wordsWithSentences([]int{0, 0, 1, 1, 1, 2}))

	tests := []struct {
		word       int
		start, end int
	}{
		{0, 0, 1},
		{1, 0, 1},
		{3, 2, 4},
		{5, 5, 5},
	}
	for _, tt := range tests {
		start, end, ok := d.SentenceRun(0, tt.word)
		if !ok || start != tt.start || end != tt.end {
			t.Errorf("SentenceRun(0, %d) = (%d, %d, %v), want (%d, %d, true)",
				tt.word, start, end, ok, tt.start, tt.end)
		}
	}
}

func TestDocumentSentenceRunStopsAtSectionBoundary(t *testing.T) {
	// Same sentence number across a section break is a different run.
	words := []WordItem{
		{Text: "a", Section: 0, Sentence: 0},
		{Text: "b", Section: 0, Sentence: 0},
		{Text: "c", Section: 1, Sentence: 0},
	}
	d := New(1)
	d.SetPage(0, words)

	start, end, _ := d.SentenceRun(0, 1)
	if start != 0 || end != 1 {
		t.Errorf("SentenceRun(0, 1) = (%d, %d), want (0, 1)", start, end)
	}
	start, end, _ = d.SentenceRun(0, 2)
	if start != 2 || end != 2 {
		t.Errorf("SentenceRun(0, 2) = (%d, %d), want (2, 2)", start, end)
	}
}

func TestDocumentSectionStart(t *testing.T) {
	d := New(1)
	d.SetPage(0, wordsWithSections([]int{0, 0, 1, 1, 2}))

	if got := d.SectionStart(0, 1); got != 2 {
		t.Errorf("SectionStart(0, 1) = %d, want 2", got)
	}
	if got := d.SectionStart(0, 7); got != -1 {
		t.Errorf("SectionStart(0, 7) = %d, want -1", got)
	}
}

func TestSetPageGrowsPageCount(t *testing.T) {
	d := New(1)
	d.SetPage(4, wordsWithSections([]int{0}))
	if d.PageCount() != 5 {
		t.Errorf("PageCount() = %d, want 5", d.PageCount())
	}
}
