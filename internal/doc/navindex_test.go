package doc

import "testing"

func wordsWithSections(sections []int) []WordItem {
	words := make([]WordItem, len(sections))
	for i, s := range sections {
		words[i] = WordItem{Text: "w", Section: s}
	}
	return words
}

func TestBuildNavIndex(t *testing.T) {
	words := wordsWithSections([]int{0, 0, 0, 1, 1, 1, 1, 2, 2, 2})
	idx := BuildNavIndex(words)

	wantNext := []int{1, 2, -1, 4, 5, 6, -1, 8, 9, -1}
	wantPrev := []int{-1, 0, 1, -1, 3, 4, 5, -1, 7, 8}
	wantFirst := []int{3, 3, 3, 7, 7, 7, 7, -1, -1, -1}

	for i := range words {
		if idx.NextInSection[i] != wantNext[i] {
			t.Errorf("NextInSection[%d] = %d, want %d", i, idx.NextInSection[i], wantNext[i])
		}
		if idx.PrevInSection[i] != wantPrev[i] {
			t.Errorf("PrevInSection[%d] = %d, want %d", i, idx.PrevInSection[i], wantPrev[i])
		}
		if idx.FirstOfNextSection[i] != wantFirst[i] {
			t.Errorf("FirstOfNextSection[%d] = %d, want %d", i, idx.FirstOfNextSection[i], wantFirst[i])
		}
	}
}

func TestBuildNavIndexContract(t *testing.T) {
	// Interleaving is impossible in segmented output, but the index
	// itself only promises nearest-same-section neighbors.
	words := wordsWithSections([]int{0, 0, 1, 1, 0, 2, 1})
	idx := BuildNavIndex(words)

	for i := range words {
		if n := idx.NextInSection[i]; n != -1 {
			if n <= i {
				t.Errorf("NextInSection[%d] = %d, not a later index", i, n)
			}
			if words[n].Section != words[i].Section {
				t.Errorf("NextInSection[%d] = %d crosses sections", i, n)
			}
			for j := i + 1; j < n; j++ {
				if words[j].Section == words[i].Section {
					t.Errorf("NextInSection[%d] = %d skipped closer index %d", i, n, j)
				}
			}
		}
		if p := idx.PrevInSection[i]; p != -1 {
			if p >= i {
				t.Errorf("PrevInSection[%d] = %d, not an earlier index", i, p)
			}
			if words[p].Section != words[i].Section {
				t.Errorf("PrevInSection[%d] = %d crosses sections", i, p)
			}
			for j := p + 1; j < i; j++ {
				if words[j].Section == words[i].Section {
					t.Errorf("PrevInSection[%d] = %d skipped closer index %d", i, p, j)
				}
			}
		}
	}
}

func TestBuildNavIndexEmpty(t *testing.T) {
	idx := BuildNavIndex(nil)
	if len(idx.NextInSection) != 0 || len(idx.PrevInSection) != 0 || len(idx.FirstOfNextSection) != 0 {
		t.Errorf("empty input should produce empty arrays")
	}
}

func TestBuildNavIndexSingleSection(t *testing.T) {
	idx := BuildNavIndex(wordsWithSections([]int{0, 0, 0}))
	for i := 0; i < 3; i++ {
		if idx.FirstOfNextSection[i] != -1 {
			t.Errorf("FirstOfNextSection[%d] = %d, want -1", i, idx.FirstOfNextSection[i])
		}
	}
}

func BenchmarkBuildNavIndex(b *testing.B) {
	sections := make([]int, 5000)
	for i := range sections {
		sections[i] = i / 40
	}
	words := wordsWithSections(sections)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BuildNavIndex(words)
	}
}
