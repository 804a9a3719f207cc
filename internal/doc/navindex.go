package doc

// NavIndex holds precomputed O(1) navigation lookups for one page's
// word list. Rebuilt whenever the page's words change, immutable
// otherwise.
type NavIndex struct {
	// NextInSection[i] is the nearest later index with the same section
	// as word i, or -1.
	NextInSection []int
	// PrevInSection[i] is the nearest earlier index with the same
	// section as word i, or -1.
	PrevInSection []int
	// FirstOfNextSection[i] is the index of the first word of the
	// section that follows word i's section in first-occurrence order,
	// or -1 if there is none.
	FirstOfNextSection []int
}

// BuildNavIndex constructs the navigation arrays for a word list in O(n).
func BuildNavIndex(words []WordItem) *NavIndex {
	n := len(words)
	idx := &NavIndex{
		NextInSection:      make([]int, n),
		PrevInSection:      make([]int, n),
		FirstOfNextSection: make([]int, n),
	}

	lastSeen := make(map[int]int)
	for i := 0; i < n; i++ {
		if j, ok := lastSeen[words[i].Section]; ok {
			idx.PrevInSection[i] = j
		} else {
			idx.PrevInSection[i] = -1
		}
		lastSeen[words[i].Section] = i
	}

	nextSeen := make(map[int]int)
	for i := n - 1; i >= 0; i-- {
		if j, ok := nextSeen[words[i].Section]; ok {
			idx.NextInSection[i] = j
		} else {
			idx.NextInSection[i] = -1
		}
		nextSeen[words[i].Section] = i
	}

	// Sections in first-occurrence order, then the first word of the
	// section following each.
	var order []int
	firstWord := make(map[int]int)
	for i := 0; i < n; i++ {
		s := words[i].Section
		if _, ok := firstWord[s]; !ok {
			firstWord[s] = i
			order = append(order, s)
		}
	}
	following := make(map[int]int) // section -> first word of next section
	for k, s := range order {
		if k+1 < len(order) {
			following[s] = firstWord[order[k+1]]
		} else {
			following[s] = -1
		}
	}
	for i := 0; i < n; i++ {
		idx.FirstOfNextSection[i] = following[words[i].Section]
	}

	return idx
}
