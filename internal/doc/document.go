package doc

// Document holds the per-page word lists and their cached navigation
// indexes. Pages are numbered from 0; a page may be known (within
// PageCount) but not yet parsed. Word lists and indexes are read-only
// once set and may be shared freely.
type Document struct {
	pageCount int
	pages     map[int][]WordItem
	indexes   map[int]*NavIndex
}

// New creates an empty document with the given page count.
func New(pageCount int) *Document {
	return &Document{
		pageCount: pageCount,
		pages:     make(map[int][]WordItem),
		indexes:   make(map[int]*NavIndex),
	}
}

// PageCount returns the number of pages the document is known to have.
func (d *Document) PageCount() int { return d.pageCount }

// SetPage installs a page's word list and rebuilds its navigation
// index. Replaces any previous list wholesale.
func (d *Document) SetPage(page int, words []WordItem) {
	if page < 0 {
		return
	}
	if page >= d.pageCount {
		d.pageCount = page + 1
	}
	d.pages[page] = words
	d.indexes[page] = BuildNavIndex(words)
}

// Words returns the page's word list, or nil if unparsed.
func (d *Document) Words(page int) []WordItem { return d.pages[page] }

// Index returns the page's navigation index, or nil if unparsed.
func (d *Document) Index(page int) *NavIndex { return d.indexes[page] }

// Parsed reports whether the page has been segmented (possibly to an
// empty word list).
func (d *Document) Parsed(page int) bool {
	_, ok := d.pages[page]
	return ok
}

// Populated reports whether the page has at least one word.
func (d *Document) Populated(page int) bool { return len(d.pages[page]) > 0 }

// NextPopulated returns the first populated page strictly after the
// given page, or -1.
func (d *Document) NextPopulated(page int) int {
	for p := page + 1; p < d.pageCount; p++ {
		if d.Populated(p) {
			return p
		}
	}
	return -1
}

// PrevPopulated returns the nearest populated page strictly before the
// given page, or -1.
func (d *Document) PrevPopulated(page int) int {
	for p := page - 1; p >= 0; p-- {
		if d.Populated(p) {
			return p
		}
	}
	return -1
}

// NextUnparsed returns the first page strictly after the given page
// that is known but not yet parsed, or -1.
func (d *Document) NextUnparsed(page int) int {
	for p := page + 1; p < d.pageCount; p++ {
		if !d.Parsed(p) {
			return p
		}
	}
	return -1
}

// SectionOf resolves a word's section index. ok is false when the page
// is unparsed or the word index is out of range.
func (d *Document) SectionOf(page, word int) (section int, ok bool) {
	words := d.pages[page]
	if word < 0 || word >= len(words) {
		return 0, false
	}
	return words[word].Section, true
}

// SentenceRun returns the inclusive bounds of the contiguous run of
// words sharing the given word's sentence and section. ok is false for
// out-of-range input.
func (d *Document) SentenceRun(page, word int) (start, end int, ok bool) {
	words := d.pages[page]
	if word < 0 || word >= len(words) {
		return 0, 0, false
	}
	sent := words[word].Sentence
	sect := words[word].Section
	start, end = word, word
	for start > 0 && words[start-1].Sentence == sent && words[start-1].Section == sect {
		start--
	}
	for end+1 < len(words) && words[end+1].Sentence == sent && words[end+1].Section == sect {
		end++
	}
	return start, end, true
}

// SectionStart returns the index of the first word of the given
// section on the page, or -1.
func (d *Document) SectionStart(page, section int) int {
	for i, w := range d.pages[page] {
		if w.Section == section {
			return i
		}
	}
	return -1
}
