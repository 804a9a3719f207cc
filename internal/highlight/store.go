// Package highlight holds the two tiers of highlight state for a
// document: the transient "visited" tier that tracks in-progress
// reading and the persistent "annotated" tier for user marks, plus the
// frame-batched scheduler that applies mutations to them.
package highlight

import (
	"sort"

	"github.com/pagemark/pagemark/internal/doc"
)

// Tier identifies one of the two highlight layers.
type Tier int

const (
	TierVisited Tier = iota
	TierAnnotated
)

// noSection marks a page's visited state as having no active section.
const noSection = -1

type visitedState struct {
	section int // noSection when inactive
	words   map[int]struct{}
}

// Store owns all highlight state, keyed by (page, word). Words resolve
// to sections through the shared read-only document.
type Store struct {
	doc       *doc.Document
	visited   map[int]*visitedState
	annotated map[int]map[int]map[int]struct{} // page -> section -> words
}

// NewStore creates an empty store over the given document.
func NewStore(d *doc.Document) *Store {
	return &Store{
		doc:       d,
		visited:   make(map[int]*visitedState),
		annotated: make(map[int]map[int]map[int]struct{}),
	}
}

// MarkVisited adds a word to the page's transient highlight. Entering a
// new section evicts the previous section's words; when no section was
// active yet, words that already belong to the new section survive.
func (s *Store) MarkVisited(page, word int) {
	sect, ok := s.doc.SectionOf(page, word)
	if !ok {
		return
	}
	vs := s.visited[page]
	if vs == nil {
		vs = &visitedState{section: noSection, words: make(map[int]struct{})}
		s.visited[page] = vs
	}
	if vs.section != sect {
		if vs.section == noSection {
			for w := range vs.words {
				if ws, ok := s.doc.SectionOf(page, w); !ok || ws != sect {
					delete(vs.words, w)
				}
			}
		} else {
			vs.words = make(map[int]struct{})
		}
		vs.section = sect
	}
	vs.words[word] = struct{}{}
}

// MarkAnnotated adds a word to the page's persistent highlight. No-op
// when the word's section cannot be resolved.
func (s *Store) MarkAnnotated(page, word int) {
	sect, ok := s.doc.SectionOf(page, word)
	if !ok {
		return
	}
	sections := s.annotated[page]
	if sections == nil {
		sections = make(map[int]map[int]struct{})
		s.annotated[page] = sections
	}
	words := sections[sect]
	if words == nil {
		words = make(map[int]struct{})
		sections[sect] = words
	}
	words[word] = struct{}{}
}

// SeedVisited restores transient marks without activating a section,
// e.g. when reloading a session. The next MarkVisited adopts its own
// section and keeps only the seeded words that already belong to it.
func (s *Store) SeedVisited(page int, words []int) {
	vs := s.visited[page]
	if vs == nil {
		vs = &visitedState{section: noSection, words: make(map[int]struct{})}
		s.visited[page] = vs
	}
	for _, w := range words {
		vs.words[w] = struct{}{}
	}
}

// UnmarkVisited removes a word from the transient tier. Emptying the
// set deactivates the page's section.
func (s *Store) UnmarkVisited(page, word int) {
	vs := s.visited[page]
	if vs == nil {
		return
	}
	delete(vs.words, word)
	if len(vs.words) == 0 {
		vs.section = noSection
	}
}

// EraseAnnotated removes a word from the persistent tier, dropping
// emptied section and page entries.
func (s *Store) EraseAnnotated(page, word int) {
	sections := s.annotated[page]
	if sections == nil {
		return
	}
	sect, ok := s.doc.SectionOf(page, word)
	if !ok {
		return
	}
	words := sections[sect]
	if words == nil {
		return
	}
	delete(words, word)
	if len(words) == 0 {
		delete(sections, sect)
	}
	if len(sections) == 0 {
		delete(s.annotated, page)
	}
}

// Unmark removes a word from the given tier.
func (s *Store) Unmark(tier Tier, page, word int) {
	if tier == TierAnnotated {
		s.EraseAnnotated(page, word)
	} else {
		s.UnmarkVisited(page, word)
	}
}

// Mark adds a word to the given tier.
func (s *Store) Mark(tier Tier, page, word int) {
	if tier == TierAnnotated {
		s.MarkAnnotated(page, word)
	} else {
		s.MarkVisited(page, word)
	}
}

// IsVisited reports whether the word is in the transient tier.
func (s *Store) IsVisited(page, word int) bool {
	vs := s.visited[page]
	if vs == nil {
		return false
	}
	_, ok := vs.words[word]
	return ok
}

// IsAnnotated reports whether the word is in the persistent tier.
func (s *Store) IsAnnotated(page, word int) bool {
	sections := s.annotated[page]
	if sections == nil {
		return false
	}
	sect, ok := s.doc.SectionOf(page, word)
	if !ok {
		return false
	}
	_, ok = sections[sect][word]
	return ok
}

// Marked reports membership in the given tier.
func (s *Store) Marked(tier Tier, page, word int) bool {
	if tier == TierAnnotated {
		return s.IsAnnotated(page, word)
	}
	return s.IsVisited(page, word)
}

// VisitedWords returns the page's transient word indices in ascending
// order.
func (s *Store) VisitedWords(page int) []int {
	vs := s.visited[page]
	if vs == nil {
		return nil
	}
	return sortedKeys(vs.words)
}

// VisitedSection returns the page's active transient section and
// whether one is active.
func (s *Store) VisitedSection(page int) (int, bool) {
	vs := s.visited[page]
	if vs == nil || vs.section == noSection {
		return 0, false
	}
	return vs.section, true
}

// AnnotatedWords returns the page's persistent word indices across all
// sections, in ascending order.
func (s *Store) AnnotatedWords(page int) []int {
	sections := s.annotated[page]
	if sections == nil {
		return nil
	}
	var out []int
	for _, words := range sections {
		for w := range words {
			out = append(out, w)
		}
	}
	sort.Ints(out)
	return out
}

// ClearVisitedBefore purges transient state for every page before the
// given page, and for the page itself when its active section precedes
// the given section. The persistent tier is never touched.
func (s *Store) ClearVisitedBefore(page, section int) {
	for p := range s.visited {
		if p < page {
			delete(s.visited, p)
		}
	}
	if vs := s.visited[page]; vs != nil && vs.section != noSection && vs.section < section {
		delete(s.visited, page)
	}
}

// EraseSection removes every mark of the given tier belonging to the
// section on the page.
func (s *Store) EraseSection(tier Tier, page, section int) {
	if tier == TierAnnotated {
		sections := s.annotated[page]
		if sections == nil {
			return
		}
		delete(sections, section)
		if len(sections) == 0 {
			delete(s.annotated, page)
		}
		return
	}
	if vs := s.visited[page]; vs != nil && vs.section == section {
		delete(s.visited, page)
	}
}

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
