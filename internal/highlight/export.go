package highlight

// Flatten returns the persistent tier as a page-to-sorted-word-indices
// map, the shape an annotation writer consumes. Pages without
// annotations are absent.
func (s *Store) Flatten() map[int][]int {
	out := make(map[int][]int, len(s.annotated))
	for page := range s.annotated {
		if words := s.AnnotatedWords(page); len(words) > 0 {
			out[page] = words
		}
	}
	return out
}
