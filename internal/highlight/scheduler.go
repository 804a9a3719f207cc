package highlight

import "sync"

// Request is one elementary highlight mutation: mark or erase a word in
// a tier.
type Request struct {
	Page  int
	Word  int
	Tier  Tier
	Erase bool
}

// Scheduler batches highlight mutations so that rapid input (key
// repeat, whole-phrase marking) produces one store commit per rendering
// frame instead of one per request. Duplicate requests within a frame
// collapse to a single mutation.
type Scheduler struct {
	mu        sync.Mutex
	store     *Store
	pending   []Request
	scheduled bool
	notify    func()
}

// NewScheduler creates a scheduler over the store. notify, if non-nil,
// is invoked once whenever a flush becomes due; the host calls Flush on
// its next frame.
func NewScheduler(store *Store, notify func()) *Scheduler {
	return &Scheduler{store: store, notify: notify}
}

// Enqueue appends a request. The first request after a flush triggers
// the notify hook; further requests ride the already-scheduled flush.
func (s *Scheduler) Enqueue(r Request) {
	s.mu.Lock()
	s.pending = append(s.pending, r)
	fire := !s.scheduled
	s.scheduled = true
	s.mu.Unlock()
	if fire && s.notify != nil {
		s.notify()
	}
}

// Pending reports whether any requests await a flush.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending) > 0
}

// Flush applies everything enqueued since the previous flush as three
// ordered commits: visited marks, then annotated marks, then erases.
// Duplicates are dropped, first occurrence wins. The whole body is a
// critical section so a flush is atomic with respect to new enqueues.
func (s *Scheduler) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch := s.pending
	s.pending = nil
	s.scheduled = false
	if len(batch) == 0 {
		return
	}

	visited, annotated, erases := partition(batch)

	for _, r := range visited {
		s.store.MarkVisited(r.Page, r.Word)
	}
	for _, r := range annotated {
		s.store.MarkAnnotated(r.Page, r.Word)
	}
	for _, r := range erases {
		s.store.Unmark(r.Tier, r.Page, r.Word)
	}
}

// partition deduplicates a batch (first occurrence wins) and splits it
// into the three apply batches.
func partition(batch []Request) (visited, annotated, erases []Request) {
	seen := make(map[Request]struct{}, len(batch))
	for _, r := range batch {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		switch {
		case r.Erase:
			erases = append(erases, r)
		case r.Tier == TierVisited:
			visited = append(visited, r)
		default:
			annotated = append(annotated, r)
		}
	}
	return visited, annotated, erases
}
