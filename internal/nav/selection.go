package nav

import (
	"github.com/pagemark/pagemark/internal/doc"
	"github.com/pagemark/pagemark/internal/highlight"
)

// Selection implements anchor (shift-click) ranges and live drag
// ranges over the document's words. Committed ranges go through the
// scheduler as annotated marks or erases.
type Selection struct {
	doc   *doc.Document
	store *highlight.Store
	sched *highlight.Scheduler
	ctrl  *Controller

	anchor    Cursor
	hasAnchor bool

	dragging  bool
	dragFrom  Cursor
	dragTo    Cursor
	dragErase bool
}

// NewSelection creates a selection manager sharing the controller's
// document and scheduler.
func NewSelection(d *doc.Document, store *highlight.Store, sched *highlight.Scheduler, ctrl *Controller) *Selection {
	return &Selection{doc: d, store: store, sched: sched, ctrl: ctrl}
}

// ClickWord handles a pointer click. A shift-click records an anchor;
// a second shift-click annotates the inclusive range between anchor
// and target and clears the anchor. A plain click just repositions the
// cursor.
func (s *Selection) ClickWord(page, word int, shift bool) {
	if !shift {
		s.hasAnchor = false
		s.ctrl.ClickWord(page, word)
		return
	}
	target := Cursor{page, word}
	if !s.hasAnchor {
		s.anchor = target
		s.hasAnchor = true
		return
	}
	s.applyRange(s.anchor, target, false)
	s.hasAnchor = false
}

// DragStart begins a live drag at the given word. Whether the commit
// annotates or erases is decided here, by the start word's current
// annotated state.
func (s *Selection) DragStart(page, word int) {
	s.dragging = true
	s.dragFrom = Cursor{page, word}
	s.dragTo = s.dragFrom
	s.dragErase = s.store.IsAnnotated(page, word)
}

// DragEnter extends the live preview range to the entered word.
func (s *Selection) DragEnter(page, word int) {
	if !s.dragging {
		return
	}
	s.dragTo = Cursor{page, word}
}

// DragCommit applies the dragged range: an erase when the drag started
// on annotated text, otherwise an annotation.
func (s *Selection) DragCommit() {
	if !s.dragging {
		return
	}
	s.dragging = false
	s.applyRange(s.dragFrom, s.dragTo, s.dragErase)
}

// Dragging reports whether a drag is live.
func (s *Selection) Dragging() bool { return s.dragging }

// HasAnchor reports whether a shift-click anchor is pending.
func (s *Selection) HasAnchor() bool { return s.hasAnchor }

// Anchor returns the pending anchor position.
func (s *Selection) Anchor() Cursor { return s.anchor }

// Preview returns the live drag range as word indices per page, for
// the renderer's preview outline. Nil when no drag is active.
func (s *Selection) Preview() map[int][]int {
	if !s.dragging {
		return nil
	}
	out := make(map[int][]int)
	s.walkRange(s.dragFrom, s.dragTo, func(page, word int) {
		out[page] = append(out[page], word)
	})
	return out
}

func (s *Selection) applyRange(a, b Cursor, erase bool) {
	s.walkRange(a, b, func(page, word int) {
		s.sched.Enqueue(highlight.Request{
			Page:  page,
			Word:  word,
			Tier:  highlight.TierAnnotated,
			Erase: erase,
		})
	})
}

// walkRange visits every word in the inclusive range between two
// positions: partial start and end pages by word index, every word of
// populated pages in between.
func (s *Selection) walkRange(a, b Cursor, fn func(page, word int)) {
	lo, hi := orderCursors(a, b)
	for page := lo.Page; page <= hi.Page; page++ {
		n := len(s.doc.Words(page))
		if n == 0 {
			continue
		}
		start, end := 0, n-1
		if page == lo.Page {
			start = lo.Word
		}
		if page == hi.Page {
			end = hi.Word
		}
		if start < 0 {
			start = 0
		}
		if end > n-1 {
			end = n - 1
		}
		for w := start; w <= end; w++ {
			fn(page, w)
		}
	}
}

func orderCursors(a, b Cursor) (lo, hi Cursor) {
	if a.Page < b.Page || (a.Page == b.Page && a.Word <= b.Word) {
		return a, b
	}
	return b, a
}
