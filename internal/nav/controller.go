// Package nav implements the cursor state machine that drives the
// highlight tiers as the reader moves by word, phrase, or section, and
// the pointer-gesture selection logic layered on top of it.
package nav

import (
	"github.com/pagemark/pagemark/internal/doc"
	"github.com/pagemark/pagemark/internal/highlight"
)

// Mode selects the granularity of cursor movement.
type Mode int

const (
	ModeWord Mode = iota
	ModePhrase
)

// Cursor is the current reading position.
type Cursor struct {
	Page int
	Word int
}

// Controller owns the cursor and translates navigation commands into
// cursor moves and highlight mutations. Marks go through the scheduler;
// bulk erases hit the store directly.
type Controller struct {
	doc      *doc.Document
	store    *highlight.Store
	sched    *highlight.Scheduler
	cursor   Cursor
	mode     Mode
	annotate bool
}

// NewController creates a controller positioned at the first word of
// the first populated page.
func NewController(d *doc.Document, store *highlight.Store, sched *highlight.Scheduler) *Controller {
	c := &Controller{doc: d, store: store, sched: sched}
	if !d.Populated(0) {
		if p := d.NextPopulated(-1); p != -1 {
			c.cursor.Page = p
		}
	}
	return c
}

// Cursor returns the current position.
func (c *Controller) Cursor() Cursor { return c.cursor }

// Mode returns the current movement granularity.
func (c *Controller) Mode() Mode { return c.mode }

// SetCursor repositions without touching highlight state, e.g. when
// restoring a saved reading position.
func (c *Controller) SetCursor(cur Cursor) { c.cursor = cur }

// SetAnnotateMode switches the tier that navigation marks into.
func (c *Controller) SetAnnotateMode(on bool) { c.annotate = on }

// AnnotateMode reports whether the persistent tier is active.
func (c *Controller) AnnotateMode() bool { return c.annotate }

// ActiveTier returns the tier navigation currently marks into.
func (c *Controller) ActiveTier() highlight.Tier {
	if c.annotate {
		return highlight.TierAnnotated
	}
	return highlight.TierVisited
}

// AdvanceWord moves forward one word: next word in the section, else
// the first word of the next section, else the first word of the next
// populated page. Crossing a section or page boundary purges transient
// highlights before the destination.
func (c *Controller) AdvanceWord() {
	c.mode = ModeWord
	target, ok := c.forwardWordTarget()
	if !ok {
		return
	}
	c.moveForward(target)
	c.mark(target)
}

func (c *Controller) forwardWordTarget() (Cursor, bool) {
	if !c.validCursor() {
		return c.forwardPageTarget(c.cursor.Page)
	}
	idx := c.doc.Index(c.cursor.Page)
	if n := idx.NextInSection[c.cursor.Word]; n != -1 {
		return Cursor{c.cursor.Page, n}, true
	}
	if f := idx.FirstOfNextSection[c.cursor.Word]; f != -1 {
		return Cursor{c.cursor.Page, f}, true
	}
	return c.forwardPageTarget(c.cursor.Page)
}

// RetreatWord unmarks the current word, then moves back one word: the
// previous word in the section, else the first word of the nearest
// earlier section on the page, else the last word of the nearest
// earlier populated page. No earlier position means no change at all.
func (c *Controller) RetreatWord() {
	c.mode = ModeWord
	target, ok := c.backwardWordTarget()
	if !ok {
		return
	}
	c.unmark(c.cursor)
	c.cursor = target
	c.mark(target)
}

func (c *Controller) backwardWordTarget() (Cursor, bool) {
	if !c.validCursor() {
		if p := c.doc.PrevPopulated(c.cursor.Page); p != -1 {
			return Cursor{p, len(c.doc.Words(p)) - 1}, true
		}
		return Cursor{}, false
	}
	idx := c.doc.Index(c.cursor.Page)
	if p := idx.PrevInSection[c.cursor.Word]; p != -1 {
		return Cursor{c.cursor.Page, p}, true
	}
	sect, _ := c.doc.SectionOf(c.cursor.Page, c.cursor.Word)
	words := c.doc.Words(c.cursor.Page)
	for j := c.cursor.Word - 1; j >= 0; j-- {
		if words[j].Section < sect {
			return Cursor{c.cursor.Page, j}, true
		}
	}
	if p := c.doc.PrevPopulated(c.cursor.Page); p != -1 {
		return Cursor{p, len(c.doc.Words(p)) - 1}, true
	}
	return Cursor{}, false
}

// AdvancePhrase works over sentence runs. A partially marked current
// sentence is completed in place; otherwise the cursor moves to the
// next sentence and marks it whole.
func (c *Controller) AdvancePhrase() {
	c.mode = ModePhrase
	if c.validCursor() {
		start, end, _ := c.doc.SentenceRun(c.cursor.Page, c.cursor.Word)
		if c.completePartialRun(start, end) {
			return
		}
		words := c.doc.Words(c.cursor.Page)
		cur := words[c.cursor.Word].Sentence
		for j := end + 1; j < len(words); j++ {
			if words[j].Sentence > cur {
				dest := Cursor{c.cursor.Page, j}
				c.moveForward(dest)
				c.markRun(dest)
				return
			}
		}
	}
	dest, ok := c.forwardPageTarget(c.cursor.Page)
	if !ok {
		return
	}
	c.moveForward(dest)
	c.markRun(dest)
}

// completePartialRun marks the unmarked remainder of [start, end] when
// the run is partially marked in the active tier. Reports whether it
// took over the command.
func (c *Controller) completePartialRun(start, end int) bool {
	tier := c.ActiveTier()
	marked := 0
	for i := start; i <= end; i++ {
		if c.store.Marked(tier, c.cursor.Page, i) {
			marked++
		}
	}
	if marked == 0 || marked == end-start+1 {
		return false
	}
	for i := start; i <= end; i++ {
		if !c.store.Marked(tier, c.cursor.Page, i) {
			c.sched.Enqueue(highlight.Request{Page: c.cursor.Page, Word: i, Tier: tier})
		}
	}
	return true
}

// RetreatPhrase unmarks the current sentence run and moves to the
// start of the previous sentence, marking it whole.
func (c *Controller) RetreatPhrase() {
	c.mode = ModePhrase
	if !c.validCursor() {
		if p := c.doc.PrevPopulated(c.cursor.Page); p != -1 {
			dest := Cursor{p, len(c.doc.Words(p)) - 1}
			c.cursor = dest
			c.markRun(dest)
		}
		return
	}
	start, end, _ := c.doc.SentenceRun(c.cursor.Page, c.cursor.Word)
	words := c.doc.Words(c.cursor.Page)
	cur := words[c.cursor.Word].Sentence

	var dest Cursor
	found := false
	for j := start - 1; j >= 0; j-- {
		if words[j].Sentence < cur {
			pstart, _, _ := c.doc.SentenceRun(c.cursor.Page, j)
			dest = Cursor{c.cursor.Page, pstart}
			found = true
			break
		}
	}
	if !found {
		if p := c.doc.PrevPopulated(c.cursor.Page); p != -1 {
			last := len(c.doc.Words(p)) - 1
			pstart, _, _ := c.doc.SentenceRun(p, last)
			dest = Cursor{p, pstart}
			found = true
		}
	}
	if !found {
		return
	}

	tier := c.ActiveTier()
	for i := start; i <= end; i++ {
		c.sched.Enqueue(highlight.Request{Page: c.cursor.Page, Word: i, Tier: tier, Erase: true})
	}
	c.cursor = dest
	c.markRun(dest)
}

// JumpSectionStart erases the active tier's marks for the cursor's
// section and restarts it at the section's first word.
func (c *Controller) JumpSectionStart() {
	c.mode = ModeWord
	if !c.validCursor() {
		return
	}
	sect, _ := c.doc.SectionOf(c.cursor.Page, c.cursor.Word)
	c.store.EraseSection(c.ActiveTier(), c.cursor.Page, sect)
	first := c.doc.SectionStart(c.cursor.Page, sect)
	c.cursor.Word = first
	c.mark(c.cursor)
}

// JumpNextSection moves to the first word of the next section, or the
// next populated page. Transient state before the destination is
// purged; the persistent tier survives.
func (c *Controller) JumpNextSection() {
	c.mode = ModeWord
	var target Cursor
	ok := false
	if c.validCursor() {
		idx := c.doc.Index(c.cursor.Page)
		if f := idx.FirstOfNextSection[c.cursor.Word]; f != -1 {
			target, ok = Cursor{c.cursor.Page, f}, true
		}
	}
	if !ok {
		target, ok = c.forwardPageTarget(c.cursor.Page)
	}
	if !ok {
		return
	}
	c.moveForward(target)
	c.mark(target)
}

// ClickWord repositions the cursor to a clicked word and marks it in
// the active tier. Word mode is restored, no transient purge happens.
func (c *Controller) ClickWord(page, word int) {
	c.mode = ModeWord
	if _, ok := c.doc.SectionOf(page, word); !ok {
		return
	}
	c.cursor = Cursor{page, word}
	c.mark(c.cursor)
}

// moveForward sets the cursor, purging transient state strictly before
// the destination when the move crosses a section or page boundary.
func (c *Controller) moveForward(target Cursor) {
	targetSect, _ := c.doc.SectionOf(target.Page, target.Word)
	curSect, curOK := c.doc.SectionOf(c.cursor.Page, c.cursor.Word)
	crossed := target.Page != c.cursor.Page || !curOK || targetSect != curSect
	if crossed {
		c.store.ClearVisitedBefore(target.Page, targetSect)
	}
	c.cursor = target
}

// forwardPageTarget finds the first populated page after the given one
// and lands on its word 0. An unparsed page is a provisional landing
// spot when nothing populated remains.
func (c *Controller) forwardPageTarget(page int) (Cursor, bool) {
	if p := c.doc.NextPopulated(page); p != -1 {
		return Cursor{p, 0}, true
	}
	if p := c.doc.NextUnparsed(page); p != -1 {
		return Cursor{p, 0}, true
	}
	return Cursor{}, false
}

func (c *Controller) validCursor() bool {
	_, ok := c.doc.SectionOf(c.cursor.Page, c.cursor.Word)
	return ok
}

func (c *Controller) mark(cur Cursor) {
	c.sched.Enqueue(highlight.Request{Page: cur.Page, Word: cur.Word, Tier: c.ActiveTier()})
}

func (c *Controller) unmark(cur Cursor) {
	c.sched.Enqueue(highlight.Request{Page: cur.Page, Word: cur.Word, Tier: c.ActiveTier(), Erase: true})
}

// markRun marks the whole sentence run containing the cursor.
func (c *Controller) markRun(cur Cursor) {
	start, end, ok := c.doc.SentenceRun(cur.Page, cur.Word)
	if !ok {
		c.mark(cur)
		return
	}
	tier := c.ActiveTier()
	for i := start; i <= end; i++ {
		c.sched.Enqueue(highlight.Request{Page: cur.Page, Word: i, Tier: tier})
	}
}
