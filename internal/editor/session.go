package editor

import (
	"image"

	"github.com/mzen17/PDF-Page-Editor/pkg/models"
)

// ClickModifier distinguishes the three selection gestures.
type ClickModifier int

const (
	// ClickPlain selects exactly the clicked page.
	ClickPlain ClickModifier = iota
	// ClickToggle (Ctrl, or Cmd on macOS) flips the clicked page in or out
	// of the selection.
	ClickToggle
	// ClickRange (Shift) selects the span between the anchor and the
	// clicked page.
	ClickRange
)

// dragState is the transient state of one drag gesture. A gesture is armed
// by a press and becomes active on the first pointer movement; a press that
// never moves stays a plain click.
type dragState struct {
	drop   int
	armed  bool
	active bool
}

// Session owns the page store, the selection, and the in-flight drag state,
// and exposes the event-level operations the GUI shell dispatches into.
// Sessions are not safe for concurrent use; every method must be called from
// the UI event goroutine.
type Session struct {
	store     *Store
	selection *Selection
	drag      dragState
}

func NewSession() *Session {
	return &Session{
		store:     NewStore(),
		selection: NewSelection(),
	}
}

func (s *Session) Len() int {
	return s.store.Len()
}

func (s *Session) Record(i int) *PageRecord {
	return s.store.Record(i)
}

func (s *Session) Records() []*PageRecord {
	return s.store.Records()
}

// AddDocument appends one record per rendered page to the end of the strip,
// all included. Existing positions are untouched, so the selection stays
// valid across imports.
func (s *Session) AddDocument(doc *models.DocumentInfo, thumbs []image.Image) {
	records := make([]*PageRecord, len(thumbs))
	for i, thumb := range thumbs {
		records[i] = &PageRecord{
			Doc:       doc,
			PageIndex: i,
			Thumb:     thumb,
			Included:  true,
		}
	}
	s.store.Append(records...)
}

// HandleClick applies a selection gesture at position i. Out-of-range
// positions are ignored.
func (s *Session) HandleClick(i int, mod ClickModifier) {
	if i < 0 || i >= s.store.Len() {
		return
	}

	switch mod {
	case ClickToggle:
		s.selection.Toggle(i)
	case ClickRange:
		s.selection.Range(i)
	default:
		s.selection.Click(i)
	}
}

func (s *Session) Selected(i int) bool {
	return s.selection.Contains(i)
}

func (s *Session) SelectionCount() int {
	return s.selection.Len()
}

func (s *Session) SelectedIndices() []int {
	return s.selection.Indices()
}

func (s *Session) ClearSelection() {
	s.selection.Clear()
}

// BeginDrag arms a drag gesture starting on the record at position i. The
// gesture only becomes active once DragTo reports pointer movement.
func (s *Session) BeginDrag(i int) {
	if i < 0 || i >= s.store.Len() {
		return
	}
	s.drag = dragState{drop: -1, armed: true}
}

// DragTo records slot as the current drop candidate, clamped to [0, Len].
// Slots address the gaps between records, so Len means "after the last
// page". Returns the clamped slot, or -1 when no gesture is armed.
func (s *Session) DragTo(slot int) int {
	if !s.drag.armed {
		return -1
	}

	if slot < 0 {
		slot = 0
	}
	if slot > s.store.Len() {
		slot = s.store.Len()
	}

	s.drag.active = true
	s.drag.drop = slot
	return slot
}

// Dragging reports whether an armed gesture has seen pointer movement.
func (s *Session) Dragging() bool {
	return s.drag.active
}

// DropSlot returns the current drop candidate; ok is false when no active
// gesture has one.
func (s *Session) DropSlot() (int, bool) {
	if !s.drag.active || s.drag.drop < 0 {
		return 0, false
	}
	return s.drag.drop, true
}

// CancelDrag abandons the in-flight gesture without touching the strip.
func (s *Session) CancelDrag() {
	s.drag = dragState{drop: -1}
}

// CompleteDrag finishes the gesture: the selected records move as one block
// to the recorded drop slot and the selection is remapped onto the block's
// new positions. A press that never moved, an empty selection, and a drop
// slot that sits inside the selection all leave the strip untouched.
// Returns whether the display order changed.
func (s *Session) CompleteDrag() bool {
	drop, ok := s.drag.drop, s.drag.active && s.drag.drop >= 0
	s.drag = dragState{drop: -1}
	if !ok {
		return false
	}

	if s.selection.Len() == 0 {
		return false
	}
	if s.selection.Contains(drop) {
		return false
	}

	before := s.store.Records()
	start := s.store.Relocate(s.selection.Indices(), drop)
	if start < 0 {
		return false
	}
	s.selection.SetRun(start, s.selection.Len())

	return orderChanged(before, s.store.Records())
}

func orderChanged(before, after []*PageRecord) bool {
	if len(before) != len(after) {
		return true
	}
	for i := range before {
		if before[i] != after[i] {
			return true
		}
	}
	return false
}

// SetIncluded marks the record at position i for export (or not).
func (s *Session) SetIncluded(i int, included bool) {
	s.store.SetIncluded(i, included)
}

func (s *Session) IncludedCount() int {
	return s.store.IncludedCount()
}

// ExportRefs returns the refs of all included records in display order: the
// exact page sequence an export started now writes.
func (s *Session) ExportRefs() []models.PageRef {
	return s.store.IncludedRefs()
}
