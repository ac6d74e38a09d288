package editor

import "github.com/OpenTraceLab/OpenTraceVenue/pkg/venue"

type entry struct {
	label string
	state *venue.Venue
}

// History is a linear undo stack of venue snapshots. The first entry is the
// state the session opened with and is never evicted by the limit.
type History struct {
	entries []entry
	pos     int
	limit   int
}

// NewHistory starts a history at initial keeping at most limit undo steps.
func NewHistory(initial *venue.Venue, limit int) *History {
	if limit < 1 {
		limit = 1
	}
	return &History{
		entries: []entry{{label: "open", state: initial.Clone()}},
		limit:   limit,
	}
}

// Record stores a snapshot of v as a new step and discards any redo steps.
func (h *History) Record(label string, v *venue.Venue) {
	h.entries = append(h.entries[:h.pos+1], entry{label: label, state: v.Clone()})
	if over := len(h.entries) - 1 - h.limit; over > 0 {
		h.entries = append(h.entries[:1], h.entries[1+over:]...)
	}
	h.pos = len(h.entries) - 1
}

// Undo steps back and returns a copy of the earlier state along with the
// label of the step that was undone.
func (h *History) Undo() (*venue.Venue, string, bool) {
	if !h.CanUndo() {
		return nil, "", false
	}
	label := h.entries[h.pos].label
	h.pos--
	return h.entries[h.pos].state.Clone(), label, true
}

// Redo re-applies the step after the current one.
func (h *History) Redo() (*venue.Venue, string, bool) {
	if !h.CanRedo() {
		return nil, "", false
	}
	h.pos++
	return h.entries[h.pos].state.Clone(), h.entries[h.pos].label, true
}

func (h *History) CanUndo() bool { return h.pos > 0 }
func (h *History) CanRedo() bool { return h.pos < len(h.entries)-1 }

// Len is the number of recorded steps, not counting the initial state.
func (h *History) Len() int {
	return len(h.entries) - 1
}

// Labels lists recorded step labels oldest first.
func (h *History) Labels() []string {
	out := make([]string, 0, len(h.entries)-1)
	for _, e := range h.entries[1:] {
		out = append(out, e.label)
	}
	return out
}
