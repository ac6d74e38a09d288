package editor

import (
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/geometry"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/hittest"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/venue"
)

type dragKind int

const (
	dragVertex dragKind = iota
	dragSeats
	dragBox
)

// drag is the state captured when a drag begins. Updates are always applied
// to the captured state, so a drag never accumulates rounding error and
// cancelling restores it exactly.
type drag struct {
	kind   dragKind
	origin geometry.Vertex
	last   geometry.Vertex

	vertex int
	// before holds a copy of every sector the drag may modify, by ID.
	before map[string]*venue.Sector
	sector string
}

// Dragging reports whether a drag is in progress.
func (s *Session) Dragging() bool {
	return s.drag != nil
}

// DragBox is the world-space rectangle of an in-progress box selection.
func (s *Session) DragBox() (geometry.Bounds, bool) {
	if s.drag == nil || s.drag.kind != dragBox {
		return geometry.Bounds{}, false
	}
	return geometry.BoundsOf([]geometry.Vertex{s.drag.origin, s.drag.last}), true
}

// DragVertex is the vertex being dragged, or -1.
func (s *Session) DragVertex() int {
	if s.drag == nil || s.drag.kind != dragVertex {
		return -1
	}
	return s.drag.vertex
}

// BeginVertexDrag grabs the selected sector's vertex under pt.
func (s *Session) BeginVertexDrag(pt geometry.Vertex, zoom float64) error {
	sec, err := s.Selected()
	if err != nil {
		return err
	}
	i, ok := s.Radii.VertexAt(pt, sec.Target(), zoom)
	if !ok {
		return ErrNoTarget
	}
	s.drag = &drag{
		kind:   dragVertex,
		origin: pt,
		last:   pt,
		vertex: i,
		sector: sec.ID,
		before: map[string]*venue.Sector{sec.ID: sec.Clone()},
	}
	return nil
}

// BeginSeatDrag grabs the seat under pt. An unselected seat replaces the
// selection; a selected one drags the whole selection along.
func (s *Session) BeginSeatDrag(pt geometry.Vertex) error {
	sec, seat := s.SeatAt(pt)
	if seat == nil {
		return ErrNoTarget
	}
	if !s.Selection.Seats[seat.ID] {
		s.Selection.Seats = map[string]bool{seat.ID: true}
	}
	s.Selection.Sector = sec.ID

	before := map[string]*venue.Sector{}
	for _, other := range s.Venue.Sectors {
		for _, st := range other.Seats {
			if s.Selection.Seats[st.ID] {
				before[other.ID] = other.Clone()
				break
			}
		}
	}
	s.drag = &drag{kind: dragSeats, origin: pt, last: pt, vertex: -1, before: before}
	return nil
}

// BeginBoxSelect starts a rubber-band selection at pt.
func (s *Session) BeginBoxSelect(pt geometry.Vertex) {
	s.drag = &drag{kind: dragBox, origin: pt, last: pt, vertex: -1}
}

// UpdateDrag moves the drag to pt. The venue changes but no history entry
// is recorded.
func (s *Session) UpdateDrag(pt geometry.Vertex) error {
	d := s.drag
	if d == nil {
		return ErrNoDrag
	}
	d.last = pt

	switch d.kind {
	case dragVertex:
		sec := s.Venue.Sector(d.sector)
		orig := d.before[d.sector]
		if sec == nil || orig == nil {
			return ErrNoSelection
		}
		poly, err := hittest.MoveVertex(orig.Polygon, d.vertex, pt, orig.Rotation)
		if err != nil {
			return err
		}
		sec.Polygon = poly

	case dragSeats:
		for id, orig := range d.before {
			sec := s.Venue.Sector(id)
			if sec == nil {
				continue
			}
			t := orig.Target()
			delta := t.ToLocal(pt).Sub(t.ToLocal(d.origin))
			sec.Seats = orig.Clone().Seats
			sec.MoveSeats(s.Selection.Seats, delta)
		}
	}
	return nil
}

// EndDrag finishes the drag. A vertex drag re-projects the seats onto the
// new outline. Mutating drags record exactly one history entry.
func (s *Session) EndDrag() error {
	d := s.drag
	if d == nil {
		return ErrNoDrag
	}
	s.drag = nil

	switch d.kind {
	case dragVertex:
		sec := s.Venue.Sector(d.sector)
		if sec == nil {
			return ErrNoSelection
		}
		// The grabbed vertex snaps to the pointer on the first update, so
		// a drag that returns to its origin can still have moved it.
		orig := d.before[d.sector].Polygon
		if sec.Polygon.Equal(orig, 1e-9) {
			return nil
		}
		sec.ReshapeFrom(orig)
		s.pruneSelection()
		s.Commit("move vertex")

	case dragSeats:
		if d.last == d.origin {
			return nil
		}
		s.Commit("move seats")

	case dragBox:
		s.selectBox(geometry.BoundsOf([]geometry.Vertex{d.origin, d.last}))
	}
	return nil
}

// CancelDrag abandons the drag and restores what it changed.
func (s *Session) CancelDrag() error {
	d := s.drag
	if d == nil {
		return ErrNoDrag
	}
	s.drag = nil
	for id, orig := range d.before {
		for i, sec := range s.Venue.Sectors {
			if sec.ID == id {
				s.Venue.Sectors[i] = orig
			}
		}
	}
	return nil
}

// selectBox selects every seat whose displayed centre lies in b.
func (s *Session) selectBox(b geometry.Bounds) {
	s.Selection.Seats = map[string]bool{}
	for _, sec := range s.Venue.Sectors {
		t := sec.Target()
		for _, seat := range sec.Seats {
			if b.Contains(t.ToWorld(seat.Center(sec.SeatSize()))) {
				s.Selection.Seats[seat.ID] = true
				s.Selection.Sector = sec.ID
			}
		}
	}
	s.logger.Debug("Box selected", "seats", len(s.Selection.Seats))
}
