// Package editor holds the state of one editing session: the venue being
// edited, what is selected, the active tool, undo history, in-progress drags
// and debounced slider edits. The window owns a Session and is its only
// writer.
package editor

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/OpenTraceLab/OpenTraceVenue/pkg/geometry"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/hittest"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/layout"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/venue"
)

var (
	ErrNoSelection = errors.New("editor: no sector selected")
	ErrNoDrag      = errors.New("editor: no drag in progress")
	ErrNoTarget    = errors.New("editor: nothing under the pointer")
)

// Tool is the pointer mode.
type Tool int

const (
	ToolSelect Tool = iota
	ToolVertex
	ToolSeat
	ToolBox
)

func (t Tool) String() string {
	switch t {
	case ToolVertex:
		return "vertex"
	case ToolSeat:
		return "seat"
	case ToolBox:
		return "box"
	}
	return "select"
}

// Selection is the selected sector and seats. Seat IDs are unique across
// the venue, so a selection may span sectors.
type Selection struct {
	Sector string
	Seats  map[string]bool
}

// Options configures a session.
type Options struct {
	HistoryLimit int
	Debounce     time.Duration
	Radii        hittest.Radii
}

// DefaultOptions returns the stock session settings.
func DefaultOptions() Options {
	return Options{HistoryLimit: 100, Debounce: 250 * time.Millisecond, Radii: hittest.DefaultRadii()}
}

type setting struct {
	sector string
	value  float64
}

// slider debounces one sector property. Only one sector's value is held at
// a time; editing another sector settles the held one first.
type slider struct {
	*Debouncer[setting]
	label      string
	regenerate bool
}

// Session is the editor state container.
type Session struct {
	Venue     *venue.Venue
	Selection Selection
	Tool      Tool
	History   *History
	Radii     hittest.Radii

	drag   *drag
	notice string

	rotation  *slider
	curvature *slider
	spacing   *slider

	logger *slog.Logger
}

// NewSession opens v for editing.
func NewSession(v *venue.Venue, opts Options) *Session {
	if opts.Radii.Vertex <= 0 || opts.Radii.Edge <= 0 {
		opts.Radii = hittest.DefaultRadii()
	}
	return &Session{
		Venue:     v,
		Selection: Selection{Seats: map[string]bool{}},
		History:   NewHistory(v, opts.HistoryLimit),
		Radii:     opts.Radii,
		rotation:  &slider{Debouncer: NewDebouncer[setting](opts.Debounce), label: "rotate"},
		curvature: &slider{Debouncer: NewDebouncer[setting](opts.Debounce), label: "curvature", regenerate: true},
		spacing:   &slider{Debouncer: NewDebouncer[setting](opts.Debounce), label: "spacing", regenerate: true},
		logger:    slog.With("component", "editor"),
	}
}

// Notice is the last message for the user, such as a refused edit or a
// layout shortfall.
func (s *Session) Notice() string {
	return s.notice
}

func (s *Session) setNotice(format string, args ...any) {
	s.notice = fmt.Sprintf(format, args...)
	s.logger.Info("Notice", "message", s.notice)
}

// fail records err as the notice and returns it.
func (s *Session) fail(op string, err error) error {
	s.setNotice("%s: %v", op, err)
	return err
}

// Commit records the current venue as a history step.
func (s *Session) Commit(label string) {
	s.History.Record(label, s.Venue)
	s.logger.Debug("Committed", "label", label, "steps", s.History.Len())
}

// Undo restores the previous history step. Slider values still waiting
// to settle are dropped along with their preview.
func (s *Session) Undo() bool {
	v, label, ok := s.History.Undo()
	if !ok {
		return false
	}
	s.cancelSliders()
	s.restore(v)
	s.setNotice("Undid %s", label)
	return true
}

// Redo re-applies the next history step.
func (s *Session) Redo() bool {
	v, label, ok := s.History.Redo()
	if !ok {
		return false
	}
	s.cancelSliders()
	s.restore(v)
	s.setNotice("Redid %s", label)
	return true
}

func (s *Session) restore(v *venue.Venue) {
	s.drag = nil
	s.Venue = v
	if s.Venue.Sector(s.Selection.Sector) == nil {
		s.Selection.Sector = ""
	}
	live := map[string]bool{}
	for _, sec := range s.Venue.Sectors {
		for _, seat := range sec.Seats {
			if s.Selection.Seats[seat.ID] {
				live[seat.ID] = true
			}
		}
	}
	s.Selection.Seats = live
}

// Selected returns the selected sector.
func (s *Session) Selected() (*venue.Sector, error) {
	sec := s.Venue.Sector(s.Selection.Sector)
	if sec == nil {
		return nil, ErrNoSelection
	}
	return sec, nil
}

// SectorAt returns the topmost sector whose displayed outline contains pt.
func (s *Session) SectorAt(pt geometry.Vertex) *venue.Sector {
	for i := len(s.Venue.Sectors) - 1; i >= 0; i-- {
		if sec := s.Venue.Sectors[i]; hittest.ContainedIn(pt, sec.Target()) {
			return sec
		}
	}
	return nil
}

// SeatAt returns the seat drawn under pt and its sector.
func (s *Session) SeatAt(pt geometry.Vertex) (*venue.Sector, *layout.Seat) {
	for i := len(s.Venue.Sectors) - 1; i >= 0; i-- {
		sec := s.Venue.Sectors[i]
		local := sec.Target().ToLocal(pt)
		for j := len(sec.Seats) - 1; j >= 0; j-- {
			seat := &sec.Seats[j]
			c := seat.Center(sec.SeatSize())
			q := geometry.RotateAbout(local, c, -seat.Rotation)
			w, h := seat.Footprint(sec.SeatSize())
			if geometry.Rect(seat.X, seat.Y, w, h).Contains(q) {
				return sec, seat
			}
		}
	}
	return nil, nil
}

// Select makes the sector under pt the selection and clears seat
// selection. It returns false when nothing is there.
func (s *Session) Select(pt geometry.Vertex) bool {
	sec := s.SectorAt(pt)
	s.Selection.Seats = map[string]bool{}
	if sec == nil {
		s.Selection.Sector = ""
		return false
	}
	s.Selection.Sector = sec.ID
	return true
}

// ToggleSeat adds or removes the seat under pt. With extend unset the
// selection is replaced.
func (s *Session) ToggleSeat(pt geometry.Vertex, extend bool) bool {
	sec, seat := s.SeatAt(pt)
	if seat == nil {
		if !extend {
			s.Selection.Seats = map[string]bool{}
		}
		return false
	}
	if !extend {
		s.Selection.Seats = map[string]bool{}
	}
	s.Selection.Sector = sec.ID
	if s.Selection.Seats[seat.ID] {
		delete(s.Selection.Seats, seat.ID)
	} else {
		s.Selection.Seats[seat.ID] = true
	}
	return true
}

// InsertVertexAt splits the selected sector's edge nearest pt.
func (s *Session) InsertVertexAt(pt geometry.Vertex, zoom float64) error {
	sec, err := s.Selected()
	if err != nil {
		return s.fail("insert vertex", err)
	}
	e, ok := s.Radii.EdgeAt(pt, sec.Target(), zoom)
	if !ok {
		return s.fail("insert vertex", ErrNoTarget)
	}
	if err := sec.InsertVertex(e.Index, e.Point); err != nil {
		return s.fail("insert vertex", err)
	}
	s.Commit("insert vertex")
	return nil
}

// RemoveVertexAt deletes the selected sector's vertex under pt.
func (s *Session) RemoveVertexAt(pt geometry.Vertex, zoom float64) error {
	sec, err := s.Selected()
	if err != nil {
		return s.fail("remove vertex", err)
	}
	i, ok := s.Radii.VertexAt(pt, sec.Target(), zoom)
	if !ok {
		return s.fail("remove vertex", ErrNoTarget)
	}
	if err := sec.RemoveVertex(i); err != nil {
		return s.fail("remove vertex", err)
	}
	s.Commit("remove vertex")
	return nil
}

// Regenerate lays out the selected sector's seats again.
func (s *Session) Regenerate() (layout.Report, error) {
	sec, err := s.Selected()
	if err != nil {
		return layout.Report{}, s.fail("regenerate", err)
	}
	r := sec.Regenerate()
	s.pruneSelection()
	s.Commit("regenerate")
	if r.Missing() > 0 {
		s.setNotice("%s: %s", sec.Name, r)
	}
	s.logger.Info("Regenerated sector", "sector", sec.Name, "strategy", r.Strategy.String(), "seats", r.Generated)
	return r, nil
}

// Resize fits the selected sector's outline to b. Seats keep their
// positions until the sector is regenerated.
func (s *Session) Resize(b geometry.Bounds) error {
	sec, err := s.Selected()
	if err != nil {
		return s.fail("resize", err)
	}
	if err := sec.Resize(b); err != nil {
		return s.fail("resize", err)
	}
	s.Commit("resize")
	return nil
}

// RemoveSelectedSeats deletes every selected seat.
func (s *Session) RemoveSelectedSeats() int {
	n := 0
	for _, sec := range s.Venue.Sectors {
		n += sec.RemoveSeats(s.Selection.Seats)
	}
	s.Selection.Seats = map[string]bool{}
	if n > 0 {
		s.Commit("remove seats")
	}
	return n
}

// SetSeatType changes the type of every selected seat and returns how many
// changed.
func (s *Session) SetSeatType(t layout.SeatType) int {
	n := s.updateSelected(func(seat *layout.Seat) bool {
		if seat.Type == t {
			return false
		}
		seat.Type = t
		return true
	})
	if n > 0 {
		s.Commit("seat type")
	}
	return n
}

// SetSeatStatus changes the status of every selected seat.
func (s *Session) SetSeatStatus(st layout.SeatStatus) int {
	n := s.updateSelected(func(seat *layout.Seat) bool {
		if seat.Status == st {
			return false
		}
		seat.Status = st
		return true
	})
	if n > 0 {
		s.Commit("seat status")
	}
	return n
}

func (s *Session) updateSelected(fn func(*layout.Seat) bool) int {
	n := 0
	for _, sec := range s.Venue.Sectors {
		for i := range sec.Seats {
			if s.Selection.Seats[sec.Seats[i].ID] && fn(&sec.Seats[i]) {
				n++
			}
		}
	}
	return n
}

func (s *Session) pruneSelection() {
	s.restore(s.Venue)
}

// SetRotation previews a sector rotation immediately and commits it once
// the value settles.
func (s *Session) SetRotation(now time.Time, deg float64) error {
	sec, err := s.Selected()
	if err != nil {
		return s.fail("rotate", err)
	}
	s.settleOther(s.rotation, sec.ID)
	sec.SetRotation(deg)
	s.rotation.Push(now, setting{sector: sec.ID, value: sec.Rotation})
	return nil
}

// Rotate is SetRotation relative to the current angle.
func (s *Session) Rotate(now time.Time, delta float64) error {
	sec, err := s.Selected()
	if err != nil {
		return s.fail("rotate", err)
	}
	return s.SetRotation(now, sec.Rotation+delta)
}

// SetCurvature previews the bent outline immediately. Once the value
// settles the seats are laid out again and the change is committed.
func (s *Session) SetCurvature(now time.Time, c int) error {
	sec, err := s.Selected()
	if err != nil {
		return s.fail("curvature", err)
	}
	s.settleOther(s.curvature, sec.ID)
	sec.SetCurvature(c)
	s.curvature.Push(now, setting{sector: sec.ID, value: float64(sec.Curvature)})
	return nil
}

// SetSpacing changes seat and row spacing. Seats are laid out again once
// the value settles.
func (s *Session) SetSpacing(now time.Time, spacing float64) error {
	sec, err := s.Selected()
	if err != nil {
		return s.fail("spacing", err)
	}
	if spacing < 0 {
		spacing = 0
	}
	s.settleOther(s.spacing, sec.ID)
	sec.Params.SeatSpacing = spacing
	sec.Params.RowSpacing = spacing
	s.spacing.Push(now, setting{sector: sec.ID, value: spacing})
	return nil
}

// Tick applies slider values whose quiet window has passed and reports
// whether anything changed.
func (s *Session) Tick(now time.Time) bool {
	changed := false
	for _, sl := range s.sliders() {
		if v, ok := sl.Due(now); ok && s.settle(sl, v) {
			changed = true
		}
	}
	return changed
}

// NextDeadline is the earliest time Tick has work to do.
func (s *Session) NextDeadline() (time.Time, bool) {
	var at time.Time
	found := false
	for _, sl := range s.sliders() {
		if sl.Pending() && (!found || sl.Deadline().Before(at)) {
			at, found = sl.Deadline(), true
		}
	}
	return at, found
}

func (s *Session) sliders() []*slider {
	return []*slider{s.rotation, s.curvature, s.spacing}
}

// settle commits a slider value, laying the sector out again first when
// the slider changes the seat grid.
func (s *Session) settle(sl *slider, v setting) bool {
	sec := s.Venue.Sector(v.sector)
	if sec == nil {
		return false
	}
	if !sl.regenerate {
		s.Commit(sl.label)
		return true
	}
	r := sec.Regenerate()
	s.pruneSelection()
	s.Commit(sl.label)
	if r.Missing() > 0 {
		s.setNotice("%s: %s", sec.Name, r)
	}
	return true
}

// settleOther commits a value held for a sector other than id, so moving
// the slider on a second sector does not discard the first one's edit.
func (s *Session) settleOther(sl *slider, id string) {
	if v, ok := sl.Peek(); ok && v.sector != id {
		sl.Flush()
		s.settle(sl, v)
	}
}

func (s *Session) cancelSliders() {
	for _, sl := range s.sliders() {
		sl.Cancel()
	}
}
