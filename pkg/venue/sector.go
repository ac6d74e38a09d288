// Package venue holds the authoring model: sectors with their outline,
// display parameters and seats, grouped into a venue.
package venue

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/OpenTraceLab/OpenTraceVenue/pkg/geometry"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/hittest"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/labels"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/layout"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/shape"
)

// DefaultColor is the fill of a new sector.
const DefaultColor = "#3366cc"

// ErrInvalidPolygon is returned when an outline has fewer than three
// vertices.
var ErrInvalidPolygon = errors.New("venue: polygon needs at least 3 vertices")

// Sector is a named area of the venue owning an outline and its seats.
//
// Frame is the rectangle the outline was generated in. For arc regimes the
// outline's own bounds differ from Frame, so switching curvature back and
// forth regenerates from Frame rather than from the current bounds.
type Sector struct {
	ID        string
	Name      string
	Color     string
	Opacity   float64
	Shape     shape.Shape
	Frame     geometry.Bounds
	Polygon   geometry.Polygon
	Rotation  float64
	Curvature int
	Params    layout.Params
	Seats     []layout.Seat
}

// NewSector creates a sector whose outline is s inscribed in b.
func NewSector(name string, s shape.Shape, b geometry.Bounds) *Sector {
	if !s.Known() {
		s = shape.Rectangle
	}
	id := uuid.NewString()
	p := layout.DefaultParams()
	p.SectorID = id
	p.Shape = s
	return &Sector{
		ID:      id,
		Name:    name,
		Color:   DefaultColor,
		Opacity: 1,
		Shape:   s,
		Frame:   b,
		Polygon: shape.ToPolygon(s, b),
		Params:  p,
	}
}

// Bounds is the axis-aligned box of the unrotated outline.
func (s *Sector) Bounds() geometry.Bounds {
	return s.Polygon.Bounds()
}

// Target returns the outline for hit-testing.
func (s *Sector) Target() hittest.Target {
	return hittest.Target{Polygon: s.Polygon, Rotation: s.Rotation}
}

// SeatSize is the chair size used for seat footprints.
func (s *Sector) SeatSize() float64 {
	return s.Params.SeatSize
}

// params returns the layout parameters with the sector's own geometry
// settings applied.
func (s *Sector) params() layout.Params {
	p := s.Params
	p.SectorID = s.ID
	p.Shape = s.Shape
	p.Curvature = s.Curvature
	return p
}

// Regenerate discards the seats and lays them out again.
func (s *Sector) Regenerate() layout.Report {
	p := s.params()
	s.Seats = layout.Generate(s.Polygon, p)
	return layout.Shortfall(p, s.Seats)
}

// IsCustomized reports whether the outline was edited by hand.
func (s *Sector) IsCustomized() bool {
	return !shape.IsStandard(s.Polygon, s.Shape, s.Curvature)
}

// SetCurvature bends a generated outline to curvature c. A hand-edited
// outline keeps its vertices; only the seat packing strategy changes. Seats
// are re-projected onto the new outline.
func (s *Sector) SetCurvature(c int) {
	c = shape.ClampCurvature(c)
	if c == s.Curvature {
		return
	}
	if s.IsCustomized() {
		s.Curvature = c
		return
	}
	s.Curvature = c
	s.replacePolygon(shape.ApplyCurvature(s.Shape, s.Frame, c))
}

// SetShape regenerates the outline as shape sh in the sector's frame.
func (s *Sector) SetShape(sh shape.Shape) {
	if !sh.Known() {
		sh = shape.Rectangle
	}
	s.Shape = sh
	s.Params.Shape = sh
	s.replacePolygon(shape.ApplyCurvature(sh, s.Frame, s.Curvature))
}

// SetRotation sets the display rotation in degrees.
func (s *Sector) SetRotation(deg float64) {
	s.Rotation = geometry.NormalizeDegrees(deg)
}

// Resize fits the outline to nb. Seats are not touched; call Regenerate to
// lay them out again.
func (s *Sector) Resize(nb geometry.Bounds) error {
	poly, err := layout.ResizePolygon(s.Polygon, s.Shape, s.Curvature, nb)
	if err != nil {
		return err
	}
	s.Polygon = poly
	s.Frame = nb
	return nil
}

// Reshape replaces the outline with poly and re-projects the seats onto it,
// dropping those that no longer fit.
func (s *Sector) Reshape(poly geometry.Polygon) error {
	if !poly.Valid() {
		return fmt.Errorf("%w: got %d", ErrInvalidPolygon, len(poly))
	}
	s.replacePolygon(poly.Clone())
	if s.IsCustomized() {
		s.Frame = s.Polygon.Bounds()
	}
	return nil
}

// ReshapeFrom re-projects seats from an earlier outline onto the current
// one. Drags update Polygon directly and call this once on release.
func (s *Sector) ReshapeFrom(old geometry.Polygon) {
	s.Seats = layout.Reposition(s.Seats, old, s.Polygon, s.ID, s.SeatSize())
	if s.IsCustomized() {
		s.Frame = s.Polygon.Bounds()
	}
}

func (s *Sector) replacePolygon(poly geometry.Polygon) {
	old := s.Polygon
	s.Polygon = poly
	s.Seats = layout.Reposition(s.Seats, old, poly, s.ID, s.SeatSize())
}

// InsertVertex splits edge edge at local point v.
func (s *Sector) InsertVertex(edge int, v geometry.Vertex) error {
	poly, err := hittest.InsertVertex(s.Polygon, edge, v)
	if err != nil {
		return err
	}
	return s.Reshape(poly)
}

// RemoveVertex deletes vertex i, refusing to go below three vertices.
func (s *Sector) RemoveVertex(i int) error {
	poly, err := hittest.RemoveVertex(s.Polygon, i)
	if err != nil {
		return err
	}
	return s.Reshape(poly)
}

// MoveSeats shifts the seats with the given ids by d.
func (s *Sector) MoveSeats(ids map[string]bool, d geometry.Vertex) {
	for i := range s.Seats {
		if ids[s.Seats[i].ID] {
			s.Seats[i].X += d.X
			s.Seats[i].Y += d.Y
		}
	}
}

// RemoveSeats deletes the seats with the given ids and returns how many were
// removed.
func (s *Sector) RemoveSeats(ids map[string]bool) int {
	kept := s.Seats[:0]
	for _, seat := range s.Seats {
		if !ids[seat.ID] {
			kept = append(kept, seat)
		}
	}
	n := len(s.Seats) - len(kept)
	s.Seats = kept
	return n
}

// Clone returns a deep copy of the sector.
func (s *Sector) Clone() *Sector {
	c := *s
	c.Polygon = s.Polygon.Clone()
	c.Seats = layout.CloneSeats(s.Seats)
	c.Params.CustomNumbers = append([]int(nil), s.Params.CustomNumbers...)
	c.Params.RowSeatCounts = append([]int(nil), s.Params.RowSeatCounts...)
	if s.Params.RowNumbering != nil {
		c.Params.RowNumbering = make(map[string]labels.RowNumbering, len(s.Params.RowNumbering))
		for k, v := range s.Params.RowNumbering {
			v.Numbers = append([]int(nil), v.Numbers...)
			c.Params.RowNumbering[k] = v
		}
	}
	if s.Params.Table != nil {
		t := *s.Params.Table
		c.Params.Table = &t
	}
	return &c
}
