package layout

import (
	"errors"
	"fmt"

	"github.com/OpenTraceLab/OpenTraceVenue/pkg/geometry"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/shape"
)

// Sector dimension limits enforced by ResizePolygon.
const (
	MinSectorSize = 20.0
	MaxSectorSize = 20000.0
)

// ErrBoundsOutOfRange is returned when a resize would leave the sector
// dimension limits.
var ErrBoundsOutOfRange = errors.New("layout: bounds out of range")

// Reposition maps the seats of sectorID from oldPoly onto newPoly. Each
// seat keeps its position as a fraction of the old bounding box; seats whose
// new centre falls outside newPoly are dropped. Only X and Y change on
// surviving seats, and seats of other sectors pass through unchanged.
func Reposition(seats []Seat, oldPoly, newPoly geometry.Polygon, sectorID string, itemSize float64) []Seat {
	ob, nb := oldPoly.Bounds(), newPoly.Bounds()

	out := make([]Seat, 0, len(seats))
	for _, s := range seats {
		if s.SectorID != sectorID {
			out = append(out, s)
			continue
		}
		w, h := s.Footprint(itemSize)
		fx, fy := ob.Fraction(s.Center(itemSize))
		c := nb.At(fx, fy)
		if !newPoly.Contains(c) {
			continue
		}
		s.X, s.Y = c.X-w/2, c.Y-h/2
		out = append(out, s)
	}
	return out
}

// ResizePolygon fits a sector outline to new bounds. An outline that still
// has the generated vertex count for its shape and curvature is regenerated;
// a hand-edited one is scaled about its bounding-box centre. Seats are left
// for the caller to regenerate.
func ResizePolygon(poly geometry.Polygon, s shape.Shape, curvature int, nb geometry.Bounds) (geometry.Polygon, error) {
	if nb.Width < MinSectorSize || nb.Height < MinSectorSize ||
		nb.Width > MaxSectorSize || nb.Height > MaxSectorSize {
		return nil, fmt.Errorf("%w: %.0fx%.0f not within %.0f..%.0f",
			ErrBoundsOutOfRange, nb.Width, nb.Height, MinSectorSize, MaxSectorSize)
	}

	if shape.IsStandard(poly, s, curvature) {
		return shape.ApplyCurvature(s, nb, curvature), nil
	}

	ob := poly.Bounds()
	sx, sy := 1.0, 1.0
	if ob.Width > 0 {
		sx = nb.Width / ob.Width
	}
	if ob.Height > 0 {
		sy = nb.Height / ob.Height
	}
	return poly.ScaleAbout(ob.Center(), nb.Center(), sx, sy), nil
}

// Report compares the number of seats requested with the number placed.
type Report struct {
	Strategy  Strategy
	Requested int // zero when the generator scanned the bounds
	Generated int
}

// Missing is the number of requested seats that did not fit.
func (r Report) Missing() int {
	if r.Requested <= r.Generated {
		return 0
	}
	return r.Requested - r.Generated
}

func (r Report) String() string {
	if r.Requested == 0 {
		return fmt.Sprintf("%s: %d seats placed", r.Strategy, r.Generated)
	}
	return fmt.Sprintf("%s: %d of %d seats placed (%d did not fit)",
		r.Strategy, r.Generated, r.Requested, r.Missing())
}

// Shortfall reports how many of the seats requested by p were generated.
// A partial fit is expected, not an error.
func Shortfall(p Params, seats []Seat) Report {
	r := Report{Strategy: StrategyFor(p), Generated: len(seats)}
	switch {
	case r.Strategy == Radial:
		if p.Rows > 0 && p.Cols > 0 {
			r.Requested = p.Rows * p.Cols
		}
	case p.explicitGrid():
		for i := 0; i < p.rowCount(); i++ {
			r.Requested += p.seatsInRow(i)
		}
	}
	return r
}
