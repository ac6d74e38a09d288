package layout

import (
	"math"

	"github.com/OpenTraceLab/OpenTraceVenue/pkg/geometry"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/shape"
)

// radial packs seats on concentric arcs of the band the polygon was built
// from. Row 0 is the innermost arc, nearest the focal point. Each row holds
// as many seats as its arc length allows, capped at Cols, spread evenly and
// centred on the vertical axis. Seats are turned to face the focal point.
//
// RowSeatCounts is not honoured here.
func radial(poly geometry.Polygon, p Params) plan {
	band, ok := shape.BandFor(p.Shape, p.Curvature)
	if !ok {
		return plan{}
	}
	w, h := p.ItemSize()
	stepX, stepY := w+p.SeatSpacing, h+p.RowSpacing

	f := band.FrameOf(poly.Bounds())
	inner := f.Inner + h/2 + p.RowSpacing
	outer := f.Outer - h/2 - p.RowSpacing
	if outer < inner {
		return plan{}
	}

	rows := p.Rows
	if rows == 0 {
		rows = int((outer-inner)/stepY) + 1
	}

	var pl plan
	for i := 0; i < rows; i++ {
		r := (inner + outer) / 2
		if rows > 1 {
			r = inner + (outer-inner)*float64(i)/float64(rows-1)
		}

		n := int(math.Floor(r * f.Sweep / stepX))
		if p.Cols > 0 && n > p.Cols {
			n = p.Cols
		}
		if n <= 0 {
			continue
		}

		pitch := f.Sweep / float64(n)
		for j := 0; j < n; j++ {
			a := f.Mid() + (float64(j)-float64(n-1)/2)*pitch
			pt := f.PointAt(a, r)
			pl.candidates = append(pl.candidates, candidate{
				row:      i,
				center:   pt,
				rotation: geometry.NormalizeDegrees(geometry.Degrees(a + math.Pi/2)),
				inside:   poly.Contains(pt),
			})
		}
	}
	return pl
}
