package layout

import (
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/geometry"
)

// grid lays out an explicit rows x cols grid centred on the bounds. With
// per-row counts each row is placed inside the widest row according to
// RowAlign.
func grid(poly geometry.Polygon, p Params) plan {
	w, h := p.ItemSize()
	stepX, stepY := w+p.SeatSpacing, h+p.RowSpacing

	b := poly.Bounds()
	center := b.Center()
	rows := p.rowCount()

	widest := 0
	for i := 0; i < rows; i++ {
		widest = max(widest, p.seatsInRow(i))
	}
	gridWidth := rowWidth(widest, stepX, p.SeatSpacing)
	gridLeft := center.X - gridWidth/2
	top := center.Y - rowWidth(rows, stepY, p.RowSpacing)/2

	var pl plan
	for i := 0; i < rows; i++ {
		n := p.seatsInRow(i)
		width := rowWidth(n, stepX, p.SeatSpacing)

		left := center.X - width/2
		switch p.RowAlign {
		case AlignLeft:
			left = gridLeft
		case AlignRight:
			left = gridLeft + gridWidth - width
		}

		y := top + float64(i)*stepY + h/2
		for j := 0; j < n; j++ {
			pt := geometry.V(left+float64(j)*stepX+w/2, y)
			pl.candidates = append(pl.candidates, p.admit(poly, center, i, pt))
		}
	}
	return pl
}

// scan walks the bounding box at fixed steps, keeping one item of padding
// from every edge.
func scan(poly geometry.Polygon, p Params) plan {
	w, h := p.ItemSize()
	stepX, stepY := w+p.SeatSpacing, h+p.RowSpacing

	b := poly.Bounds()
	center := b.Center()
	maxX, maxY := b.X+b.Width-w, b.Y+b.Height-h

	pl := plan{compactRows: true}
	row := 0
	for y := b.Y + h; y+h <= maxY; y += stepY {
		for x := b.X + w; x+w <= maxX; x += stepX {
			pt := geometry.V(x+w/2, y+h/2)
			pl.candidates = append(pl.candidates, p.admit(poly, center, row, pt))
		}
		row++
	}
	return pl
}

// admit rotates a grid position about the bounds centre and tests it
// against the polygon.
func (p Params) admit(poly geometry.Polygon, center geometry.Vertex, row int, pt geometry.Vertex) candidate {
	pt = geometry.RotateAbout(pt, center, p.Rotation)
	return candidate{
		row:      row,
		center:   pt,
		rotation: p.Rotation,
		inside:   poly.Contains(pt),
	}
}

func rowWidth(n int, step, gap float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*step - gap
}
