package layout

import (
	"github.com/google/uuid"

	"github.com/OpenTraceLab/OpenTraceVenue/pkg/geometry"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/labels"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/shape"
)

// Strategy names the packing algorithm chosen for a parameter set.
type Strategy int

const (
	Rectilinear Strategy = iota
	CurvedGrid
	Radial
)

func (s Strategy) String() string {
	switch s {
	case CurvedGrid:
		return "curved-grid"
	case Radial:
		return "radial"
	}
	return "rectilinear"
}

// StrategyFor picks radial packing for arcs and strongly curved sectors,
// the curved grid for lightly bent ones and the rectilinear grid otherwise.
func StrategyFor(p Params) Strategy {
	switch {
	case shape.IsRadial(p.Shape, p.Curvature):
		return Radial
	case p.Curvature > 0:
		return CurvedGrid
	}
	return Rectilinear
}

// candidate is one position considered by a packing pass.
type candidate struct {
	row      int
	center   geometry.Vertex
	rotation float64
	inside   bool
}

// plan is the full candidate set of a packing pass in row-major order.
type plan struct {
	candidates []candidate

	// compactRows numbers rows by how many earlier rows admitted a seat,
	// so empty scan bands do not consume row labels.
	compactRows bool
}

// Generate packs seats into poly. Positions whose centre falls outside poly
// are dropped, so the result may be shorter than requested. A polygon with
// fewer than three vertices, a negative grid size or an empty item footprint
// yields no seats.
func Generate(poly geometry.Polygon, p Params) []Seat {
	pl := planSeats(poly, p)
	return p.normalized().label(pl)
}

func planSeats(poly geometry.Polygon, p Params) plan {
	p = p.normalized()
	if !poly.Valid() || p.Rows < 0 || p.Cols < 0 {
		return plan{}
	}
	if w, h := p.ItemSize(); w <= 0 || h <= 0 {
		return plan{}
	}

	switch StrategyFor(p) {
	case Radial:
		return radial(poly, p)
	default:
		// The curved grid runs the grid pass against the deformed outline.
		if !p.explicitGrid() {
			return scan(poly, p)
		}
		return grid(poly, p)
	}
}

// label turns admitted candidates into seats with row labels and numbers.
func (p Params) label(pl plan) []Seat {
	var seats []Seat
	w, h := p.ItemSize()

	rowIndex := -1
	lastRow := -1
	for start := 0; start < len(pl.candidates); {
		row := pl.candidates[start].row
		end := start
		var admitted []candidate
		for end < len(pl.candidates) && pl.candidates[end].row == row {
			if pl.candidates[end].inside {
				admitted = append(admitted, pl.candidates[end])
			}
			end++
		}
		start = end
		if len(admitted) == 0 {
			continue
		}

		if pl.compactRows {
			if row != lastRow {
				rowIndex++
				lastRow = row
			}
		} else {
			rowIndex = row
		}
		rowLabel := labels.RowLabel(rowIndex, p.RowType, p.RowStart)

		// A row with its own numbering entry uses it whatever the sector
		// scheme is.
		scheme := p.Scheme
		if _, ok := p.RowNumbering[rowLabel]; ok {
			scheme = labels.CustomPerRow
		}

		for i, c := range admitted {
			number := labels.SeatLabel(labels.SeatLabelInput{
				Index:        i,
				Total:        len(admitted),
				Scheme:       scheme,
				Start:        p.SeatStart,
				Custom:       p.CustomNumbers,
				RowLabel:     rowLabel,
				RowOverrides: p.RowNumbering,
				Direction:    p.Direction,
			})
			s := Seat{
				ID:       uuid.NewString(),
				SectorID: p.SectorID,
				Row:      p.Prefix + rowLabel,
				Number:   number,
				X:        c.center.X - w/2,
				Y:        c.center.Y - h/2,
				Rotation: c.rotation,
				Type:     p.DefaultType,
				Status:   Available,
			}
			if p.Furniture != Chair {
				s.Furniture = p.Furniture
				if p.Table != nil {
					t := *p.Table
					s.Table = &t
				}
			}
			seats = append(seats, s)
		}
	}
	return seats
}
