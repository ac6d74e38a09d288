package layout

import (
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/labels"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/shape"
)

// Align positions rows shorter than the widest row.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// ParseAlign accepts an alignment name.
func ParseAlign(s string) (Align, bool) {
	switch a := Align(s); a {
	case AlignLeft, AlignCenter, AlignRight:
		return a, true
	}
	return AlignCenter, false
}

// ParseFurniture accepts a furniture name.
func ParseFurniture(s string) (Furniture, bool) {
	switch f := Furniture(s); f {
	case Chair, Table, Bistro:
		return f, true
	}
	return Chair, false
}

// Params is the full parameter set for one generation call.
type Params struct {
	SectorID  string
	Shape     shape.Shape
	Curvature int

	// Rows and Cols request an explicit grid. With both zero and no
	// RowSeatCounts the generator scans the bounding box instead.
	Rows int
	Cols int

	SeatSize    float64
	SeatSpacing float64 // gap between seats in a row
	RowSpacing  float64 // gap between rows

	RowType   labels.RowType
	RowStart  string
	Scheme    labels.Scheme
	SeatStart int
	Direction labels.Direction

	CustomNumbers []int
	RowNumbering  map[string]labels.RowNumbering

	// Rotation turns the grid about the polygon's bounds centre, in degrees.
	Rotation float64

	// Prefix is prepended to every row label.
	Prefix string

	Furniture Furniture
	Table     *TableConfig

	RowSeatCounts []int
	RowAlign      Align

	DefaultType SeatType
}

// DefaultParams returns a 4x4 chair grid with alphabetic rows and numeric
// seats.
func DefaultParams() Params {
	return Params{
		Shape:       shape.Rectangle,
		Rows:        4,
		Cols:        4,
		SeatSize:    14,
		SeatSpacing: 2,
		RowSpacing:  2,
		RowType:     labels.RowAlpha,
		RowStart:    "A",
		Scheme:      labels.Numeric,
		SeatStart:   1,
		Direction:   labels.LeftToRight,
		Furniture:   Chair,
		RowAlign:    AlignCenter,
		DefaultType: Standard,
	}
}

// normalized fills unset fields with their defaults.
func (p Params) normalized() Params {
	if p.RowType == "" {
		p.RowType = labels.RowAlpha
	}
	if p.RowStart == "" {
		if p.RowType == labels.RowAlpha {
			p.RowStart = "A"
		} else {
			p.RowStart = "1"
		}
	}
	if p.Scheme == "" {
		p.Scheme = labels.Numeric
	}
	if p.SeatStart == 0 {
		p.SeatStart = 1
	}
	if p.Direction == "" {
		p.Direction = labels.LeftToRight
	}
	if p.Furniture == "" {
		p.Furniture = Chair
	}
	if p.Furniture != Chair && p.Table == nil {
		p.Table = DefaultTable(p.Furniture)
	}
	if p.RowAlign == "" {
		p.RowAlign = AlignCenter
	}
	if p.DefaultType == "" {
		p.DefaultType = Standard
	}
	return p
}

// ItemSize is the footprint of one generated item.
func (p Params) ItemSize() (w, h float64) {
	p = p.normalized()
	if p.Furniture != Chair && p.Table != nil {
		return p.Table.Width + TableClearance, p.Table.Height + TableClearance
	}
	return p.SeatSize, p.SeatSize
}

// explicitGrid reports whether the caller asked for a rows x cols grid
// rather than a bounding-box scan.
func (p Params) explicitGrid() bool {
	return p.Rows > 0 || p.Cols > 0 || len(p.RowSeatCounts) > 0
}

// rowCount returns the number of grid rows requested.
func (p Params) rowCount() int {
	if p.Rows > 0 {
		return p.Rows
	}
	return len(p.RowSeatCounts)
}

// seatsInRow returns the number of seats requested for row i.
func (p Params) seatsInRow(i int) int {
	if i < len(p.RowSeatCounts) {
		return max(p.RowSeatCounts[i], 0)
	}
	return p.Cols
}
