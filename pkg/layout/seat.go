// Package layout packs seats into sector polygons and keeps them consistent
// when the polygon changes.
package layout

import (
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/geometry"
)

// SeatType classifies a seat for pricing and access.
type SeatType string

const (
	Standard   SeatType = "standard"
	VIP        SeatType = "vip"
	Accessible SeatType = "accessible"
	Companion  SeatType = "companion"
	Restricted SeatType = "restricted"
)

// SeatTypes lists every seat type in display order.
var SeatTypes = []SeatType{Standard, VIP, Accessible, Companion, Restricted}

// SeatStatus is the sales state of a seat.
type SeatStatus string

const (
	Available SeatStatus = "available"
	Reserved  SeatStatus = "reserved"
	Sold      SeatStatus = "sold"
	Blocked   SeatStatus = "blocked"
)

// SeatStatuses lists every status in display order.
var SeatStatuses = []SeatStatus{Available, Reserved, Sold, Blocked}

// Furniture is what a generated item represents.
type Furniture string

const (
	Chair  Furniture = "chair"
	Table  Furniture = "table"
	Bistro Furniture = "bistro"
)

// TableClearance is added to both table dimensions so chairs drawn around a
// table stay inside its footprint.
const TableClearance = 24.0

// TableConfig sizes a table and the chairs drawn around it.
type TableConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Chairs int     `json:"chairs"`
	Round  bool    `json:"round,omitempty"`
}

// DefaultTable returns the stock configuration for a furniture type, or nil
// for chairs.
func DefaultTable(f Furniture) *TableConfig {
	switch f {
	case Table:
		return &TableConfig{Width: 120, Height: 60, Chairs: 6}
	case Bistro:
		return &TableConfig{Width: 60, Height: 60, Chairs: 4, Round: true}
	}
	return nil
}

// Seat is one placed item. X and Y are the top-left corner of its footprint.
type Seat struct {
	ID        string       `json:"id"`
	SectorID  string       `json:"sectorId"`
	Row       string       `json:"row"`
	Number    string       `json:"number"`
	X         float64      `json:"x"`
	Y         float64      `json:"y"`
	Rotation  float64      `json:"rotation"`
	Type      SeatType     `json:"type"`
	Status    SeatStatus   `json:"status"`
	Furniture Furniture    `json:"furnitureType,omitempty"`
	Table     *TableConfig `json:"tableConfig,omitempty"`
}

// Footprint returns the width and height the seat occupies. Tables use their
// own configuration; everything else is a seatSize square.
func (s Seat) Footprint(seatSize float64) (w, h float64) {
	if s.Table != nil {
		return s.Table.Width + TableClearance, s.Table.Height + TableClearance
	}
	return seatSize, seatSize
}

// Center returns the centre of the seat's footprint.
func (s Seat) Center(seatSize float64) geometry.Vertex {
	w, h := s.Footprint(seatSize)
	return geometry.V(s.X+w/2, s.Y+h/2)
}

// Label is the row and number joined for display, e.g. "B7".
func (s Seat) Label() string {
	return s.Row + s.Number
}

// Clone returns a copy that shares no table configuration with s.
func (s Seat) Clone() Seat {
	if s.Table != nil {
		t := *s.Table
		s.Table = &t
	}
	return s
}

// CloneSeats deep-copies a seat list.
func CloneSeats(seats []Seat) []Seat {
	if seats == nil {
		return nil
	}
	out := make([]Seat, len(seats))
	for i, s := range seats {
		out[i] = s.Clone()
	}
	return out
}
