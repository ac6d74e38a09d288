package venue

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/OpenTraceLab/OpenTraceVenue/pkg/geometry"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/layout"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/shape"
)

// Snapshot is the flat export form of a venue. Outlines, rotation and
// curvature are authoring state and are not part of it.
type Snapshot struct {
	Name    string           `json:"name"`
	Sectors []SectorSnapshot `json:"sectors"`
}

// SectorSnapshot is one exported sector.
type SectorSnapshot struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Color  string          `json:"color"`
	Bounds geometry.Bounds `json:"bounds"`
	Seats  []SeatSnapshot  `json:"seats"`
}

// SeatSnapshot is one exported seat.
type SeatSnapshot struct {
	ID     string            `json:"id"`
	Row    string            `json:"row"`
	Number string            `json:"number"`
	Type   layout.SeatType   `json:"type"`
	Status layout.SeatStatus `json:"status"`
	X      float64           `json:"x"`
	Y      float64           `json:"y"`
}

// Snapshot flattens the venue for export.
func (v *Venue) Snapshot() Snapshot {
	snap := Snapshot{Name: v.Name, Sectors: make([]SectorSnapshot, 0, len(v.Sectors))}
	for _, s := range v.Sectors {
		ss := SectorSnapshot{
			ID:     s.ID,
			Name:   s.Name,
			Color:  s.Color,
			Bounds: s.Bounds(),
			Seats:  make([]SeatSnapshot, 0, len(s.Seats)),
		}
		for _, seat := range s.Seats {
			ss.Seats = append(ss.Seats, SeatSnapshot{
				ID:     seat.ID,
				Row:    seat.Row,
				Number: seat.Number,
				Type:   seat.Type,
				Status: seat.Status,
				X:      seat.X,
				Y:      seat.Y,
			})
		}
		snap.Sectors = append(snap.Sectors, ss)
	}
	return snap
}

// Export writes the flat JSON snapshot of the venue to w.
func (v *Venue) Export(w io.Writer) error {
	data, err := json.MarshalIndent(v.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("venue: marshal snapshot: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("venue: write snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot decodes a snapshot written by Export.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("venue: decode snapshot: %w", err)
	}
	return &snap, nil
}

// Venue rebuilds a venue from a snapshot. Each sector becomes a rectangle
// over its exported bounds, since the snapshot does not carry outlines.
func (snap *Snapshot) Venue() *Venue {
	v := New(snap.Name)
	for _, ss := range snap.Sectors {
		s := &Sector{
			ID:      ss.ID,
			Name:    ss.Name,
			Color:   ss.Color,
			Opacity: 1,
			Shape:   shape.Rectangle,
			Frame:   ss.Bounds,
			Polygon: shape.ToPolygon(shape.Rectangle, ss.Bounds),
			Params:  layout.DefaultParams(),
		}
		s.Params.SectorID = ss.ID
		for _, seat := range ss.Seats {
			s.Seats = append(s.Seats, layout.Seat{
				ID:       seat.ID,
				SectorID: ss.ID,
				Row:      seat.Row,
				Number:   seat.Number,
				X:        seat.X,
				Y:        seat.Y,
				Type:     seat.Type,
				Status:   seat.Status,
			})
		}
		v.Add(s)
	}
	return v
}
