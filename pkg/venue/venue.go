package venue

import (
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/geometry"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/layout"
)

// Venue is an ordered collection of sectors. Later sectors draw on top.
type Venue struct {
	Name    string
	Sectors []*Sector
}

// New creates an empty venue.
func New(name string) *Venue {
	return &Venue{Name: name}
}

// Add appends a sector.
func (v *Venue) Add(s *Sector) {
	v.Sectors = append(v.Sectors, s)
}

// Sector finds a sector by id.
func (v *Venue) Sector(id string) *Sector {
	for _, s := range v.Sectors {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Remove deletes a sector and its seats. It reports whether the sector
// existed.
func (v *Venue) Remove(id string) bool {
	for i, s := range v.Sectors {
		if s.ID == id {
			v.Sectors = append(v.Sectors[:i], v.Sectors[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the venue.
func (v *Venue) Clone() *Venue {
	c := &Venue{Name: v.Name, Sectors: make([]*Sector, len(v.Sectors))}
	for i, s := range v.Sectors {
		c.Sectors[i] = s.Clone()
	}
	return c
}

// Bounds is the union of every sector outline as displayed, rotation
// included.
func (v *Venue) Bounds() geometry.Bounds {
	var pts []geometry.Vertex
	for _, s := range v.Sectors {
		pts = append(pts, s.Polygon.Rotated(s.Rotation)...)
	}
	return geometry.BoundsOf(pts)
}

// Stats summarises the seats of a venue.
type Stats struct {
	Sectors  int
	Seats    int
	ByType   map[layout.SeatType]int
	ByStatus map[layout.SeatStatus]int
}

// Stats counts seats by type and status.
func (v *Venue) Stats() Stats {
	st := Stats{
		Sectors:  len(v.Sectors),
		ByType:   make(map[layout.SeatType]int),
		ByStatus: make(map[layout.SeatStatus]int),
	}
	for _, s := range v.Sectors {
		for _, seat := range s.Seats {
			st.Seats++
			st.ByType[seat.Type]++
			st.ByStatus[seat.Status]++
		}
	}
	return st
}
