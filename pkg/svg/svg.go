// Package svg plots a venue as an SVG document.
package svg

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/jbeda/geom"

	"github.com/OpenTraceLab/OpenTraceVenue/pkg/geometry"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/layout"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/venue"
)

// Options controls the plot.
type Options struct {
	Labels bool    // draw row and number on every seat
	Margin float64 // space around the venue in drawing units
}

// DefaultOptions returns the stock plot options.
func DefaultOptions() Options {
	return Options{Margin: 20}
}

// SVG is a small serialization helper. It keeps the first write error and
// drops everything after it.
type SVG struct {
	writer io.Writer
	err    error
}

// NewSVG creates a writer on w.
func NewSVG(w io.Writer) *SVG {
	return &SVG{writer: w}
}

func (s *SVG) printf(format string, a ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.writer, format, a...)
}

// Err returns the first write error.
func (s *SVG) Err() error {
	return s.err
}

func extraparams(attrs []string) string {
	var sb strings.Builder
	for _, a := range attrs {
		switch {
		case strings.Contains(a, "="):
			sb.WriteString(a + " ")
		case a != "":
			fmt.Fprintf(&sb, "style='%s' ", a)
		}
	}
	return sb.String()
}

// Start opens the document with the given view box.
func (s *SVG) Start(viewBox geom.Rect, attrs ...string) {
	s.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg" %s>
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height(), extraparams(attrs))
}

// End closes the document.
func (s *SVG) End() {
	s.printf("</svg>\n")
}

// StartGroup opens a <g> element.
func (s *SVG) StartGroup(attrs ...string) {
	s.printf("<g %s>\n", extraparams(attrs))
}

// EndGroup closes a <g> element.
func (s *SVG) EndGroup() {
	s.printf("</g>\n")
}

// Polygon draws a closed outline.
func (s *SVG) Polygon(pts []geom.Coord, attrs ...string) {
	var sb strings.Builder
	for i, p := range pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%f,%f", p.X, p.Y)
	}
	s.printf("<polygon points='%s' %s/>\n", sb.String(), extraparams(attrs))
}

// Rect draws an axis-aligned rectangle.
func (s *SVG) Rect(r geom.Rect, attrs ...string) {
	s.printf("<rect x='%f' y='%f' width='%f' height='%f' %s/>\n",
		r.Min.X, r.Min.Y, r.Width(), r.Height(), extraparams(attrs))
}

// Ellipse draws the ellipse inscribed in r.
func (s *SVG) Ellipse(r geom.Rect, attrs ...string) {
	s.printf("<ellipse cx='%f' cy='%f' rx='%f' ry='%f' %s/>\n",
		(r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2, r.Width()/2, r.Height()/2, extraparams(attrs))
}

// Text draws centred text at c.
func (s *SVG) Text(c geom.Coord, size float64, text string, attrs ...string) {
	s.printf("<text x='%f' y='%f' font-size='%f' text-anchor='middle' dominant-baseline='central' %s>%s</text>\n",
		c.X, c.Y, size, extraparams(attrs), html.EscapeString(text))
}

func coord(v geometry.Vertex) geom.Coord {
	return geom.Coord{X: v.X, Y: v.Y}
}

// viewBox is the displayed extent of v grown by margin on every side.
func viewBox(v *venue.Venue, margin float64) geom.Rect {
	b := v.Bounds()
	r := geom.Rect{Min: coord(geometry.V(b.X, b.Y)), Max: coord(b.Max())}
	r.ExpandToContainCoord(r.Min.Minus(geom.Coord{X: margin, Y: margin}))
	r.ExpandToContainCoord(r.Max.Plus(geom.Coord{X: margin, Y: margin}))
	return r
}

// Write plots v to w. Each sector is a group rotated about the centre of its
// bounds, so outlines and seats are drawn in local coordinates.
func Write(w io.Writer, v *venue.Venue, opts Options) error {
	s := NewSVG(w)
	s.Start(viewBox(v, opts.Margin))

	for _, sec := range v.Sectors {
		c := sec.Bounds().Center()
		s.StartGroup(
			fmt.Sprintf("id='%s'", html.EscapeString(sec.ID)),
			fmt.Sprintf("transform='rotate(%f %f %f)'", sec.Rotation, c.X, c.Y),
		)

		pts := make([]geom.Coord, len(sec.Polygon))
		for i, p := range sec.Polygon {
			pts[i] = coord(p)
		}
		s.Polygon(pts, fmt.Sprintf("fill: %s; fill-opacity: %.2f; stroke: #333; stroke-width: 1",
			sec.Color, sectorOpacity(sec)))

		for _, seat := range sec.Seats {
			writeSeat(s, seat, sec.SeatSize(), opts.Labels)
		}
		s.EndGroup()
	}

	s.End()
	if err := s.Err(); err != nil {
		return fmt.Errorf("svg: write: %w", err)
	}
	return nil
}

func writeSeat(s *SVG, seat layout.Seat, seatSize float64, labels bool) {
	w, h := seat.Footprint(seatSize)
	r := geom.Rect{
		Min: geom.Coord{X: seat.X, Y: seat.Y},
		Max: geom.Coord{X: seat.X + w, Y: seat.Y + h},
	}
	c := coord(seat.Center(seatSize))
	style := fmt.Sprintf("fill: %s; stroke: %s; stroke-width: 0.5", SeatFill(seat.Type), StatusStroke(seat.Status))
	rotate := fmt.Sprintf("transform='rotate(%f %f %f)'", seat.Rotation, c.X, c.Y)

	switch {
	case seat.Table != nil && seat.Table.Round:
		s.Ellipse(r, style, rotate)
	default:
		s.Rect(r, style, rotate)
	}
	if labels {
		s.Text(c, h*0.45, seat.Label(), "fill: #000")
	}
}

func sectorOpacity(sec *venue.Sector) float64 {
	if sec.Opacity <= 0 || sec.Opacity > 1 {
		return 0.3
	}
	return sec.Opacity * 0.3
}

// SeatFill is the fill colour of a seat type.
func SeatFill(t layout.SeatType) string {
	switch t {
	case layout.VIP:
		return "#d4a017"
	case layout.Accessible:
		return "#1e88e5"
	case layout.Companion:
		return "#8e24aa"
	case layout.Restricted:
		return "#757575"
	}
	return "#43a047"
}

// StatusStroke is the outline colour of a seat status.
func StatusStroke(st layout.SeatStatus) string {
	switch st {
	case layout.Reserved:
		return "#fb8c00"
	case layout.Sold:
		return "#e53935"
	case layout.Blocked:
		return "#000000"
	}
	return "#1b5e20"
}
