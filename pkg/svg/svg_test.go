package svg

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTraceVenue/pkg/geometry"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/layout"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/shape"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/venue"
)

func testVenue() *venue.Venue {
	v := venue.New("Hall <1>")
	stalls := venue.NewSector("Stalls", shape.Rectangle, geometry.Rect(0, 0, 400, 300))
	stalls.Regenerate()
	v.Add(stalls)

	terrace := venue.NewSector("Terrace", shape.Rectangle, geometry.Rect(500, 0, 400, 300))
	terrace.Params.Rows, terrace.Params.Cols = 2, 2
	terrace.Params.Furniture = layout.Bistro
	terrace.Params.Table = layout.DefaultTable(layout.Bistro)
	terrace.SetRotation(30)
	terrace.Regenerate()
	v.Add(terrace)
	return v
}

// TestWrite checks the document structure of a plotted venue.
func TestWrite(t *testing.T) {
	v := testVenue()
	var buf bytes.Buffer
	if err := Write(&buf, v, Options{Labels: true, Margin: 10}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "<?xml") || !strings.HasSuffix(out, "</svg>\n") {
		t.Errorf("document is not a complete svg:\n%s", out)
	}
	if n := strings.Count(out, "<polygon"); n != len(v.Sectors) {
		t.Errorf("got %d polygons, want %d", n, len(v.Sectors))
	}
	if n := strings.Count(out, "<g "); n != len(v.Sectors) {
		t.Errorf("got %d groups, want %d", n, len(v.Sectors))
	}
	if n := strings.Count(out, "<rect"); n != len(v.Sectors[0].Seats) {
		t.Errorf("got %d rects, want %d", n, len(v.Sectors[0].Seats))
	}
	if n := strings.Count(out, "<ellipse"); n != len(v.Sectors[1].Seats) {
		t.Errorf("got %d ellipses, want %d", n, len(v.Sectors[1].Seats))
	}
	if !strings.Contains(out, "rotate(30.000000 700.000000 150.000000)") {
		t.Error("terrace group is not rotated about its centre")
	}
	if !strings.Contains(out, ">A1</text>") {
		t.Error("seat labels missing")
	}
}

func TestViewBox(t *testing.T) {
	v := venue.New("x")
	v.Add(venue.NewSector("a", shape.Rectangle, geometry.Rect(10, 20, 100, 50)))
	r := viewBox(v, 5)
	if r.Min.X != 5 || r.Min.Y != 15 || r.Width() != 110 || r.Height() != 60 {
		t.Errorf("viewBox = %+v", r)
	}
}

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	w.n++
	if w.n > 2 {
		return 0, errors.New("disk full")
	}
	return len(p), nil
}

func TestWriteError(t *testing.T) {
	w := &failWriter{}
	err := Write(w, testVenue(), DefaultOptions())
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Write error = %v", err)
	}
	if w.n != 3 {
		t.Errorf("writer called %d times after failing, want 3 calls total", w.n)
	}
}

func TestSeatColors(t *testing.T) {
	seen := map[string]bool{}
	for _, st := range layout.SeatTypes {
		seen[SeatFill(st)] = true
	}
	if len(seen) != len(layout.SeatTypes) {
		t.Errorf("seat types share fill colours: %v", seen)
	}
	if StatusStroke(layout.Sold) == StatusStroke(layout.Available) {
		t.Error("sold and available seats look the same")
	}
}
