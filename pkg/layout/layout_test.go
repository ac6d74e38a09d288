package layout

import (
	"errors"
	"math"
	"testing"

	"github.com/OpenTraceLab/OpenTraceVenue/pkg/geometry"
	"github.com/OpenTraceLab/OpenTraceVenue/pkg/shape"
)

var hall = geometry.Rect(0, 0, 400, 300)

func gridParams() Params {
	p := DefaultParams()
	p.SectorID = "s1"
	return p
}

func assertInside(t *testing.T, poly geometry.Polygon, seats []Seat, size float64) {
	t.Helper()
	for _, s := range seats {
		if !poly.Contains(s.Center(size)) {
			t.Errorf("seat %s%s at (%.1f,%.1f) is outside the polygon", s.Row, s.Number, s.X, s.Y)
		}
	}
}

// TestGenerateRectangleGrid is the basic 4x4 scenario.
func TestGenerateRectangleGrid(t *testing.T) {
	poly := shape.ToPolygon(shape.Rectangle, hall)
	seats := Generate(poly, gridParams())
	if len(seats) != 16 {
		t.Fatalf("Generate returned %d seats, want 16", len(seats))
	}
	assertInside(t, poly, seats, 14)

	ids := map[string]bool{}
	for i, s := range seats {
		wantRow := string(rune('A' + i/4))
		wantNum := string(rune('1' + i%4))
		if s.Row != wantRow || s.Number != wantNum {
			t.Errorf("seat %d labelled %s%s, want %s%s", i, s.Row, s.Number, wantRow, wantNum)
		}
		if s.SectorID != "s1" || s.Type != Standard || s.Status != Available {
			t.Errorf("seat %d has unexpected fields: %+v", i, s)
		}
		if ids[s.ID] {
			t.Errorf("duplicate seat id %s", s.ID)
		}
		ids[s.ID] = true
	}

	// Rows are centred horizontally on the bounds.
	first, last := seats[0].Center(14), seats[3].Center(14)
	if math.Abs((first.X+last.X)/2-200) > 1e-9 {
		t.Errorf("row not centred: %v .. %v", first, last)
	}
	if seats[4].Y-seats[0].Y != 16 || seats[1].X-seats[0].X != 16 {
		t.Errorf("unexpected pitch: %+v %+v %+v", seats[0], seats[1], seats[4])
	}
	// The grid is centred vertically too.
	top, bottom := seats[0].Center(14), seats[15].Center(14)
	if math.Abs((top.Y+bottom.Y)/2-150) > 1e-9 {
		t.Errorf("grid not centred vertically: rows at y=%v..%v", top.Y, bottom.Y)
	}
}

// TestGenerateTriangleDropsOutsideCandidates packs an 8x16 grid into a
// triangle, whose narrow apex cannot hold the upper rows.
func TestGenerateTriangleDropsOutsideCandidates(t *testing.T) {
	poly := shape.ToPolygon(shape.Triangle, hall)
	p := gridParams()
	p.Rows, p.Cols = 8, 16
	seats := Generate(poly, p)
	if len(seats) >= 128 {
		t.Fatalf("triangle admitted %d seats, want fewer than 128", len(seats))
	}
	if len(seats) == 0 {
		t.Fatal("triangle admitted no seats")
	}
	assertInside(t, poly, seats, 14)

	pl := planSeats(poly, p)
	if len(pl.candidates) != 128 {
		t.Fatalf("planned %d candidates, want 128", len(pl.candidates))
	}
	dropped := 0
	for _, c := range pl.candidates {
		if !c.inside {
			dropped++
			if geometry.PointInPolygon(c.center, poly) {
				t.Errorf("candidate %v dropped but inside the polygon", c.center)
			}
		}
	}
	if dropped != 128-len(seats) {
		t.Errorf("dropped %d candidates, generated %d seats", dropped, len(seats))
	}

	r := Shortfall(p, seats)
	if r.Requested != 128 || r.Generated != len(seats) || r.Missing() != dropped {
		t.Errorf("Shortfall = %+v", r)
	}

	// Numbers restart at 1 for the admitted seats of each row.
	if seats[0].Row != "A" || seats[0].Number != "1" {
		t.Errorf("first seat = %s%s, want A1", seats[0].Row, seats[0].Number)
	}
}

func TestGenerateWedgeDropsPartOfGrid(t *testing.T) {
	// A right-angled triangle whose hypotenuse cuts the centred 4x4 grid.
	wedge := geometry.Polygon{geometry.V(0, 0), geometry.V(400, 0), geometry.V(0, 300)}
	p := gridParams()
	seats := Generate(wedge, p)
	if len(seats) >= 16 || len(seats) == 0 {
		t.Fatalf("wedge admitted %d of 16 seats", len(seats))
	}
	assertInside(t, wedge, seats, 14)

	for _, c := range planSeats(wedge, p).candidates {
		if !c.inside && geometry.PointInPolygon(c.center, wedge) {
			t.Errorf("candidate %v dropped but inside the wedge", c.center)
		}
	}

	// The same grid fits whole inside the isosceles triangle.
	tri := shape.ToPolygon(shape.Triangle, hall)
	if n := len(Generate(tri, p)); n != 16 {
		t.Errorf("triangle admitted %d seats, want 16", n)
	}
}

func TestGenerateDegenerateInput(t *testing.T) {
	poly := shape.ToPolygon(shape.Rectangle, hall)
	tests := []struct {
		name string
		poly geometry.Polygon
		mod  func(*Params)
	}{
		{"two vertices", geometry.Polygon{geometry.V(0, 0), geometry.V(10, 10)}, func(*Params) {}},
		{"negative rows", poly, func(p *Params) { p.Rows = -1 }},
		{"negative cols", poly, func(p *Params) { p.Cols = -2 }},
		{"zero seat size", poly, func(p *Params) { p.SeatSize = 0 }},
		{"zero cols", poly, func(p *Params) { p.Cols = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := gridParams()
			tt.mod(&p)
			if seats := Generate(tt.poly, p); len(seats) != 0 {
				t.Errorf("got %d seats, want none", len(seats))
			}
		})
	}
}

func TestGenerateRowSeatCounts(t *testing.T) {
	poly := shape.ToPolygon(shape.Rectangle, hall)
	tests := []struct {
		align Align
		want  []float64 // centre x of the two seats in row A
	}{
		{AlignLeft, []float64{176, 192}},
		{AlignCenter, []float64{192, 208}},
		{AlignRight, []float64{208, 224}},
	}
	for _, tt := range tests {
		t.Run(string(tt.align), func(t *testing.T) {
			p := gridParams()
			p.Rows, p.Cols = 0, 0
			p.RowSeatCounts = []int{2, 4}
			p.RowAlign = tt.align

			seats := Generate(poly, p)
			if len(seats) != 6 {
				t.Fatalf("got %d seats, want 6", len(seats))
			}
			for i, x := range tt.want {
				if c := seats[i].Center(14); math.Abs(c.X-x) > 1e-9 {
					t.Errorf("seat %d centre x = %v, want %v", i, c.X, x)
				}
			}
			if seats[2].Row != "B" || seats[5].Number != "4" {
				t.Errorf("row B labelled %s..%s", seats[2].Row, seats[5].Number)
			}
		})
	}
}

func TestGenerateRotatedGrid(t *testing.T) {
	poly := shape.ToPolygon(shape.Rectangle, hall)
	p := gridParams()
	p.Rotation = 90
	seats := Generate(poly, p)
	if len(seats) != 16 {
		t.Fatalf("got %d seats, want 16", len(seats))
	}
	assertInside(t, poly, seats, 14)
	for _, s := range seats {
		if s.Rotation != 90 {
			t.Fatalf("seat rotation = %v, want 90", s.Rotation)
		}
	}
}

func TestGenerateScanCompactsRows(t *testing.T) {
	// A thin spike on top leaves the first scan bands empty.
	poly := geometry.Polygon{
		geometry.V(50, 0), geometry.V(52, 40), geometry.V(100, 40), geometry.V(100, 100),
		geometry.V(0, 100), geometry.V(0, 40), geometry.V(48, 40),
	}
	p := gridParams()
	p.Rows, p.Cols = 0, 0

	seats := Generate(poly, p)
	if len(seats) != 8 {
		t.Fatalf("got %d seats, want 8", len(seats))
	}
	if seats[0].Row != "A" || seats[7].Row != "B" {
		t.Errorf("rows = %s..%s, want A..B", seats[0].Row, seats[7].Row)
	}
	assertInside(t, poly, seats, 14)

	if r := Shortfall(p, seats); r.Requested != 0 || r.Missing() != 0 {
		t.Errorf("scan Shortfall = %+v", r)
	}
}

func TestGenerateRadial(t *testing.T) {
	poly := shape.ApplyCurvature(shape.Rectangle, hall, 100)
	p := gridParams()
	p.Curvature = 100
	p.Rows, p.Cols = 3, 0

	if StrategyFor(p) != Radial {
		t.Fatalf("strategy = %s, want radial", StrategyFor(p))
	}
	seats := Generate(poly, p)
	assertInside(t, poly, seats, 14)

	perRow := map[string]int{}
	for _, s := range seats {
		perRow[s.Row]++
	}
	if perRow["A"] != 15 || perRow["B"] != 26 || perRow["C"] != 37 {
		t.Errorf("seats per row = %v, want A:15 B:26 C:37", perRow)
	}

	// The middle seat of the inner row sits on the axis facing the focus.
	mid := seats[7]
	if c := mid.Center(14); math.Abs(c.X-200) > 1e-9 {
		t.Errorf("middle seat x = %v, want 200", c.X)
	}
	if math.Abs(mid.Rotation) > 1e-9 && math.Abs(mid.Rotation-360) > 1e-9 {
		t.Errorf("middle seat rotation = %v, want 0", mid.Rotation)
	}

	p.Cols = 10
	capped := Generate(poly, p)
	if len(capped) != 30 {
		t.Errorf("capped radial layout has %d seats, want 30", len(capped))
	}
	if r := Shortfall(p, capped); r.Requested != 30 || r.Missing() != 0 {
		t.Errorf("radial Shortfall = %+v", r)
	}
}

func TestGenerateCurvedGrid(t *testing.T) {
	poly := shape.ApplyCurvature(shape.Rectangle, hall, 20)
	p := gridParams()
	p.Curvature = 20
	if StrategyFor(p) != CurvedGrid {
		t.Fatalf("strategy = %s, want curved-grid", StrategyFor(p))
	}
	seats := Generate(poly, p)
	if len(seats) == 0 {
		t.Fatal("curved grid produced no seats")
	}
	assertInside(t, poly, seats, 14)
}

func TestGenerateFurniture(t *testing.T) {
	poly := shape.ToPolygon(shape.Rectangle, hall)
	p := gridParams()
	p.Rows, p.Cols = 2, 2
	p.Furniture = Table

	if w, h := p.ItemSize(); w != 144 || h != 84 {
		t.Fatalf("ItemSize = %vx%v, want 144x84", w, h)
	}
	seats := Generate(poly, p)
	if len(seats) != 4 {
		t.Fatalf("got %d tables, want 4", len(seats))
	}
	for _, s := range seats {
		if s.Furniture != Table || s.Table == nil || s.Table.Chairs != 6 {
			t.Fatalf("unexpected furniture on %+v", s)
		}
		if !poly.Contains(s.Center(14)) {
			t.Errorf("table centre %v outside", s.Center(14))
		}
	}
	seats[0].Table.Chairs = 2
	if seats[1].Table.Chairs != 6 {
		t.Error("tables share one configuration")
	}
}

func TestGeneratePrefixAndScheme(t *testing.T) {
	poly := shape.ToPolygon(shape.Rectangle, hall)
	p := gridParams()
	p.Prefix = "U"
	p.Scheme = "reverse"
	seats := Generate(poly, p)
	if seats[0].Row != "UA" || seats[0].Number != "4" || seats[0].Label() != "UA4" {
		t.Errorf("first seat = %q/%q", seats[0].Row, seats[0].Number)
	}
}

// TestRepositionPreservesIdentity checks that reshaping only moves seats.
func TestRepositionPreservesIdentity(t *testing.T) {
	oldPoly := shape.ToPolygon(shape.Rectangle, hall)
	seats := Generate(oldPoly, gridParams())
	other := Seat{ID: "x", SectorID: "s2", Row: "Z", Number: "9", X: 1000, Y: 1000}
	seats = append(seats, other)

	narrow := shape.ToPolygon(shape.Rectangle, geometry.Rect(0, 0, 200, 300))
	moved := Reposition(seats, oldPoly, narrow, "s1", 14)
	if len(moved) != len(seats) {
		t.Fatalf("Reposition kept %d of %d seats", len(moved), len(seats))
	}
	for i := range seats[:16] {
		before, after := seats[i], moved[i]
		if after.ID != before.ID || after.Row != before.Row || after.Number != before.Number || after.Type != before.Type {
			t.Errorf("seat %d identity changed: %+v -> %+v", i, before, after)
		}
		wantX := before.Center(14).X/2 - 7
		if math.Abs(after.X-wantX) > 1e-9 || math.Abs(after.Y-before.Y) > 1e-9 {
			t.Errorf("seat %d moved to (%v,%v), want (%v,%v)", i, after.X, after.Y, wantX, before.Y)
		}
	}
	if moved[16] != other {
		t.Errorf("other sector's seat changed: %+v", moved[16])
	}
}

func TestRepositionDropsSeatsOutsideNewPolygon(t *testing.T) {
	oldPoly := shape.ToPolygon(shape.Rectangle, hall)
	p := gridParams()
	p.Rows, p.Cols = 8, 16
	seats := Generate(oldPoly, p)

	tri := shape.ToPolygon(shape.Triangle, hall)
	moved := Reposition(seats, oldPoly, tri, "s1", 14)
	if len(moved) >= len(seats) {
		t.Fatalf("no seats dropped: %d -> %d", len(seats), len(moved))
	}
	assertInside(t, tri, moved, 14)
}

func TestResizePolygon(t *testing.T) {
	rect := shape.ToPolygon(shape.Rectangle, hall)
	nb := geometry.Rect(10, 10, 100, 50)

	got, err := ResizePolygon(rect, shape.Rectangle, 0, nb)
	if err != nil {
		t.Fatalf("ResizePolygon: %v", err)
	}
	if len(got) != 4 || got.Bounds() != nb {
		t.Errorf("regenerated rectangle = %v", got)
	}

	custom := append(rect.Clone(), geometry.V(0, 150))
	scaled, err := ResizePolygon(custom, shape.Rectangle, 0, nb)
	if err != nil {
		t.Fatalf("ResizePolygon custom: %v", err)
	}
	if len(scaled) != 5 {
		t.Fatalf("custom polygon lost vertices: %v", scaled)
	}
	if b := scaled.Bounds(); math.Abs(b.X-10) > 1e-9 || math.Abs(b.Width-100) > 1e-9 || math.Abs(b.Height-50) > 1e-9 {
		t.Errorf("scaled bounds = %+v", b)
	}
	if !scaled[4].Equal(geometry.V(10, 35), 1e-9) {
		t.Errorf("extra vertex = %v, want (10,35)", scaled[4])
	}

	for _, bad := range []geometry.Bounds{
		geometry.Rect(0, 0, 10, 100),
		geometry.Rect(0, 0, 100, 30000),
	} {
		if _, err := ResizePolygon(rect, shape.Rectangle, 0, bad); !errors.Is(err, ErrBoundsOutOfRange) {
			t.Errorf("ResizePolygon(%+v) error = %v, want ErrBoundsOutOfRange", bad, err)
		}
	}
}
