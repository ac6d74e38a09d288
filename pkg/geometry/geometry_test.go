package geometry

import (
	"math"
	"testing"
)

func TestPointInPolygon(t *testing.T) {
	square := Polygon{V(0, 0), V(10, 0), V(10, 10), V(0, 10)}
	reversed := Polygon{V(0, 10), V(10, 10), V(10, 0), V(0, 0)}
	concave := Polygon{V(0, 0), V(4, 0), V(4, 6), V(10, 6), V(10, 10), V(0, 10)} // L-shape

	tests := []struct {
		name string
		poly Polygon
		pt   Vertex
		want bool
	}{
		{"centre", square, V(5, 5), true},
		{"outside right", square, V(11, 5), false},
		{"outside above", square, V(5, -1), false},
		{"reversed winding", reversed, V(5, 5), true},
		{"concave notch", concave, V(7, 3), false},
		{"concave arm", concave, V(7, 8), true},
		{"degenerate", Polygon{V(0, 0), V(10, 10)}, V(5, 5), false},
		{"empty", nil, V(0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInPolygon(tt.pt, tt.poly); got != tt.want {
				t.Errorf("PointInPolygon(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestBoundsOf(t *testing.T) {
	b := BoundsOf([]Vertex{V(3, 4), V(-2, 8), V(5, -1)})
	want := Rect(-2, -1, 7, 9)
	if b != want {
		t.Fatalf("BoundsOf = %+v, want %+v", b, want)
	}
	if c := b.Center(); !c.Equal(V(1.5, 3.5), 1e-9) {
		t.Errorf("Center = %v", c)
	}
	if got := BoundsOf(nil); got != (Bounds{}) {
		t.Errorf("BoundsOf(nil) = %+v, want zero", got)
	}
}

func TestRotateAbout(t *testing.T) {
	c := V(10, 10)
	got := RotateAbout(V(20, 10), c, 90)
	if !got.Equal(V(10, 20), 1e-9) {
		t.Fatalf("RotateAbout 90 = %v, want (10,20)", got)
	}

	back := RotateAbout(got, c, -90)
	if !back.Equal(V(20, 10), 1e-9) {
		t.Errorf("inverse rotation = %v, want (20,10)", back)
	}

	if same := RotateAbout(V(1, 2), c, 0); same != V(1, 2) {
		t.Errorf("zero rotation moved the point: %v", same)
	}
}

func TestRotatedKeepsReceiver(t *testing.T) {
	p := Polygon{V(0, 0), V(10, 0), V(10, 10), V(0, 10)}
	r := p.Rotated(45)
	if p[1] != V(10, 0) {
		t.Fatalf("Rotated mutated the receiver: %v", p)
	}
	// A square rotated 45° about its centre has a vertex straight above the centre.
	top := r[0]
	for _, v := range r {
		if v.Y < top.Y {
			top = v
		}
	}
	if math.Abs(top.X-5) > 1e-9 {
		t.Errorf("top vertex x = %v, want 5", top.X)
	}
}

func TestPolygonEqual(t *testing.T) {
	sq := Polygon{V(0, 0), V(10, 0), V(10, 10), V(0, 10)}
	tests := []struct {
		name string
		o    Polygon
		want bool
	}{
		{"same", sq.Clone(), true},
		{"within eps", Polygon{V(0, 0), V(10, 1e-12), V(10, 10), V(0, 10)}, true},
		{"moved vertex", Polygon{V(0, 0), V(11, 0), V(10, 10), V(0, 10)}, false},
		{"fewer vertices", sq[:3], false},
		{"rotated order", Polygon{V(10, 0), V(10, 10), V(0, 10), V(0, 0)}, false},
	}
	for _, tt := range tests {
		if got := sq.Equal(tt.o, 1e-9); got != tt.want {
			t.Errorf("%s: Equal = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestProjectOntoSegment(t *testing.T) {
	tests := []struct {
		name  string
		p     Vertex
		wantT float64
		want  Vertex
		dist  float64
	}{
		{"middle", V(5, 3), 0.5, V(5, 0), 3},
		{"clamped start", V(-4, 3), 0, V(0, 0), 5},
		{"clamped end", V(14, 0), 1, V(10, 0), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr := ProjectOntoSegment(tt.p, V(0, 0), V(10, 0))
			if math.Abs(pr.T-tt.wantT) > 1e-9 || !pr.Point.Equal(tt.want, 1e-9) || math.Abs(pr.Distance-tt.dist) > 1e-9 {
				t.Errorf("got %+v, want t=%v point=%v dist=%v", pr, tt.wantT, tt.want, tt.dist)
			}
		})
	}

	zero := ProjectOntoSegment(V(3, 4), V(1, 1), V(1, 1))
	if zero.T != 0 || math.Abs(zero.Distance-math.Hypot(2, 3)) > 1e-9 {
		t.Errorf("zero-length segment projection = %+v", zero)
	}
}

func TestScaleAbout(t *testing.T) {
	p := Polygon{V(0, 0), V(10, 0), V(10, 10)}
	got := p.ScaleAbout(V(5, 5), V(50, 50), 2, 3)
	want := Polygon{V(40, 35), V(60, 35), V(60, 65)}
	for i := range want {
		if !got[i].Equal(want[i], 1e-9) {
			t.Errorf("vertex %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBoundsFraction(t *testing.T) {
	b := Rect(10, 20, 100, 50)
	fx, fy := b.Fraction(V(35, 45))
	if fx != 0.25 || fy != 0.5 {
		t.Fatalf("Fraction = (%v,%v)", fx, fy)
	}
	if got := Rect(0, 0, 200, 10).At(fx, fy); !got.Equal(V(50, 5), 1e-9) {
		t.Errorf("At = %v", got)
	}
	fx, fy = Rect(5, 5, 0, 0).Fraction(V(9, 9))
	if fx != 0.5 || fy != 0.5 {
		t.Errorf("degenerate Fraction = (%v,%v), want 0.5", fx, fy)
	}
}

func TestNormalizeDegrees(t *testing.T) {
	for in, want := range map[float64]float64{0: 0, 370: 10, -90: 270, 720: 0} {
		if got := NormalizeDegrees(in); got != want {
			t.Errorf("NormalizeDegrees(%v) = %v, want %v", in, got, want)
		}
	}
}
