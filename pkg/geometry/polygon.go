package geometry

import "math"

// Polygon is an ordered vertex list, implicitly closed (the last vertex
// connects back to the first). It is usable for containment when it has at
// least three vertices.
type Polygon []Vertex

// MinVertices is the smallest vertex count of a usable polygon.
const MinVertices = 3

// Valid reports whether the polygon has enough vertices to enclose an area.
func (p Polygon) Valid() bool {
	return len(p) >= MinVertices
}

// Clone returns a copy of the polygon that shares no storage with p.
func (p Polygon) Clone() Polygon {
	if p == nil {
		return nil
	}
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// Equal reports whether p and o have the same vertices in the same order,
// each within eps.
func (p Polygon) Equal(o Polygon, eps float64) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if !p[i].Equal(o[i], eps) {
			return false
		}
	}
	return true
}

// Edge returns the i-th edge, wrapping around at the end.
func (p Polygon) Edge(i int) (Vertex, Vertex) {
	n := len(p)
	return p[i%n], p[(i+1)%n]
}

// Bounds returns the axis-aligned bounds of the polygon.
func (p Polygon) Bounds() Bounds {
	return BoundsOf(p)
}

// Contains reports whether pt is inside the polygon (ray casting).
func (p Polygon) Contains(pt Vertex) bool {
	return PointInPolygon(pt, p)
}

// Translate returns the polygon moved by d.
func (p Polygon) Translate(d Vertex) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = v.Add(d)
	}
	return out
}

// ScaleAbout scales every vertex about origin by (sx, sy) and then moves the
// origin to target.
func (p Polygon) ScaleAbout(origin, target Vertex, sx, sy float64) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = Vertex{
			X: target.X + (v.X-origin.X)*sx,
			Y: target.Y + (v.Y-origin.Y)*sy,
		}
	}
	return out
}

// SignedArea returns the shoelace area; positive for counter-clockwise winding
// in a y-up frame (clockwise on screen).
func (p Polygon) SignedArea() float64 {
	n := len(p)
	if n < MinVertices {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return area / 2
}

// Area returns the unsigned polygon area.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// PointInPolygon tests whether pt is inside the polygon by ray casting. The
// test is independent of winding order. Polygons with fewer than three
// vertices contain nothing.
func PointInPolygon(pt Vertex, polygon []Vertex) bool {
	n := len(polygon)
	if n < MinVertices {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := polygon[i], polygon[j]
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) &&
			pt.X < (pj.X-pi.X)*(pt.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}

// BoundsOf computes the bounds of a vertex set. An empty set yields zero bounds.
func BoundsOf(points []Vertex) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return Bounds{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Centroid returns the average of the vertices.
func Centroid(points []Vertex) Vertex {
	if len(points) == 0 {
		return Vertex{}
	}
	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(points))
	return Vertex{X: sx / n, Y: sy / n}
}
