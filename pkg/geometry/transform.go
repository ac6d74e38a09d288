package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeDegrees maps an angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// RotateAbout rotates p by deg degrees about center. Positive angles turn
// clockwise on a y-down screen. This is the single rotation primitive used by
// rendering, hit-testing and seat packing; stored vertices are never rotated.
func RotateAbout(p, center Vertex, deg float64) Vertex {
	if deg == 0 {
		return p
	}
	return FromVec(r2.Rotate(p.Vec(), Radians(deg), center.Vec()))
}

// Rotated returns the polygon rotated by deg about the centre of its bounds,
// for display. The receiver is not modified.
func (p Polygon) Rotated(deg float64) Polygon {
	out := p.Clone()
	if deg == 0 || len(p) == 0 {
		return out
	}
	c := p.Bounds().Center()
	for i, v := range out {
		out[i] = RotateAbout(v, c, deg)
	}
	return out
}

// Projection is the result of projecting a point onto a segment.
type Projection struct {
	T        float64 // clamped parametric position along the segment
	Point    Vertex  // nearest point on the segment
	Distance float64 // distance from the query point to Point
}

// ProjectOntoSegment projects p onto segment ab, clamping to the segment ends.
func ProjectOntoSegment(p, a, b Vertex) Projection {
	ab := r2.Sub(b.Vec(), a.Vec())
	lenSq := r2.Dot(ab, ab)
	t := 0.0
	if lenSq > 0 {
		t = r2.Dot(r2.Sub(p.Vec(), a.Vec()), ab) / lenSq
		t = math.Max(0, math.Min(1, t))
	}
	q := FromVec(r2.Add(a.Vec(), r2.Scale(t, ab)))
	return Projection{T: t, Point: q, Distance: p.Distance(q)}
}

// Lerp interpolates between a and b.
func Lerp(a, b Vertex, t float64) Vertex {
	return Vertex{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}
