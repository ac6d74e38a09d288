// Package geometry provides the plane primitives shared by the layout engine:
// vertices, implicitly closed polygons and axis-aligned bounds.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vertex is a point in the sector's local coordinate space.
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// V is shorthand for Vertex{X: x, Y: y}.
func V(x, y float64) Vertex {
	return Vertex{X: x, Y: y}
}

// Vec converts the vertex to a gonum vector.
func (v Vertex) Vec() r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

// FromVec converts a gonum vector to a Vertex.
func FromVec(v r2.Vec) Vertex {
	return Vertex{X: v.X, Y: v.Y}
}

// Add returns v + o.
func (v Vertex) Add(o Vertex) Vertex {
	return FromVec(r2.Add(v.Vec(), o.Vec()))
}

// Sub returns v - o.
func (v Vertex) Sub(o Vertex) Vertex {
	return FromVec(r2.Sub(v.Vec(), o.Vec()))
}

// Scale returns v scaled by f.
func (v Vertex) Scale(f float64) Vertex {
	return FromVec(r2.Scale(f, v.Vec()))
}

// Distance returns the Euclidean distance to o.
func (v Vertex) Distance(o Vertex) float64 {
	return r2.Norm(r2.Sub(v.Vec(), o.Vec()))
}

// Equal reports whether v and o are within eps of each other on both axes.
func (v Vertex) Equal(o Vertex, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// Bounds is an axis-aligned rectangle. It is always derived from a Polygon
// and never treated as the source of truth.
type Bounds struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect creates Bounds from its origin and size.
func Rect(x, y, width, height float64) Bounds {
	return Bounds{X: x, Y: y, Width: width, Height: height}
}

// Center returns the centre point of the bounds.
func (b Bounds) Center() Vertex {
	return Vertex{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// Max returns the bottom-right corner.
func (b Bounds) Max() Vertex {
	return Vertex{X: b.X + b.Width, Y: b.Y + b.Height}
}

// Contains reports whether p lies inside the bounds, edges included.
func (b Bounds) Contains(p Vertex) bool {
	return p.X >= b.X && p.X <= b.X+b.Width &&
		p.Y >= b.Y && p.Y <= b.Y+b.Height
}

// IsEmpty reports whether the bounds have no area.
func (b Bounds) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Union returns the smallest bounds containing both b and o.
// Empty bounds are ignored.
func (b Bounds) Union(o Bounds) Bounds {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	x := math.Min(b.X, o.X)
	y := math.Min(b.Y, o.Y)
	x2 := math.Max(b.X+b.Width, o.X+o.Width)
	y2 := math.Max(b.Y+b.Height, o.Y+o.Height)
	return Bounds{X: x, Y: y, Width: x2 - x, Height: y2 - y}
}

// Fraction expresses p as a fraction of the bounds on each axis. A degenerate
// axis maps to 0.5.
func (b Bounds) Fraction(p Vertex) (fx, fy float64) {
	fx, fy = 0.5, 0.5
	if b.Width != 0 {
		fx = (p.X - b.X) / b.Width
	}
	if b.Height != 0 {
		fy = (p.Y - b.Y) / b.Height
	}
	return fx, fy
}

// At returns the point at the given fractional position inside the bounds.
func (b Bounds) At(fx, fy float64) Vertex {
	return Vertex{X: b.X + fx*b.Width, Y: b.Y + fy*b.Height}
}
