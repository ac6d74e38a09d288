// Package hittest answers pointer queries against a rotated sector outline.
//
// Stored vertices are never rotated. Every query first turns the pointer
// into the polygon's local frame by rotating it by -Rotation about the centre
// of the polygon's bounds, then compares it with the stored vertices.
package hittest

import (
	"math"

	"github.com/OpenTraceLab/OpenTraceVenue/pkg/geometry"
)

// Screen-space hit radii in pixels. They are divided by the zoom factor so
// handles keep a constant on-screen size.
const (
	VertexRadius  = 8.0
	EdgeThreshold = 6.0
)

// Target is the outline being queried and the rotation it is displayed at.
type Target struct {
	Polygon  geometry.Polygon
	Rotation float64
}

// Center is the pivot of the target's rotation.
func (t Target) Center() geometry.Vertex {
	return t.Polygon.Bounds().Center()
}

// ToLocal maps a world point into the polygon's unrotated frame.
func (t Target) ToLocal(pt geometry.Vertex) geometry.Vertex {
	return geometry.RotateAbout(pt, t.Center(), -t.Rotation)
}

// ToWorld maps a local point to where it is displayed.
func (t Target) ToWorld(pt geometry.Vertex) geometry.Vertex {
	return geometry.RotateAbout(pt, t.Center(), t.Rotation)
}

// Radii holds the hit radii in screen pixels.
type Radii struct {
	Vertex float64
	Edge   float64
}

// DefaultRadii returns the stock hit radii.
func DefaultRadii() Radii {
	return Radii{Vertex: VertexRadius, Edge: EdgeThreshold}
}

func (r Radii) scaled(zoom float64) Radii {
	if zoom <= 0 {
		zoom = 1
	}
	return Radii{Vertex: r.Vertex / zoom, Edge: r.Edge / zoom}
}

// VertexAt returns the index of the vertex nearest pt within the vertex
// radius, using the default radii.
func VertexAt(pt geometry.Vertex, t Target, zoom float64) (int, bool) {
	return DefaultRadii().VertexAt(pt, t, zoom)
}

// VertexAt returns the index of the vertex nearest pt within r.Vertex/zoom.
func (r Radii) VertexAt(pt geometry.Vertex, t Target, zoom float64) (int, bool) {
	limit := r.scaled(zoom).Vertex
	local := t.ToLocal(pt)

	best, bestDist := -1, math.Inf(1)
	for i, v := range t.Polygon {
		if d := local.Distance(v); d <= limit && d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

// EdgeHit is an edge near the pointer. Point is the projection of the
// pointer onto the edge in local coordinates, where a new vertex would be
// inserted.
type EdgeHit struct {
	Index    int
	Point    geometry.Vertex
	T        float64
	Distance float64
}

// EdgeAt returns the edge closest to pt within the edge threshold, using the
// default radii.
func EdgeAt(pt geometry.Vertex, t Target, zoom float64) (EdgeHit, bool) {
	return DefaultRadii().EdgeAt(pt, t, zoom)
}

// EdgeAt returns the edge closest to pt within r.Edge/zoom.
func (r Radii) EdgeAt(pt geometry.Vertex, t Target, zoom float64) (EdgeHit, bool) {
	if len(t.Polygon) < 2 {
		return EdgeHit{}, false
	}
	limit := r.scaled(zoom).Edge
	local := t.ToLocal(pt)

	best := EdgeHit{Index: -1, Distance: math.Inf(1)}
	for i := range t.Polygon {
		a, b := t.Polygon.Edge(i)
		pr := geometry.ProjectOntoSegment(local, a, b)
		if pr.Distance <= limit && pr.Distance < best.Distance {
			best = EdgeHit{Index: i, Point: pr.Point, T: pr.T, Distance: pr.Distance}
		}
	}
	return best, best.Index >= 0
}

// ContainedIn reports whether pt lies inside the rotated target.
func ContainedIn(pt geometry.Vertex, t Target) bool {
	if !t.Polygon.Valid() {
		return false
	}
	return t.Polygon.Contains(t.ToLocal(pt))
}

// Kind classifies a unified hit.
type Kind int

const (
	None Kind = iota
	Inside
	OnEdge
	OnVertex
)

func (k Kind) String() string {
	switch k {
	case OnVertex:
		return "vertex"
	case OnEdge:
		return "edge"
	case Inside:
		return "inside"
	}
	return "none"
}

// Result is the outcome of Hit. Vertex is set for OnVertex and Edge for
// OnEdge.
type Result struct {
	Kind   Kind
	Vertex int
	Edge   EdgeHit
}

// Hit runs the vertex, edge and containment queries in priority order.
func (r Radii) Hit(pt geometry.Vertex, t Target, zoom float64) Result {
	if i, ok := r.VertexAt(pt, t, zoom); ok {
		return Result{Kind: OnVertex, Vertex: i}
	}
	if e, ok := r.EdgeAt(pt, t, zoom); ok {
		return Result{Kind: OnEdge, Vertex: -1, Edge: e}
	}
	if ContainedIn(pt, t) {
		return Result{Kind: Inside, Vertex: -1}
	}
	return Result{Kind: None, Vertex: -1}
}

// Hit runs the unified query with the default radii.
func Hit(pt geometry.Vertex, t Target, zoom float64) Result {
	return DefaultRadii().Hit(pt, t, zoom)
}
