// Package shape turns a named sector shape and a bounding rectangle into a
// closed polygon, and bends that polygon toward a radial arc as the sector's
// curvature increases.
package shape

import (
	"math"
	"sort"

	"github.com/OpenTraceLab/OpenTraceVenue/pkg/geometry"
)

// Shape identifies one of the built-in sector outlines.
type Shape string

const (
	Rectangle     Shape = "rectangle"
	Parallelogram Shape = "parallelogram"
	Trapezoid     Shape = "trapezoid"
	Triangle      Shape = "triangle"
	Pentagon      Shape = "pentagon"
	Hexagon       Shape = "hexagon"
	Octagon       Shape = "octagon"
	Circle        Shape = "circle"
	Arc           Shape = "arc"
	Diamond       Shape = "diamond"
	LShape        Shape = "l-shape"
	UShape        Shape = "u-shape"
	TShape        Shape = "t-shape"
	ZShape        Shape = "z-shape"
	Cross         Shape = "cross"
	Arrow         Shape = "arrow"
	Star          Shape = "star"
	Wave          Shape = "wave"
)

// canonicalCounts is the vertex count ToPolygon produces for each shape.
var canonicalCounts = map[Shape]int{
	Rectangle:     4,
	Parallelogram: 4,
	Trapezoid:     4,
	Triangle:      3,
	Pentagon:      5,
	Hexagon:       6,
	Octagon:       8,
	Circle:        circleSegments,
	Arc:           2 * (arcShapeSegments + 1),
	Diamond:       4,
	LShape:        6,
	UShape:        8,
	TShape:        8,
	ZShape:        8,
	Cross:         12,
	Arrow:         7,
	Star:          10,
	Wave:          2 * (waveSegments + 1),
}

const (
	circleSegments   = 24
	arcShapeSegments = 12
	waveSegments     = 12

	slantInset     = 0.2 // parallelogram and trapezoid
	starInnerRatio = 0.4
	waveAmplitude  = 0.1
)

// All returns every known shape, sorted by name.
func All() []Shape {
	out := make([]Shape, 0, len(canonicalCounts))
	for s := range canonicalCounts {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Parse maps a shape name to a Shape. Unknown names report false.
func Parse(name string) (Shape, bool) {
	s := Shape(name)
	_, ok := canonicalCounts[s]
	return s, ok
}

// Known reports whether s is a built-in shape.
func (s Shape) Known() bool {
	_, ok := canonicalCounts[s]
	return ok
}

// CanonicalVertexCount returns the number of vertices ToPolygon produces for
// s. Unknown shapes report the rectangle's count since they fall back to it.
func CanonicalVertexCount(s Shape) int {
	if n, ok := canonicalCounts[s]; ok {
		return n
	}
	return canonicalCounts[Rectangle]
}

// ToPolygon builds the outline of s inscribed in b. It is a pure function of
// its arguments and always returns at least three vertices; unknown shapes
// fall back to a rectangle.
func ToPolygon(s Shape, b geometry.Bounds) geometry.Polygon {
	x, y, w, h := b.X, b.Y, b.Width, b.Height
	at := func(fx, fy float64) geometry.Vertex {
		return geometry.V(x+fx*w, y+fy*h)
	}

	switch s {
	case Parallelogram:
		return geometry.Polygon{at(slantInset, 0), at(1, 0), at(1-slantInset, 1), at(0, 1)}

	case Trapezoid:
		return geometry.Polygon{at(slantInset, 0), at(1-slantInset, 0), at(1, 1), at(0, 1)}

	case Triangle:
		return geometry.Polygon{at(0.5, 0), at(1, 1), at(0, 1)}

	case Pentagon:
		return regular(b, 5)
	case Hexagon:
		return regular(b, 6)
	case Octagon:
		return regular(b, 8)
	case Circle:
		return regular(b, circleSegments)

	case Star:
		return star(b)

	case Diamond:
		return geometry.Polygon{at(0.5, 0), at(1, 0.5), at(0.5, 1), at(0, 0.5)}

	case LShape:
		return geometry.Polygon{
			at(0, 0), at(0.4, 0), at(0.4, 0.6),
			at(1, 0.6), at(1, 1), at(0, 1),
		}

	case UShape:
		return geometry.Polygon{
			at(0, 0), at(0.3, 0), at(0.3, 0.6), at(0.7, 0.6),
			at(0.7, 0), at(1, 0), at(1, 1), at(0, 1),
		}

	case TShape:
		return geometry.Polygon{
			at(0, 0), at(1, 0), at(1, 0.35), at(0.65, 0.35),
			at(0.65, 1), at(0.35, 1), at(0.35, 0.35), at(0, 0.35),
		}

	case ZShape:
		return geometry.Polygon{
			at(0, 0), at(0.7, 0), at(0.7, 0.6), at(1, 0.6),
			at(1, 1), at(0.3, 1), at(0.3, 0.4), at(0, 0.4),
		}

	case Cross:
		return geometry.Polygon{
			at(0.3, 0), at(0.7, 0), at(0.7, 0.3), at(1, 0.3),
			at(1, 0.7), at(0.7, 0.7), at(0.7, 1), at(0.3, 1),
			at(0.3, 0.7), at(0, 0.7), at(0, 0.3), at(0.3, 0.3),
		}

	case Arrow:
		return geometry.Polygon{
			at(0, 0.3), at(0.6, 0.3), at(0.6, 0), at(1, 0.5),
			at(0.6, 1), at(0.6, 0.7), at(0, 0.7),
		}

	case Wave:
		return wave(b)

	case Arc:
		return Band{
			Sweep:      math.Pi,
			InnerRatio: fullArcInnerRatio,
			Segments:   arcShapeSegments,
		}.Polygon(b)

	default:
		return geometry.Polygon{at(0, 0), at(1, 0), at(1, 1), at(0, 1)}
	}
}

// regular places n vertices on the ellipse inscribed in b, apex pointing up.
func regular(b geometry.Bounds, n int) geometry.Polygon {
	c := b.Center()
	rx, ry := b.Width/2, b.Height/2
	out := make(geometry.Polygon, n)
	for i := 0; i < n; i++ {
		a := float64(i)*(2*math.Pi/float64(n)) - math.Pi/2
		out[i] = geometry.V(c.X+rx*math.Cos(a), c.Y+ry*math.Sin(a))
	}
	return out
}

func star(b geometry.Bounds) geometry.Polygon {
	c := b.Center()
	rx, ry := b.Width/2, b.Height/2
	out := make(geometry.Polygon, 10)
	for i := range out {
		k := 1.0
		if i%2 == 1 {
			k = starInnerRatio
		}
		a := float64(i)*math.Pi/5 - math.Pi/2
		out[i] = geometry.V(c.X+k*rx*math.Cos(a), c.Y+k*ry*math.Sin(a))
	}
	return out
}

// wave is a ribbon whose top and bottom edges follow the same sine, so the
// band keeps a constant thickness and touches both bounds edges.
func wave(b geometry.Bounds) geometry.Polygon {
	amp := b.Height * waveAmplitude
	out := make(geometry.Polygon, 0, 2*(waveSegments+1))
	for i := 0; i <= waveSegments; i++ {
		t := float64(i) / waveSegments
		out = append(out, geometry.V(
			b.X+t*b.Width,
			b.Y+amp*(1+math.Sin(2*math.Pi*t)),
		))
	}
	for i := waveSegments; i >= 0; i-- {
		t := float64(i) / waveSegments
		out = append(out, geometry.V(
			b.X+t*b.Width,
			b.Y+b.Height-amp*(1-math.Sin(2*math.Pi*t)),
		))
	}
	return out
}
