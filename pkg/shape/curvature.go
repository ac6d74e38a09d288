package shape

import (
	"math"

	"github.com/OpenTraceLab/OpenTraceVenue/pkg/geometry"
)

// Curvature thresholds. The regimes are deliberately discrete: 0 is flat,
// 1..39 bends the edges, 40..79 is a shallow radial band and 80..100 is a
// full arc.
const (
	MinCurvature        = 0
	MaxCurvature        = 100
	TransitionThreshold = 40
	FullArcThreshold    = 80
)

const (
	arcSegments            = 20
	edgeSubdivisions       = 4
	fullArcInnerRatio      = 0.35
	transitionInnerRatio   = 0.6
	minBandSweepDegrees    = 90.0
	maxBandSweepDegrees    = 180.0
	transitionSweepDegrees = 170.0
	edgeDeformationScale   = 0.5
)

// RegimeKind tags the geometry regime selected by a curvature value.
type RegimeKind int

const (
	Flat RegimeKind = iota
	EdgeDeformed
	TransitionalArc
	FullArc
)

func (k RegimeKind) String() string {
	switch k {
	case Flat:
		return "flat"
	case EdgeDeformed:
		return "edge-deformed"
	case TransitionalArc:
		return "transitional-arc"
	case FullArc:
		return "full-arc"
	}
	return "unknown"
}

// Band describes a radial band between two concentric arcs that share the
// vertical axis of the bounds, apex up.
type Band struct {
	Sweep      float64 // total angular span in radians
	InnerRatio float64 // inner radius as a fraction of the outer radius
	Segments   int     // intervals per arc; each arc has Segments+1 points
}

// Regime is the parameter set for one curvature regime. Band is only
// meaningful for the two arc kinds.
type Regime struct {
	Kind      RegimeKind
	Curvature int
	Band      Band
}

// ClampCurvature limits c to [MinCurvature, MaxCurvature].
func ClampCurvature(c int) int {
	if c < MinCurvature {
		return MinCurvature
	}
	if c > MaxCurvature {
		return MaxCurvature
	}
	return c
}

// RegimeFor selects the regime for a shape at a curvature.
func RegimeFor(s Shape, curvature int) Regime {
	c := ClampCurvature(curvature)
	r := Regime{Curvature: c}

	switch {
	case c == 0:
		r.Kind = Flat

	case s == Arc:
		// The arc shape is already a band; curvature only widens the sweep.
		r.Kind = FullArc
		r.Band = Band{
			Sweep:      degreesBetween(minBandSweepDegrees, maxBandSweepDegrees, float64(c)/MaxCurvature),
			InnerRatio: fullArcInnerRatio,
			Segments:   arcSegments,
		}

	case c >= FullArcThreshold:
		r.Kind = FullArc
		t := float64(c-FullArcThreshold) / float64(MaxCurvature-FullArcThreshold)
		r.Band = Band{
			Sweep:      degreesBetween(minBandSweepDegrees, maxBandSweepDegrees, t),
			InnerRatio: fullArcInnerRatio,
			Segments:   arcSegments,
		}

	case c >= TransitionThreshold:
		r.Kind = TransitionalArc
		t := float64(c-TransitionThreshold) / float64(FullArcThreshold-TransitionThreshold)
		r.Band = Band{
			Sweep:      degreesBetween(minBandSweepDegrees, transitionSweepDegrees, t),
			InnerRatio: transitionInnerRatio - (transitionInnerRatio-fullArcInnerRatio)*t,
			Segments:   arcSegments,
		}

	default:
		r.Kind = EdgeDeformed
	}
	return r
}

// BandFor returns the band a sector's polygon follows when it is radial: the
// arc shape at any curvature, or any shape at or above the transition
// threshold.
func BandFor(s Shape, curvature int) (Band, bool) {
	r := RegimeFor(s, curvature)
	switch r.Kind {
	case TransitionalArc, FullArc:
		return r.Band, true
	}
	if s == Arc {
		return Band{Sweep: math.Pi, InnerRatio: fullArcInnerRatio, Segments: arcShapeSegments}, true
	}
	return Band{}, false
}

// IsRadial reports whether seats for this shape and curvature are packed on
// concentric arcs.
func IsRadial(s Shape, curvature int) bool {
	_, ok := BandFor(s, curvature)
	return ok
}

// ApplyCurvature produces the sector polygon for a shape bent by curvature.
func ApplyCurvature(s Shape, b geometry.Bounds, curvature int) geometry.Polygon {
	r := RegimeFor(s, curvature)
	switch r.Kind {
	case TransitionalArc, FullArc:
		return r.Band.Polygon(b)
	case EdgeDeformed:
		return deformEdges(ToPolygon(s, b), b, r.Curvature)
	default:
		return ToPolygon(s, b)
	}
}

// ExpectedVertexCount is the vertex count ApplyCurvature yields for s at
// curvature. A polygon with any other count has been customised by hand.
func ExpectedVertexCount(s Shape, curvature int) int {
	r := RegimeFor(s, curvature)
	switch r.Kind {
	case TransitionalArc, FullArc:
		return 2 * (r.Band.Segments + 1)
	case EdgeDeformed:
		return edgeSubdivisions * CanonicalVertexCount(s)
	default:
		return CanonicalVertexCount(s)
	}
}

// IsStandard reports whether p still has the vertex count generated for s at
// curvature.
func IsStandard(p geometry.Polygon, s Shape, curvature int) bool {
	return len(p) == ExpectedVertexCount(s, curvature)
}

// ArcFrame is the circle geometry behind a band.
type ArcFrame struct {
	Center geometry.Vertex
	Outer  float64
	Inner  float64
	Start  float64 // angle of the first outer point, radians
	Sweep  float64
}

// PointAt returns the point at angle a and radius r.
func (f ArcFrame) PointAt(a, r float64) geometry.Vertex {
	return geometry.V(f.Center.X+r*math.Cos(a), f.Center.Y+r*math.Sin(a))
}

// Mid is the angle of the band's axis of symmetry (straight up).
func (f ArcFrame) Mid() float64 {
	return f.Start + f.Sweep/2
}

// FrameIn lays the band out inside b: the outer radius is half the larger
// dimension and the outer apex touches the top edge.
func (bd Band) FrameIn(b geometry.Bounds) ArcFrame {
	outer := math.Max(b.Width, b.Height) / 2
	return bd.frame(geometry.V(b.X+b.Width/2, b.Y+outer), outer)
}

// FrameOf recovers the frame from the bounds of a polygon produced by
// Polygon, so seat packing can follow the arcs the user sees.
func (bd Band) FrameOf(polygonBounds geometry.Bounds) ArcFrame {
	outer := polygonBounds.Width / 2
	if s := math.Sin(math.Min(bd.Sweep, math.Pi) / 2); s > 0 {
		outer /= s
	}
	return bd.frame(geometry.V(polygonBounds.X+polygonBounds.Width/2, polygonBounds.Y+outer), outer)
}

func (bd Band) frame(center geometry.Vertex, outer float64) ArcFrame {
	return ArcFrame{
		Center: center,
		Outer:  outer,
		Inner:  outer * bd.InnerRatio,
		Start:  -math.Pi/2 - bd.Sweep/2,
		Sweep:  bd.Sweep,
	}
}

// Polygon samples the band inside b: the outer arc from left to right, then
// the inner arc back from right to left.
func (bd Band) Polygon(b geometry.Bounds) geometry.Polygon {
	f := bd.FrameIn(b)
	n := bd.Segments
	if n < 1 {
		n = 1
	}
	out := make(geometry.Polygon, 0, 2*(n+1))
	for i := 0; i <= n; i++ {
		out = append(out, f.PointAt(f.Start+f.Sweep*float64(i)/float64(n), f.Outer))
	}
	for i := n; i >= 0; i-- {
		out = append(out, f.PointAt(f.Start+f.Sweep*float64(i)/float64(n), f.Inner))
	}
	return out
}

// deformEdges subdivides every edge and lifts the sub-points with a
// parabolic falloff from the vertical centre line, strongest along the top.
func deformEdges(p geometry.Polygon, b geometry.Bounds, curvature int) geometry.Polygon {
	if len(p) == 0 {
		return p
	}
	out := make(geometry.Polygon, 0, len(p)*edgeSubdivisions)
	for i := range p {
		a, c := p.Edge(i)
		for k := 0; k < edgeSubdivisions; k++ {
			pt := geometry.Lerp(a, c, float64(k)/edgeSubdivisions)
			pt.Y -= edgeLift(b, curvature, pt)
			out = append(out, pt)
		}
	}
	return out
}

// edgeLift is the upward displacement the edge-deformed regime applies to a
// point of the undeformed outline inscribed in b.
func edgeLift(b geometry.Bounds, curvature int, pt geometry.Vertex) float64 {
	lift := float64(ClampCurvature(curvature)) / MaxCurvature * edgeDeformationScale * b.Height

	xn := 0.0
	if halfW := b.Width / 2; halfW > 0 {
		xn = clamp((pt.X-(b.X+halfW))/halfW, -1, 1)
	}
	wy := 1.0
	if b.Height > 0 {
		wy = clamp(1-(pt.Y-b.Y)/b.Height, 0, 1)
	}
	return lift * (1 - xn*xn) * wy
}

func degreesBetween(from, to, t float64) float64 {
	return geometry.Radians(from + (to-from)*clamp(t, 0, 1))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
