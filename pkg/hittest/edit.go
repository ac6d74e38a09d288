package hittest

import (
	"errors"
	"fmt"

	"github.com/OpenTraceLab/OpenTraceVenue/pkg/geometry"
)

var (
	// ErrMinVertices is returned when a removal would leave fewer than
	// three vertices.
	ErrMinVertices = errors.New("hittest: polygon needs at least 3 vertices")

	// ErrIndex is returned for a vertex or edge index outside the polygon.
	ErrIndex = errors.New("hittest: index out of range")
)

// InsertVertex returns a copy of poly with v inserted after the start of
// edge edgeIndex, splitting that edge in two.
func InsertVertex(poly geometry.Polygon, edgeIndex int, v geometry.Vertex) (geometry.Polygon, error) {
	if edgeIndex < 0 || edgeIndex >= len(poly) {
		return nil, fmt.Errorf("%w: edge %d of %d", ErrIndex, edgeIndex, len(poly))
	}
	out := make(geometry.Polygon, 0, len(poly)+1)
	out = append(out, poly[:edgeIndex+1]...)
	out = append(out, v)
	out = append(out, poly[edgeIndex+1:]...)
	return out, nil
}

// RemoveVertex returns a copy of poly without vertex i. Removal is refused
// when the result would not enclose an area.
func RemoveVertex(poly geometry.Polygon, i int) (geometry.Polygon, error) {
	if i < 0 || i >= len(poly) {
		return nil, fmt.Errorf("%w: vertex %d of %d", ErrIndex, i, len(poly))
	}
	if len(poly) <= geometry.MinVertices {
		return nil, ErrMinVertices
	}
	out := make(geometry.Polygon, 0, len(poly)-1)
	out = append(out, poly[:i]...)
	out = append(out, poly[i+1:]...)
	return out, nil
}

// MoveVertex returns a copy of poly with vertex i moved to the world point
// pt. The point is mapped into the local frame of the polygon as displayed at
// rotation before it is stored.
//
// The pivot is taken from the polygon before the move, so the dragged vertex
// stays under the pointer while the drag is in progress.
func MoveVertex(poly geometry.Polygon, i int, pt geometry.Vertex, rotation float64) (geometry.Polygon, error) {
	if i < 0 || i >= len(poly) {
		return nil, fmt.Errorf("%w: vertex %d of %d", ErrIndex, i, len(poly))
	}
	out := poly.Clone()
	out[i] = Target{Polygon: poly, Rotation: rotation}.ToLocal(pt)
	return out, nil
}
