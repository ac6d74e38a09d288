package hittest

import (
	"errors"
	"testing"

	"github.com/OpenTraceLab/OpenTraceVenue/pkg/geometry"
)

var square = geometry.Polygon{
	geometry.V(0, 0), geometry.V(100, 0), geometry.V(100, 100), geometry.V(0, 100),
}

func TestVertexAt(t *testing.T) {
	tests := []struct {
		name     string
		pt       geometry.Vertex
		rotation float64
		zoom     float64
		want     int
		ok       bool
	}{
		{"exact", geometry.V(100, 0), 0, 1, 1, true},
		{"within radius", geometry.V(105, 0), 0, 1, 1, true},
		{"zoomed in shrinks radius", geometry.V(105, 0), 0, 2, -1, false},
		{"zoomed out grows radius", geometry.V(112, 0), 0, 0.5, 1, true},
		{"unrotated picks bottom right", geometry.V(101, 101), 0, 1, 2, true},
		{"rotated picks top right", geometry.V(101, 101), 90, 1, 1, true},
		{"miss", geometry.V(50, 50), 0, 1, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := VertexAt(tt.pt, Target{Polygon: square, Rotation: tt.rotation}, tt.zoom)
			if got != tt.want || ok != tt.ok {
				t.Errorf("VertexAt = %d, %v, want %d, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestEdgeAt(t *testing.T) {
	hit, ok := EdgeAt(geometry.V(50, -3), Target{Polygon: square}, 1)
	if !ok || hit.Index != 0 {
		t.Fatalf("EdgeAt = %+v, %v, want edge 0", hit, ok)
	}
	if !hit.Point.Equal(geometry.V(50, 0), 1e-9) || hit.T != 0.5 {
		t.Errorf("insertion point = %v t=%v", hit.Point, hit.T)
	}

	// Rotated 90 degrees, local edge 0 is displayed along the right side.
	hit, ok = EdgeAt(geometry.V(103, 50), Target{Polygon: square, Rotation: 90}, 1)
	if !ok || hit.Index != 0 {
		t.Fatalf("rotated EdgeAt = %+v, %v, want edge 0", hit, ok)
	}
	if !hit.Point.Equal(geometry.V(50, 0), 1e-9) {
		t.Errorf("rotated insertion point = %v, want local (50,0)", hit.Point)
	}

	if _, ok := EdgeAt(geometry.V(50, -5), Target{Polygon: square}, 2); ok {
		t.Error("edge hit beyond the zoom-scaled threshold")
	}
	if _, ok := EdgeAt(geometry.V(0, 0), Target{}, 1); ok {
		t.Error("edge hit on an empty polygon")
	}
}

func TestContainedIn(t *testing.T) {
	bar := geometry.Polygon{geometry.V(0, 0), geometry.V(200, 0), geometry.V(200, 20), geometry.V(0, 20)}
	tests := []struct {
		pt       geometry.Vertex
		rotation float64
		want     bool
	}{
		{geometry.V(150, 10), 0, true},
		{geometry.V(100, -50), 0, false},
		{geometry.V(100, -50), 90, true},
		{geometry.V(150, 10), 90, false},
	}
	for _, tt := range tests {
		if got := ContainedIn(tt.pt, Target{Polygon: bar, Rotation: tt.rotation}); got != tt.want {
			t.Errorf("ContainedIn(%v, rot %v) = %v, want %v", tt.pt, tt.rotation, got, tt.want)
		}
	}
	if ContainedIn(geometry.V(0, 0), Target{Polygon: square[:2]}) {
		t.Error("two-vertex polygon contains a point")
	}
}

func TestHitPriority(t *testing.T) {
	target := Target{Polygon: square}
	tests := []struct {
		pt   geometry.Vertex
		want Kind
	}{
		{geometry.V(1, 1), OnVertex},
		{geometry.V(50, 1), OnEdge},
		{geometry.V(50, 50), Inside},
		{geometry.V(200, 200), None},
	}
	for _, tt := range tests {
		if got := Hit(tt.pt, target, 1); got.Kind != tt.want {
			t.Errorf("Hit(%v) = %s, want %s", tt.pt, got.Kind, tt.want)
		}
	}
}

func TestInsertVertex(t *testing.T) {
	got, err := InsertVertex(square, 0, geometry.V(50, 0))
	if err != nil {
		t.Fatalf("InsertVertex: %v", err)
	}
	if len(got) != 5 || got[1] != geometry.V(50, 0) || got[2] != geometry.V(100, 0) {
		t.Errorf("InsertVertex = %v", got)
	}
	if len(square) != 4 {
		t.Error("InsertVertex modified its input")
	}

	last, err := InsertVertex(square, 3, geometry.V(0, 50))
	if err != nil || last[4] != geometry.V(0, 50) {
		t.Errorf("insert on closing edge = %v, %v", last, err)
	}
	if _, err := InsertVertex(square, 4, geometry.V(0, 0)); !errors.Is(err, ErrIndex) {
		t.Errorf("out of range insert error = %v", err)
	}
}

func TestRemoveVertex(t *testing.T) {
	tri := square[:3]
	if _, err := RemoveVertex(tri, 0); !errors.Is(err, ErrMinVertices) {
		t.Errorf("removing from a triangle: err = %v, want ErrMinVertices", err)
	}

	got, err := RemoveVertex(square, 0)
	if err != nil {
		t.Fatalf("RemoveVertex: %v", err)
	}
	if len(got) != 3 || got[0] != geometry.V(100, 0) {
		t.Errorf("RemoveVertex = %v", got)
	}
	if _, err := RemoveVertex(square, -1); !errors.Is(err, ErrIndex) {
		t.Errorf("negative index error = %v", err)
	}
}

func TestMoveVertexRotated(t *testing.T) {
	got, err := MoveVertex(square, 0, geometry.V(60, 60), 90)
	if err != nil {
		t.Fatalf("MoveVertex: %v", err)
	}
	if !got[0].Equal(geometry.V(60, 40), 1e-9) {
		t.Errorf("moved vertex stored at %v, want (60,40)", got[0])
	}
	shown := Target{Polygon: square, Rotation: 90}.ToWorld(got[0])
	if !shown.Equal(geometry.V(60, 60), 1e-9) {
		t.Errorf("moved vertex displayed at %v, want (60,60)", shown)
	}
	if square[0] != geometry.V(0, 0) {
		t.Error("MoveVertex modified its input")
	}

	plain, _ := MoveVertex(square, 2, geometry.V(120, 130), 0)
	if plain[2] != geometry.V(120, 130) {
		t.Errorf("unrotated move = %v", plain[2])
	}
}
