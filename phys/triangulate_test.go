package phys

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func triArea(t [3]r2.Vec) float64 {
	return math.Abs(cross(r2.Sub(t[1], t[0]), r2.Sub(t[2], t[0]))) / 2
}

func TestTriangulateSquare(t *testing.T) {
	square := []r2.Vec{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	tris := Triangulate(square)
	if len(tris) != 2 {
		t.Fatalf("square triangulated into %d triangles, want 2", len(tris))
	}
	total := 0.0
	for _, tr := range tris {
		total += triArea(tr)
	}
	if math.Abs(total-16) > 1e-9 {
		t.Errorf("triangle area sum = %f, want 16", total)
	}
}

func TestTriangulateConcave(t *testing.T) {
	// An arrowhead with one reflex vertex.
	poly := []r2.Vec{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 2}, {X: 4, Y: 4}, {X: 0, Y: 4},
	}
	tris := Triangulate(poly)
	if len(tris) != 3 {
		t.Fatalf("concave polygon triangulated into %d triangles, want 3", len(tris))
	}

	want := math.Abs(signedArea(poly))
	total := 0.0
	for _, tr := range tris {
		total += triArea(tr)
	}
	if math.Abs(total-want) > 1e-9 {
		t.Errorf("triangle area sum = %f, want %f", total, want)
	}
}

func TestTriangulateOrientationInsensitive(t *testing.T) {
	cw := []r2.Vec{{X: 0, Y: 0}, {X: 0, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 0}}
	if tris := Triangulate(cw); len(tris) != 2 {
		t.Errorf("clockwise square triangulated into %d triangles", len(tris))
	}
}

func TestTriangulateDegenerate(t *testing.T) {
	if tris := Triangulate([]r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 1}}); tris != nil {
		t.Error("2-point input should yield nil")
	}
	closed := []r2.Vec{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 0}}
	if tris := Triangulate(closed); tris == nil {
		t.Error("closing duplicate vertex should be tolerated")
	}
}
