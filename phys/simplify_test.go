package phys

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestSimplifyCollapsesCollinear(t *testing.T) {
	line := []r2.Vec{}
	for x := 0; x <= 10; x++ {
		line = append(line, r2.Vec{X: float64(x)})
	}
	got := SimplifyRDP(line, 1)
	if len(got) != 2 {
		t.Errorf("collinear run simplified to %d points, want 2", len(got))
	}
}

func TestSimplifyKeepsCorners(t *testing.T) {
	// An L shape: the corner deviates far more than the tolerance.
	pts := []r2.Vec{
		{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0},
		{X: 10, Y: 5}, {X: 10, Y: 10},
	}
	got := SimplifyRDP(pts, 1)
	if len(got) != 3 {
		t.Fatalf("L shape simplified to %d points, want 3", len(got))
	}
	corner := got[1]
	if corner.X != 10 || corner.Y != 0 {
		t.Errorf("corner lost: got %+v", corner)
	}
}

func TestSimplifyIdempotent(t *testing.T) {
	// A noisy arc; simplifying a second time at the same tolerance must be a
	// no-op.
	var pts []r2.Vec
	for i := 0; i <= 40; i++ {
		a := float64(i) / 40 * math.Pi
		jitter := 0.3 * math.Sin(float64(i)*3)
		pts = append(pts, r2.Vec{
			X: 20 * math.Cos(a),
			Y: 20*math.Sin(a) + jitter,
		})
	}

	once := SimplifyRDP(pts, 1)
	twice := SimplifyRDP(once, 1)
	if len(once) != len(twice) {
		t.Fatalf("second pass changed point count: %d -> %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("point %d moved: %+v -> %+v", i, once[i], twice[i])
		}
	}
}

func TestSimplifyShortInputsUntouched(t *testing.T) {
	two := []r2.Vec{{X: 1}, {X: 2}}
	if got := SimplifyRDP(two, 1); len(got) != 2 {
		t.Errorf("2-point line changed length: %d", len(got))
	}
}
