package phys

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// SimplifyRDP reduces a polyline with the Ramer-Douglas-Peucker algorithm:
// keep the point furthest from the chord if it deviates more than tol,
// recurse on both halves, otherwise collapse to the chord.
func SimplifyRDP(points []r2.Vec, tol float64) []r2.Vec {
	if len(points) < 3 {
		return points
	}

	maxDist := 0.0
	maxIdx := 0
	for i := 1; i < len(points)-1; i++ {
		d := perpDistance(points[i], points[0], points[len(points)-1])
		if d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}

	if maxDist <= tol {
		return []r2.Vec{points[0], points[len(points)-1]}
	}

	left := SimplifyRDP(points[:maxIdx+1], tol)
	right := SimplifyRDP(points[maxIdx:], tol)

	out := make([]r2.Vec, 0, len(left)+len(right)-1)
	out = append(out, left[:len(left)-1]...)
	out = append(out, right...)
	return out
}

// perpDistance is the distance from p to the infinite line through a and b,
// falling back to the point distance when a and b coincide.
func perpDistance(p, a, b r2.Vec) float64 {
	ab := r2.Sub(b, a)
	l := r2.Norm(ab)
	if l == 0 {
		return r2.Norm(r2.Sub(p, a))
	}
	ap := r2.Sub(p, a)
	return math.Abs(ab.X*ap.Y-ab.Y*ap.X) / l
}
