package phys

import "gonum.org/v1/gonum/spatial/r2"

// Triangulate ear-clips a simple polygon into triangles. It stands in for a
// convex decomposition when building the sand body's compound collider: one
// convex fixture per triangle. Returns nil for degenerate input.
func Triangulate(poly []r2.Vec) [][3]r2.Vec {
	// Drop a closing duplicate vertex.
	if len(poly) > 1 && poly[0] == poly[len(poly)-1] {
		poly = poly[:len(poly)-1]
	}
	if len(poly) < 3 {
		return nil
	}

	// Work on a CCW copy.
	verts := make([]r2.Vec, len(poly))
	copy(verts, poly)
	if signedArea(verts) < 0 {
		for i, jj := 0, len(verts)-1; i < jj; i, jj = i+1, jj-1 {
			verts[i], verts[jj] = verts[jj], verts[i]
		}
	}

	var tris [][3]r2.Vec
	guard := len(verts) * len(verts)
	for len(verts) > 3 && guard > 0 {
		guard--
		clipped := false
		for i := 0; i < len(verts); i++ {
			a := verts[(i+len(verts)-1)%len(verts)]
			b := verts[i]
			c := verts[(i+1)%len(verts)]

			if cross(r2.Sub(b, a), r2.Sub(c, b)) <= 0 {
				continue // reflex corner
			}
			if anyInside(verts, i, a, b, c) {
				continue
			}

			tris = append(tris, [3]r2.Vec{a, b, c})
			verts = append(verts[:i], verts[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			// Numerically stuck (collinear runs); bail with what we have.
			break
		}
	}
	if len(verts) == 3 {
		tris = append(tris, [3]r2.Vec{verts[0], verts[1], verts[2]})
	}
	return tris
}

func signedArea(poly []r2.Vec) float64 {
	s := 0.0
	for i := range poly {
		j := (i + 1) % len(poly)
		s += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return s / 2
}

func cross(a, b r2.Vec) float64 {
	return a.X*b.Y - a.Y*b.X
}

// anyInside reports whether any polygon vertex other than the ear's corners
// lies inside triangle abc.
func anyInside(verts []r2.Vec, ear int, a, b, c r2.Vec) bool {
	prev := (ear + len(verts) - 1) % len(verts)
	next := (ear + 1) % len(verts)
	for i, p := range verts {
		if i == ear || i == prev || i == next {
			continue
		}
		if pointInTriangle(p, a, b, c) {
			return true
		}
	}
	return false
}

func pointInTriangle(p, a, b, c r2.Vec) bool {
	d1 := cross(r2.Sub(b, a), r2.Sub(p, a))
	d2 := cross(r2.Sub(c, b), r2.Sub(p, b))
	d3 := cross(r2.Sub(a, c), r2.Sub(p, c))
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
