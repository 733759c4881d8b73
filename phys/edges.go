// Package phys couples the cell field to a rigid-body world: it extracts
// polyline colliders from chunk contents, rasterizes rigid sand bodies into
// the grid and harvests them back, and drives the fixed-step loop.
package phys

import (
	"github.com/fogleman/contourmap"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/silt/element"
	"github.com/pthm-cable/silt/world"
)

// Physics units: PhysScale screen pixels per meter, world gravity in m/s^2.
const (
	PhysScale = 50.0
	Gravity   = 9.81
)

// CellToMeter converts chunk-cell units to physics meters.
const CellToMeter = world.UpscaleFactor / PhysScale

// EdgesFromChunk re-extracts the chunk's collision polylines: an indicator
// field over Solid cells, the 0.5 iso-contour, and a Douglas-Peucker pass at
// one cell of tolerance. Results land in chunk.Edges in meters; a chunk with
// no solid silhouette gets an empty list.
func EdgesFromChunk(ch *world.Chunk) {
	field := make([]float64, world.Cols*world.Rows)
	for j := 0; j < world.Rows; j++ {
		for i := 0; i < world.Cols; i++ {
			if c, ok := ch.CellAt(i, j); ok && c.State == element.StateSolid {
				field[j*world.Cols+i] = 1
			}
		}
	}

	m := contourmap.FromFloat64s(world.Cols, world.Rows, field).Closed()
	contours := m.Contours(0.5)

	edges := make([][]r2.Vec, 0, len(contours))
	for _, c := range contours {
		pts := make([]r2.Vec, len(c))
		for n, p := range c {
			pts[n] = r2.Vec{X: p.X, Y: p.Y}
		}
		pts = SimplifyRDP(pts, 1)
		if len(pts) < 2 {
			continue
		}
		for n := range pts {
			pts[n] = r2.Scale(CellToMeter, pts[n])
		}
		edges = append(edges, pts)
	}

	ch.Edges = edges
	ch.CollidersDirty = false
}
