// Package world holds the chunked cell field: chunk storage, dirty-rect
// change tracking, the per-cell movement primitives and element rules, and
// the manager that ticks active chunks in parallel pools.
package world

import (
	"math"
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/silt/element"
)

// Chunk dimensions in cells and the on-screen scale of one cell. Package
// variables rather than constants so tests (and config) can shrink the world;
// set them once before any chunk exists.
var (
	Cols = 256
	Rows = 144
)

// UpscaleFactor is screen pixels per cell.
const UpscaleFactor = 2.0

// SetDims overrides the chunk dimensions. Must run before NewManager.
func SetDims(cols, rows int) {
	if cols > 0 {
		Cols = cols
	}
	if rows > 0 {
		Rows = rows
	}
}

// ChunkKey is the integer index of a chunk in the world map.
type ChunkKey struct {
	I, J int
}

// Grid is a column-major Cols*Rows cell array.
type Grid []element.Cell

// NewGrid allocates a grid of Air.
func NewGrid() Grid {
	g := make(Grid, Cols*Rows)
	air := element.Air()
	for i := range g {
		g[i] = air
	}
	return g
}

// At returns a pointer to the cell at column i, row j.
func (g Grid) At(i, j int) *element.Cell {
	return &g[i*Rows+j]
}

// Chunk owns one tile of the cell field plus its change tracking and the
// RGBA byte mirror uploaded to the renderer.
type Chunk struct {
	Index ChunkKey
	Pos   r2.Vec

	Grid   Grid
	future Grid

	Active         bool
	DirtyTex       bool
	CollidersDirty bool
	DirtyRect      DirtyRect

	Bytes []byte

	// Edges are the Solid-contour polylines in physics meters, chunk-local.
	Edges [][]r2.Vec

	// mu serializes cross-chunk write-throughs. Two workers of one pool can
	// share a neighbor (their 3x3 neighborhoods overlap by one row or
	// column); the chunk's own updater never runs in the same pool as a
	// write-through, so only writer-vs-writer needs the lock.
	mu sync.Mutex
}

// NewChunk creates a chunk of Air at the given index.
func NewChunk(i, j int) *Chunk {
	c := &Chunk{
		Index:    ChunkKey{I: i, J: j},
		Pos:      r2.Vec{X: float64(i) * float64(Cols) * UpscaleFactor, Y: float64(j) * float64(Rows) * UpscaleFactor},
		Grid:     NewGrid(),
		future:   NewGrid(),
		Active:   true,
		DirtyTex: true,
		Bytes:    make([]byte, Cols*Rows*4),
	}
	c.DirtyRect.Reset()
	return c
}

// InBound reports whether (i, j) is inside a chunk grid.
func InBound(i, j int) bool {
	return i >= 0 && j >= 0 && i < Cols && j < Rows
}

// UpdateByte writes one cell's color into the byte mirror.
func UpdateByte(bytes []byte, i, j int, color [4]uint8) {
	n := (j*Cols + i) * 4
	copy(bytes[n:n+4], color[:])
}

// Activate wakes the chunk and reopens the full dirty rect so every cell is
// visited next tick.
func (c *Chunk) Activate() {
	c.Active = true
	c.DirtyTex = true
	c.DirtyRect.Reset()
}

// CellAt returns the cell at (i, j), or false when out of bounds.
func (c *Chunk) CellAt(i, j int) (element.Cell, bool) {
	if !InBound(i, j) {
		return element.Cell{}, false
	}
	return *c.Grid.At(i, j), true
}

// MouseInChunk translates a world-space point to this chunk's cell coords.
// The result may be out of bounds; callers bound-check per cell.
func (c *Chunk) MouseInChunk(world r2.Vec) (int, int) {
	return int((world.X - c.Pos.X) / UpscaleFactor), int((world.Y - c.Pos.Y) / UpscaleFactor)
}

// ModifyRegion writes a filled disk of the brush cell centered on (i, j).
// emptyOnly restricts writes to Air cells (painting Air itself always
// writes); body cells are skipped unless
// editBodies. The atlas tints each written cell by its coordinate.
func (c *Chunk) ModifyRegion(i, j, brush int, cell element.Cell, atlas *element.Atlas, emptyOnly, editBodies bool) {
	if brush == 1 {
		c.modifyCell(i, j, cell, atlas, emptyOnly, editBodies)
		return
	}
	r := float64(brush) / 2
	for x := -brush / 2; x <= brush/2; x++ {
		for y := -brush / 2; y < brush/2; y++ {
			if float64(x*x+y*y) > r*r {
				continue
			}
			c.modifyCell(i-x, j-y, cell, atlas, emptyOnly, editBodies)
		}
	}
}

func (c *Chunk) modifyCell(i, j int, cell element.Cell, atlas *element.Atlas, emptyOnly, editBodies bool) {
	if !InBound(i, j) {
		return
	}
	cur := c.Grid.At(i, j)
	if emptyOnly && cell.Kind != element.KindAir && cur.Kind != element.KindAir {
		return
	}
	if cur.Collider == element.ColliderBody && !editBodies {
		return
	}

	if atlas != nil {
		atlas.Tint(&cell, i, j)
	}
	// Placing or removing a Solid changes the collision silhouette.
	if cell.State == element.StateSolid || cur.State == element.StateSolid {
		c.CollidersDirty = true
	}
	*cur = cell
	UpdateByte(c.Bytes, i, j, cell.Color)

	c.DirtyTex = true
	if !c.Active {
		c.Activate()
	} else {
		c.DirtyRect.SetTemp(i, j)
	}
}

// Explode pushes non-Solid, non-Air cells in the disk radially outward with
// the given force. A significant push wakes the whole chunk.
func (c *Chunk) Explode(i, j, radius int, force float64) {
	for x := -radius / 2; x <= radius/2; x++ {
		for y := -radius / 2; y < radius/2; y++ {
			if x*x+y*y > (radius/2)*(radius/2) {
				continue
			}
			if !InBound(i-x, j-y) {
				continue
			}
			cur := c.Grid.At(i-x, j-y)
			if cur.State == element.StateSolid || cur.Kind == element.KindAir {
				continue
			}
			dir := r2.Vec{X: float64(x), Y: float64(y)}
			if n := r2.Norm(dir); n > 0 {
				dir = r2.Scale(-force/n, dir)
			}
			mv := MaxVel()
			cur.Velocity = r2.Vec{
				X: clampF(cur.Velocity.X+dir.X, -mv, mv),
				Y: clampF(cur.Velocity.Y+dir.Y, -mv, mv),
			}
			if math.Abs(dir.X) > 0.5 && math.Abs(dir.Y) > 0.5 {
				c.Activate()
			}
		}
	}
}

// RefreshBytes rebuilds the whole byte mirror from the grid; direct grid
// writes (tests, tooling) use it to resync before upload.
func (c *Chunk) RefreshBytes() {
	for i := 0; i < Cols; i++ {
		for j := 0; j < Rows; j++ {
			UpdateByte(c.Bytes, i, j, c.Grid.At(i, j).Color)
		}
	}
	c.DirtyTex = true
}

// randBool is a helper for tie breaking; symmetric by construction.
func randBool() bool {
	return rand.Intn(2) == 0
}
