package world

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/silt/element"
)

// MaxVel caps per-axis cell speed so an element cannot jump over a whole
// chunk in one step.
func MaxVel() float64 {
	if Cols/2 > Rows/2 {
		return float64(Rows / 2)
	}
	return float64(Cols / 2)
}

// Env is the environment one chunk update runs in: the world map for
// neighbor access, the chunk being updated, and its future grid as the
// write target. All base primitives go through it so cross-chunk reads,
// writes and wake-ups share one code path.
type Env struct {
	chunks map[ChunkKey]*Chunk
	ch     *Chunk
	fgrid  Grid
	frame  uint64

	keepActive bool
}

// wantedChunk returns the key of the chunk an out-of-bounds coordinate
// lands in, from the sign of the overflow.
func (e *Env) wantedChunk(i, j int) ChunkKey {
	k := e.ch.Index
	if i > Cols-1 {
		k.I++
	} else if i < 0 {
		k.I--
	}
	if j > Rows-1 {
		k.J++
	} else if j < 0 {
		k.J--
	}
	return k
}

// translate maps an out-of-bounds coordinate into the neighbor chunk's
// local coordinates.
func translate(i, j int) (int, int) {
	x := i
	if i < 0 || i >= Cols {
		x = i - Cols
		if x < 0 {
			x = Cols + i
		}
	}
	y := j
	if j < 0 || j >= Rows {
		y = j - Rows
		if y < 0 {
			y = Rows + j
		}
	}
	return x, y
}

// Get reads a cell; out-of-chunk coordinates resolve through the world map,
// and a missing chunk reads as an immovable wall.
func (e *Env) Get(i, j int) element.Cell {
	if InBound(i, j) {
		return *e.fgrid.At(i, j)
	}
	if ch, ok := e.chunks[e.wantedChunk(i, j)]; ok {
		x, y := translate(i, j)
		ch.mu.Lock()
		c := *ch.Grid.At(x, y)
		ch.mu.Unlock()
		return c
	}
	return element.Solid()
}

// Set writes a cell; out-of-chunk writes land in the neighbor chunk, wake it
// and stamp its dirty rect. Writes into the void are dropped.
func (e *Env) Set(i, j int, cell element.Cell) {
	if InBound(i, j) {
		*e.fgrid.At(i, j) = cell
		e.keepActive = true
		e.ch.DirtyRect.SetTemp(i, j)
		UpdateByte(e.ch.Bytes, i, j, cell.Color)
		return
	}
	if ch, ok := e.chunks[e.wantedChunk(i, j)]; ok {
		x, y := translate(i, j)
		ch.mu.Lock()
		*ch.Grid.At(x, y) = cell
		UpdateByte(ch.Bytes, x, y, cell.Color)
		if !ch.Active {
			ch.Activate()
		}
		ch.DirtyRect.SetTemp(x, y)
		ch.mu.Unlock()
	}
}

// SetAction updates only a cell's action tag, in this chunk or a neighbor.
func (e *Env) SetAction(i, j int, a element.Action) {
	if InBound(i, j) {
		e.fgrid.At(i, j).Action = a
		return
	}
	if ch, ok := e.chunks[e.wantedChunk(i, j)]; ok {
		x, y := translate(i, j)
		ch.mu.Lock()
		ch.Grid.At(x, y).Action = a
		ch.mu.Unlock()
	}
}

// wakeNeighbor activates a cardinal neighbor, or stamps the mirrored border
// coordinate into its dirty rect so it re-tests the shared edge.
func (e *Env) wakeNeighbor(di, dj, i, j int) {
	k := ChunkKey{I: e.ch.Index.I + di, J: e.ch.Index.J + dj}
	if ch, ok := e.chunks[k]; ok {
		ch.mu.Lock()
		if !ch.Active {
			ch.Activate()
		} else {
			ch.DirtyRect.SetTemp(i, j)
		}
		ch.mu.Unlock()
	}
}

// Swap exchanges the cells at (i1,j1) and (i2,j2). The first coordinate is
// always in bounds; the second may cross into a neighbor chunk. Byte mirrors
// are kept in sync and sleeping neighbors are woken when an edge cell moves.
// Returns false when the destination chunk does not exist.
func (e *Env) Swap(i1, j1, i2, j2 int) bool {
	if InBound(i2, j2) {
		a := e.fgrid.At(i1, j1)
		b := e.fgrid.At(i2, j2)

		UpdateByte(e.ch.Bytes, i1, j1, b.Color)
		UpdateByte(e.ch.Bytes, i2, j2, a.Color)
		*a, *b = *b, *a

		e.ch.DirtyRect.SetTemp(i2, j2)

		if i1 == 0 || i2 == 0 {
			e.wakeNeighbor(-1, 0, Cols-1, j1)
		} else if i1 == Cols-1 || i2 == Cols-1 {
			e.wakeNeighbor(1, 0, 0, j1)
		}
		if j1 == 0 || j2 == 0 {
			e.wakeNeighbor(0, -1, i1, Rows-1)
		} else if j1 == Rows-1 || j2 == Rows-1 {
			e.wakeNeighbor(0, 1, i1, 0)
		}
		return true
	}

	ch, ok := e.chunks[e.wantedChunk(i2, j2)]
	if !ok {
		return false
	}
	x, y := translate(i2, j2)
	a := e.fgrid.At(i1, j1)

	ch.mu.Lock()
	b := ch.Grid.At(x, y)
	UpdateByte(e.ch.Bytes, i1, j1, b.Color)
	UpdateByte(ch.Bytes, x, y, a.Color)
	*a, *b = *b, *a

	if !ch.Active {
		ch.Activate()
	}
	ch.DirtyRect.SetTemp(x, y)
	ch.mu.Unlock()
	return true
}

// Downward drops the cell one row when the cell below yields and the cell
// two below does not; refusing a 2-deep void kills fall/settle jitter.
func (e *Env) Downward(i, j int) bool {
	d := e.fgrid.At(i, j).Density
	if e.Get(i, j+1).Density < d && e.Get(i, j+2).Density >= d {
		return e.Swap(i, j, i, j+1)
	}
	return false
}

// DownwardSides tries a diagonal-down swap, breaking a two-way tie at
// random.
func (e *Env) DownwardSides(i, j int) bool {
	d := e.fgrid.At(i, j).Density

	l := e.Get(i-1, j+1)
	r := e.Get(i+1, j+1)
	left := l.Density < d && l.State != element.StateSolid
	right := r.Density < d && r.State != element.StateSolid

	if left && right {
		left = randBool()
		right = !left
	}
	if right {
		return e.Swap(i, j, i+1, j+1)
	}
	if left {
		return e.Swap(i, j, i-1, j+1)
	}
	return false
}

// ApplyGravity accelerates a cell falling into a yielding cell below, or
// turns its vertical speed into lateral spread when blocked.
func (e *Env) ApplyGravity(i, j int) {
	cell := e.fgrid.At(i, j)
	below := e.Get(i, j+1)

	mv := MaxVel()
	cell.Velocity.X = clampF(cell.Velocity.X, -mv, mv)
	cell.Velocity.Y = clampF(cell.Velocity.Y, -mv, mv)

	if below.Density < cell.Density {
		const limit = 5
		if cell.Velocity.Y < limit {
			cell.Velocity.Y += 1
		}
		return
	}

	if math.Abs(below.Velocity.Y) < 0.5 {
		if cell.Velocity.X == 0 {
			if randBool() {
				cell.Velocity.X += cell.Velocity.Y / 3
			} else {
				cell.Velocity.X -= cell.Velocity.Y / 3
			}
		} else if cell.Velocity.X < 0 {
			cell.Velocity.X -= math.Abs(cell.Velocity.Y / 3)
		} else {
			cell.Velocity.X += math.Abs(cell.Velocity.Y / 3)
		}
		cell.Velocity.Y = 0
	}
}

// ApplyVelocity walks the cell along its velocity vector one cell at a
// time, remembering the furthest passable spot. Solids stop the walk; the
// destination's drag scales the remaining velocity. Returns whether the
// cell moved.
func (e *Env) ApplyVelocity(i, j int) bool {
	cell := e.fgrid.At(i, j)
	dist := r2.Norm(cell.Velocity)
	if dist < 0.5 {
		return false
	}

	mv := MaxVel()
	cell.Velocity.X = clampF(cell.Velocity.X, -mv, mv)
	cell.Velocity.Y = clampF(cell.Velocity.Y, -mv, mv)

	// Powder loses sub-cell lateral drift so piles keep their shape.
	if cell.State == element.StatePowder && math.Abs(cell.Velocity.X) < 1 {
		cell.Velocity.X = 0
	}

	forceX := cell.Velocity.X / dist
	forceY := cell.Velocity.Y / dist
	if forceX == 0 && forceY == 0 {
		return false
	}

	maxX, maxY := i, j
	maxDrag := 1.0
	steps := int(math.Round(dist))
	for m := 1; m <= steps; m++ {
		x := int(math.Round(float64(i) + forceX*float64(m)))
		y := int(math.Round(float64(j) + forceY*float64(m)))
		target := e.Get(x, y)

		if target.State == element.StateSolid {
			if m == 1 {
				cell.Velocity = r2.Vec{}
				return false
			}
			if maxX != i || maxY != j {
				cell.Velocity = r2.Scale(maxDrag, cell.Velocity)
				return e.Swap(i, j, maxX, maxY)
			}
			cell.Velocity = r2.Vec{}
			return false
		}
		if target.Density < cell.Density {
			maxDrag = target.Drag
			maxX, maxY = x, y
		}

		if m == steps {
			if maxX != i || maxY != j {
				cell.Velocity = r2.Scale(maxDrag, cell.Velocity)
				return e.Swap(i, j, maxX, maxY)
			}
			cell.Velocity = r2.Vec{}
			return false
		}
	}
	return false
}

// SpreadFire marks every flammable 4-neighbor as burning.
func (e *Env) SpreadFire(i, j int) {
	burn := element.Action{Kind: element.ActionBurn}
	if element.Flammable(e.Get(i, j-1)) {
		e.SetAction(i, j-1, burn)
	}
	if element.Flammable(e.Get(i, j+1)) {
		e.SetAction(i, j+1, burn)
	}
	if element.Flammable(e.Get(i-1, j)) {
		e.SetAction(i-1, j, burn)
	}
	if element.Flammable(e.Get(i+1, j)) {
		e.SetAction(i+1, j, burn)
	}
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// randRange returns a uniform int in [lo, hi).
func randRange(lo, hi int) int {
	return lo + rand.Intn(hi-lo)
}
