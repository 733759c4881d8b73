package phys

import (
	"errors"
	"math"

	"github.com/ByteArena/box2d"
	"github.com/fogleman/contourmap"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/silt/element"
	"github.com/pthm-cable/silt/world"
)

// BodyShape selects the cell layout of a new rigid sand body.
type BodyShape int

const (
	ShapeDisc BodyShape = iota
	ShapeSquare
	ShapeRectangle
)

// placedCell remembers where one body cell landed this tick: the chunk, the
// grid slot inside it, and the source slot in the body matrix.
type placedCell struct {
	chunk  world.ChunkKey
	gi, gj int
	bi, bj int
}

// SandBody is a polygon of cells pinned to one dynamic rigid body. Each
// fixed tick its matrix is rasterized into the grid before the chunk update
// and harvested back afterwards, so the cells keep burning, tinting and
// igniting while riding the body.
type SandBody struct {
	// Cells is the W x H matrix; the Air sentinel marks an empty slot.
	Cells [][]element.Cell

	Body *box2d.B2Body

	// Edge is the simplified outline in meters, centered on the body origin;
	// kept for the debug overlay.
	Edge []r2.Vec

	// Bytes mirrors the matrix colors for texture upload.
	Bytes    []byte
	DirtyTex bool

	placed []placedCell
}

// ErrDegenerateBody is returned when a body shape yields no usable outline.
var ErrDegenerateBody = errors.New("phys: sand body outline is degenerate")

// NewSandBody builds the cell matrix for the shape, extracts and simplifies
// its outline, attaches triangle fixtures to a fresh dynamic body at the
// given world-pixel position, and registers it with the rigid world.
func NewSandBody(rw *RigidWorld, pos r2.Vec, shape BodyShape, atlas *element.Atlas) (*SandBody, error) {
	w, h := 100, 100
	if shape == ShapeRectangle {
		h = 50
	}

	cells := make([][]element.Cell, w)
	for i := range cells {
		cells[i] = make([]element.Cell, h)
		for j := range cells[i] {
			c := element.Wood()
			c.Collider = element.ColliderBody
			if atlas != nil {
				atlas.Tint(&c, i, j)
			}
			cells[i][j] = c
		}
	}
	if shape == ShapeDisc {
		r := float64(w) / 2
		for i := range cells {
			for j := range cells[i] {
				dx, dy := float64(i)-r, float64(j)-r
				if math.Hypot(dx, dy) > r {
					cells[i][j] = element.Air()
				}
			}
		}
	}

	outline, err := bodyOutline(cells)
	if err != nil {
		return nil, err
	}

	// Center the outline on the matrix middle so the body origin is the
	// center of mass-ish pivot the write-in rotates around.
	cx, cy := float64(w)/2, float64(h)/2
	edge := make([]r2.Vec, len(outline))
	for n, p := range outline {
		edge[n] = r2.Scale(CellToMeter, r2.Vec{X: p.X - cx, Y: p.Y - cy})
	}

	tris := Triangulate(edge)
	if len(tris) == 0 {
		return nil, ErrDegenerateBody
	}

	bd := box2d.MakeB2BodyDef()
	bd.Type = box2d.B2BodyType.B2_dynamicBody
	bd.Position.Set(pos.X/PhysScale, pos.Y/PhysScale)
	body := rw.world.CreateBody(&bd)

	for _, t := range tris {
		verts := []box2d.B2Vec2{
			box2d.MakeB2Vec2(t[0].X, t[0].Y),
			box2d.MakeB2Vec2(t[1].X, t[1].Y),
			box2d.MakeB2Vec2(t[2].X, t[2].Y),
		}
		poly := box2d.MakeB2PolygonShape()
		poly.Set(verts, 3)

		fd := box2d.MakeB2FixtureDef()
		fd.Shape = &poly
		fd.Density = 1
		fd.Friction = 0.6
		body.CreateFixtureFromDef(&fd)
	}

	b := &SandBody{
		Cells: cells,
		Body:  body,
		Edge:  edge,
		Bytes: make([]byte, w*h*4),
	}
	b.RefreshBytes()
	return b, nil
}

// bodyOutline extracts the exterior contour of the occupancy field and
// simplifies it at one cell of tolerance.
func bodyOutline(cells [][]element.Cell) ([]r2.Vec, error) {
	w, h := len(cells), len(cells[0])
	field := make([]float64, w*h)
	occupied := 0
	for i := 0; i < w; i++ {
		for j := 0; j < h; j++ {
			if !cells[i][j].IsEmpty() {
				field[j*w+i] = 1
				occupied++
			}
		}
	}
	if occupied == 0 {
		return nil, ErrDegenerateBody
	}

	contours := contourmap.FromFloat64s(w, h, field).Closed().Contours(0.5)
	if len(contours) == 0 {
		return nil, ErrDegenerateBody
	}

	// The largest contour is the exterior ring; holes are ignored for the
	// collider.
	best := contours[0]
	for _, c := range contours[1:] {
		if len(c) > len(best) {
			best = c
		}
	}

	pts := make([]r2.Vec, len(best))
	for n, p := range best {
		pts[n] = r2.Vec{X: p.X, Y: p.Y}
	}
	pts = SimplifyRDP(pts, 1)
	if len(pts) < 3 {
		return nil, ErrDegenerateBody
	}
	return pts, nil
}

// RefreshBytes rebuilds the color mirror from the matrix.
func (b *SandBody) RefreshBytes() {
	w, h := len(b.Cells), len(b.Cells[0])
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			n := (j*w + i) * 4
			copy(b.Bytes[n:n+4], b.Cells[i][j].Color[:])
		}
	}
	b.DirtyTex = true
}

// WriteIn rasterizes the body's cells into the chunk grids at its current
// pose. The matrix is resampled into a rotated output raster with
// nearest-source sampling; cells rotated off-raster are dropped. World
// coordinates map to chunks by floor division. Every landed cell is
// recorded for ReadBack.
func (b *SandBody) WriteIn(chunks map[world.ChunkKey]*world.Chunk) {
	b.placed = b.placed[:0]

	pos := b.Body.GetPosition()
	angle := b.Body.GetAngle()

	w, h := len(b.Cells), len(b.Cells[0])
	cx, cy := float64(w)/2, float64(h)/2

	// Rotated bounding box of the matrix.
	cos, sin := math.Abs(math.Cos(angle)), math.Abs(math.Sin(angle))
	outW := int(math.Ceil(float64(w)*cos + float64(h)*sin))
	outH := int(math.Ceil(float64(w)*sin + float64(h)*cos))
	ocx, ocy := float64(outW)/2, float64(outH)/2

	// Body origin in cell units; the raster is centered on it.
	originX := int(math.Floor(pos.X/CellToMeter - ocx))
	originY := int(math.Floor(pos.Y/CellToMeter - ocy))

	ca, sa := math.Cos(-angle), math.Sin(-angle)
	for x := 0; x < outW; x++ {
		for y := 0; y < outH; y++ {
			fx, fy := float64(x)-ocx+0.5, float64(y)-ocy+0.5
			si := int(math.Round(ca*fx - sa*fy + cx - 0.5))
			sj := int(math.Round(sa*fx + ca*fy + cy - 0.5))
			if si < 0 || sj < 0 || si >= w || sj >= h {
				continue
			}
			if b.Cells[si][sj].IsEmpty() {
				continue
			}

			wx, wy := originX+x, originY+y
			ci, gi := floorDivMod(wx, world.Cols)
			cj, gj := floorDivMod(wy, world.Rows)
			ch, ok := chunks[world.ChunkKey{I: ci, J: cj}]
			if !ok {
				continue
			}

			*ch.Grid.At(gi, gj) = b.Cells[si][sj]
			world.UpdateByte(ch.Bytes, gi, gj, b.Cells[si][sj].Color)
			if !ch.Active {
				ch.Activate()
			}
			ch.DirtyRect.SetTemp(gi, gj)

			b.placed = append(b.placed, placedCell{
				chunk: world.ChunkKey{I: ci, J: cj},
				gi:    gi, gj: gj,
				bi: si, bj: sj,
			})
		}
	}
}

// ReadBack harvests every placed cell out of the grids: whatever the tick
// left in the slot (fire, darkened colors, a fresh burn action) flows back
// into the matrix, and the slot reverts to Air.
func (b *SandBody) ReadBack(chunks map[world.ChunkKey]*world.Chunk) {
	air := element.Air()
	for _, p := range b.placed {
		ch, ok := chunks[p.chunk]
		if !ok {
			continue
		}
		got := *ch.Grid.At(p.gi, p.gj)
		if got.Collider == element.ColliderBody {
			b.Cells[p.bi][p.bj] = got
		} else {
			// The slot was taken over by loose matter this tick; the body
			// loses that cell and leaves the matter in place.
			b.Cells[p.bi][p.bj] = air
			continue
		}
		*ch.Grid.At(p.gi, p.gj) = air
		world.UpdateByte(ch.Bytes, p.gi, p.gj, air.Color)
	}
	b.RefreshBytes()
	b.placed = b.placed[:0]
}

// floorDivMod is floored division with a non-negative remainder, the
// world-to-chunk coordinate split.
func floorDivMod(v, size int) (int, int) {
	d := v / size
	m := v % size
	if m < 0 {
		d--
		m += size
	}
	return d, m
}
