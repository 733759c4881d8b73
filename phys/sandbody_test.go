package phys

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/silt/element"
	"github.com/pthm-cable/silt/world"
)

// testChunks is a 3x3 chunk field big enough for a 100x100 body matrix.
func testChunks() map[world.ChunkKey]*world.Chunk {
	chunks := map[world.ChunkKey]*world.Chunk{}
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			ch := world.NewChunk(i, j)
			chunks[ch.Index] = ch
		}
	}
	return chunks
}

func occupied(sb *SandBody) int {
	n := 0
	for i := range sb.Cells {
		for j := range sb.Cells[i] {
			if !sb.Cells[i][j].IsEmpty() {
				n++
			}
		}
	}
	return n
}

func TestNewSandBodyShapes(t *testing.T) {
	rw := NewRigidWorld()

	square, err := NewSandBody(rw, r2.Vec{X: 64, Y: 48}, ShapeSquare, nil)
	if err != nil {
		t.Fatalf("square: %v", err)
	}
	if got := occupied(square); got != 100*100 {
		t.Errorf("square occupancy = %d, want %d", got, 100*100)
	}

	rect, err := NewSandBody(rw, r2.Vec{X: 64, Y: 48}, ShapeRectangle, nil)
	if err != nil {
		t.Fatalf("rectangle: %v", err)
	}
	if got := occupied(rect); got != 100*50 {
		t.Errorf("rectangle occupancy = %d, want %d", got, 100*50)
	}

	disc, err := NewSandBody(rw, r2.Vec{X: 64, Y: 48}, ShapeDisc, nil)
	if err != nil {
		t.Fatalf("disc: %v", err)
	}
	n := occupied(disc)
	if n >= 100*100 || n < 7000 {
		t.Errorf("disc occupancy = %d, expected a trimmed circle", n)
	}

	// Every body cell is tagged for the bridge.
	for i := range square.Cells {
		for j := range square.Cells[i] {
			if c := square.Cells[i][j]; !c.IsEmpty() && c.Collider != element.ColliderBody {
				t.Fatal("body cell missing the Body collider tag")
			}
		}
	}
}

// At zero rotation the write-in is an identity rasterization: every matrix
// cell lands, and read-back restores both the matrix and the grid.
func TestWriteInReadBackRoundTrip(t *testing.T) {
	rw := NewRigidWorld()
	chunks := testChunks()

	sb, err := NewSandBody(rw, r2.Vec{X: 64, Y: 48}, ShapeSquare, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := occupied(sb)

	sb.WriteIn(chunks)
	if len(sb.placed) != want {
		t.Fatalf("placed %d cells, want %d", len(sb.placed), want)
	}

	wood := 0
	for _, ch := range chunks {
		for idx := range ch.Grid {
			if ch.Grid[idx].Kind == element.KindWood {
				wood++
			}
		}
	}
	if wood != want {
		t.Errorf("grid holds %d wood cells after write-in, want %d", wood, want)
	}

	sb.ReadBack(chunks)
	for _, ch := range chunks {
		for idx := range ch.Grid {
			if ch.Grid[idx].Kind != element.KindAir {
				t.Fatal("read-back left matter in the grid")
			}
		}
	}
	if got := occupied(sb); got != want {
		t.Errorf("matrix occupancy after round trip = %d, want %d", got, want)
	}
}

// A cell the tick replaced with loose matter is lost by the body and left
// in the world.
func TestReadBackDropsStolenCells(t *testing.T) {
	rw := NewRigidWorld()
	chunks := testChunks()

	sb, err := NewSandBody(rw, r2.Vec{X: 64, Y: 48}, ShapeSquare, nil)
	if err != nil {
		t.Fatal(err)
	}
	sb.WriteIn(chunks)

	p := sb.placed[0]
	*chunks[p.chunk].Grid.At(p.gi, p.gj) = element.Sand()

	before := occupied(sb)
	sb.ReadBack(chunks)

	if got := occupied(sb); got != before-1 {
		t.Errorf("occupancy = %d, want %d", got, before-1)
	}
	if chunks[p.chunk].Grid.At(p.gi, p.gj).Kind != element.KindSand {
		t.Error("stolen cell was not left in the world")
	}
}

// Cells that land off the chunk range are not written anywhere; they stay
// only in the body matrix.
func TestWriteInOffWorldCellsDropped(t *testing.T) {
	rw := NewRigidWorld()
	chunks := map[world.ChunkKey]*world.Chunk{}
	ch := world.NewChunk(0, 0)
	chunks[ch.Index] = ch

	// The 100x100 matrix cannot fit a 64x48 chunk; a large share must drop.
	sb, err := NewSandBody(rw, r2.Vec{X: 64, Y: 48}, ShapeSquare, nil)
	if err != nil {
		t.Fatal(err)
	}
	sb.WriteIn(chunks)

	if len(sb.placed) == 0 {
		t.Fatal("nothing landed at all")
	}
	if len(sb.placed) >= occupied(sb) {
		t.Error("expected off-world cells to be dropped")
	}
	for _, p := range sb.placed {
		if p.chunk != ch.Index {
			t.Fatalf("placement recorded for a missing chunk %+v", p.chunk)
		}
	}
}
