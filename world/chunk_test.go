package world

import (
	"testing"

	"github.com/pthm-cable/silt/element"
)

func TestModifyRegionDisk(t *testing.T) {
	_, ch := singleChunk(t)
	ch.ModifyRegion(8, 8, 6, element.Sand(), nil, false, false)

	n := countKind(ch, element.KindSand)
	if n == 0 {
		t.Fatal("brush wrote nothing")
	}
	// A radius-3 disk stays inside the 7x7 box around (8,8).
	for i := 0; i < Cols; i++ {
		for j := 0; j < Rows; j++ {
			if ch.Grid.At(i, j).Kind != element.KindSand {
				continue
			}
			if i < 5 || i > 11 || j < 5 || j > 11 {
				t.Errorf("brush leaked to (%d,%d)", i, j)
			}
		}
	}
}

func TestModifyRegionEmptyOnly(t *testing.T) {
	_, ch := singleChunk(t)
	*ch.Grid.At(8, 8) = element.Water()

	ch.ModifyRegion(8, 8, 1, element.Sand(), nil, true, false)
	if ch.Grid.At(8, 8).Kind != element.KindWater {
		t.Error("empty-only brush overwrote a non-air cell")
	}

	ch.ModifyRegion(8, 8, 1, element.Sand(), nil, false, false)
	if ch.Grid.At(8, 8).Kind != element.KindSand {
		t.Error("unrestricted brush failed to overwrite")
	}
}

func TestModifyRegionProtectsBodyCells(t *testing.T) {
	_, ch := singleChunk(t)
	body := element.Wood()
	body.Collider = element.ColliderBody
	*ch.Grid.At(8, 8) = body

	ch.ModifyRegion(8, 8, 1, element.Sand(), nil, false, false)
	if ch.Grid.At(8, 8).Kind != element.KindWood {
		t.Error("brush overwrote a body cell without editBodies")
	}

	ch.ModifyRegion(8, 8, 1, element.Sand(), nil, false, true)
	if ch.Grid.At(8, 8).Kind != element.KindSand {
		t.Error("editBodies brush failed to overwrite a body cell")
	}
}

func TestSolidWriteMarksCollidersDirty(t *testing.T) {
	_, ch := singleChunk(t)
	ch.CollidersDirty = false
	ch.ModifyRegion(4, 4, 1, element.Brick(), nil, false, false)
	if !ch.CollidersDirty {
		t.Error("placing a solid did not dirty the colliders")
	}

	ch.CollidersDirty = false
	ch.ModifyRegion(4, 4, 1, element.Air(), nil, false, false)
	if !ch.CollidersDirty {
		t.Error("removing a solid did not dirty the colliders")
	}
}

func TestBrushKeepsByteMirrorInSync(t *testing.T) {
	_, ch := singleChunk(t)
	ch.ModifyRegion(3, 9, 1, element.Sand(), nil, false, false)

	c := *ch.Grid.At(3, 9)
	n := (9*Cols + 3) * 4
	for b := 0; b < 4; b++ {
		if ch.Bytes[n+b] != c.Color[b] {
			t.Fatalf("byte mirror out of sync at offset %d", b)
		}
	}
}

func TestExplodeSkipsSolidsAndAir(t *testing.T) {
	_, ch := singleChunk(t)
	*ch.Grid.At(6, 8) = element.Solid()
	*ch.Grid.At(9, 8) = element.Sand()

	ch.Explode(8, 8, 8, 10)

	if v := ch.Grid.At(6, 8).Velocity; v.X != 0 || v.Y != 0 {
		t.Error("explosion moved a solid cell")
	}
	if v := ch.Grid.At(9, 8).Velocity; v.X == 0 && v.Y == 0 {
		t.Error("explosion left a powder cell unmoved")
	}
}

func TestActivateOpensFullRect(t *testing.T) {
	_, ch := singleChunk(t)
	ch.Active = false
	ch.DirtyRect.SetMinMax() // shrink away

	ch.Activate()
	if !ch.Active || !ch.DirtyTex {
		t.Error("activate did not set flags")
	}
	if ch.DirtyRect.Area() != Cols*Rows {
		t.Error("activate did not reopen the full dirty rect")
	}
}

func TestCellAtBounds(t *testing.T) {
	_, ch := singleChunk(t)
	if _, ok := ch.CellAt(-1, 0); ok {
		t.Error("CellAt accepted a negative index")
	}
	if _, ok := ch.CellAt(Cols, 0); ok {
		t.Error("CellAt accepted an overflow index")
	}
	if c, ok := ch.CellAt(0, 0); !ok || c.Kind != element.KindAir {
		t.Error("CellAt failed in bounds")
	}
}

// Source samples a neighbor element once, then streams copies of it.
func TestSourceSamplesAndEmits(t *testing.T) {
	m, ch := singleChunk(t)
	fillFloor(ch, 15)
	*ch.Grid.At(8, 8) = element.Source()
	*ch.Grid.At(8, 7) = element.Water()
	// Box the sample in so it cannot flow away before the source reads it.
	*ch.Grid.At(7, 7) = element.Solid()
	*ch.Grid.At(9, 7) = element.Solid()
	ch.Activate()

	for tick := 0; tick < 40; tick++ {
		m.TickFixed()
	}

	if got := countKind(ch, element.KindWater); got < 2 {
		t.Errorf("source produced no stream; water count = %d", got)
	}
}

// Grass grows along solid dirt.
func TestGrassGrows(t *testing.T) {
	m, ch := singleChunk(t)
	for i := 0; i < Cols; i++ {
		*ch.Grid.At(i, 12) = element.SolidDirt()
	}
	*ch.Grid.At(8, 11) = element.Grass()
	ch.Activate()

	for tick := 0; tick < 30; tick++ {
		m.TickFixed()
	}

	if got := countKind(ch, element.KindGrass); got < 3 {
		t.Errorf("grass did not spread; count = %d", got)
	}
}
