package world

import "testing"

func TestDirtyRectCommitContainsStampedCell(t *testing.T) {
	cases := [][2]int{{0, 0}, {8, 8}, {Cols - 1, Rows - 1}, {1, Rows - 2}}
	for _, c := range cases {
		var r DirtyRect
		r.Reset()
		r.SetMinMax() // empty committed box
		r.SetTemp(c[0], c[1])
		r.SetMinMax()
		if !r.Contains(c[0], c[1]) {
			t.Errorf("committed rect %+v does not contain stamped (%d,%d)", r, c[0], c[1])
		}
	}
}

func TestDirtyRectPadClamped(t *testing.T) {
	var r DirtyRect
	r.Reset()
	r.SetMinMax()
	r.SetTemp(0, 0)
	r.SetMinMax()

	if r.MinX != 0 || r.MinY != 0 {
		t.Errorf("min corner not clamped: %+v", r)
	}
	if r.MaxX != dirtyPad || r.MaxY != dirtyPad {
		t.Errorf("pad expansion wrong: %+v", r)
	}
}

func TestDirtyRectResetIsFull(t *testing.T) {
	var r DirtyRect
	r.Reset()
	if r.MinX != 0 || r.MinY != 0 || r.MaxX != Cols-1 || r.MaxY != Rows-1 {
		t.Errorf("reset rect is not the full chunk: %+v", r)
	}
	if r.Area() != Cols*Rows {
		t.Errorf("full area = %d, want %d", r.Area(), Cols*Rows)
	}
}

func TestDirtyRectEmptyAfterCommitWithoutWrites(t *testing.T) {
	var r DirtyRect
	r.Reset()
	r.SetMinMax()
	if !r.Empty() {
		t.Errorf("expected empty committed rect, got %+v", r)
	}
	if r.Area() != 0 {
		t.Errorf("empty area = %d, want 0", r.Area())
	}
}
