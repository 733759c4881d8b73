package phys

import (
	"os"
	"testing"

	"github.com/pthm-cable/silt/world"
)

func TestMain(m *testing.M) {
	world.SetDims(64, 48)
	os.Exit(m.Run())
}

func TestFloorDivMod(t *testing.T) {
	tests := []struct {
		v, size, d, m int
	}{
		{0, 16, 0, 0},
		{15, 16, 0, 15},
		{16, 16, 1, 0},
		{-1, 16, -1, 15},
		{-16, 16, -1, 0},
		{-17, 16, -2, 15},
	}
	for _, tt := range tests {
		d, m := floorDivMod(tt.v, tt.size)
		if d != tt.d || m != tt.m {
			t.Errorf("floorDivMod(%d, %d) = (%d, %d), want (%d, %d)",
				tt.v, tt.size, d, m, tt.d, tt.m)
		}
	}
}
