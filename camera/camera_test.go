package camera

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	cam := New(1280, 720, -2560, -1440, 2560, 1440)

	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("expected camera at (0, 0), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(1280, 720, -2560, -1440, 2560, 1440)

	// Camera center should map to screen center
	sx, sy := cam.WorldToScreen(cam.X, cam.Y)
	if math.Abs(sx-640) > 0.01 || math.Abs(sy-360) > 0.01 {
		t.Errorf("expected screen center (640, 360), got (%f, %f)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, -2560, -1440, 2560, 1440)
	cam.SetZoom(2)

	testCases := []struct{ sx, sy float64 }{
		{640, 360},  // center
		{100, 100},  // top-left
		{1200, 600}, // near bottom-right
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if math.Abs(sx-tc.sx) > 0.01 || math.Abs(sy-tc.sy) > 0.01 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestPanClampsToBounds(t *testing.T) {
	cam := New(1280, 720, -100, -100, 100, 100)

	cam.Pan(-1e6, -1e6)
	if cam.X != -100 || cam.Y != -100 {
		t.Errorf("expected clamp to (-100, -100), got (%f, %f)", cam.X, cam.Y)
	}

	cam.Pan(1e9, 1e9)
	if cam.X != 100 || cam.Y != 100 {
		t.Errorf("expected clamp to (100, 100), got (%f, %f)", cam.X, cam.Y)
	}
}

func TestZoomClamped(t *testing.T) {
	cam := New(1280, 720, -100, -100, 100, 100)

	cam.SetZoom(1e6)
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MaxZoom, cam.Zoom)
	}
	cam.SetZoom(0)
	if cam.Zoom != cam.MinZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MinZoom, cam.Zoom)
	}
}
