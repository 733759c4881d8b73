package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.World.Cols != 256 || cfg.World.Rows != 144 {
		t.Errorf("default chunk dims = %dx%d", cfg.World.Cols, cfg.World.Rows)
	}
	if cfg.World.RangeXMin != -2 || cfg.World.RangeXMax != 2 {
		t.Errorf("default x range = %d..%d", cfg.World.RangeXMin, cfg.World.RangeXMax)
	}
	if cfg.Physics.Scale != 50.0 {
		t.Errorf("default phys scale = %f", cfg.Physics.Scale)
	}
	if cfg.Derived.ChunksX != 5 || cfg.Derived.ChunksY != 5 {
		t.Errorf("derived chunk counts = %dx%d", cfg.Derived.ChunksX, cfg.Derived.ChunksY)
	}
}

func TestLoadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	body := "world:\n  cols: 64\n  range_x_max: 0\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.World.Cols != 64 {
		t.Errorf("override lost: cols = %d", cfg.World.Cols)
	}
	// Untouched fields keep their defaults.
	if cfg.World.Rows != 144 {
		t.Errorf("default clobbered: rows = %d", cfg.World.Rows)
	}
	if cfg.Derived.ChunksX != 3 {
		t.Errorf("derived not recomputed: %d", cfg.Derived.ChunksX)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path.yaml"); err == nil {
		t.Error("missing file should error")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatal(err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if back.World.Cols != cfg.World.Cols || back.Physics.Gravity != cfg.Physics.Gravity {
		t.Error("round trip lost values")
	}
}
