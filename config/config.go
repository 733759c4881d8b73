// Package config provides configuration loading and access for the
// simulator.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulator parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Brush     BrushConfig     `yaml:"brush"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Atlas     AtlasConfig     `yaml:"atlas"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig sizes the chunk field.
type WorldConfig struct {
	Cols      int `yaml:"cols"`
	Rows      int `yaml:"rows"`
	RangeXMin int `yaml:"range_x_min"`
	RangeXMax int `yaml:"range_x_max"`
	RangeYMin int `yaml:"range_y_min"`
	RangeYMax int `yaml:"range_y_max"`
}

// BrushConfig holds the initial editing state.
type BrushConfig struct {
	Size       int  `yaml:"size"`
	ReplaceAir bool `yaml:"replace_air"`
}

// PhysicsConfig holds the fixed-step parameters. Scale is screen pixels per
// meter; deltas are seconds per step.
type PhysicsConfig struct {
	ChunkUpdateDelta   float64 `yaml:"chunk_update_delta"`
	PhysicsUpdateDelta float64 `yaml:"physics_update_delta"`
	Scale              float64 `yaml:"scale"`
	Gravity            float64 `yaml:"gravity"`
}

// AtlasConfig seeds the procedural element textures.
type AtlasConfig struct {
	Seed int64 `yaml:"seed"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfCollectorWindow int `yaml:"perf_collector_window"`
	StatsIntervalTicks  int `yaml:"stats_interval_ticks"`
}

// DerivedConfig holds values computed from the loaded config.
type DerivedConfig struct {
	ChunksX int // number of chunk columns
	ChunksY int // number of chunk rows
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or embedded defaults when
// the path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load reads a YAML file on top of the embedded defaults. An empty path
// uses only the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct so only present fields override.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()
	return cfg, nil
}

// WriteYAML dumps the active configuration to a file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func (c *Config) computeDerived() {
	c.Derived.ChunksX = c.World.RangeXMax - c.World.RangeXMin + 1
	c.Derived.ChunksY = c.World.RangeYMax - c.World.RangeYMin + 1
}
