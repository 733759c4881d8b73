package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/silt/config"
)

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir       string
	worldFile *os.File
	perfFile  *os.File

	worldHeaderWritten bool
	perfHeaderWritten  bool
}

// NewOutputManager creates the output directory and its CSV files. Returns
// nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "world.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating world.csv: %w", err)
	}
	om.worldFile = f

	f, err = os.Create(filepath.Join(dir, "perf.csv"))
	if err != nil {
		om.worldFile.Close()
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}
	om.perfFile = f

	return om, nil
}

// WriteConfig saves the active configuration as YAML next to the CSVs.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteWorld appends a world stats record to world.csv.
func (om *OutputManager) WriteWorld(stats WorldStats) error {
	if om == nil {
		return nil
	}

	records := []WorldStats{stats}
	if !om.worldHeaderWritten {
		if err := gocsv.Marshal(records, om.worldFile); err != nil {
			return fmt.Errorf("writing world stats: %w", err)
		}
		om.worldHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.worldFile); err != nil {
		return fmt.Errorf("writing world stats: %w", err)
	}
	return nil
}

// WritePerf appends a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd uint64) error {
	if om == nil {
		return nil
	}

	records := []PerfStatsCSV{stats.ToCSV(windowEnd)}
	if !om.perfHeaderWritten {
		if err := gocsv.Marshal(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
		om.perfHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.perfFile); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	if om.worldFile != nil {
		if err := om.worldFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if om.perfFile != nil {
		if err := om.perfFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
