package telemetry

import (
	"log/slog"
	"sort"
)

// WorldStats is one sampled row of world state, exported to world.csv.
type WorldStats struct {
	Tick         uint64  `csv:"tick"`
	ActiveChunks int     `csv:"active_chunks"`
	NonAirCells  int     `csv:"non_air_cells"`
	Bodies       int     `csv:"bodies"`
	TickUS       int64   `csv:"tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
}

// LogValue implements slog.LogValuer for structured logging.
func (s WorldStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("tick", s.Tick),
		slog.Int("active_chunks", s.ActiveChunks),
		slog.Int("non_air_cells", s.NonAirCells),
		slog.Int("bodies", s.Bodies),
		slog.Int64("tick_us", s.TickUS),
	)
}

// Percentile returns the p-quantile (0..1) of an ascending-sorted slice
// using linear interpolation. Empty input yields 0.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[len(sorted)-1]
	}

	pos := p * float64(len(sorted)-1)
	lo := int(pos)
	frac := pos - float64(lo)
	if lo+1 >= len(sorted) {
		return sorted[lo]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// SortedCopy returns an ascending copy, the form Percentile wants.
func SortedCopy(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.Float64s(out)
	return out
}
