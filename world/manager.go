package world

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/silt/element"
)

// Input is the per-frame snapshot the manager consumes; the windowing layer
// builds it so this package never touches the window library.
type Input struct {
	MouseWorld r2.Vec
	Primary    bool
	Secondary  bool
	Wheel      float64
	DT         float64
}

// Manager owns every chunk, applies brush and explosion edits, and runs the
// tick scheduler. All chunk mutation funnels through it.
type Manager struct {
	chunks map[ChunkKey]*Chunk

	RangeX [2]int
	RangeY [2]int

	Selected   element.Cell
	BrushSize  int
	Modify     bool
	ReplaceAir bool
	EditBodies bool
	Hovering   element.Cell

	atlas *element.Atlas

	frame uint64

	// Per-tick scheduler stats for the HUD and telemetry.
	PoolChunks [4]int
}

// NewManager creates all chunks in the index range up front; they live for
// the process.
func NewManager(rangeX, rangeY [2]int, atlas *element.Atlas) *Manager {
	m := &Manager{
		chunks:     make(map[ChunkKey]*Chunk),
		RangeX:     rangeX,
		RangeY:     rangeY,
		Selected:   element.Sand(),
		BrushSize:  32,
		Modify:     true,
		ReplaceAir: true,
		atlas:      atlas,
	}
	for i := rangeX[0]; i <= rangeX[1]; i++ {
		for j := rangeY[0]; j <= rangeY[1]; j++ {
			m.chunks[ChunkKey{I: i, J: j}] = NewChunk(i, j)
		}
	}
	return m
}

// Chunks exposes the chunk map. Callers must not mutate it while a tick is
// in flight.
func (m *Manager) Chunks() map[ChunkKey]*Chunk { return m.chunks }

// Chunk returns one chunk by index.
func (m *Manager) Chunk(k ChunkKey) (*Chunk, bool) {
	ch, ok := m.chunks[k]
	return ch, ok
}

// Frame is the number of completed ticks.
func (m *Manager) Frame() uint64 { return m.frame }

// Atlas returns the element texture atlas brushes sample from.
func (m *Manager) Atlas() *element.Atlas { return m.atlas }

// Edit applies the frame's mouse edits: brush resize, paint, explode, and
// the hovering-cell pickup for the HUD.
func (m *Manager) Edit(in Input) {
	if in.Wheel != 0 {
		m.BrushSize += int(in.Wheel * 4)
		if m.BrushSize < 1 {
			m.BrushSize = 1
		}
	}

	for i := m.RangeX[0]; i <= m.RangeX[1]; i++ {
		for j := m.RangeY[1]; j >= m.RangeY[0]; j-- {
			ch, ok := m.chunks[ChunkKey{I: i, J: j}]
			if !ok {
				continue
			}
			mi, mj := ch.MouseInChunk(in.MouseWorld)

			if in.Primary && m.Modify {
				ch.ModifyRegion(mi, mj, m.BrushSize, m.Selected, m.atlas, m.ReplaceAir, m.EditBodies)
			}
			if in.Secondary && m.Modify {
				ch.Explode(mi, mj, m.BrushSize*2, 4*in.DT*90)
			}
			if c, ok := ch.CellAt(mi, mj); ok {
				m.Hovering = c
			}
		}
	}
}

// ActiveChunks counts chunks that will run next tick.
func (m *Manager) ActiveChunks() int {
	n := 0
	for _, ch := range m.chunks {
		if ch.Active {
			n++
		}
	}
	return n
}

// NonAirCells counts occupied cells across the world; used by telemetry, not
// the hot path.
func (m *Manager) NonAirCells() int {
	n := 0
	for _, ch := range m.chunks {
		for idx := range ch.Grid {
			if ch.Grid[idx].Kind != element.KindAir {
				n++
			}
		}
	}
	return n
}
