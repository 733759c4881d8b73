// Package ui renders the debug HUD: element picker, brush controls, body
// spawners and overlay toggles.
package ui

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/silt/element"
	"github.com/pthm-cable/silt/phys"
	"github.com/pthm-cable/silt/renderer"
	"github.com/pthm-cable/silt/telemetry"
	"github.com/pthm-cable/silt/world"
)

// paintable is the element picker ordering.
var paintable = []element.Kind{
	element.KindAir, element.KindSolid, element.KindBrick, element.KindSand,
	element.KindDirt, element.KindSolidDirt, element.KindGravel,
	element.KindSawDust, element.KindWood, element.KindCoal,
	element.KindGrass, element.KindIce, element.KindSnow, element.KindWater,
	element.KindPetrol, element.KindLava, element.KindSteam,
	element.KindSmoke, element.KindMethane, element.KindFire,
	element.KindSource, element.KindFireworkShell,
}

// HUD is the left-side control panel. Hidden by default; toggled with Tab.
type HUD struct {
	Visible bool

	x, y  float32
	width float32
}

// NewHUD creates the panel at a fixed screen anchor.
func NewHUD() *HUD {
	return &HUD{x: 10, y: 10, width: 210}
}

// Toggle flips visibility.
func (h *HUD) Toggle() { h.Visible = !h.Visible }

// MouseOver reports whether the cursor is over the open panel, so the brush
// does not paint through it.
func (h *HUD) MouseOver() bool {
	if !h.Visible {
		return false
	}
	m := rl.GetMousePosition()
	return m.X >= h.x && m.X <= h.x+h.width && m.Y >= h.y && m.Y <= h.y+620
}

// Draw renders the panel and applies edits directly to the managers.
func (h *HUD) Draw(pm *phys.Manager, wm *world.Manager, flags *renderer.DebugFlags, perf *telemetry.PerfCollector) {
	if !h.Visible {
		return
	}

	x, y := h.x, h.y
	rl.DrawRectangle(int32(x)-5, int32(y)-5, int32(h.width)+10, 630, rl.Fade(rl.Black, 0.75))

	rl.DrawText("silt", int32(x), int32(y), 20, rl.RayWhite)
	y += 28

	// Element picker, two columns.
	col := 0
	for _, k := range paintable {
		bx := x + float32(col)*((h.width)/2+2)
		label := k.String()
		if wm.Selected.Kind == k {
			label = "> " + label
		}
		if gui.Button(rl.Rectangle{X: bx, Y: y, Width: h.width / 2, Height: 20}, label) {
			wm.Selected = element.FromKind(k)
		}
		col++
		if col == 2 {
			col = 0
			y += 22
		}
	}
	if col != 0 {
		y += 22
	}
	y += 8

	// Brush size.
	rl.DrawText(fmt.Sprintf("Brush: %d", wm.BrushSize), int32(x), int32(y), 14, rl.LightGray)
	y += 16
	size := gui.SliderBar(rl.Rectangle{X: x, Y: y, Width: h.width, Height: 16},
		"1", "128", float32(wm.BrushSize), 1, 128)
	wm.BrushSize = int(size)
	y += 24

	wm.ReplaceAir = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16},
		"Replace air only", wm.ReplaceAir)
	y += 20
	wm.EditBodies = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16},
		"Brush edits bodies", wm.EditBodies)
	y += 20
	pm.Paused = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16},
		"Paused", pm.Paused)
	y += 24

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: h.width / 2, Height: 20}, "Step once") {
		pm.StepOnce()
	}
	y += 26

	// Body spawners drop at the middle of the world's chunk range.
	rl.DrawText("Bodies", int32(x), int32(y), 14, rl.LightGray)
	y += 16
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: h.width/3 - 2, Height: 20}, "Disc") {
		h.spawn(pm, wm, phys.ShapeDisc)
	}
	if gui.Button(rl.Rectangle{X: x + h.width/3, Y: y, Width: h.width/3 - 2, Height: 20}, "Square") {
		h.spawn(pm, wm, phys.ShapeSquare)
	}
	if gui.Button(rl.Rectangle{X: x + 2*h.width/3, Y: y, Width: h.width/3 - 2, Height: 20}, "Rect") {
		h.spawn(pm, wm, phys.ShapeRectangle)
	}
	y += 24
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: h.width / 2, Height: 20}, "Clear bodies") {
		pm.ClearBodies()
	}
	y += 28

	// Overlays.
	rl.DrawText("Overlays", int32(x), int32(y), 14, rl.LightGray)
	y += 16
	flags.ChunkBounds = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16},
		"Chunk bounds", flags.ChunkBounds)
	y += 20
	flags.ChunkCoords = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16},
		"Chunk coords", flags.ChunkCoords)
	y += 20
	flags.DirtyRects = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16},
		"Dirty rects", flags.DirtyRects)
	y += 20
	flags.BodyEdges = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16},
		"Body edges", flags.BodyEdges)
	y += 26

	// Readouts.
	hov := wm.Hovering
	rl.DrawText(fmt.Sprintf("Hover: %s  d=%.0f", hov.Kind, hov.Density), int32(x), int32(y), 14, rl.LightGray)
	y += 18
	rl.DrawText(fmt.Sprintf("Active chunks: %d", wm.ActiveChunks()), int32(x), int32(y), 14, rl.LightGray)
	y += 18
	rl.DrawText(fmt.Sprintf("Pools: %v", wm.PoolChunks), int32(x), int32(y), 14, rl.LightGray)
	y += 18
	if perf != nil {
		s := perf.Stats()
		rl.DrawText(fmt.Sprintf("Tick: %s  (%.0f/s)", s.AvgTickDuration.Round(time.Microsecond), s.TicksPerSecond),
			int32(x), int32(y), 14, rl.LightGray)
	}
}

// worldCenter is the middle of the chunk index range in world pixels.
func worldCenter(wm *world.Manager) r2.Vec {
	cx := (float64(wm.RangeX[0]) + float64(wm.RangeX[1]+1)) / 2 * float64(world.Cols) * world.UpscaleFactor
	cy := (float64(wm.RangeY[0]) + float64(wm.RangeY[1]+1)) / 2 * float64(world.Rows) * world.UpscaleFactor
	return r2.Vec{X: cx, Y: cy}
}

// spawn drops a sand body at the middle of the world's chunk range.
func (h *HUD) spawn(pm *phys.Manager, wm *world.Manager, shape phys.BodyShape) {
	if err := pm.SpawnSandBody(worldCenter(wm), shape, wm.Atlas()); err != nil {
		rl.TraceLog(rl.LogWarning, "sand body refused: %v", err)
	}
}
