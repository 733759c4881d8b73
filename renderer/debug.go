package renderer

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/silt/camera"
	"github.com/pthm-cable/silt/components"
	"github.com/pthm-cable/silt/phys"
	"github.com/pthm-cable/silt/world"
)

// DebugFlags selects which overlays to draw.
type DebugFlags struct {
	ChunkBounds bool
	ChunkCoords bool
	DirtyRects  bool
	BodyEdges   bool
}

// DrawDebug renders the enabled overlays on top of the world.
func DrawDebug(flags DebugFlags, chunks map[world.ChunkKey]*world.Chunk, pm *phys.Manager, cam *camera.Camera) {
	chunkW := float64(world.Cols) * world.UpscaleFactor
	chunkH := float64(world.Rows) * world.UpscaleFactor

	if flags.ChunkBounds {
		for _, ch := range chunks {
			sx, sy := cam.WorldToScreen(ch.Pos.X, ch.Pos.Y)
			col := rl.Red
			if ch.Active {
				col = rl.Green
			}
			rl.DrawRectangleLines(int32(sx), int32(sy),
				int32(chunkW*cam.Zoom), int32(chunkH*cam.Zoom), col)
		}
	}

	if flags.DirtyRects {
		for _, ch := range chunks {
			if !ch.Active || ch.DirtyRect.Empty() {
				continue
			}
			r := ch.DirtyRect
			sx, sy := cam.WorldToScreen(
				ch.Pos.X+float64(r.MinX)*world.UpscaleFactor,
				ch.Pos.Y+float64(r.MinY)*world.UpscaleFactor)
			w := float64(r.MaxX-r.MinX) * world.UpscaleFactor * cam.Zoom
			h := float64(r.MaxY-r.MinY) * world.UpscaleFactor * cam.Zoom
			rl.DrawRectangleLines(int32(sx), int32(sy), int32(w), int32(h), rl.Blue)
		}
	}

	if flags.ChunkCoords {
		for _, ch := range chunks {
			sx, sy := cam.WorldToScreen(ch.Pos.X+chunkW/2, ch.Pos.Y+chunkH/2)
			label := fmt.Sprintf("(%d, %d)", ch.Index.I, ch.Index.J)
			rl.DrawText(label, int32(sx)-30, int32(sy), 16, rl.RayWhite)
		}
	}

	if flags.BodyEdges {
		pm.EachBody(func(t components.Transform, b components.RigidBody) {
			if b.Kind != components.KindSandBody {
				return
			}
			sb, ok := pm.SandBody(b.ID)
			if !ok || len(sb.Edge) < 2 {
				return
			}
			cos, sin := math.Cos(t.Angle), math.Sin(t.Angle)
			prev := sb.Edge[len(sb.Edge)-1]
			for _, p := range sb.Edge {
				x1 := t.X + (prev.X*cos-prev.Y*sin)*phys.PhysScale
				y1 := t.Y + (prev.X*sin+prev.Y*cos)*phys.PhysScale
				x2 := t.X + (p.X*cos-p.Y*sin)*phys.PhysScale
				y2 := t.Y + (p.X*sin+p.Y*cos)*phys.PhysScale
				sx1, sy1 := cam.WorldToScreen(x1, y1)
				sx2, sy2 := cam.WorldToScreen(x2, y2)
				rl.DrawLineV(
					rl.Vector2{X: float32(sx1), Y: float32(sy1)},
					rl.Vector2{X: float32(sx2), Y: float32(sy2)},
					rl.Magenta)
				prev = p
			}
		})
	}
}
