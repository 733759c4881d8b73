package renderer

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/silt/camera"
	"github.com/pthm-cable/silt/components"
	"github.com/pthm-cable/silt/phys"
	"github.com/pthm-cable/silt/world"
)

// BodyRenderer draws loose balls and textured rigid sand bodies.
type BodyRenderer struct {
	textures map[uint32]rl.Texture2D
}

// NewBodyRenderer creates an empty body renderer.
func NewBodyRenderer() *BodyRenderer {
	return &BodyRenderer{textures: make(map[uint32]rl.Texture2D)}
}

// Draw renders every rigid-body entity at its transform.
func (r *BodyRenderer) Draw(pm *phys.Manager, cam *camera.Camera) {
	pm.EachBody(func(t components.Transform, b components.RigidBody) {
		switch b.Kind {
		case components.KindBall:
			sx, sy := cam.WorldToScreen(t.X, t.Y)
			rl.DrawCircleLines(int32(sx), int32(sy), float32(b.Radius*cam.Zoom), rl.RayWhite)

		case components.KindSandBody:
			sb, ok := pm.SandBody(b.ID)
			if !ok {
				return
			}
			r.drawSandBody(b.ID, sb, t, cam)
		}
	})
}

func (r *BodyRenderer) drawSandBody(id uint32, sb *phys.SandBody, t components.Transform, cam *camera.Camera) {
	w := len(sb.Cells)
	h := len(sb.Cells[0])

	tex, ok := r.textures[id]
	if !ok {
		img := rl.GenImageColor(w, h, rl.Blank)
		tex = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		rl.SetTextureFilter(tex, rl.FilterPoint)
		r.textures[id] = tex
	}

	if sb.DirtyTex {
		pixels := make([]color.RGBA, w*h)
		for n := range pixels {
			b := sb.Bytes[n*4 : n*4+4]
			pixels[n] = color.RGBA{R: b[0], G: b[1], B: b[2], A: b[3]}
		}
		rl.UpdateTexture(tex, pixels)
		sb.DirtyTex = false
	}

	sx, sy := cam.WorldToScreen(t.X, t.Y)
	scale := world2scale(cam)
	dst := rl.Rectangle{
		X:      float32(sx),
		Y:      float32(sy),
		Width:  float32(float64(w) * scale),
		Height: float32(float64(h) * scale),
	}
	origin := rl.Vector2{X: dst.Width / 2, Y: dst.Height / 2}
	src := rl.Rectangle{Width: float32(w), Height: float32(h)}
	rl.DrawTexturePro(tex, src, dst, origin, float32(t.Angle*180/math.Pi), rl.White)
}

// world2scale is screen pixels per body cell.
func world2scale(cam *camera.Camera) float64 {
	return world.UpscaleFactor * cam.Zoom
}

// Unload releases all GPU textures.
func (r *BodyRenderer) Unload() {
	for id, tex := range r.textures {
		rl.UnloadTexture(tex)
		delete(r.textures, id)
	}
}
