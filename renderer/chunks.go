// Package renderer draws the chunk field and rigid bodies with raylib.
package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/silt/camera"
	"github.com/pthm-cable/silt/world"
)

// ChunkRenderer owns one GPU texture per chunk and re-uploads the byte
// mirror of any chunk whose texture went dirty this tick.
type ChunkRenderer struct {
	textures map[world.ChunkKey]rl.Texture2D
	pixels   []color.RGBA
}

// NewChunkRenderer creates an empty renderer; textures are created lazily
// once the window exists.
func NewChunkRenderer() *ChunkRenderer {
	return &ChunkRenderer{
		textures: make(map[world.ChunkKey]rl.Texture2D),
		pixels:   make([]color.RGBA, world.Cols*world.Rows),
	}
}

// Draw uploads dirty chunk textures and draws every chunk through the
// camera.
func (r *ChunkRenderer) Draw(chunks map[world.ChunkKey]*world.Chunk, cam *camera.Camera) {
	for _, ch := range chunks {
		tex, ok := r.textures[ch.Index]
		if !ok {
			img := rl.GenImageColor(world.Cols, world.Rows, rl.Blank)
			tex = rl.LoadTextureFromImage(img)
			rl.UnloadImage(img)
			rl.SetTextureFilter(tex, rl.FilterPoint)
			r.textures[ch.Index] = tex
		}

		if ch.DirtyTex {
			r.upload(tex, ch)
			ch.DirtyTex = false
		}

		sx, sy := cam.WorldToScreen(ch.Pos.X, ch.Pos.Y)
		src := rl.Rectangle{Width: float32(world.Cols), Height: float32(world.Rows)}
		dst := rl.Rectangle{
			X:      float32(sx),
			Y:      float32(sy),
			Width:  float32(float64(world.Cols) * world.UpscaleFactor * cam.Zoom),
			Height: float32(float64(world.Rows) * world.UpscaleFactor * cam.Zoom),
		}
		rl.DrawTexturePro(tex, src, dst, rl.Vector2{}, 0, rl.White)
	}
}

// upload converts the byte mirror to RGBA pixels and pushes them to the GPU.
func (r *ChunkRenderer) upload(tex rl.Texture2D, ch *world.Chunk) {
	for n := range r.pixels {
		b := ch.Bytes[n*4 : n*4+4]
		r.pixels[n] = color.RGBA{R: b[0], G: b[1], B: b[2], A: b[3]}
	}
	rl.UpdateTexture(tex, r.pixels)
}

// Unload releases all GPU textures.
func (r *ChunkRenderer) Unload() {
	for key, tex := range r.textures {
		rl.UnloadTexture(tex)
		delete(r.textures, key)
	}
}
