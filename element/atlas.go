package element

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Tile dimensions of one atlas entry.
const (
	TexWidth  = 16
	TexHeight = 16
)

// TexData is one element's 16x16 RGBA tile.
type TexData [TexWidth][TexHeight][4]uint8

// Atlas holds a procedural texture tile per textured element. Brush writes
// and rigid-sand-body cells sample it by world coordinate modulo the tile
// size, so adjacent cells of the same element form a continuous pattern.
type Atlas struct {
	textures map[Kind]TexData
}

// texturedKinds get a noise tile; everything else keeps its flat catalog
// color (gases and plasma read badly with per-cell variation).
var texturedKinds = []Kind{
	KindSolid, KindGravel, KindDirt, KindSolidDirt, KindWood, KindSand,
	KindBrick, KindSnow, KindIce, KindCoal, KindGrass,
}

// NewAtlas generates all tiles from a single noise source. The same seed
// yields the same atlas.
func NewAtlas(seed int64) *Atlas {
	noise := opensimplex.New(seed)

	a := &Atlas{textures: make(map[Kind]TexData, len(texturedKinds))}
	for _, k := range texturedKinds {
		a.textures[k] = genTile(noise, k)
	}
	return a
}

// genTile modulates the element's base color with two octaves of simplex
// noise. The kind index offsets the noise domain so tiles differ.
func genTile(noise opensimplex.Noise, k Kind) TexData {
	base := FromKind(k).Color
	off := float64(k) * 64.0

	var tile TexData
	for i := 0; i < TexWidth; i++ {
		for j := 0; j < TexHeight; j++ {
			n := noise.Eval2(off+float64(i)*0.55, off+float64(j)*0.55)
			n += 0.5 * noise.Eval2(off+float64(i)*1.3, off+float64(j)*1.3)
			// n in roughly [-1.5, 1.5]; map to a +-18% brightness swing
			f := 1.0 + n*0.12

			tile[i][j][0] = scale8(base[0], f)
			tile[i][j][1] = scale8(base[1], f)
			tile[i][j][2] = scale8(base[2], f)
			tile[i][j][3] = base[3]
		}
	}
	return tile
}

func scale8(v uint8, f float64) uint8 {
	s := float64(v) * f
	if s < 0 {
		return 0
	}
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// Texture returns the tile for a kind, if it has one.
func (a *Atlas) Texture(k Kind) (TexData, bool) {
	t, ok := a.textures[k]
	return t, ok
}

// Tint colors the cell from its element's tile at the given grid coordinate.
// Untextured elements are left with their catalog color.
func (a *Atlas) Tint(c *Cell, i, j int) {
	if a == nil {
		return
	}
	t, ok := a.textures[c.Kind]
	if !ok {
		return
	}
	x := ((i % TexWidth) + TexWidth) % TexWidth
	y := ((j % TexHeight) + TexHeight) % TexHeight
	c.Color = t[x][y]
}
