package world

import "github.com/pthm-cable/silt/element"

// UpdateChunk runs one tick over the chunk's committed dirty rect. The grid
// is double buffered: reads of already-moved cells are detected by the
// kind-equality guard so a cell swapped away this tick is not re-processed
// at its destination.
func UpdateChunk(ch *Chunk, chunks map[ChunkKey]*Chunk, frame uint64) {
	if !ch.Active {
		return
	}

	copy(ch.future, ch.Grid)

	env := &Env{
		chunks: chunks,
		ch:     ch,
		fgrid:  ch.future,
		frame:  frame,
	}

	// Random axis flips per tick keep iteration order from biasing flow
	// direction.
	flipX := randBool()
	flipY := randBool()
	r := ch.DirtyRect
	for iLoop := r.MinX; iLoop <= r.MaxX; iLoop++ {
		for jLoop := r.MinY; jLoop <= r.MaxY; jLoop++ {
			i := iLoop
			if flipX {
				i = r.MaxX - (iLoop - r.MinX)
			}
			j := jLoop
			if flipY {
				j = r.MaxY - (jLoop - r.MinY)
			}

			if ch.Grid.At(i, j).Kind != ch.future.At(i, j).Kind {
				continue
			}

			switch ch.Grid.At(i, j).Kind {
			case element.KindSand, element.KindDirt, element.KindGravel:
				env.fallingPowder(i, j)
			case element.KindSawDust, element.KindSnow:
				env.handleActions(i, j)
				env.fallingPowder(i, j)
			case element.KindWater, element.KindPetrol, element.KindLava:
				env.handleActions(i, j)
				env.liquidMovement(i, j)
			case element.KindSteam, element.KindSmoke:
				env.gasMovement(i, j)
			case element.KindMethane:
				env.handleActions(i, j)
				env.gasMovement(i, j)
			case element.KindFire:
				env.fireMovement(i, j)
			case element.KindFireworkShell:
				env.fireworkShellMovement(i, j)
			case element.KindFireworkEmber:
				env.fireworkEmberMovement(i, j)
			case element.KindWood, element.KindCoal, element.KindIce,
				element.KindGrass, element.KindSource:
				env.handleActions(i, j)
			}
		}
	}

	ch.DirtyRect.SetMinMax()

	ch.Active = env.keepActive
	ch.DirtyTex = true

	copy(ch.Grid, ch.future)
}
