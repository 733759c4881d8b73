package world

import (
	"math/rand"

	"github.com/pthm-cable/silt/element"
)

// handleActions steps a cell's action state machine. It runs before the
// cell's movement recipe each tick.
func (e *Env) handleActions(i, j int) {
	cell := e.fgrid.At(i, j)
	switch cell.Action.Kind {
	case element.ActionBurn:
		e.handleBurn(i, j)
	case element.ActionEmitSource:
		e.handleEmitSource(i, j)
	case element.ActionGrow:
		e.handleGrow(i, j)
	}
}

// handleBurn ticks a burning cell down and replaces it with its burn result
// when the fuse runs out. The decrement is (i+j+frame) mod 10 -- cheap and
// deterministic, no PRNG call per cell.
func (e *Env) handleBurn(i, j int) {
	cell := e.fgrid.At(i, j)
	info := element.FlammableInfo(cell.Kind)

	if cell.Lifetime == element.LifetimeUnset {
		cell.Lifetime = info.BurnTicks
		if info.Darkens {
			cell.Color[0] /= 2
			cell.Color[1] /= 2
			cell.Color[2] /= 2
			UpdateByte(e.ch.Bytes, i, j, cell.Color)
		}
	} else if cell.Lifetime < 0 && cell.Lifetime != element.LifetimeImmortal {
		e.Set(i, j, info.Result)
		e.keepActive = true
		e.ch.DirtyRect.SetTemp(i, j)
		e.ch.CollidersDirty = true
		return
	}

	e.keepActive = true
	e.ch.DirtyRect.SetTemp(i, j)

	r := int32((uint64(i) + uint64(j) + e.frame) % 10)
	if cell.Lifetime != element.LifetimeImmortal {
		cell.Lifetime -= r
		// Skip the uninitialized sentinel so the fuse cannot re-arm.
		if cell.Lifetime == element.LifetimeUnset {
			cell.Lifetime--
		}
	}

	if info.IgnitesNeighbors {
		e.SpreadFire(i, j)
	}

	if info.EmitsFire {
		var di, dj int
		switch r {
		case 0:
			di, dj = 0, -1
		case 1:
			di, dj = 1, 0
		case 2:
			di, dj = 0, 1
		case 3:
			di, dj = -1, 0
		default:
			return
		}
		if e.Get(i+di, j+dj).Kind == element.KindAir {
			e.Set(i+di, j+dj, element.Fire())
		}
	}
}

// handleEmitSource either samples a payload from the first non-Solid
// neighbor (payload still Air) or stamps copies of the payload into every
// gas-state neighbor, producing an endless stream.
func (e *Env) handleEmitSource(i, j int) {
	cell := e.fgrid.At(i, j)

	up := e.Get(i, j-1)
	down := e.Get(i, j+1)
	left := e.Get(i-1, j)
	right := e.Get(i+1, j)

	if cell.Action.Emit == element.KindAir {
		switch {
		case up.State != element.StateSolid:
			cell.Action.Emit = up.Kind
		case down.State != element.StateSolid:
			cell.Action.Emit = down.Kind
		case left.State != element.StateSolid:
			cell.Action.Emit = left.Kind
		case right.State != element.StateSolid:
			cell.Action.Emit = right.Kind
		}
		return
	}

	emit := cell.Action.Emit
	if up.State == element.StateGas {
		e.Set(i, j-1, element.FromKind(emit))
	}
	if down.State == element.StateGas {
		e.Set(i, j+1, element.FromKind(emit))
	}
	if left.State == element.StateGas {
		e.Set(i-1, j, element.FromKind(emit))
	}
	if right.State == element.StateGas {
		e.Set(i+1, j, element.FromKind(emit))
	}
}

// handleGrow spreads grass along SolidDirt surfaces (eight neighbor cases)
// and climbs a blade upward with probability 1/h^2, at most six cells. The
// action switches off once nothing spread.
func (e *Env) handleGrow(i, j int) {
	up := e.Get(i, j-1)
	down := e.Get(i, j+1)
	left := e.Get(i-1, j)
	right := e.Get(i+1, j)

	upRight := e.Get(i+1, j-1)
	upLeft := e.Get(i-1, j-1)
	downRight := e.Get(i+1, j+1)
	downLeft := e.Get(i-1, j+1)

	active := false
	if left.Kind == element.KindAir && downLeft.Kind == element.KindSolidDirt {
		e.Set(i-1, j, element.Grass())
		active = true
	}
	if right.Kind == element.KindAir && downRight.Kind == element.KindSolidDirt {
		e.Set(i+1, j, element.Grass())
		active = true
	}
	if down.Kind == element.KindSolidDirt {
		if downRight.Kind == element.KindAir {
			e.Set(i+1, j+1, element.Grass())
			active = true
		}
		if downLeft.Kind == element.KindAir {
			e.Set(i-1, j+1, element.Grass())
			active = true
		}
	}
	if down.Kind == element.KindAir &&
		(downRight.Kind == element.KindSolidDirt || downLeft.Kind == element.KindSolidDirt) {
		e.Set(i, j+1, element.Grass())
		active = true
	}
	if up.Kind == element.KindAir &&
		(upRight.Kind == element.KindSolidDirt || upLeft.Kind == element.KindSolidDirt) {
		e.Set(i, j-1, element.Grass())
		active = true
	}
	if right.Kind == element.KindSolidDirt && upRight.Kind == element.KindAir {
		e.Set(i+1, j-1, element.Grass())
		active = true
	}
	if left.Kind == element.KindSolidDirt && upLeft.Kind == element.KindAir {
		e.Set(i-1, j-1, element.Grass())
		active = true
	}

	height := 1
	chance := rand.Float64()
	for chance < 1/float64(height*height) {
		if e.Get(i, j-height).Kind != element.KindAir || height >= 6 {
			break
		}
		blade := element.Grass()
		blade.Action = element.Action{}
		e.Set(i, j-height, blade)
		height++
	}

	if !active {
		e.fgrid.At(i, j).Action = element.Action{}
	}

	e.keepActive = true
	e.ch.DirtyRect.SetTemp(i, j)
}
