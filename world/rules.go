package world

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/silt/element"
)

// Element movement recipes, composed from the base primitives. Each returns
// whether the cell did something this tick and flags the chunk to stay
// active accordingly.

// fallingPowder moves Sand-like elements: gravity, straight drop, ballistic
// travel, then a diagonal slide, short-circuiting on the first success.
func (e *Env) fallingPowder(i, j int) bool {
	e.ApplyGravity(i, j)
	if !e.Downward(i, j) {
		if !e.ApplyVelocity(i, j) {
			if !e.DownwardSides(i, j) {
				return false
			}
		}
	}
	e.keepActive = true
	return true
}

// liquidMovement adds sideways flow: when the cell below does not yield and
// lateral speed is moderate, accelerate toward a non-denser side, keeping an
// existing direction.
func (e *Env) liquidMovement(i, j int) bool {
	e.ApplyGravity(i, j)

	cell := e.fgrid.At(i, j)
	downDensity := e.Get(i, j+1).Density

	if downDensity >= cell.Density && math.Abs(cell.Velocity.X) <= 7 {
		left := cell.Velocity.X < 0
		right := cell.Velocity.X > 0

		if !left && !right {
			left = e.Get(i-1, j).Density < cell.Density
			right = e.Get(i+1, j).Density < cell.Density
			if left && right {
				left = randBool()
				right = !left
			}
		}

		acc := 3 * cell.Drag
		if right {
			if cell.Velocity.X < 0 {
				cell.Velocity.X = 0
			}
			cell.Velocity.X += acc
		} else if left {
			if cell.Velocity.X > 0 {
				cell.Velocity.X = 0
			}
			cell.Velocity.X -= acc
		}
	}

	if e.ApplyVelocity(i, j) {
		e.keepActive = true
		return true
	}
	return false
}

// gasMovement is buoyancy: rise while the cell above is lighter, else drift
// sideways toward a non-denser side.
func (e *Env) gasMovement(i, j int) bool {
	cell := e.fgrid.At(i, j)
	upDensity := e.Get(i, j-1).Density

	if cell.Velocity.Y > -1.75 && upDensity < cell.Density {
		cell.Velocity.Y -= 0.5
	} else if upDensity >= cell.Density && math.Abs(cell.Velocity.X) <= 2.5 {
		left := cell.Velocity.X < 0
		right := cell.Velocity.X > 0

		if !left && !right {
			left = e.Get(i-1, j).Density < cell.Density
			right = e.Get(i+1, j).Density < cell.Density
			if left && right {
				left = randBool()
				right = !left
			}
		}

		if right {
			cell.Velocity.X += 0.5
		} else if left {
			cell.Velocity.X -= 0.5
		}
	}

	if e.ApplyVelocity(i, j) {
		e.keepActive = true
		return true
	}
	return false
}

// fireMovement decays the flame, pushes it upward with a sinusoidal
// flicker, dims it, and ignites neighbors. Expired fire becomes Air.
func (e *Env) fireMovement(i, j int) bool {
	cell := e.fgrid.At(i, j)
	dec := int32(randRange(2, 8))
	cell.Lifetime -= dec

	e.keepActive = true

	if cell.Lifetime <= 0 {
		*cell = element.Air()
		UpdateByte(e.ch.Bytes, i, j, cell.Color)
		return true
	}

	if cell.Velocity.Y >= -4 {
		cell.Velocity.Y -= 0.5
	}
	cell.Velocity.X += clampF(math.Sin(float64(cell.Lifetime))*1.075, -1.5, 1.5)

	d := float64(dec)
	cell.Color[1] = uint8(clampF(float64(cell.Color[1])-d*d*0.3, 0, 200))
	cell.Color[3] = uint8(clampF(float64(cell.Color[3])-d*d, 220, 255))
	UpdateByte(e.ch.Bytes, i, j, cell.Color)

	e.SpreadFire(i, j)

	if !e.ApplyVelocity(i, j) {
		e.ch.DirtyRect.SetTemp(i, j)
	}
	return true
}

// fireworkShellMovement climbs with an oscillating wobble and a fire trail;
// at the end of its fuse it bursts into a ring of pushed cells and embers.
func (e *Env) fireworkShellMovement(i, j int) bool {
	e.keepActive = true

	cell := e.fgrid.At(i, j)
	dec := int32(randRange(2, 7))

	if cell.Lifetime <= 0 {
		*cell = element.Air()
		UpdateByte(e.ch.Bytes, i, j, cell.Color)
		e.burstShell(i, j)
		return true
	}

	if cell.Velocity.Y >= -7 {
		cell.Velocity.Y -= 0.75
	}

	trail := element.Fire()
	trail.Lifetime = 30
	e.Set(i, j+1, trail)

	cell.Lifetime -= dec
	cell.Velocity.X = math.Sin(float64(cell.Lifetime)/8) * 2

	if !e.ApplyVelocity(i, j) {
		e.ch.DirtyRect.SetTemp(i, j)
	}
	return true
}

// burstShell pushes a radial shockwave through the ring [15, size] and
// sprinkles embers whose density value tags their palette.
func (e *Env) burstShell(i, j int) {
	size := randRange(30, 71)
	density := float64(randRange(4, 9))

	for x := -size; x <= size; x++ {
		for y := -size; y <= size; y++ {
			dist := r2.Norm(r2.Vec{X: float64(x), Y: float64(y)})
			if dist > float64(size) || dist < 15 {
				continue
			}

			vel := r2.Scale(5/dist, r2.Vec{X: float64(x), Y: float64(y)})
			pushed := e.Get(i+x, j+y)
			pushed.Velocity = vel
			e.Set(i+x, j+y, pushed)

			if randRange(1, 5) == 4 {
				if e.Get(i+x, j+y).Kind == element.KindAir {
					ember := element.FireworkEmber()
					ember.Velocity = vel
					ember.Density = density
					ember.Lifetime = 130
					e.Set(i+x, j+y, ember)
				}
			}
		}
	}
}

// emberPalette keys the ember's fade-out color on the density tag set at
// burst time.
var emberPalette = map[float64][2][4]uint8{
	4: {{255, 255, 255, 180}, {14, 8, 184, 255}},
	5: {{255, 255, 255, 180}, {206, 32, 41, 255}},
	6: {{255, 255, 0, 120}, {255, 204, 0, 255}},
	7: {{255, 255, 255, 180}, {11, 217, 118, 255}},
	8: {{255, 255, 255, 180}, {159, 16, 140, 255}},
}

// fireworkEmberMovement fades the ember toward its palette color while it
// flies, spreading fire on the way.
func (e *Env) fireworkEmberMovement(i, j int) bool {
	cell := e.fgrid.At(i, j)
	dec := int32(randRange(2, 8))
	cell.Lifetime -= dec

	e.keepActive = true

	if cell.Lifetime <= 0 {
		*cell = element.Air()
		UpdateByte(e.ch.Bytes, i, j, cell.Color)
		return true
	}

	if pal, ok := emberPalette[cell.Density]; ok {
		cell.Color = lerpRGBA(pal[0], pal[1], float64(cell.Lifetime)/100)
	}
	UpdateByte(e.ch.Bytes, i, j, cell.Color)

	e.SpreadFire(i, j)

	e.ApplyVelocity(i, j)
	e.ch.DirtyRect.SetTemp(i, j)
	return true
}

func lerpRGBA(a, b [4]uint8, t float64) [4]uint8 {
	t = clampF(t, 0, 1)
	var out [4]uint8
	for n := 0; n < 4; n++ {
		out[n] = uint8(math.Round(float64(a[n]) + t*(float64(b[n])-float64(a[n]))))
	}
	return out
}
