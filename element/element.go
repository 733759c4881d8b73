// Package element defines the cell value type and the closed element catalog
// the simulation is built from.
package element

import "gonum.org/v1/gonum/spatial/r2"

// Kind identifies an element.
type Kind uint8

const (
	KindAir Kind = iota
	KindSolid
	KindSand
	KindSawDust
	KindDirt
	KindGravel
	KindWood
	KindCoal
	KindBrick
	KindSolidDirt
	KindGrass
	KindIce
	KindSnow
	KindWater
	KindPetrol
	KindLava
	KindSteam
	KindSmoke
	KindMethane
	KindFire
	KindSource
	KindFireworkShell
	KindFireworkEmber

	KindCount
)

var kindNames = [KindCount]string{
	"Air", "Solid", "Sand", "SawDust", "Dirt", "Gravel", "Wood", "Coal",
	"Brick", "SolidDirt", "Grass", "Ice", "Snow", "Water", "Petrol", "Lava",
	"Steam", "Smoke", "Methane", "Fire", "Source", "FireworkShell",
	"FireworkEmber",
}

func (k Kind) String() string {
	if k < KindCount {
		return kindNames[k]
	}
	return "Unknown"
}

// State is an element's movement family.
type State uint8

const (
	StateSolid State = iota
	StatePowder
	StateLiquid
	StateGas
	StatePlasma
)

// ActionKind tags a cell's pending action state machine.
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionBurn
	ActionEmitSource
	ActionGrow
)

// Action is an optional per-cell state machine. Emit carries the payload
// element for ActionEmitSource.
type Action struct {
	Kind ActionKind
	Emit Kind
}

// ColliderType says how a cell participates in rigid-body collision.
type ColliderType uint8

const (
	ColliderNone ColliderType = iota
	ColliderChunk
	ColliderBody
)

// Lifetime sentinels.
const (
	LifetimeUnset    int32 = -1
	LifetimeImmortal int32 = -100
)

// Cell is the per-grid-slot value. It is copied freely; Air is the empty
// sentinel.
type Cell struct {
	Kind     Kind
	State    State
	Action   Action
	Collider ColliderType
	Color    [4]uint8
	Density  float64
	Drag     float64
	Velocity r2.Vec
	Lifetime int32
}

// IsEmpty reports whether the cell is the Air sentinel.
func (c Cell) IsEmpty() bool { return c.Kind == KindAir }
