package element

// BurnInfo describes what happens to an element while its Burn action runs.
// BurnTicks of -1 converts on the first tick (Water flashing to Steam);
// LifetimeImmortal burns forever (Lava).
type BurnInfo struct {
	BurnTicks        int32
	Result           Cell
	EmitsFire        bool
	Darkens          bool
	IgnitesNeighbors bool
}

// Flammable reports whether the cell can enter the Burn action.
func Flammable(c Cell) bool {
	switch c.Kind {
	case KindWood, KindSawDust, KindCoal, KindMethane, KindWater,
		KindPetrol, KindGrass, KindSnow, KindIce:
		return true
	}
	return false
}

// FlammableInfo is total; non-flammable kinds burn to Air in zero ticks.
func FlammableInfo(k Kind) BurnInfo {
	switch k {
	case KindWood:
		return BurnInfo{BurnTicks: 300, Result: Smoke(), EmitsFire: true, Darkens: true}
	case KindCoal:
		return BurnInfo{BurnTicks: 400, Result: Smoke(), EmitsFire: true, Darkens: true}
	case KindSawDust:
		return BurnInfo{BurnTicks: 215, Result: Air(), EmitsFire: true, Darkens: true}
	case KindMethane:
		return BurnInfo{BurnTicks: 0, Result: Fire(), EmitsFire: true}
	case KindWater:
		return BurnInfo{BurnTicks: -1, Result: Steam()}
	case KindPetrol:
		return BurnInfo{BurnTicks: 80, Result: Fire(), EmitsFire: true}
	case KindLava:
		return BurnInfo{BurnTicks: LifetimeImmortal, Result: Fire(), EmitsFire: true, IgnitesNeighbors: true}
	case KindGrass:
		return BurnInfo{BurnTicks: 2, Result: Fire(), EmitsFire: true, Darkens: true}
	case KindSnow:
		return BurnInfo{BurnTicks: -1, Result: Water()}
	case KindIce:
		return BurnInfo{BurnTicks: -1, Result: Water()}
	}
	return BurnInfo{BurnTicks: 0, Result: Air()}
}
