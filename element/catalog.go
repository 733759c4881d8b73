package element

// Constructors return a fully initialized cell for each element. Densities,
// drags and base colors decide how elements displace each other; Air is 0 so
// everything sinks through it, gases sit just above it, solids at 100+.

func Air() Cell {
	return Cell{
		Kind:     KindAir,
		State:    StateGas,
		Density:  0,
		Color:    [4]uint8{0, 0, 0, 0},
		Drag:     0.95,
		Lifetime: LifetimeUnset,
	}
}

func Solid() Cell {
	return Cell{
		Kind:     KindSolid,
		State:    StateSolid,
		Density:  100,
		Color:    [4]uint8{69, 62, 66, 255},
		Collider: ColliderChunk,
		Lifetime: LifetimeUnset,
	}
}

func Sand() Cell {
	return Cell{
		Kind:     KindSand,
		State:    StatePowder,
		Density:  60,
		Color:    [4]uint8{243, 239, 118, 255},
		Drag:     1.0,
		Lifetime: LifetimeUnset,
	}
}

func SawDust() Cell {
	return Cell{
		Kind:     KindSawDust,
		State:    StatePowder,
		Density:  40,
		Color:    [4]uint8{181, 137, 100, 255},
		Drag:     0.9,
		Lifetime: LifetimeUnset,
	}
}

func Dirt() Cell {
	return Cell{
		Kind:     KindDirt,
		State:    StatePowder,
		Density:  60,
		Color:    [4]uint8{76, 57, 32, 255},
		Drag:     0.9,
		Lifetime: LifetimeUnset,
	}
}

func Gravel() Cell {
	return Cell{
		Kind:     KindGravel,
		State:    StatePowder,
		Density:  130,
		Color:    [4]uint8{83, 84, 78, 255},
		Drag:     0.9,
		Lifetime: LifetimeUnset,
	}
}

func Wood() Cell {
	return Cell{
		Kind:     KindWood,
		State:    StateSolid,
		Density:  100,
		Color:    [4]uint8{111, 83, 57, 255},
		Collider: ColliderChunk,
		Lifetime: LifetimeUnset,
	}
}

func Coal() Cell {
	return Cell{
		Kind:     KindCoal,
		State:    StateSolid,
		Density:  100,
		Color:    [4]uint8{42, 42, 42, 255},
		Collider: ColliderChunk,
		Lifetime: LifetimeUnset,
	}
}

func Brick() Cell {
	return Cell{
		Kind:     KindBrick,
		State:    StateSolid,
		Density:  100,
		Color:    [4]uint8{156, 67, 55, 255},
		Collider: ColliderChunk,
		Lifetime: LifetimeUnset,
	}
}

func SolidDirt() Cell {
	return Cell{
		Kind:     KindSolidDirt,
		State:    StateSolid,
		Density:  100,
		Color:    [4]uint8{76, 57, 32, 255},
		Collider: ColliderChunk,
		Lifetime: LifetimeUnset,
	}
}

func Grass() Cell {
	return Cell{
		Kind:     KindGrass,
		State:    StateSolid,
		Density:  100,
		Color:    [4]uint8{52, 140, 49, 255},
		Action:   Action{Kind: ActionGrow},
		Collider: ColliderChunk,
		Lifetime: LifetimeUnset,
	}
}

func Ice() Cell {
	return Cell{
		Kind:     KindIce,
		State:    StateSolid,
		Density:  100,
		Color:    [4]uint8{164, 212, 239, 255},
		Collider: ColliderChunk,
		Lifetime: LifetimeUnset,
	}
}

func Snow() Cell {
	return Cell{
		Kind:     KindSnow,
		State:    StatePowder,
		Density:  40,
		Color:    [4]uint8{230, 240, 250, 255},
		Drag:     0.9,
		Lifetime: LifetimeUnset,
	}
}

func Water() Cell {
	return Cell{
		Kind:     KindWater,
		State:    StateLiquid,
		Density:  50,
		Color:    [4]uint8{55, 46, 229, 175},
		Drag:     0.4,
		Lifetime: LifetimeUnset,
	}
}

func Petrol() Cell {
	return Cell{
		Kind:     KindPetrol,
		State:    StateLiquid,
		Density:  45,
		Color:    [4]uint8{0, 95, 106, 175},
		Drag:     0.4,
		Lifetime: LifetimeUnset,
	}
}

func Lava() Cell {
	return Cell{
		Kind:     KindLava,
		State:    StateLiquid,
		Density:  120,
		Color:    [4]uint8{234, 46, 56, 255},
		Action:   Action{Kind: ActionBurn},
		Drag:     0.1,
		Lifetime: LifetimeUnset,
	}
}

func Steam() Cell {
	return Cell{
		Kind:     KindSteam,
		State:    StateGas,
		Density:  2,
		Color:    [4]uint8{143, 159, 234, 140},
		Drag:     0.95,
		Lifetime: LifetimeUnset,
	}
}

func Smoke() Cell {
	return Cell{
		Kind:     KindSmoke,
		State:    StateGas,
		Density:  4,
		Color:    [4]uint8{42, 42, 42, 220},
		Drag:     0.95,
		Lifetime: LifetimeUnset,
	}
}

func Methane() Cell {
	return Cell{
		Kind:     KindMethane,
		State:    StateGas,
		Density:  3,
		Color:    [4]uint8{130, 171, 41, 140},
		Drag:     0.95,
		Lifetime: LifetimeUnset,
	}
}

func Fire() Cell {
	return Cell{
		Kind:     KindFire,
		State:    StatePlasma,
		Density:  4,
		Color:    [4]uint8{255, 170, 0, 220},
		Drag:     1.0,
		Lifetime: 50,
	}
}

func Source() Cell {
	return Cell{
		Kind:     KindSource,
		State:    StateSolid,
		Density:  100,
		Color:    [4]uint8{252, 186, 3, 255},
		Action:   Action{Kind: ActionEmitSource, Emit: KindAir},
		Collider: ColliderChunk,
		Lifetime: LifetimeUnset,
	}
}

func FireworkShell() Cell {
	return Cell{
		Kind:     KindFireworkShell,
		State:    StatePowder,
		Density:  60,
		Color:    [4]uint8{200, 60, 60, 255},
		Drag:     1.0,
		Lifetime: 100,
	}
}

func FireworkEmber() Cell {
	return Cell{
		Kind:     KindFireworkEmber,
		State:    StatePlasma,
		Density:  4,
		Color:    [4]uint8{255, 255, 255, 180},
		Drag:     1.0,
		Lifetime: 130,
	}
}

// FromKind returns the catalog cell for any kind. Unknown kinds map to Air.
func FromKind(k Kind) Cell {
	switch k {
	case KindAir:
		return Air()
	case KindSolid:
		return Solid()
	case KindSand:
		return Sand()
	case KindSawDust:
		return SawDust()
	case KindDirt:
		return Dirt()
	case KindGravel:
		return Gravel()
	case KindWood:
		return Wood()
	case KindCoal:
		return Coal()
	case KindBrick:
		return Brick()
	case KindSolidDirt:
		return SolidDirt()
	case KindGrass:
		return Grass()
	case KindIce:
		return Ice()
	case KindSnow:
		return Snow()
	case KindWater:
		return Water()
	case KindPetrol:
		return Petrol()
	case KindLava:
		return Lava()
	case KindSteam:
		return Steam()
	case KindSmoke:
		return Smoke()
	case KindMethane:
		return Methane()
	case KindFire:
		return Fire()
	case KindSource:
		return Source()
	case KindFireworkShell:
		return FireworkShell()
	case KindFireworkEmber:
		return FireworkEmber()
	}
	return Air()
}
