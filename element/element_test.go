package element

import "testing"

func TestFromKindTotal(t *testing.T) {
	for k := Kind(0); k < KindCount; k++ {
		c := FromKind(k)
		if c.Kind != k {
			t.Errorf("FromKind(%v).Kind = %v", k, c.Kind)
		}
	}
}

func TestAirSentinel(t *testing.T) {
	a := Air()
	if a.Density != 0 || a.State != StateGas || a.Color[3] != 0 {
		t.Errorf("air sentinel broken: density=%f state=%v alpha=%d", a.Density, a.State, a.Color[3])
	}
	if !a.IsEmpty() {
		t.Error("Air().IsEmpty() = false")
	}
	if Sand().IsEmpty() {
		t.Error("Sand().IsEmpty() = true")
	}
}

func TestDensityOrdering(t *testing.T) {
	// The movement rules only depend on relative density; pin the relations
	// that produce sinking sand, floating gases and lava displacing water.
	cases := []struct {
		name    string
		lighter Cell
		heavier Cell
	}{
		{"air under sand", Air(), Sand()},
		{"water under sand", Water(), Sand()},
		{"petrol under water", Petrol(), Water()},
		{"steam under smoke", Steam(), Smoke()},
		{"water under lava", Water(), Lava()},
		{"smoke under water", Smoke(), Water()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.lighter.Density >= tc.heavier.Density {
				t.Errorf("%s: %f >= %f", tc.name, tc.lighter.Density, tc.heavier.Density)
			}
		})
	}
}

func TestFlammableSet(t *testing.T) {
	burnable := []Kind{
		KindWood, KindSawDust, KindCoal, KindMethane, KindWater,
		KindPetrol, KindGrass, KindSnow, KindIce,
	}
	for _, k := range burnable {
		if !Flammable(FromKind(k)) {
			t.Errorf("%v should be flammable", k)
		}
	}
	inert := []Kind{KindAir, KindSolid, KindSand, KindBrick, KindFire, KindLava}
	for _, k := range inert {
		if Flammable(FromKind(k)) {
			t.Errorf("%v should not be flammable", k)
		}
	}
}

func TestFlammableInfoTable(t *testing.T) {
	tests := []struct {
		kind   Kind
		ticks  int32
		result Kind
	}{
		{KindWood, 300, KindSmoke},
		{KindCoal, 400, KindSmoke},
		{KindSawDust, 215, KindAir},
		{KindWater, -1, KindSteam},
		{KindSnow, -1, KindWater},
		{KindIce, -1, KindWater},
		{KindLava, LifetimeImmortal, KindFire},
		{KindPetrol, 80, KindFire},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			info := FlammableInfo(tt.kind)
			if info.BurnTicks != tt.ticks {
				t.Errorf("BurnTicks = %d, want %d", info.BurnTicks, tt.ticks)
			}
			if info.Result.Kind != tt.result {
				t.Errorf("Result = %v, want %v", info.Result.Kind, tt.result)
			}
		})
	}

	if !FlammableInfo(KindLava).IgnitesNeighbors {
		t.Error("lava should ignite neighbors")
	}
	if FlammableInfo(KindWater).EmitsFire {
		t.Error("boiling water should not emit fire")
	}
}

func TestInitialActions(t *testing.T) {
	if Lava().Action.Kind != ActionBurn {
		t.Error("lava should start burning")
	}
	if Source().Action.Kind != ActionEmitSource || Source().Action.Emit != KindAir {
		t.Error("source should start sampling")
	}
	if Grass().Action.Kind != ActionGrow {
		t.Error("grass should start growing")
	}
	if Sand().Action.Kind != ActionNone {
		t.Error("sand should be inert")
	}
}
