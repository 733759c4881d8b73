package phys

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/silt/components"
	"github.com/pthm-cable/silt/element"
	"github.com/pthm-cable/silt/world"
)

func newTestPhys() (*Manager, *world.Manager) {
	wm := world.NewManager([2]int{-1, 1}, [2]int{-1, 1}, nil)
	return NewManager(wm, nil), wm
}

func TestAccumulatorConsumesWholeSteps(t *testing.T) {
	pm, wm := newTestPhys()

	pm.Update(world.Input{DT: 3.5 * PhysicsUpdateDelta})
	if got := wm.Frame(); got != 3 {
		t.Errorf("frames after 3.5 deltas = %d, want 3", got)
	}

	// The leftover half step completes on the next update.
	pm.Update(world.Input{DT: 0.5 * PhysicsUpdateDelta})
	if got := wm.Frame(); got != 4 {
		t.Errorf("frames after another 0.5 delta = %d, want 4", got)
	}
}

func TestPauseBlocksStepping(t *testing.T) {
	pm, wm := newTestPhys()
	pm.Paused = true

	pm.Update(world.Input{DT: 10 * PhysicsUpdateDelta})
	if wm.Frame() != 0 {
		t.Error("paused manager advanced the world")
	}

	pm.StepOnce()
	pm.Update(world.Input{DT: 10 * PhysicsUpdateDelta})
	if wm.Frame() != 1 {
		t.Errorf("single step advanced %d frames, want 1", wm.Frame())
	}
}

func TestBallFallsUnderGravity(t *testing.T) {
	pm, _ := newTestPhys()
	pm.SpawnBall(r2.Vec{X: 10, Y: 10})

	for i := 0; i < 30; i++ {
		pm.Update(world.Input{DT: PhysicsUpdateDelta})
	}

	seen := 0
	pm.EachBody(func(tr components.Transform, b components.RigidBody) {
		seen++
		if b.Kind != components.KindBall {
			t.Errorf("unexpected body kind %v", b.Kind)
		}
		if tr.Y <= 10 {
			t.Errorf("ball did not fall: y = %f", tr.Y)
		}
	})
	if seen != 1 {
		t.Fatalf("saw %d bodies, want 1", seen)
	}
}

func TestSpawnAndClearSandBody(t *testing.T) {
	pm, _ := newTestPhys()
	if err := pm.SpawnSandBody(r2.Vec{X: 64, Y: 48}, ShapeDisc, nil); err != nil {
		t.Fatal(err)
	}
	if pm.BodyCount() != 1 {
		t.Fatalf("body count = %d, want 1", pm.BodyCount())
	}

	var id uint32
	pm.EachBody(func(_ components.Transform, b components.RigidBody) { id = b.ID })
	if _, ok := pm.SandBody(id); !ok {
		t.Error("sand body matrix not registered")
	}

	pm.ClearBodies()
	if pm.BodyCount() != 0 {
		t.Error("clear left bodies behind")
	}
	seen := 0
	pm.EachBody(func(components.Transform, components.RigidBody) { seen++ })
	if seen != 0 {
		t.Error("clear left ECS entities behind")
	}
}

// One full fixed step with a sand body present: cells go in before the tick
// and come back out after, leaving the grid clean.
func TestStepBridgesSandBody(t *testing.T) {
	pm, wm := newTestPhys()
	if err := pm.SpawnSandBody(r2.Vec{X: 64, Y: 48}, ShapeSquare, nil); err != nil {
		t.Fatal(err)
	}

	pm.Update(world.Input{DT: PhysicsUpdateDelta})

	for _, ch := range wm.Chunks() {
		for idx := range ch.Grid {
			if ch.Grid[idx].Collider == element.ColliderBody {
				t.Fatal("body cells left in the grid after the step")
			}
		}
	}
}
