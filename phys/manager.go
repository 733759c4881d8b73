package phys

import (
	"log/slog"

	"github.com/ByteArena/box2d"
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/silt/components"
	"github.com/pthm-cable/silt/element"
	"github.com/pthm-cable/silt/telemetry"
	"github.com/pthm-cable/silt/world"
)

// PhysicsUpdateDelta is the fixed step shared by the cell tick and the
// rigid-body integrator.
const PhysicsUpdateDelta = 1.0 / 60.0

// BallRadius in screen pixels.
const BallRadius = 8.0

// Manager is the fixed-step driver: it runs sand-body write-in, the chunk
// tick, sand-body read-back, chunk collider refresh and the integrator step
// in order, consuming accumulated real time one step at a time.
//
// Rigid bodies live as ECS entities carrying a Transform (for rendering)
// and a RigidBody tag whose ID keys the Box2D handle and, for sand bodies,
// the cell matrix.
type Manager struct {
	Chunks *world.Manager
	Rigid  *RigidWorld

	ecsWorld   *ecs.World
	bodyMapper *ecs.Map2[components.Transform, components.RigidBody]
	bodyFilter *ecs.Filter2[components.Transform, components.RigidBody]

	handles    map[uint32]*box2d.B2Body
	sandBodies map[uint32]*SandBody
	firstBall  uint32
	hasBall    bool
	nextID     uint32

	updateTime float64
	Paused     bool
	stepOnce   bool

	perf *telemetry.PerfCollector
}

// NewManager wires the world manager to a fresh rigid-body world.
func NewManager(chunks *world.Manager, perf *telemetry.PerfCollector) *Manager {
	ecsWorld := ecs.NewWorld()
	return &Manager{
		Chunks:     chunks,
		Rigid:      NewRigidWorld(),
		ecsWorld:   ecsWorld,
		bodyMapper: ecs.NewMap2[components.Transform, components.RigidBody](ecsWorld),
		bodyFilter: ecs.NewFilter2[components.Transform, components.RigidBody](ecsWorld),
		handles:    make(map[uint32]*box2d.B2Body),
		sandBodies: make(map[uint32]*SandBody),
		perf:       perf,
	}
}

// SpawnBall drops a bouncing ball at a world-pixel position.
func (m *Manager) SpawnBall(pos r2.Vec) {
	id := m.nextID
	m.nextID++

	body := m.Rigid.NewBall(pos, BallRadius)
	m.handles[id] = body
	if !m.hasBall {
		m.firstBall = id
		m.hasBall = true
	}

	t := components.Transform{X: pos.X, Y: pos.Y}
	b := components.RigidBody{ID: id, Kind: components.KindBall, Radius: BallRadius}
	m.bodyMapper.NewEntity(&t, &b)
}

// SpawnSandBody creates a rigid sand body at a world-pixel position.
// Degenerate shapes are refused before anything registers.
func (m *Manager) SpawnSandBody(pos r2.Vec, shape BodyShape, atlas *element.Atlas) error {
	sb, err := NewSandBody(m.Rigid, pos, shape, atlas)
	if err != nil {
		return err
	}

	id := m.nextID
	m.nextID++
	m.handles[id] = sb.Body
	m.sandBodies[id] = sb

	t := components.Transform{X: pos.X, Y: pos.Y}
	b := components.RigidBody{ID: id, Kind: components.KindSandBody}
	m.bodyMapper.NewEntity(&t, &b)

	slog.Info("sand body spawned", "id", id, "shape", int(shape), "x", pos.X, "y", pos.Y)
	return nil
}

// ClearBodies destroys every ball and sand body.
func (m *Manager) ClearBodies() {
	var toRemove []ecs.Entity
	query := m.bodyFilter.Query()
	for query.Next() {
		toRemove = append(toRemove, query.Entity())
	}
	for _, e := range toRemove {
		m.bodyMapper.Remove(e)
	}

	for id, body := range m.handles {
		m.Rigid.Destroy(body)
		delete(m.handles, id)
	}
	for id := range m.sandBodies {
		delete(m.sandBodies, id)
	}
	m.hasBall = false
}

// TorqueFirstBall spins the oldest live ball, the keyboard toy from the
// debug build.
func (m *Manager) TorqueFirstBall(impulse float64) {
	if !m.hasBall {
		return
	}
	if body, ok := m.handles[m.firstBall]; ok {
		body.ApplyAngularImpulse(impulse, true)
	}
}

// SandBody looks up a sand body's matrix by entity ID.
func (m *Manager) SandBody(id uint32) (*SandBody, bool) {
	sb, ok := m.sandBodies[id]
	return sb, ok
}

// EachBody visits every rigid-body entity; the renderer and overlays draw
// from this.
func (m *Manager) EachBody(fn func(t components.Transform, b components.RigidBody)) {
	query := m.bodyFilter.Query()
	for query.Next() {
		t, b := query.Get()
		fn(*t, *b)
	}
}

// BodyCount is the number of live rigid-body entities.
func (m *Manager) BodyCount() int {
	return len(m.handles)
}

// StepOnce requests a single fixed step while paused.
func (m *Manager) StepOnce() { m.stepOnce = true }

// Update consumes the frame's input and advances zero or more fixed steps.
func (m *Manager) Update(in world.Input) {
	m.Chunks.Edit(in)

	if m.Paused && !m.stepOnce {
		return
	}

	m.updateTime += in.DT
	for m.updateTime >= PhysicsUpdateDelta {
		m.updateTime -= PhysicsUpdateDelta
		m.stepFixed()
		if m.stepOnce {
			m.stepOnce = false
			break
		}
	}
}

// stepFixed is one whole simulation step in the documented order.
func (m *Manager) stepFixed() {
	chunks := m.Chunks.Chunks()

	if m.perf != nil {
		m.perf.StartTick()
		m.perf.StartPhase(telemetry.PhaseBodiesIn)
	}
	for _, sb := range m.sandBodies {
		sb.WriteIn(chunks)
	}

	if m.perf != nil {
		m.perf.StartPhase(telemetry.PhasePools)
	}
	m.Chunks.TickFixed()

	if m.perf != nil {
		m.perf.StartPhase(telemetry.PhaseBodiesOut)
	}
	for _, sb := range m.sandBodies {
		sb.ReadBack(chunks)
	}

	if m.perf != nil {
		m.perf.StartPhase(telemetry.PhaseColliders)
	}
	m.Rigid.RefreshChunkColliders(chunks)

	if m.perf != nil {
		m.perf.StartPhase(telemetry.PhaseStep)
	}
	m.Rigid.Step(PhysicsUpdateDelta)
	m.syncTransforms()

	if m.perf != nil {
		m.perf.EndTick()
	}
}

// syncTransforms copies integrator poses into the ECS transforms, in world
// pixels.
func (m *Manager) syncTransforms() {
	query := m.bodyFilter.Query()
	for query.Next() {
		t, b := query.Get()
		body, ok := m.handles[b.ID]
		if !ok {
			continue
		}
		pos := body.GetPosition()
		t.X = pos.X * PhysScale
		t.Y = pos.Y * PhysScale
		t.Angle = body.GetAngle()
	}
}
