package phys

import (
	"github.com/ByteArena/box2d"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/silt/world"
)

// RigidWorld wraps the Box2D world: chunk chain colliders, loose balls, and
// the bodies backing rigid sand bodies. Everything here runs on the driver
// thread between write-in and step.
type RigidWorld struct {
	world *box2d.B2World

	chunkBodies map[world.ChunkKey]*box2d.B2Body

	UpdatePhys bool
}

// NewRigidWorld creates an empty Box2D world with downward gravity.
func NewRigidWorld() *RigidWorld {
	w := box2d.MakeB2World(box2d.MakeB2Vec2(0, Gravity))
	return &RigidWorld{
		world:       &w,
		chunkBodies: make(map[world.ChunkKey]*box2d.B2Body),
		UpdatePhys:  true,
	}
}

// Step advances the integrator one fixed step.
func (rw *RigidWorld) Step(dt float64) {
	if !rw.UpdatePhys {
		return
	}
	rw.world.Step(dt, 8, 3)
}

// NewBall drops a dynamic bouncing ball at a world-pixel position and
// returns its body.
func (rw *RigidWorld) NewBall(pos r2.Vec, radius float64) *box2d.B2Body {
	bd := box2d.MakeB2BodyDef()
	bd.Type = box2d.B2BodyType.B2_dynamicBody
	bd.Position.Set(pos.X/PhysScale, pos.Y/PhysScale)
	body := rw.world.CreateBody(&bd)

	circle := box2d.MakeB2CircleShape()
	circle.M_radius = radius / PhysScale

	fd := box2d.MakeB2FixtureDef()
	fd.Shape = &circle
	fd.Density = 1
	fd.Restitution = 0.7
	body.CreateFixtureFromDef(&fd)
	return body
}

// Destroy removes a body and all its fixtures.
func (rw *RigidWorld) Destroy(body *box2d.B2Body) {
	rw.world.DestroyBody(body)
}

// RefreshChunkColliders rebuilds the static chain fixtures of every chunk
// whose silhouette changed since the last call.
func (rw *RigidWorld) RefreshChunkColliders(chunks map[world.ChunkKey]*world.Chunk) {
	for key, ch := range chunks {
		if !ch.CollidersDirty {
			continue
		}
		EdgesFromChunk(ch)

		if old, ok := rw.chunkBodies[key]; ok {
			rw.world.DestroyBody(old)
			delete(rw.chunkBodies, key)
		}
		if len(ch.Edges) == 0 {
			continue
		}

		bd := box2d.MakeB2BodyDef()
		bd.Position.Set(
			float64(key.I)*float64(world.Cols)*CellToMeter,
			float64(key.J)*float64(world.Rows)*CellToMeter,
		)
		body := rw.world.CreateBody(&bd)

		for _, edge := range ch.Edges {
			if len(edge) < 2 {
				continue
			}
			verts := make([]box2d.B2Vec2, len(edge))
			for n, p := range edge {
				verts[n] = box2d.MakeB2Vec2(p.X, p.Y)
			}
			chain := box2d.MakeB2ChainShape()
			chain.CreateChain(verts, len(verts))
			body.CreateFixture(&chain, 0)
		}
		rw.chunkBodies[key] = body
	}
}
