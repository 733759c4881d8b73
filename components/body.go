package components

// BodyKind distinguishes the rigid-body entity flavors.
type BodyKind uint8

const (
	// KindBall is a plain bouncing ball collider.
	KindBall BodyKind = iota
	// KindSandBody is a polygon-of-cells body bridged into the cell grid.
	KindSandBody
)

// RigidBody ties an entity to its body in the physics world. ID keys the
// side tables the physics manager keeps (Box2D handles, sand matrices);
// Radius only matters for balls.
type RigidBody struct {
	ID     uint32
	Kind   BodyKind
	Radius float64
}
