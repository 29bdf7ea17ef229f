package stage

// TypeBody keys the built-in 2D rigid body component.
var TypeBody = MustRegisterComponentType("Body")

// DefaultGravity is the per-body downward acceleration applied each frame.
const DefaultGravity float32 = 9.8

// Body integrates a 2D rigid body each frame: gravity accumulates into the
// acceleration, velocity integrates over the elapsed time, friction decays
// the updated velocity, and the owning entity's Transform2D is translated by
// the result. Forces are impulse-per-frame: the acceleration resets to zero
// at the end of every step.
//
// Friction is a dimensionless per-frame decay factor. Values outside [0,1]
// are accepted without validation and will amplify or reverse velocity.
type Body struct {
	BaseComponent

	// Static excludes the body from gravity, force and integration.
	Static bool

	Mass     float32
	Gravity  float32
	Friction float32
	Velocity Vec2

	acceleration Vec2
}

// NewBody creates a non-static body with unit mass and default gravity.
func NewBody() *Body {
	return &Body{
		Mass:    1,
		Gravity: DefaultGravity,
	}
}

func (b *Body) Type() ComponentType { return TypeBody }

// ApplyForce adds force/mass to the current acceleration immediately. It
// takes effect on the same or next integration step depending on call order
// within the frame. Static bodies ignore forces.
func (b *Body) ApplyForce(force Vec2) {
	if b.Static {
		return
	}
	b.acceleration = b.acceleration.Add(force.Scale(1 / b.Mass))
}

// Acceleration returns the force accumulated for the next integration step.
func (b *Body) Acceleration() Vec2 {
	return b.acceleration
}

// Update runs one integration step.
func (b *Body) Update(dt float64) {
	if b.Static {
		return
	}

	b.acceleration.Y += b.Gravity
	b.Velocity = b.Velocity.Add(b.acceleration.Scale(float32(dt)))
	b.Velocity = b.Velocity.Scale(1 - b.Friction)

	if owner := b.Owner(); owner != nil {
		if t, ok := owner.Component(TypeTransform2D).(*Transform2D); ok {
			t.Translate(b.Velocity.Scale(float32(dt)))
		}
	}

	b.acceleration = Vec2{}
}
