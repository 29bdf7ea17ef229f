package stage

// TypeTransform2D keys the built-in 2D placement component.
var TypeTransform2D = MustRegisterComponentType("Transform2D")

// Transform2D places an entity on the 2D plane. Positions are relative to
// the parent entity's transform, if it has one.
type Transform2D struct {
	BaseComponent

	Position Vec2
	Rotation float32
	Scale    Vec2
}

// NewTransform2D creates a transform at the origin with unit scale.
func NewTransform2D() *Transform2D {
	return &Transform2D{Scale: Vec2{1, 1}}
}

func (t *Transform2D) Type() ComponentType { return TypeTransform2D }

// Translate moves the position by d.
func (t *Transform2D) Translate(d Vec2) {
	t.Position = t.Position.Add(d)
}

// WorldPosition accumulates the transform positions of the entity's
// ancestors, outermost first.
func (t *Transform2D) WorldPosition() Vec2 {
	pos := t.Position
	e := t.Owner()
	if e == nil {
		return pos
	}
	for p := e.Parent(); p != nil; p = p.Parent() {
		if pt, ok := p.Component(TypeTransform2D).(*Transform2D); ok {
			pos = pos.Add(pt.Position)
		}
	}
	return pos
}
