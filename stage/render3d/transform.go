package render3d

import (
	"github.com/chewxy/math32"

	"github.com/plus3/stagehand/stage"
)

// TypeTransform3D keys the 3D placement component.
var TypeTransform3D = stage.MustRegisterComponentType("Transform3D")

// Transform3D places an entity in camera space. Rotation is Euler angles in
// radians, applied X then Y then Z.
type Transform3D struct {
	stage.BaseComponent

	Position stage.Vec3
	Rotation stage.Vec3
	Scale    float32
}

// NewTransform3D creates a transform at the origin with unit scale.
func NewTransform3D() *Transform3D {
	return &Transform3D{Scale: 1}
}

func (t *Transform3D) Type() stage.ComponentType { return TypeTransform3D }

// Apply transforms a local-space vertex into camera space.
func (t *Transform3D) Apply(v stage.Vec3) stage.Vec3 {
	return RotateEuler(v.Scale(t.Scale), t.Rotation).Add(t.Position)
}

// RotateEuler rotates v by the given Euler angles, X then Y then Z.
func RotateEuler(v stage.Vec3, angles stage.Vec3) stage.Vec3 {
	if angles.X != 0 {
		sin, cos := math32.Sincos(angles.X)
		v = stage.Vec3{X: v.X, Y: v.Y*cos - v.Z*sin, Z: v.Y*sin + v.Z*cos}
	}
	if angles.Y != 0 {
		sin, cos := math32.Sincos(angles.Y)
		v = stage.Vec3{X: v.X*cos + v.Z*sin, Y: v.Y, Z: -v.X*sin + v.Z*cos}
	}
	if angles.Z != 0 {
		sin, cos := math32.Sincos(angles.Z)
		v = stage.Vec3{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos, Z: v.Z}
	}
	return v
}
