package render3d_test

import (
	"image/color"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"github.com/plus3/stagehand/stage"
	"github.com/plus3/stagehand/stage/render3d"
)

func TestProjectCenterPoint(t *testing.T) {
	cam := render3d.Camera{FOV: math32.Pi / 2, Near: 0.1}

	x, y, ok := render3d.Project(stage.Vec3{Z: 5}, cam, 800, 600)

	assert.True(t, ok)
	assert.InDelta(t, 400, float64(x), 1e-3)
	assert.InDelta(t, 300, float64(y), 1e-3)
}

func TestProjectBehindNearPlaneCulled(t *testing.T) {
	cam := render3d.DefaultCamera

	_, _, ok := render3d.Project(stage.Vec3{Z: 0}, cam, 800, 600)
	assert.False(t, ok)

	_, _, ok = render3d.Project(stage.Vec3{Z: -3}, cam, 800, 600)
	assert.False(t, ok)
}

func TestProjectPerspectiveShrinksWithDepth(t *testing.T) {
	cam := render3d.DefaultCamera

	nearX, _, ok := render3d.Project(stage.Vec3{X: 1, Z: 2}, cam, 800, 600)
	assert.True(t, ok)
	farX, _, ok := render3d.Project(stage.Vec3{X: 1, Z: 8}, cam, 800, 600)
	assert.True(t, ok)

	assert.Greater(t, nearX-400, farX-400, "closer points project further from center")
}

func TestRotateEulerQuarterTurns(t *testing.T) {
	v := stage.Vec3{X: 1}

	rotated := render3d.RotateEuler(v, stage.Vec3{Y: math32.Pi / 2})
	assert.InDelta(t, 0, float64(rotated.X), 1e-5)
	assert.InDelta(t, -1, float64(rotated.Z), 1e-5)

	rotated = render3d.RotateEuler(v, stage.Vec3{Z: math32.Pi / 2})
	assert.InDelta(t, 0, float64(rotated.X), 1e-5)
	assert.InDelta(t, 1, float64(rotated.Y), 1e-5)
}

func TestRotateEulerZeroAnglesIdentity(t *testing.T) {
	v := stage.Vec3{X: 1, Y: 2, Z: 3}
	assert.Equal(t, v, render3d.RotateEuler(v, stage.Vec3{}))
}

func TestTransformApply(t *testing.T) {
	tr := render3d.NewTransform3D()
	tr.Position = stage.Vec3{X: 10, Y: 20, Z: 30}
	tr.Scale = 2

	got := tr.Apply(stage.Vec3{X: 1})
	assert.InDelta(t, 12, float64(got.X), 1e-5)
	assert.InDelta(t, 20, float64(got.Y), 1e-5)
	assert.InDelta(t, 30, float64(got.Z), 1e-5)
}

func TestBoxMeshShape(t *testing.T) {
	mesh := render3d.NewBoxMesh(2, color.RGBA{255, 255, 255, 255})

	assert.Len(t, mesh.Vertices, 8)
	assert.Len(t, mesh.Edges, 12)
	for _, v := range mesh.Vertices {
		assert.InDelta(t, 1, float64(math32.Abs(v.X)), 1e-5)
		assert.InDelta(t, 1, float64(math32.Abs(v.Y)), 1e-5)
		assert.InDelta(t, 1, float64(math32.Abs(v.Z)), 1e-5)
	}
}
