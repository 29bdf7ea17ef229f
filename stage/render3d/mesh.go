package render3d

import (
	"image/color"

	"github.com/plus3/stagehand/stage"
)

// TypeMesh3D keys the wireframe drawable component.
var TypeMesh3D = stage.MustRegisterComponentType("Mesh3D")

// Mesh3D is a wireframe drawable: local-space vertices plus the edges
// connecting them, drawn with the entity's Transform3D.
type Mesh3D struct {
	stage.BaseComponent

	Vertices []stage.Vec3
	Edges    [][2]int
	Stroke   color.RGBA
}

func (m *Mesh3D) Type() stage.ComponentType { return TypeMesh3D }

// edgeInBounds reports whether both endpoints index a vertex.
func (m *Mesh3D) edgeInBounds(edge [2]int) bool {
	return edge[0] >= 0 && edge[0] < len(m.Vertices) &&
		edge[1] >= 0 && edge[1] < len(m.Vertices)
}

// NewBoxMesh creates a cube wireframe centered on the origin.
func NewBoxMesh(size float32, stroke color.RGBA) *Mesh3D {
	h := size / 2
	return &Mesh3D{
		Vertices: []stage.Vec3{
			{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h},
			{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h},
		},
		Edges: [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
		},
		Stroke: stroke,
	}
}
