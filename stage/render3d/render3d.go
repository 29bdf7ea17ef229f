// Package render3d is the hardware-surface 3D renderer backend. It projects
// Mesh3D wireframes through their entities' Transform3D into screen space
// and strokes them onto an offscreen surface owned by the backend.
package render3d

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/stagehand/stage"
)

// Camera fixes the projection parameters. The camera sits at the origin
// looking down +Z.
type Camera struct {
	FOV  float32 // vertical field of view, radians
	Near float32 // vertices closer than this are culled
}

// DefaultCamera is the projection used by new backends.
var DefaultCamera = Camera{FOV: math32.Pi / 3, Near: 0.1}

// Renderer draws a scene snapshot onto its own *ebiten.Image surface.
type Renderer struct {
	surface    *ebiten.Image
	background color.RGBA
	camera     Camera
	width      int
	height     int
}

// New constructs the 3D backend against a container.
func New(container stage.Container) (*Renderer, error) {
	if container.Width <= 0 || container.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", stage.ErrMissingContainer, container.Width, container.Height)
	}

	return &Renderer{
		surface:    ebiten.NewImage(container.Width, container.Height),
		background: color.RGBA{12, 12, 20, 255},
		camera:     DefaultCamera,
		width:      container.Width,
		height:     container.Height,
	}, nil
}

// SetCamera overrides the projection parameters.
func (r *Renderer) SetCamera(c Camera) {
	r.camera = c
}

// Render paints every active entity carrying both a Transform3D and a
// Mesh3D component.
func (r *Renderer) Render(scene *stage.Scene) {
	if r.surface == nil {
		return
	}

	r.surface.Fill(r.background)
	for _, root := range scene.Roots() {
		r.drawSubtree(root)
	}
}

func (r *Renderer) drawSubtree(e *stage.Entity) {
	if !e.Active() {
		return
	}

	t, hasTransform := e.Component(TypeTransform3D).(*Transform3D)
	m, hasMesh := e.Component(TypeMesh3D).(*Mesh3D)
	if hasTransform && hasMesh && m.Enabled() {
		r.drawMesh(t, m)
	}

	for _, child := range e.Children() {
		r.drawSubtree(child)
	}
}

func (r *Renderer) drawMesh(t *Transform3D, m *Mesh3D) {
	for _, edge := range m.Edges {
		if !m.edgeInBounds(edge) {
			continue
		}

		a := t.Apply(m.Vertices[edge[0]])
		b := t.Apply(m.Vertices[edge[1]])

		ax, ay, aok := Project(a, r.camera, r.width, r.height)
		bx, by, bok := Project(b, r.camera, r.width, r.height)
		if !aok || !bok {
			continue
		}

		vector.StrokeLine(r.surface, ax, ay, bx, by, 1, m.Stroke, true)
	}
}

// Project maps a camera-space point into surface coordinates using a
// perspective divide. The third result is false when the point lies behind
// the near plane.
func Project(v stage.Vec3, cam Camera, width, height int) (x, y float32, ok bool) {
	if v.Z < cam.Near {
		return 0, 0, false
	}

	focal := float32(height) / 2 / math32.Tan(cam.FOV/2)
	x = float32(width)/2 + v.X*focal/v.Z
	y = float32(height)/2 + v.Y*focal/v.Z
	return x, y, true
}

// Resize recreates the drawing surface at the new container size.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if r.surface != nil {
		r.surface.Deallocate()
	}
	r.surface = ebiten.NewImage(width, height)
	r.width = width
	r.height = height
}

// Surface returns the offscreen drawing surface.
func (r *Renderer) Surface() any {
	return r.surface
}

// Dispose discards the drawing surface.
func (r *Renderer) Dispose() {
	if r.surface != nil {
		r.surface.Deallocate()
		r.surface = nil
	}
}
