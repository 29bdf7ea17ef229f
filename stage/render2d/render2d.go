// Package render2d is the immediate-mode 2D renderer backend. It draws
// Shape2D and Sprite2D components at their entities' world positions onto an
// offscreen surface owned by the backend.
package render2d

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/stagehand/stage"
)

// Renderer draws a scene snapshot onto its own *ebiten.Image surface.
type Renderer struct {
	surface    *ebiten.Image
	background color.RGBA
}

// New constructs the 2D backend against a container.
func New(container stage.Container) (*Renderer, error) {
	if container.Width <= 0 || container.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", stage.ErrMissingContainer, container.Width, container.Height)
	}

	return &Renderer{
		surface:    ebiten.NewImage(container.Width, container.Height),
		background: color.RGBA{24, 24, 32, 255},
	}, nil
}

// SetBackground sets the surface clear color.
func (r *Renderer) SetBackground(c color.RGBA) {
	r.background = c
}

// Render paints every active entity carrying a Shape2D or Sprite2D
// component, in scene traversal order.
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

	pos := entityWorldPosition(e)

	if shape, ok := e.Component(TypeShape2D).(*Shape2D); ok && shape.Enabled() {
		shape.draw(r.surface, pos)
	}
	if sprite, ok := e.Component(TypeSprite2D).(*Sprite2D); ok && sprite.Enabled() {
		sprite.draw(r.surface, pos)
	}

	for _, child := range e.Children() {
		r.drawSubtree(child)
	}
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

func entityWorldPosition(e *stage.Entity) stage.Vec2 {
	if t, ok := e.Component(stage.TypeTransform2D).(*stage.Transform2D); ok {
		return t.WorldPosition()
	}
	// No transform of its own: inherit the parent chain's offset.
	for p := e.Parent(); p != nil; p = p.Parent() {
		if t, ok := p.Component(stage.TypeTransform2D).(*stage.Transform2D); ok {
			return t.WorldPosition()
		}
	}
	return stage.Vec2{}
}
