package render2d

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/stagehand/stage"
)

// TypeShape2D keys the filled-shape drawable component.
var TypeShape2D = stage.MustRegisterComponentType("Shape2D")

// ShapeKind selects the primitive a Shape2D draws.
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
)

// Shape2D draws a filled primitive at the owning entity's world position.
// Rects hang from their top-left corner, circles from their center.
type Shape2D struct {
	stage.BaseComponent

	Kind   ShapeKind
	Width  float32
	Height float32
	Radius float32
	Fill   color.RGBA
}

// NewRect creates a filled rectangle shape.
func NewRect(width, height float32, fill color.RGBA) *Shape2D {
	return &Shape2D{Kind: ShapeRect, Width: width, Height: height, Fill: fill}
}

// NewCircle creates a filled circle shape.
func NewCircle(radius float32, fill color.RGBA) *Shape2D {
	return &Shape2D{Kind: ShapeCircle, Radius: radius, Fill: fill}
}

func (s *Shape2D) Type() stage.ComponentType { return TypeShape2D }

func (s *Shape2D) draw(dst *ebiten.Image, pos stage.Vec2) {
	switch s.Kind {
	case ShapeRect:
		vector.DrawFilledRect(dst, pos.X, pos.Y, s.Width, s.Height, s.Fill, true)
	case ShapeCircle:
		vector.DrawFilledCircle(dst, pos.X, pos.Y, s.Radius, s.Fill, true)
	}
}
