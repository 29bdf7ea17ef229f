package render2d

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/stagehand/stage"
)

// TypeSprite2D keys the textured drawable component.
var TypeSprite2D = stage.MustRegisterComponentType("Sprite2D")

// Sprite2D draws a texture at the owning entity's world position. Textures
// load asynchronously: a pending or failed load leaves the sprite without
// visual content, and the frame loop is never blocked.
type Sprite2D struct {
	stage.BaseComponent

	img atomic.Pointer[ebiten.Image]

	mu  sync.Mutex
	err error
}

// NewSprite creates a sprite and starts decoding the image file at path in
// the background.
func NewSprite(path string) *Sprite2D {
	s := &Sprite2D{}
	go s.load(path)
	return s
}

// NewSpriteFromImage creates a sprite over an already-decoded texture.
func NewSpriteFromImage(img *ebiten.Image) *Sprite2D {
	s := &Sprite2D{}
	s.img.Store(img)
	return s
}

func (s *Sprite2D) Type() stage.ComponentType { return TypeSprite2D }

func (s *Sprite2D) load(path string) {
	f, err := os.Open(path)
	if err != nil {
		s.setErr(err)
		return
	}
	defer f.Close()

	decoded, _, err := image.Decode(f)
	if err != nil {
		s.setErr(err)
		return
	}

	s.img.Store(ebiten.NewImageFromImage(decoded))
}

func (s *Sprite2D) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// Ready reports whether the texture has finished loading.
func (s *Sprite2D) Ready() bool {
	return s.img.Load() != nil
}

// Err returns the load error, if the load has failed.
func (s *Sprite2D) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Image returns the loaded texture, or nil while the load is pending.
func (s *Sprite2D) Image() *ebiten.Image {
	return s.img.Load()
}

func (s *Sprite2D) draw(dst *ebiten.Image, pos stage.Vec2) {
	img := s.img.Load()
	if img == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(pos.X), float64(pos.Y))
	dst.DrawImage(img, op)
}
