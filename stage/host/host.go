// Package host runs a stage loop against the Ebiten game shell. It is the
// frame source (one Tick per display refresh), the raw input source (key,
// mouse and touch edges pumped into the input machine) and the container the
// renderer backends are constructed against.
package host

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/stagehand/stage"
	"github.com/plus3/stagehand/stage/render2d"
	"github.com/plus3/stagehand/stage/render3d"
)

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonMiddle,
	ebiten.MouseButtonRight,
}

// Overlay hooks an immediate-mode UI into the frame: Begin before the tick,
// Render inside the UI frame, End after the tick, Draw on top of the screen.
type Overlay interface {
	Begin()
	Render()
	End()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
}

// App implements ebiten.Game over a scene, an input machine and a loop.
type App struct {
	cfg     stage.Config
	scene   *stage.Scene
	input   *stage.Input
	loop    *stage.Loop
	overlay Overlay

	keys     []ebiten.Key
	touchIDs []ebiten.TouchID
	focused  bool
}

// DefaultFactory builds the two built-in backends.
func DefaultFactory(mode stage.RenderMode, container stage.Container) (stage.Renderer, error) {
	switch mode {
	case stage.Mode3D:
		return render3d.New(container)
	default:
		return render2d.New(container)
	}
}

// New wires a scene into an app using the built-in renderer backends.
func New(cfg stage.Config, scene *stage.Scene) (*App, error) {
	return NewWithFactory(cfg, scene, DefaultFactory)
}

// NewWithFactory wires a scene into an app using a custom renderer factory.
func NewWithFactory(cfg stage.Config, scene *stage.Scene, factory stage.RendererFactory) (*App, error) {
	input := stage.NewInput()
	loop, err := stage.NewLoop(scene, input, factory, cfg.Container(), cfg.RenderMode())
	if err != nil {
		return nil, fmt.Errorf("host: %w", err)
	}

	return &App{
		cfg:     cfg,
		scene:   scene,
		input:   input,
		loop:    loop,
		focused: true,
	}, nil
}

// SetOverlay installs an immediate-mode UI overlay, e.g. the debugui
// package's diagnostic windows.
func (a *App) SetOverlay(overlay Overlay) {
	a.overlay = overlay
}

// Loop exposes the frame loop, e.g. for components that switch render mode.
func (a *App) Loop() *stage.Loop { return a.loop }

// Input exposes the input machine for components that read it.
func (a *App) Input() *stage.Input { return a.input }

// Scene returns the scene the app was wired with.
func (a *App) Scene() *stage.Scene { return a.scene }

// Run starts the loop and hands control to the Ebiten shell until the loop
// stops or the window closes.
func (a *App) Run() error {
	ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
	ebiten.SetWindowTitle(a.cfg.Window.Title)
	if a.cfg.TargetFPS > 0 {
		ebiten.SetTPS(a.cfg.TargetFPS)
	}

	a.loop.Start()
	return ebiten.RunGame(a)
}

// Update pumps raw input events and ticks the loop once.
func (a *App) Update() error {
	a.pumpInput()

	if a.overlay != nil {
		a.overlay.Begin()
		a.overlay.Render()
	}

	rearm := a.loop.Tick()

	if a.overlay != nil {
		a.overlay.End()
	}

	if !rearm {
		return ebiten.Termination
	}
	return nil
}

func (a *App) pumpInput() {
	a.keys = inpututil.AppendJustPressedKeys(a.keys[:0])
	for _, k := range a.keys {
		a.input.Press(k.String())
	}
	a.keys = inpututil.AppendJustReleasedKeys(a.keys[:0])
	for _, k := range a.keys {
		a.input.Release(k.String())
	}

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			a.input.PointerDown(int(b))
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			a.input.PointerUp(int(b))
		}
	}

	cx, cy := ebiten.CursorPosition()
	a.input.PointerMove(float32(cx), float32(cy))

	a.touchIDs = inpututil.AppendJustPressedTouchIDs(a.touchIDs[:0])
	for _, id := range a.touchIDs {
		x, y := ebiten.TouchPosition(id)
		a.input.TouchStart(int64(id), float32(x), float32(y))
	}
	a.touchIDs = ebiten.AppendTouchIDs(a.touchIDs[:0])
	for _, id := range a.touchIDs {
		x, y := ebiten.TouchPosition(id)
		a.input.TouchMove(int64(id), float32(x), float32(y))
	}
	a.touchIDs = inpututil.AppendJustReleasedTouchIDs(a.touchIDs[:0])
	for _, id := range a.touchIDs {
		a.input.TouchEnd(int64(id))
	}

	if focused := ebiten.IsFocused(); focused != a.focused {
		a.focused = focused
		if !focused {
			a.input.Blur()
		}
	}
}

// Draw blits the active backend's surface to the screen.
func (a *App) Draw(screen *ebiten.Image) {
	renderer := a.loop.Renderer()
	if renderer == nil {
		return
	}
	if surface, ok := renderer.Surface().(*ebiten.Image); ok && surface != nil {
		screen.DrawImage(surface, nil)
	}
	if a.overlay != nil {
		a.overlay.Draw(screen)
	}
}

// Layout keeps the logical container size fixed.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.overlay != nil {
		a.overlay.Layout(a.cfg.Window.Width, a.cfg.Window.Height)
	}
	return a.cfg.Window.Width, a.cfg.Window.Height
}
