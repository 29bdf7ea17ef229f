// Package debugui provides a Dear ImGui diagnostic overlay for stage
// applications: a scene tree browser, a component inspector, frame stats and
// an entity spawner, plus a Panel component for app-defined windows.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/stagehand/stage"
	debugui_ebiten "github.com/plus3/stagehand/stage/debugui/ebiten"
)

// TypePanel keys the app-defined ImGui window component.
var TypePanel = stage.MustRegisterComponentType("DebugPanel")

// Panel holds a Dear ImGui render function. Attach it to entities that
// should render ImGui widgets each frame; the overlay invokes Render for
// every enabled panel on an active entity.
type Panel struct {
	stage.BaseComponent

	Render func()
}

// NewPanel creates a panel component around a render function.
func NewPanel(render func()) *Panel {
	return &Panel{Render: render}
}

func (p *Panel) Type() stage.ComponentType { return TypePanel }

// InputCapture tracks Dear ImGui's input capture state. Use it to decide
// whether the overlay is consuming mouse or keyboard input.
type InputCapture struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay renders the diagnostic windows inside an ImGui frame. It satisfies
// the host's overlay hook.
type Overlay struct {
	backend *debugui_ebiten.ImguiBackend
	scene   *stage.Scene
	loop    *stage.Loop

	browser   sceneBrowser
	inspector componentInspector
	stats     frameStats
	spawner   spawner

	capture InputCapture
}

// NewOverlay creates an overlay over a scene and its loop.
func NewOverlay(backend *debugui_ebiten.ImguiBackend, scene *stage.Scene, loop *stage.Loop) *Overlay {
	return &Overlay{
		backend:   backend,
		scene:     scene,
		loop:      loop,
		stats:     newFrameStats(120),
		spawner:   newSpawner(),
		inspector: componentInspector{},
	}
}

// Capture returns ImGui's input capture state as of the last frame.
func (o *Overlay) Capture() InputCapture {
	return o.capture
}

// Begin opens the ImGui frame. Call before the loop tick.
func (o *Overlay) Begin() {
	o.backend.BeginFrame()
}

// Render draws the diagnostic windows and every Panel component reachable
// from an active entity. Must run between Begin and End.
func (o *Overlay) Render() {
	o.capture.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	o.capture.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	o.browser.render(o.scene)
	o.inspector.render(o.browser.selected)
	o.stats.render(o.scene, o.loop)
	o.spawner.render(o.scene)

	for _, root := range o.scene.Roots() {
		renderPanels(root)
	}
}

func renderPanels(e *stage.Entity) {
	if !e.Active() {
		return
	}
	if p, ok := e.Component(TypePanel).(*Panel); ok && p.Enabled() && p.Render != nil {
		p.Render()
	}
	for _, child := range e.Children() {
		renderPanels(child)
	}
}

// End closes the ImGui frame. Call after the loop tick.
func (o *Overlay) End() {
	o.backend.EndFrame()
}

// Draw paints the overlay on top of the screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

// Layout forwards the display size to the ImGui backend.
func (o *Overlay) Layout(width, height int) {
	o.backend.Layout(width, height)
}
