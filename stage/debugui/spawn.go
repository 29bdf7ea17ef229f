package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/stagehand/stage"
)

// spawner adds preset entities to the scene at runtime.
type spawner struct {
	counter int
	x, y    float32
}

func newSpawner() spawner {
	return spawner{x: 100, y: 100}
}

func (sp *spawner) render(scene *stage.Scene) {
	if !imgui.BeginV("Spawn", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text("Position:")
	imgui.SetNextItemWidth(100)
	imgui.InputFloat("x##spawn", &sp.x)
	imgui.SameLine()
	imgui.SetNextItemWidth(100)
	imgui.InputFloat("y##spawn", &sp.y)

	if imgui.Button("Spawn body") {
		sp.counter++
		e := stage.NewEntity(fmt.Sprintf("spawned-%d", sp.counter))
		t := stage.NewTransform2D()
		t.Position = stage.Vec2{X: sp.x, Y: sp.y}
		e.AddComponent(t)
		e.AddComponent(stage.NewBody())
		scene.Attach(e)
	}
	imgui.SameLine()
	if imgui.Button("Spawn static") {
		sp.counter++
		e := stage.NewEntity(fmt.Sprintf("spawned-%d", sp.counter))
		t := stage.NewTransform2D()
		t.Position = stage.Vec2{X: sp.x, Y: sp.y}
		e.AddComponent(t)
		body := stage.NewBody()
		body.Static = true
		e.AddComponent(body)
		scene.Attach(e)
	}

	imgui.End()
}
