package stage_test

import (
	"fmt"

	"github.com/plus3/stagehand/stage"
)

func ExampleScene_Lookup() {
	scene := stage.NewScene()

	player := stage.NewEntity("player")
	weapon := stage.NewEntity("weapon")
	player.AddChild(weapon)
	scene.Attach(player)

	fmt.Println(scene.Lookup("player").Name())
	fmt.Println(scene.Lookup("weapon").Name())
	fmt.Println(scene.Lookup("missing") == nil)

	// Output:
	// player
	// weapon
	// true
}

func ExampleEntity_AddComponent() {
	player := stage.NewEntity("player")

	transform := stage.NewTransform2D()
	transform.Position = stage.Vec2{X: 4, Y: 8}
	player.AddComponent(transform)
	player.AddComponent(stage.NewBody())

	got := player.Component(stage.TypeTransform2D).(*stage.Transform2D)
	fmt.Println(got.Position.X, got.Position.Y)
	fmt.Println(len(player.Components()))

	// Output:
	// 4 8
	// 2
}

func ExampleBody_ApplyForce() {
	ball := stage.NewEntity("ball")
	transform := stage.NewTransform2D()
	ball.AddComponent(transform)

	body := stage.NewBody()
	body.Gravity = 0
	body.Mass = 2
	ball.AddComponent(body)

	body.ApplyForce(stage.Vec2{X: 10})
	ball.Update(1.0)

	fmt.Println(body.Velocity.X)
	fmt.Println(transform.Position.X)

	// Output:
	// 5
	// 5
}
