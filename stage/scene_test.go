package stage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/stagehand/stage"
)

func TestAttachIndexesSubtree(t *testing.T) {
	scene := stage.NewScene()

	root := stage.NewEntity("root")
	child := stage.NewEntity("child")
	grandchild := stage.NewEntity("grandchild")
	root.AddChild(child)
	child.AddChild(grandchild)

	scene.Attach(root)

	assert.Same(t, root, scene.Lookup("root"))
	assert.Same(t, child, scene.Lookup("child"))
	assert.Same(t, grandchild, scene.Lookup("grandchild"))
	assert.Same(t, scene, grandchild.Scene())
}

func TestAttachWithNameOverride(t *testing.T) {
	scene := stage.NewScene()
	e := stage.NewEntity("old")

	scene.Attach(e, "new")

	assert.Equal(t, "new", e.Name())
	assert.Same(t, e, scene.Lookup("new"))
	assert.Nil(t, scene.Lookup("old"))
}

func TestLookupMissReturnsNil(t *testing.T) {
	scene := stage.NewScene()
	assert.Nil(t, scene.Lookup("nobody"))
}

func TestNameCollisionLastRegisteredWins(t *testing.T) {
	scene := stage.NewScene()

	first := stage.NewEntity("dup")
	second := stage.NewEntity("dup")
	scene.Attach(first)
	scene.Attach(second)

	assert.Same(t, second, scene.Lookup("dup"))

	// Detaching the winner leaves the name unresolved; the loser was never
	// re-indexed.
	scene.Detach(second)
	assert.Nil(t, scene.Lookup("dup"))

	// The first entity is still a scene root.
	assert.Equal(t, []*stage.Entity{first}, scene.Roots())
}

func TestDetachUnindexesSubtree(t *testing.T) {
	scene := stage.NewScene()

	root := stage.NewEntity("root")
	child := stage.NewEntity("child")
	root.AddChild(child)
	scene.Attach(root)

	scene.Detach(root)

	assert.Nil(t, scene.Lookup("root"))
	assert.Nil(t, scene.Lookup("child"))
	assert.Nil(t, root.Scene())
	assert.Empty(t, scene.Roots())
}

func TestDetachNonRootIsNoOp(t *testing.T) {
	scene := stage.NewScene()

	root := stage.NewEntity("root")
	child := stage.NewEntity("child")
	root.AddChild(child)
	scene.Attach(root)

	scene.Detach(child)

	assert.Same(t, child, scene.Lookup("child"))
	assert.Same(t, root, child.Parent())
}

func TestAddChildToAttachedParentIndexesLive(t *testing.T) {
	scene := stage.NewScene()

	root := stage.NewEntity("root")
	scene.Attach(root)

	// Structural mutations after registration keep the index live.
	late := stage.NewEntity("late")
	lateChild := stage.NewEntity("late-child")
	late.AddChild(lateChild)
	root.AddChild(late)

	assert.Same(t, late, scene.Lookup("late"))
	assert.Same(t, lateChild, scene.Lookup("late-child"))
}

func TestRemoveChildUnindexesLive(t *testing.T) {
	scene := stage.NewScene()

	root := stage.NewEntity("root")
	child := stage.NewEntity("child")
	root.AddChild(child)
	scene.Attach(root)

	root.RemoveChild(child)

	assert.Nil(t, scene.Lookup("child"))
	assert.Nil(t, child.Scene())
}

func TestReparentRootLeavesRootList(t *testing.T) {
	scene := stage.NewScene()

	a := stage.NewEntity("a")
	b := stage.NewEntity("b")
	c := &counter{}
	b.AddComponent(c)
	scene.Attach(a)
	scene.Attach(b)

	a.AddChild(b)

	assert.Equal(t, []*stage.Entity{a}, scene.Roots())
	assert.Same(t, a, b.Parent())
	assert.Same(t, b, scene.Lookup("b"))
	assert.Same(t, scene, b.Scene())

	// The reparented entity updates once per frame, not once as a root and
	// once as a child.
	scene.Update(1.0)
	assert.Equal(t, 1, c.Updates)
}

func TestAttachParentedEntityDetachesFirst(t *testing.T) {
	scene := stage.NewScene()

	parent := stage.NewEntity("parent")
	child := stage.NewEntity("child")
	parent.AddChild(child)
	scene.Attach(parent)

	scene.Attach(child)

	assert.Nil(t, child.Parent())
	assert.Empty(t, parent.Children())
	assert.Equal(t, []*stage.Entity{parent, child}, scene.Roots())
	assert.Same(t, child, scene.Lookup("child"))
}

func TestAttachSameRootTwice(t *testing.T) {
	scene := stage.NewScene()

	e := stage.NewEntity("e")
	scene.Attach(e)
	scene.Attach(e)

	assert.Equal(t, []*stage.Entity{e}, scene.Roots())
	assert.Same(t, e, scene.Lookup("e"))
}

func TestRenameFollowsIndex(t *testing.T) {
	scene := stage.NewScene()

	e := stage.NewEntity("before")
	scene.Attach(e)

	e.SetName("after")

	assert.Nil(t, scene.Lookup("before"))
	assert.Same(t, e, scene.Lookup("after"))
}

func TestSceneUpdateRootOrder(t *testing.T) {
	scene := stage.NewScene()
	var log []string

	a := stage.NewEntity("a")
	a.AddComponent(&recorder{Label: "a", Log: &log})
	b := stage.NewEntity("b")
	b.AddComponent(&recorder{Label: "b", Log: &log})

	scene.Attach(a)
	scene.Attach(b)
	scene.Update(1.0)

	assert.Equal(t, []string{"a", "b"}, log)
}

func TestClearWipesRootsAndIndex(t *testing.T) {
	scene := stage.NewScene()

	root := stage.NewEntity("root")
	child := stage.NewEntity("child")
	root.AddChild(child)
	scene.Attach(root)

	scene.Clear()

	assert.Empty(t, scene.Roots())
	assert.Nil(t, scene.Lookup("root"))
	assert.Nil(t, scene.Lookup("child"))
	assert.Nil(t, root.Scene())
}

func TestDestroyedRootLeavesScene(t *testing.T) {
	scene := stage.NewScene()

	root := stage.NewEntity("root")
	child := stage.NewEntity("child")
	root.AddChild(child)
	scene.Attach(root)

	root.Destroy()

	assert.Empty(t, scene.Roots())
	assert.Nil(t, scene.Lookup("root"))
	assert.Nil(t, scene.Lookup("child"))
}
