package stage

// Entity is an addressable node in the scene forest. It owns a set of
// components keyed by type and an ordered list of child entities.
type Entity struct {
	name   string
	active bool

	parent   *Entity
	children []*Entity
	scene    *Scene

	components componentSet
}

// NewEntity creates a detached, active entity with the given display name.
func NewEntity(name string) *Entity {
	return &Entity{
		name:   name,
		active: true,
	}
}

func (e *Entity) Name() string { return e.name }

// SetName renames the entity. If the entity is reachable from a scene, the
// scene's name index follows the rename.
func (e *Entity) SetName(name string) {
	old := e.name
	e.name = name
	if e.scene != nil {
		e.scene.rename(e, old)
	}
}

func (e *Entity) Active() bool { return e.active }

// SetActive toggles whether the entity and its entire subtree take part in
// updates. Children keep their own flags but are never reached while an
// ancestor is inactive.
func (e *Entity) SetActive(active bool) { e.active = active }

func (e *Entity) Parent() *Entity { return e.parent }

// Scene returns the scene the entity is currently reachable from, or nil.
func (e *Entity) Scene() *Scene { return e.scene }

// Children returns the ordered child list. The returned slice is the
// entity's backing store and must not be mutated.
func (e *Entity) Children() []*Entity { return e.children }

// AddChild appends child to the child list and sets its parent to e. A child
// that already has a parent is removed from it first; a child that is a
// scene root leaves the root list. Adding e itself or one of its ancestors
// is refused, so the forest stays acyclic. If e is reachable from a scene,
// the child subtree is indexed into it.
func (e *Entity) AddChild(child *Entity) {
	if child == nil || child == e {
		return
	}
	for p := e.parent; p != nil; p = p.parent {
		if p == child {
			return
		}
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	} else if child.scene != nil {
		child.scene.Detach(child)
	}

	child.parent = e
	e.children = append(e.children, child)

	if e.scene != nil {
		e.scene.indexSubtree(child)
	}
}

// RemoveChild clears the child's parent reference and deletes it from the
// child list. The child subtree is unindexed from the scene, if any.
func (e *Entity) RemoveChild(child *Entity) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			if child.scene != nil {
				child.scene.unindexSubtree(child)
			}
			return
		}
	}
}

// AddComponent attaches c to the entity, replacing any prior component of the
// same type, and returns it.
func (e *Entity) AddComponent(c Component) Component {
	return e.components.add(e, c)
}

// Component returns the attached component of the given type, or nil.
func (e *Entity) Component(t ComponentType) Component {
	return e.components.get(t)
}

// RemoveComponent detaches the component of the given type, if present.
func (e *Entity) RemoveComponent(t ComponentType) {
	e.components.remove(t)
}

// Components returns every attached component in attachment order.
func (e *Entity) Components() []Component {
	return e.components.all()
}

// Update advances every enabled component with the elapsed time, then
// recurses into children in child-list order. Inactive entities skip their
// whole subtree.
func (e *Entity) Update(dt float64) {
	if !e.active {
		return
	}

	for _, c := range e.components.all() {
		if c.Enabled() {
			c.Update(dt)
		}
	}

	for _, child := range e.children {
		child.Update(dt)
	}
}

// Destroy detaches the entity from its parent (or its scene, for roots),
// discards all components and abandons its children. Children are not
// recursively destroyed; their parent references are cleared.
func (e *Entity) Destroy() {
	if e.parent != nil {
		e.parent.RemoveChild(e)
	} else if e.scene != nil {
		e.scene.Detach(e)
	}

	e.components.clear()

	for _, child := range e.children {
		child.parent = nil
		if child.scene != nil {
			child.scene.unindexSubtree(child)
		}
	}
	e.children = nil
}
