package stage

// Scene owns a forest of root entities plus a flat name index spanning every
// entity reachable from a root. The index stays live across all structural
// mutations: Attach/Detach, AddChild/RemoveChild and SetName on attached
// subtrees all keep it consistent.
//
// Names are not required to be unique; on a collision the last-registered
// entity wins the index slot.
type Scene struct {
	roots []*Entity
	index map[string]*Entity
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{
		index: make(map[string]*Entity),
	}
}

// Attach registers e as a root, indexing it and all of its existing
// descendants by name. An entity that currently has a parent, or is already
// a root of some scene, is detached first so it appears exactly once in a
// forest. An optional name overrides the entity's current one.
func (s *Scene) Attach(e *Entity, name ...string) {
	if e == nil {
		return
	}
	if e.parent != nil {
		e.parent.RemoveChild(e)
	} else if e.scene != nil {
		e.scene.Detach(e)
	}
	if len(name) > 0 {
		e.name = name[0]
	}

	s.roots = append(s.roots, e)
	s.indexSubtree(e)
}

// Detach removes a root entity, unindexing it and all of its descendants.
// Non-root entities are removed through Entity.RemoveChild instead.
func (s *Scene) Detach(e *Entity) {
	for i, r := range s.roots {
		if r == e {
			s.roots = append(s.roots[:i], s.roots[i+1:]...)
			s.unindexSubtree(e)
			return
		}
	}
}

// Lookup returns the most recently registered entity holding the given name,
// or nil if none does.
func (s *Scene) Lookup(name string) *Entity {
	return s.index[name]
}

// Roots returns the root list. The returned slice is the scene's backing
// store and must not be mutated.
func (s *Scene) Roots() []*Entity {
	return s.roots
}

// Update advances every root subtree with the elapsed time, in root
// insertion order.
func (s *Scene) Update(dt float64) {
	for _, r := range s.roots {
		r.Update(dt)
	}
}

// Clear wipes both the root list and the name index.
func (s *Scene) Clear() {
	for _, r := range s.roots {
		s.unindexSubtree(r)
	}
	s.roots = nil
	s.index = make(map[string]*Entity)
}

func (s *Scene) indexSubtree(e *Entity) {
	e.scene = s
	s.index[e.name] = e
	for _, child := range e.children {
		s.indexSubtree(child)
	}
}

func (s *Scene) unindexSubtree(e *Entity) {
	for _, child := range e.children {
		s.unindexSubtree(child)
	}
	if s.index[e.name] == e {
		delete(s.index, e.name)
	}
	e.scene = nil
}

func (s *Scene) rename(e *Entity, old string) {
	if s.index[old] == e {
		delete(s.index, old)
	}
	s.index[e.name] = e
}
