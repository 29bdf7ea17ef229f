package stage

// componentSet is the per-entity registry: at most one component instance per
// type, iterated in attachment order.
type componentSet struct {
	items []Component
	index map[ComponentType]int
}

// add stores c keyed by its type, overwriting any prior instance of the same
// type in place so attachment order is preserved. The replaced instance's
// owner reference is cleared.
func (s *componentSet) add(owner *Entity, c Component) Component {
	if s.index == nil {
		s.index = make(map[ComponentType]int)
	}

	c.setOwner(owner)

	if i, exists := s.index[c.Type()]; exists {
		s.items[i].setOwner(nil)
		s.items[i] = c
		return c
	}

	s.index[c.Type()] = len(s.items)
	s.items = append(s.items, c)
	return c
}

// get is an exact-type lookup; absent types yield nil.
func (s *componentSet) get(t ComponentType) Component {
	i, exists := s.index[t]
	if !exists {
		return nil
	}
	return s.items[i]
}

// remove deletes the entry for t if present, clearing the removed instance's
// owner reference. No-op otherwise.
func (s *componentSet) remove(t ComponentType) {
	i, exists := s.index[t]
	if !exists {
		return
	}

	s.items[i].setOwner(nil)
	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, t)

	for j := i; j < len(s.items); j++ {
		s.index[s.items[j].Type()] = j
	}
}

// all returns every attached component in attachment order. The returned
// slice is the registry's backing store and must not be mutated.
func (s *componentSet) all() []Component {
	return s.items
}

// clear detaches every component at once.
func (s *componentSet) clear() {
	for _, c := range s.items {
		c.setOwner(nil)
	}
	s.items = nil
	s.index = nil
}
