package stage

import (
	"fmt"
	"sync"
)

// ComponentType is an explicit capability key. An entity holds at most one
// component instance per type.
type ComponentType uint32

var componentTypes = struct {
	sync.Mutex
	byName map[string]ComponentType
	names  []string
}{
	byName: make(map[string]ComponentType),
}

// RegisterComponentType allocates a new capability key for the given name.
// Registering the same name twice returns ErrDuplicateRegistration.
func RegisterComponentType(name string) (ComponentType, error) {
	componentTypes.Lock()
	defer componentTypes.Unlock()

	if _, exists := componentTypes.byName[name]; exists {
		return 0, fmt.Errorf("%w: component type %q", ErrDuplicateRegistration, name)
	}

	id := ComponentType(len(componentTypes.names))
	componentTypes.byName[name] = id
	componentTypes.names = append(componentTypes.names, name)
	return id, nil
}

// MustRegisterComponentType is like RegisterComponentType but panics on a
// duplicate name. Intended for package-level type registration.
func MustRegisterComponentType(name string) ComponentType {
	id, err := RegisterComponentType(name)
	if err != nil {
		panic(err)
	}
	return id
}

func (t ComponentType) String() string {
	componentTypes.Lock()
	defer componentTypes.Unlock()

	if int(t) < len(componentTypes.names) {
		return componentTypes.names[t]
	}
	return fmt.Sprintf("ComponentType(%d)", uint32(t))
}

// Component is an independently attachable unit of behavior. Implementations
// embed BaseComponent and provide Type; Update runs once per frame while the
// owning entity is active and the component is enabled.
type Component interface {
	Type() ComponentType
	Update(dt float64)
	Enabled() bool
	Owner() *Entity

	setOwner(e *Entity)
}

// BaseComponent provides the owner back-reference and enabled flag shared by
// all components. The owner reference is non-owning: the entity controls the
// component's lifetime, never the other way around.
type BaseComponent struct {
	owner    *Entity
	disabled bool
}

func (b *BaseComponent) setOwner(e *Entity) { b.owner = e }

// Owner returns the entity this component is attached to, or nil when
// detached.
func (b *BaseComponent) Owner() *Entity { return b.owner }

func (b *BaseComponent) Enabled() bool { return !b.disabled }

func (b *BaseComponent) SetEnabled(enabled bool) { b.disabled = !enabled }

// Update is a no-op so that data-only components need not implement it.
func (b *BaseComponent) Update(dt float64) {}
