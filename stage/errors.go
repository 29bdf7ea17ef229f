package stage

import "errors"

var (
	// ErrDuplicateRegistration is returned when a component type name is
	// registered more than once.
	ErrDuplicateRegistration = errors.New("stage: duplicate registration")

	// ErrMissingContainer is returned when a renderer backend is constructed
	// against an absent or zero-sized container.
	ErrMissingContainer = errors.New("stage: missing drawing container")

	// ErrSurfaceInit is returned when a renderer backend cannot acquire its
	// drawing surface.
	ErrSurfaceInit = errors.New("stage: drawing surface init failed")
)
