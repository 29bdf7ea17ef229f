package stage

// RenderMode selects which renderer backend is active.
type RenderMode int

const (
	Mode2D RenderMode = iota
	Mode3D
)

func (m RenderMode) String() string {
	switch m {
	case Mode2D:
		return "2d"
	case Mode3D:
		return "3d"
	default:
		return "unknown"
	}
}

// Container is the stable logical handle a renderer backend is constructed
// against. The loop reuses it to rebuild a backend after a mode switch.
type Container struct {
	Width  int
	Height int
}

// Renderer is the drawing backend boundary. A backend owns its drawing
// surface and decides what is drawable by querying each entity's component
// set for the capabilities it knows.
type Renderer interface {
	// Render paints the current scene forest onto the backend's surface.
	Render(scene *Scene)

	// Resize adjusts the drawing surface to a new container size.
	Resize(width, height int)

	// Surface returns the backend-specific drawing surface handle.
	Surface() any

	// Dispose discards the drawing surface. The renderer must not be used
	// afterwards.
	Dispose()
}

// RendererFactory constructs the backend for a render mode against a
// container. Construction failures (ErrMissingContainer, ErrSurfaceInit) are
// fatal to the caller.
type RendererFactory func(mode RenderMode, container Container) (Renderer, error)
