// Package ebiten provides Dear ImGui backend integration for the Ebiten
// game shell. The debug overlay renders through it.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// New creates the backend. The caller still owns window creation.
func New() *ImguiBackend {
	return &ImguiBackend{EbitenBackend: ebitenbackend.NewEbitenBackend()}
}
