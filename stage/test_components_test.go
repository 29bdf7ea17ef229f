package stage_test

import (
	"github.com/plus3/stagehand/stage"
)

// Shared component types used across the package tests.
var (
	typeCounter  = stage.MustRegisterComponentType("testCounter")
	typeRecorder = stage.MustRegisterComponentType("testRecorder")
	typeMarker   = stage.MustRegisterComponentType("testMarker")
)

// counter counts its update invocations and accumulates elapsed time.
type counter struct {
	stage.BaseComponent

	Updates int
	Elapsed float64
}

func (c *counter) Type() stage.ComponentType { return typeCounter }

func (c *counter) Update(dt float64) {
	c.Updates++
	c.Elapsed += dt
}

// recorder appends its label to a shared log on every update, to observe
// update ordering across entities and components.
type recorder struct {
	stage.BaseComponent

	Label string
	Log   *[]string
}

func (r *recorder) Type() stage.ComponentType { return typeRecorder }

func (r *recorder) Update(dt float64) {
	*r.Log = append(*r.Log, r.Label)
}

// marker is a data-only component; Update is inherited from BaseComponent.
type marker struct {
	stage.BaseComponent

	Tag string
}

func (m *marker) Type() stage.ComponentType { return typeMarker }
