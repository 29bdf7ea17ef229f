package render3d

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeVertexBounds(t *testing.T) {
	m := NewBoxMesh(1, color.RGBA{255, 255, 255, 255})

	assert.True(t, m.edgeInBounds([2]int{0, 7}))
	assert.True(t, m.edgeInBounds([2]int{7, 0}))
	assert.False(t, m.edgeInBounds([2]int{-1, 0}))
	assert.False(t, m.edgeInBounds([2]int{0, -1}))
	assert.False(t, m.edgeInBounds([2]int{8, 0}))
	assert.False(t, m.edgeInBounds([2]int{0, 8}))
}
