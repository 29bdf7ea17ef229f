package stage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/stagehand/stage"
)

func TestRegisterComponentType(t *testing.T) {
	id, err := stage.RegisterComponentType("testRegisterOnce")
	require.NoError(t, err)
	assert.Equal(t, "testRegisterOnce", id.String())
}

func TestRegisterComponentTypeDuplicate(t *testing.T) {
	_, err := stage.RegisterComponentType("testRegisterDup")
	require.NoError(t, err)

	_, err = stage.RegisterComponentType("testRegisterDup")
	assert.ErrorIs(t, err, stage.ErrDuplicateRegistration)
}

func TestMustRegisterComponentTypePanics(t *testing.T) {
	stage.MustRegisterComponentType("testMustRegister")
	assert.Panics(t, func() {
		stage.MustRegisterComponentType("testMustRegister")
	})
}

func TestUnknownComponentTypeString(t *testing.T) {
	assert.Equal(t, "ComponentType(4294967295)", stage.ComponentType(0xFFFFFFFF).String())
}

func TestBaseComponentDefaults(t *testing.T) {
	m := &marker{}

	assert.True(t, m.Enabled())
	assert.Nil(t, m.Owner())

	m.SetEnabled(false)
	assert.False(t, m.Enabled())
}
