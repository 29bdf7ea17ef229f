package stage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/stagehand/stage"
)

func TestDefaultConfig(t *testing.T) {
	cfg := stage.DefaultConfig()

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, stage.Mode2D, cfg.RenderMode())
	assert.Equal(t, 60, cfg.TargetFPS)
	assert.InDelta(t, float64(stage.DefaultGravity), float64(cfg.Physics.Gravity), 1e-5)
}

func TestLoadConfigEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := stage.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, stage.DefaultConfig(), cfg)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stage.yaml")
	data := []byte(`
window:
  width: 1280
  height: 720
  title: demo
mode: 3d
target_fps: 144
physics:
  gravity: 20.5
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := stage.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, "demo", cfg.Window.Title)
	assert.Equal(t, stage.Mode3D, cfg.RenderMode())
	assert.Equal(t, 144, cfg.TargetFPS)
	assert.InDelta(t, 20.5, float64(cfg.Physics.Gravity), 1e-5)
	assert.Equal(t, stage.Container{Width: 1280, Height: 720}, cfg.Container())
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := stage.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: ["), 0o644))

	_, err := stage.LoadConfig(path)
	assert.Error(t, err)
}

func TestRenderModeStrings(t *testing.T) {
	assert.Equal(t, "2d", stage.Mode2D.String())
	assert.Equal(t, "3d", stage.Mode3D.String())

	cfg := stage.DefaultConfig()
	cfg.Mode = "bogus"
	assert.Equal(t, stage.Mode2D, cfg.RenderMode())
}
