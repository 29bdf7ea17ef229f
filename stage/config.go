package stage

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WindowConfig describes the host window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PhysicsConfig carries the defaults applied to new bodies by hosts that
// build scenes from configuration.
type PhysicsConfig struct {
	Gravity  float32 `yaml:"gravity"`
	Friction float32 `yaml:"friction"`
}

// Config is the engine configuration consumed by hosts, examples and
// tooling.
type Config struct {
	Window    WindowConfig  `yaml:"window"`
	Mode      string        `yaml:"mode"`
	TargetFPS int           `yaml:"target_fps"`
	Physics   PhysicsConfig `yaml:"physics"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "stagehand",
		},
		Mode:      Mode2D.String(),
		TargetFPS: 60,
		Physics: PhysicsConfig{
			Gravity: DefaultGravity,
		},
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// RenderMode maps the configured mode string onto a RenderMode. Unknown
// values fall back to 2D.
func (c Config) RenderMode() RenderMode {
	if c.Mode == Mode3D.String() {
		return Mode3D
	}
	return Mode2D
}

// Container returns the logical container described by the window config.
func (c Config) Container() Container {
	return Container{Width: c.Window.Width, Height: c.Window.Height}
}
