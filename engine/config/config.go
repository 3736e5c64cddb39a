package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/hollowforge/inputbridge/engine/input"
)

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Input   InputConfig   `yaml:"input"`
	Status  StatusConfig  `yaml:"status"`
	Logging LoggingConfig `yaml:"logging"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type InputConfig struct {
	// Backend is "window" (glfw key events) or "terminal" (raw stdin).
	Backend string `yaml:"backend"`
	// TickRate is the headless frames per second standing in for the
	// display refresh.
	TickRate int `yaml:"tick_rate"`
	// HoldMillis is how long a terminal key counts as held after its
	// last repeat.
	HoldMillis int `yaml:"hold_millis"`
	// Bindings maps key names to "up", "down", "left" or "right". Empty
	// means arrows plus WASD.
	Bindings map[string]string `yaml:"bindings"`
}

type StatusConfig struct {
	// Sink is "title", "overlay" or "log".
	Sink string `yaml:"sink"`
}

type LoggingConfig struct {
	Level      string   `yaml:"level"`
	Categories []string `yaml:"categories"`
}

// Default returns the configuration used when no file is given. The
// canvas defaults to 1024x768.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1024,
			Height: 768,
			Title:  "Input Bridge",
			VSync:  true,
		},
		Input: InputConfig{
			Backend:    "window",
			TickRate:   60,
			HoldMillis: 200,
		},
		Status: StatusConfig{
			Sink: "overlay",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a yaml config file. Fields missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the shell cannot run with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	switch c.Input.Backend {
	case "window", "terminal":
	default:
		return errors.Errorf("unknown input backend %q", c.Input.Backend)
	}
	switch c.Status.Sink {
	case "title", "overlay", "log":
	default:
		return errors.Errorf("unknown status sink %q", c.Status.Sink)
	}
	if c.Input.TickRate <= 0 {
		return errors.Errorf("invalid tick rate %d", c.Input.TickRate)
	}
	if c.Input.HoldMillis <= 0 {
		return errors.Errorf("invalid hold window %dms", c.Input.HoldMillis)
	}
	return nil
}

// DirBindings converts the configured key bindings, falling back to the
// defaults when none are set.
func (c *Config) DirBindings() (input.Bindings, error) {
	if len(c.Input.Bindings) == 0 {
		return input.DefaultBindings(), nil
	}
	bindings := make(input.Bindings, len(c.Input.Bindings))
	for key, dirName := range c.Input.Bindings {
		var dir input.Dir
		switch dirName {
		case "up":
			dir = input.DirUp
		case "down":
			dir = input.DirDown
		case "left":
			dir = input.DirLeft
		case "right":
			dir = input.DirRight
		default:
			return nil, errors.Errorf("binding %q: unknown direction %q", key, dirName)
		}
		bindings[key] = dir
	}
	return bindings, nil
}
