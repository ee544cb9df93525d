// Package config loads the engine's YAML configuration over its defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hubastard/grove2d/engine/core"
	"github.com/hubastard/grove2d/engine/gfx/renderer2d"
	"github.com/hubastard/grove2d/engine/logging"
	"gopkg.in/yaml.v3"
)

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	App        core.Config       `yaml:"app"`
	Renderer2D renderer2d.Config `yaml:"renderer2d"`
	Log        LogConfig         `yaml:"log"`
}

// Default is the configuration used when no file is given.
func Default() Config {
	return Config{
		App: core.DefaultConfig(),
		Renderer2D: renderer2d.Config{
			MaxQuads:        renderer2d.DefaultMaxQuads,
			MaxTextureSlots: renderer2d.DefaultMaxTextureSlots,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path over Default. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default and validates the result. Unknown keys are
// rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.App.Width <= 0 || c.App.Height <= 0 {
		errs = append(errs, fmt.Errorf("app: window size %dx%d must be positive", c.App.Width, c.App.Height))
	}
	if c.App.TickRate < 0 {
		errs = append(errs, fmt.Errorf("app: tick_rate %d must be >= 0", c.App.TickRate))
	}
	if c.Renderer2D.MaxQuads < 0 {
		errs = append(errs, fmt.Errorf("renderer2d: max_quads %d must be >= 0", c.Renderer2D.MaxQuads))
	}
	if s := c.Renderer2D.MaxTextureSlots; s != 0 && s < 2 {
		errs = append(errs, fmt.Errorf("renderer2d: max_texture_slots %d must be >= 2", s))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}
	return errors.Join(errs...)
}

func (c Config) LogLevel() (slog.Level, error) { return logging.ParseLevel(c.Log.Level) }

// Engine returns the run configuration with the renderer settings folded in.
func (c Config) Engine() core.Config {
	out := c.App
	out.Renderer2D = c.Renderer2D
	return out
}
