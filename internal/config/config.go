// Package config loads viewer settings from TOML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"fractalview/view"
)

var ErrInvalid = errors.New("invalid config")

// Scroll dialects. "tick" turns every wheel notch into a ×1.1 zoom step,
// "continuous" adds notches/10 to the scale.
const (
	ScrollTick       = "tick"
	ScrollContinuous = "continuous"
)

// Config is the full set of viewer settings.
type Config struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Fullscreen bool    `toml:"fullscreen"`
	TPS        int     `toml:"tps"`
	Workers    int     `toml:"workers"`
	GPU        bool    `toml:"gpu"`
	Mode       string  `toml:"mode"`
	Scroll     string  `toml:"scroll"`
	Scale      float64 `toml:"scale"`
	JuliaScale float64 `toml:"julia_scale"`
	HUD        bool    `toml:"hud"`
	LogLevel   string  `toml:"log_level"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Width:      1000,
		Height:     1000,
		Fullscreen: true,
		TPS:        60,
		Mode:       view.ModeMandelbrot.String(),
		Scroll:     ScrollTick,
		Scale:      view.InitialScale,
		JuliaScale: view.InitialScale,
		LogLevel:   "info",
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML into cfg and validates the result. Unknown keys are
// rejected.
func Decode(b []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return cfg.Validate()
}

// Encode writes cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

// Validate checks the settings that would otherwise produce a broken view.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.Scale == 0 || c.JuliaScale == 0 {
		return fmt.Errorf("%w: scale must be nonzero", ErrInvalid)
	}
	if c.TPS < 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.TPS)
	}
	if _, err := view.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch c.Scroll {
	case ScrollTick, ScrollContinuous:
	default:
		return fmt.Errorf("%w: unknown scroll dialect %q", ErrInvalid, c.Scroll)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.LogLevel)
	}
	return nil
}

// State returns the initial view state for these settings.
func (c Config) State() view.State {
	s := view.DefaultState(view.Viewport{Width: c.Width, Height: c.Height})
	s.Mode, _ = view.ParseMode(c.Mode)
	s.Primary.Scale = c.Scale
	s.Secondary.Scale = c.JuliaScale
	return s
}
