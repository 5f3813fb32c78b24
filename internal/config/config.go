// Package config loads game settings from embedded defaults, an optional
// YAML file and command-line flags.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"gridsnake/internal/game"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all settings.
type Config struct {
	Window   WindowConfig `yaml:"window"`
	Speed    SpeedConfig  `yaml:"speed"`
	Game     GameConfig   `yaml:"game"`
	Frontend string       `yaml:"frontend"`
	Font     FontConfig   `yaml:"font"`
	Sound    SoundConfig  `yaml:"sound"`
	Log      LogConfig    `yaml:"log"`
	Stats    StatsConfig  `yaml:"stats"`
}

// WindowConfig holds the pixel layout. The grid fills the window minus a
// spacing margin on each side.
type WindowConfig struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Spacing int    `yaml:"spacing"`
	Cell    int    `yaml:"cell"`
	// Scale multiplies the window size for window frontends.
	Scale int `yaml:"scale"`
}

// SpeedConfig holds the tick periods.
type SpeedConfig struct {
	Normal time.Duration `yaml:"normal"`
	Fast   time.Duration `yaml:"fast"`
}

// GameConfig holds round rules.
type GameConfig struct {
	Seed          int64  `yaml:"seed"` // 0 = time-based
	FoodPolicy    string `yaml:"food_policy"`
	InitialLength int    `yaml:"initial_length"`
}

// FontConfig selects the text face for window frontends.
type FontConfig struct {
	Path string  `yaml:"path"` // empty = built-in face
	Size float64 `yaml:"size"`
}

// SoundConfig toggles audio cues.
type SoundConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LogConfig holds slog settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
	File   string `yaml:"file"`
}

// StatsConfig holds round telemetry output.
type StatsConfig struct {
	OutputDir string `yaml:"output_dir"` // empty = disabled
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.Cell <= 0 {
		errs = append(errs, fmt.Errorf("cell size %d must be positive", c.Window.Cell))
	}
	if c.Window.Spacing < 0 {
		errs = append(errs, fmt.Errorf("spacing %d must not be negative", c.Window.Spacing))
	}
	if c.Window.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale %d must be positive", c.Window.Scale))
	}
	if c.Speed.Normal <= 0 || c.Speed.Fast <= 0 {
		errs = append(errs, fmt.Errorf("speeds %v/%v must be positive", c.Speed.Normal, c.Speed.Fast))
	} else if c.Speed.Fast > c.Speed.Normal {
		errs = append(errs, fmt.Errorf("fast interval %v is slower than normal %v", c.Speed.Fast, c.Speed.Normal))
	}
	if _, err := game.ParsePolicy(c.Game.FoodPolicy); err != nil {
		errs = append(errs, err)
	}
	if c.Game.InitialLength < 1 {
		errs = append(errs, fmt.Errorf("initial length %d must be at least 1", c.Game.InitialLength))
	}
	if c.Frontend == "" {
		errs = append(errs, errors.New("frontend must be set"))
	}
	if c.Font.Size <= 0 {
		errs = append(errs, fmt.Errorf("font size %v must be positive", c.Font.Size))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", name)
	}
	return lvl, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
