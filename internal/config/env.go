package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/celebration-countdown/internal/countdown"
)

var ErrInvalid = errors.New("invalid config")

// Config is the runtime configuration read from the environment and an
// optional setup preset.
type Config struct {
	Target    string   `env:"CELEBRATION_TARGET"`
	Message   string   `env:"CELEBRATION_MESSAGE"`
	Media     []string `env:"CELEBRATION_MEDIA" envSeparator:","`
	Music     string   `env:"CELEBRATION_MUSIC"`
	SetupFile string   `env:"CELEBRATION_SETUP_FILE"`

	MaxMedia        int           `env:"CELEBRATION_MAX_MEDIA" envDefault:"30"`
	MessageDuration time.Duration `env:"CELEBRATION_MESSAGE_DURATION" envDefault:"3s"`
	SlideInterval   time.Duration `env:"CELEBRATION_SLIDE_INTERVAL" envDefault:"2s"`
	RadiusMin       float64       `env:"CELEBRATION_RADIUS_MIN" envDefault:"30"`
	RadiusMax       float64       `env:"CELEBRATION_RADIUS_MAX" envDefault:"42"`
	Seed            uint64        `env:"CELEBRATION_SEED"`
	Fullscreen      bool          `env:"CELEBRATION_FULLSCREEN"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
}

// Preset is a YAML file describing a ready-made setup.
type Preset struct {
	Target  string   `yaml:"target"`
	Message string   `yaml:"message"`
	Media   []string `yaml:"media"`
	Music   string   `yaml:"music"`
}

// Load parses the environment, applies the preset named by
// CELEBRATION_SETUP_FILE when set, and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if cfg.SetupFile != "" {
		p, err := LoadPreset(cfg.SetupFile)
		if err != nil {
			return nil, err
		}
		cfg.Apply(p)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadPreset reads a setup preset.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read setup file: %w", err)
	}

	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse setup file: %w", err)
	}
	return &p, nil
}

// Apply overrides the configuration with the non-empty preset fields.
func (c *Config) Apply(p *Preset) {
	if p.Target != "" {
		c.Target = p.Target
	}
	if p.Message != "" {
		c.Message = p.Message
	}
	if len(p.Media) > 0 {
		c.Media = p.Media
	}
	if p.Music != "" {
		c.Music = p.Music
	}
}

// MinRadius keeps gallery items, in percent of the viewport, off the
// centerpiece text.
const MinRadius = 20

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch {
	case c.MaxMedia <= 0:
		return fmt.Errorf("%w: max media must be positive, got %d", ErrInvalid, c.MaxMedia)
	case c.MessageDuration <= 0 || c.SlideInterval <= 0:
		return fmt.Errorf("%w: durations must be positive", ErrInvalid)
	case c.RadiusMin < MinRadius || c.RadiusMax > 50 || c.RadiusMin > c.RadiusMax:
		return fmt.Errorf("%w: radius band %.1f-%.1f must lie within %.0f-50", ErrInvalid, c.RadiusMin, c.RadiusMax, float64(MinRadius))
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("%w: log level: %v", ErrInvalid, err)
	}
	if _, _, err := c.TargetTime(time.Now()); err != nil {
		return err
	}
	return nil
}

// TargetTime returns the countdown target in now's location. Without a
// configured target it is the next New Year, reported by the false second
// return.
func (c *Config) TargetTime(now time.Time) (time.Time, bool, error) {
	if c.Target == "" {
		return countdown.NextNewYear(now), false, nil
	}
	t, err := time.ParseInLocation(TargetLayout, c.Target, now.Location())
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: target %q: %v", ErrInvalid, c.Target, err)
	}
	return t, true, nil
}

// Level returns the zerolog level; Validate has already checked it.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
