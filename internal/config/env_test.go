package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CELEBRATION_SETUP_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxMedia != 30 {
		t.Errorf("max media %d, want 30", cfg.MaxMedia)
	}
	if cfg.MessageDuration != DefaultMessageDuration || cfg.SlideInterval != DefaultSlideInterval {
		t.Errorf("durations %v/%v", cfg.MessageDuration, cfg.SlideInterval)
	}
	if cfg.RadiusMin != 30 || cfg.RadiusMax != 42 {
		t.Errorf("radius band %v-%v, want 30-42", cfg.RadiusMin, cfg.RadiusMax)
	}
	if cfg.Level() != zerolog.InfoLevel {
		t.Errorf("level %v, want info", cfg.Level())
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CELEBRATION_MEDIA", "a.png,b.jpg")
	t.Setenv("CELEBRATION_MESSAGE", "HELLO")
	t.Setenv("CELEBRATION_SLIDE_INTERVAL", "500ms")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Media) != 2 || cfg.Media[1] != "b.jpg" {
		t.Errorf("media %v", cfg.Media)
	}
	if cfg.Message != "HELLO" {
		t.Errorf("message %q", cfg.Message)
	}
	if cfg.SlideInterval != 500*time.Millisecond {
		t.Errorf("slide interval %v", cfg.SlideInterval)
	}
	if cfg.Level() != zerolog.DebugLevel {
		t.Errorf("level %v, want debug", cfg.Level())
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg Config
	t.Setenv("CELEBRATION_MAX_MEDIA", "lots")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setup.yaml")
	data := `target: "2027-01-01 00:00:00"
message: "I LOVE YOU\nJAANU"
media:
  - one.png
  - two.mp4
music: song.mp3
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CELEBRATION_SETUP_FILE", path)
	t.Setenv("CELEBRATION_MESSAGE", "from env")
	t.Setenv("CELEBRATION_MUSIC", "env.mp3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Message != "I LOVE YOU\nJAANU" {
		t.Errorf("message %q, want preset value", cfg.Message)
	}
	if cfg.Music != "song.mp3" || len(cfg.Media) != 2 {
		t.Errorf("preset not applied: music=%q media=%v", cfg.Music, cfg.Media)
	}
	target, explicit, err := cfg.TargetTime(time.Now())
	if err != nil || !explicit {
		t.Fatalf("target: %v explicit=%v", err, explicit)
	}
	if target.Year() != 2027 || target.Month() != time.January || target.Day() != 1 {
		t.Errorf("target %v", target)
	}
}

func TestLoadPreset_Errors(t *testing.T) {
	if _, err := LoadPreset(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("media: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPreset(path); err == nil || !strings.Contains(err.Error(), "parse setup file") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			MaxMedia:        30,
			MessageDuration: time.Second,
			SlideInterval:   time.Second,
			RadiusMin:       30,
			RadiusMax:       42,
			LogLevel:        "info",
		}
	}
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero max", func(c *Config) { c.MaxMedia = 0 }},
		{"zero duration", func(c *Config) { c.SlideInterval = 0 }},
		{"inverted band", func(c *Config) { c.RadiusMin, c.RadiusMax = 40, 30 }},
		{"band off screen", func(c *Config) { c.RadiusMax = 60 }},
		{"band over centerpiece", func(c *Config) { c.RadiusMin = 0 }},
		{"band just below minimum", func(c *Config) { c.RadiusMin = MinRadius - 0.5 }},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }},
		{"bad target", func(c *Config) { c.Target = "next tuesday" }},
	}
	base := valid()
	if err := base.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestTargetTime_DefaultsToNextNewYear(t *testing.T) {
	var cfg Config
	now := time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)
	got, explicit, err := cfg.TargetTime(now)
	if err != nil {
		t.Fatal(err)
	}
	if explicit {
		t.Error("default target reported as explicit")
	}
	if want := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("target %v, want %v", got, want)
	}
}
