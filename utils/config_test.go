package utils

import (
	"flag"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Period() != 500*time.Millisecond {
		t.Fatalf("default period = %v, want 500ms", cfg.Period())
	}
	if cfg.RandomDensity != 0.25 {
		t.Fatalf("default density = %v, want 0.25", cfg.RandomDensity)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{"width": 12, "height": 8, "step_period": "250ms", "seed_mode": "noise"}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 12 || cfg.Height != 8 {
		t.Fatalf("size = %dx%d, want 12x8", cfg.Width, cfg.Height)
	}
	if cfg.Period() != 250*time.Millisecond {
		t.Fatalf("period = %v, want 250ms", cfg.Period())
	}
	if cfg.SeedMode != SeedModeNoise {
		t.Fatalf("seed mode = %q", cfg.SeedMode)
	}
	// Unset keys keep their defaults.
	if cfg.RandomDensity != DefaultConfig().RandomDensity {
		t.Fatalf("density = %v, want default", cfg.RandomDensity)
	}
}

func TestLoadConfigNumericPeriod(t *testing.T) {
	path := writeConfig(t, `{"step_period": 1000000}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Period() != time.Millisecond {
		t.Fatalf("period = %v, want 1ms", cfg.Period())
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err = %v, want os.ErrNotExist", err)
	}

	for _, body := range []string{`{"width": 1.5}`, `{"step_period": "soon"}`, `not json`} {
		if _, err := LoadConfig(writeConfig(t, body)); err == nil {
			t.Fatalf("LoadConfig(%s) should fail", body)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -2 }},
		{"zero period", func(c *Config) { c.StepPeriod = 0 }},
		{"density above one", func(c *Config) { c.RandomDensity = 1.5 }},
		{"negative density", func(c *Config) { c.RandomDensity = -0.1 }},
		{"negative max generations", func(c *Config) { c.MaxGenerations = -1 }},
		{"zero scale", func(c *Config) { c.Scale = 0 }},
		{"unknown seed mode", func(c *Config) { c.SeedMode = "glider-gun" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestBindOverridesConfig(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-width", "30", "-period", "2s", "-density", "0.5", "-seed-mode", "patterns"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 30 || cfg.Period() != 2*time.Second || cfg.RandomDensity != 0.5 || cfg.SeedMode != SeedModePatterns {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.Height != DefaultConfig().Height {
		t.Fatal("unset flag changed height")
	}
}

func TestEffectiveSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99
	if cfg.EffectiveSeed() != 99 {
		t.Fatal("explicit seed not used")
	}
	cfg.Seed = 0
	if cfg.EffectiveSeed() == 0 {
		t.Fatal("zero seed should be replaced")
	}
}

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 10, 4, 500*time.Millisecond)
	if s.GenerationsPerSecond != 2 || s.AveragePopulation != 10 {
		t.Fatalf("stats = %+v", s)
	}
	s.Update(2, 20, 3, 0)
	if s.TotalGenerations != 2 || s.ActiveCells != 20 || s.LastChanged != 3 {
		t.Fatalf("stats = %+v", s)
	}
	if math.Abs(s.AveragePopulation-11) > 1e-9 {
		t.Fatalf("average population = %v, want 11", s.AveragePopulation)
	}
}
