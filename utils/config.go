package utils

import (
	"encoding/json"
	"flag"
	"math"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Seed modes understood by the runners
const (
	SeedModeRandom   = "random"
	SeedModePatterns = "patterns"
	SeedModeNoise    = "noise"
	SeedModeEmpty    = "empty"
)

var (
	// ErrInvalidConfig is the cause of every Validate failure
	ErrInvalidConfig = errors.New("invalid config")
)

// Duration is a time.Duration that reads from JSON as either a Go duration
// string ("500ms") or a number of nanoseconds
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return errors.Wrapf(err, "[Duration.UnmarshalJSON] bad duration %q", s)
		}
		*d = Duration(parsed)
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrapf(err, "[Duration.UnmarshalJSON] bad duration %s", data)
	}
	*d = Duration(n)
	return nil
}

// MarshalJSON implements json.Marshaler
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Config holds the configuration for the game
type Config struct {
	Width          int      `json:"width"`
	Height         int      `json:"height"`
	StepPeriod     Duration `json:"step_period"`
	RandomDensity  float64  `json:"random_density"`
	Seed           int64    `json:"seed"` // 0 picks a time based seed
	SeedMode       string   `json:"seed_mode"`
	NoiseThreshold float64  `json:"noise_threshold"`
	MaxGenerations int      `json:"max_generations"` // 0 runs until steady state
	Scale          int      `json:"scale"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          40,
		Height:         25,
		StepPeriod:     Duration(500 * time.Millisecond),
		RandomDensity:  0.25,
		SeedMode:       SeedModeRandom,
		NoiseThreshold: 0.1,
		MaxGenerations: 0,
		Scale:          12,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet so flags override
// values loaded from file
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.Func("period", "time between generations (e.g. 500ms)", func(s string) error {
		d, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		c.StepPeriod = Duration(d)
		return nil
	})
	fs.Float64Var(&c.RandomDensity, "density", c.RandomDensity, "probability a cell starts alive")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 = time based)")
	fs.StringVar(&c.SeedMode, "seed-mode", c.SeedMode, "random, patterns, noise or empty")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations (0 = unlimited)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell in the GUI")
}

// Validate checks every field a runner depends on
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] dimensions %dx%d must be positive", c.Width, c.Height)
	case c.StepPeriod <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] step period %v must be positive", time.Duration(c.StepPeriod))
	case math.IsNaN(c.RandomDensity) || c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] random density %v not in [0,1]", c.RandomDensity)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] max generations %d is negative", c.MaxGenerations)
	case c.Scale <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] scale %d must be positive", c.Scale)
	}

	switch c.SeedMode {
	case SeedModeRandom, SeedModePatterns, SeedModeNoise, SeedModeEmpty:
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Config.Validate] unknown seed mode %q", c.SeedMode)
	}
	return nil
}

// Period returns the step period as a time.Duration
func (c Config) Period() time.Duration {
	return time.Duration(c.StepPeriod)
}

// EffectiveSeed returns Seed, or a time based seed when Seed is zero
func (c Config) EffectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
