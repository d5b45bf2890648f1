// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Ball      BallConfig      `yaml:"ball"`
	Evil      EvilConfig      `yaml:"evil"`
	Schedule  ScheduleConfig  `yaml:"schedule"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// BallConfig holds the ranges balls are spawned with.
// Speeds are per-axis magnitudes and must stay strictly positive.
type BallConfig struct {
	MinSize        int `yaml:"min_size"`
	MaxSize        int `yaml:"max_size"`
	MinSpeed       int `yaml:"min_speed"`
	MaxSpeed       int `yaml:"max_speed"`
	InitialDivisor int `yaml:"initial_divisor"` // initial balls = min(w, h) / divisor
}

// EvilConfig holds the predator's creation ranges and size step factors.
type EvilConfig struct {
	MinSize      int     `yaml:"min_size"`
	MaxSize      int     `yaml:"max_size"`
	MinSpeed     int     `yaml:"min_speed"`
	MaxSpeed     int     `yaml:"max_speed"`
	GrowFactor   float64 `yaml:"grow_factor"`
	ShrinkFactor float64 `yaml:"shrink_factor"`
}

// ScheduleConfig holds per-frame cadence parameters.
type ScheduleConfig struct {
	FadeAlpha            float64 `yaml:"fade_alpha"`
	HeavyFadeAlpha       float64 `yaml:"heavy_fade_alpha"`
	HeavyFadeEvery       int     `yaml:"heavy_fade_every"`
	FPSEvery             int     `yaml:"fps_every"`
	SpawnEvery           int     `yaml:"spawn_every"`
	HoldRepeatMS         int     `yaml:"hold_repeat_ms"`
	PointerReleaseFrames int     `yaml:"pointer_release_frames"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window"` // FPS reports per summary
	PerfWindow  int `yaml:"perf_window"`  // ticks in the perf rolling window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW    float64       // Screen.Width as float64
	ScreenH    float64       // Screen.Height as float64
	HoldRepeat time.Duration // Schedule.HoldRepeatMS as a duration
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		// embedded defaults are part of the binary
		panic(fmt.Sprintf("config: invalid embedded defaults: %v", err))
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
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Ball.MinSpeed <= 0 || c.Evil.MinSpeed <= 0 {
		errs = append(errs, errors.New("min_speed must be positive"))
	}
	if c.Ball.MaxSpeed < c.Ball.MinSpeed || c.Evil.MaxSpeed < c.Evil.MinSpeed {
		errs = append(errs, errors.New("max_speed must not be below min_speed"))
	}
	if c.Ball.MinSize <= 0 || c.Evil.MinSize <= 0 {
		errs = append(errs, errors.New("min_size must be positive"))
	}
	if c.Ball.MaxSize < c.Ball.MinSize || c.Evil.MaxSize < c.Evil.MinSize {
		errs = append(errs, errors.New("max_size must not be below min_size"))
	}
	if c.Ball.InitialDivisor <= 0 {
		errs = append(errs, errors.New("ball.initial_divisor must be positive"))
	}
	if c.Schedule.HeavyFadeEvery <= 0 || c.Schedule.FPSEvery <= 0 || c.Schedule.SpawnEvery <= 0 {
		errs = append(errs, errors.New("schedule intervals must be positive"))
	}
	if c.Schedule.HoldRepeatMS <= 0 {
		errs = append(errs, errors.New("schedule.hold_repeat_ms must be positive"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW = float64(c.Screen.Width)
	c.Derived.ScreenH = float64(c.Screen.Height)
	c.Derived.HoldRepeat = time.Duration(c.Schedule.HoldRepeatMS) * time.Millisecond
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
