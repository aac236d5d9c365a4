// Package config holds the dualscope configuration: YAML file, environment
// overrides, validation, and duration accessors. Missing files are not an
// error; the defaults describe a fully working scope.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"dualscope/internal/signal"
)

// Config holds all dualscope configuration.
type Config struct {
	Name string `yaml:"name"`

	// Signal selects the scene loaded at startup.
	Signal SignalConfig `yaml:"signal"`

	// Render controls sampling density and tick rate.
	Render RenderConfig `yaml:"render"`

	// Session controls the optional auto-stop.
	Session SessionConfig `yaml:"session"`

	// Tone configures the binaural exporter.
	Tone ToneConfig `yaml:"tone"`

	// Logging configures the action trace.
	Logging LoggingConfig `yaml:"logging"`

	// Store configures the best-effort parameter echo.
	Store StoreConfig `yaml:"store"`
}

// SignalConfig selects the startup scene.
type SignalConfig struct {
	Preset string `yaml:"preset"`
}

// RenderConfig controls the sampling/draw loop.
type RenderConfig struct {
	Steps int `yaml:"steps"` // samples per curve per frame
	FPS   int `yaml:"fps"`   // tick rate while running
}

// SessionConfig controls the session lifetime.
type SessionConfig struct {
	// AutoStop is a duration string; empty disables the auto-stop.
	AutoStop string `yaml:"auto_stop"`
}

// ToneConfig configures the binaural tone exporter.
type ToneConfig struct {
	SampleRate int     `yaml:"sample_rate"`
	Duration   string  `yaml:"duration"`
	BaseHz     float64 `yaml:"base_hz"` // audible carrier per unit of visual frequency
	Output     string  `yaml:"output"`
}

// LoggingConfig configures the action trace sink.
type LoggingConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"` // empty routes the trace to stderr
}

// StoreConfig configures the parameter echo file.
type StoreConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"` // defaults to the working directory
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name: "dualscope",
		Signal: SignalConfig{
			Preset: signal.DefaultPreset,
		},
		Render: RenderConfig{
			Steps: 256,
			FPS:   30,
		},
		Session: SessionConfig{
			AutoStop: "",
		},
		Tone: ToneConfig{
			SampleRate: 44100,
			Duration:   "10s",
			BaseHz:     110,
			Output:     "tone.wav",
		},
		Logging: LoggingConfig{
			Level: "info",
			Path:  filepath.Join(".dualscope", "actions.log"),
		},
		Store: StoreConfig{
			Enabled: true,
			Dir:     ".",
		},
	}
}

// Load loads configuration from a YAML file, starting from defaults. A
// missing file yields the defaults with env overrides applied.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config dir: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// applyEnvOverrides lets the environment override file values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DUALSCOPE_PRESET"); v != "" {
		c.Signal.Preset = v
	}
	if v := os.Getenv("DUALSCOPE_FPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Render.FPS = n
		}
	}
	if v := os.Getenv("DUALSCOPE_STEPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Render.Steps = n
		}
	}
	if v := os.Getenv("DUALSCOPE_AUTO_STOP"); v != "" {
		c.Session.AutoStop = v
	}
	if v := os.Getenv("DUALSCOPE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("DUALSCOPE_LOG_PATH"); v != "" {
		c.Logging.Path = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := signal.ByName(c.Signal.Preset); err != nil {
		return fmt.Errorf("signal.preset: %w", err)
	}
	if c.Render.FPS < 1 || c.Render.FPS > 120 {
		return fmt.Errorf("render.fps must be in [1, 120], got %d", c.Render.FPS)
	}
	if c.Render.Steps < 16 || c.Render.Steps > 4096 {
		return fmt.Errorf("render.steps must be in [16, 4096], got %d", c.Render.Steps)
	}
	if c.Session.AutoStop != "" {
		if _, err := time.ParseDuration(c.Session.AutoStop); err != nil {
			return fmt.Errorf("session.auto_stop: %w", err)
		}
	}
	if c.Tone.SampleRate < 8000 || c.Tone.SampleRate > 192000 {
		return fmt.Errorf("tone.sample_rate must be in [8000, 192000], got %d", c.Tone.SampleRate)
	}
	if _, err := time.ParseDuration(c.Tone.Duration); err != nil {
		return fmt.Errorf("tone.duration: %w", err)
	}
	if c.Tone.BaseHz <= 0 {
		return fmt.Errorf("tone.base_hz must be positive, got %v", c.Tone.BaseHz)
	}
	return nil
}

// GetAutoStop returns the parsed auto-stop duration, zero when disabled.
func (c *Config) GetAutoStop() time.Duration {
	if c.Session.AutoStop == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Session.AutoStop)
	if err != nil {
		return 0
	}
	return d
}

// GetToneDuration returns the parsed tone duration with a 10s fallback.
func (c *Config) GetToneDuration() time.Duration {
	d, err := time.ParseDuration(c.Tone.Duration)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// FrameInterval returns the tick period for the configured FPS.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Render.FPS)
}
