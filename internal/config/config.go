package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRMin      = 2.9
	DefaultRMax      = 4.0
	DefaultRSteps    = 1000
	DefaultXIn       = 0.01
	DefaultTransient = 1_000_000
	DefaultSamples   = 3000
	DefaultWidth     = 3175
	DefaultHeight    = 2000
	DefaultAlpha     = 0.1
	DefaultFormat    = "png"
	DefaultOutput    = "bifurcation.png"
)

var (
	ErrInvalidRange  = errors.New("config: r_min must not exceed r_max")
	ErrInvalidSize   = errors.New("config: r_steps and samples must be non-negative")
	ErrInvalidFormat = errors.New("config: unknown output format")
	ErrInvalidRender = errors.New("config: render width, height and alpha must be positive")
)

// Formats lists the output formats the renderer understands.
var Formats = []string{"png", "svg", "ascii"}

type Config struct {
	Sweep  SweepConfig  `yaml:"sweep"`
	Render RenderConfig `yaml:"render"`
}

type SweepConfig struct {
	RMin      float64 `yaml:"r_min"`
	RMax      float64 `yaml:"r_max"`
	RSteps    int     `yaml:"r_steps"`
	XIn       float64 `yaml:"x_in"`
	Transient int     `yaml:"transient"`
	Samples   int     `yaml:"samples"`
	Workers   int     `yaml:"workers"`
}

type RenderConfig struct {
	Format string  `yaml:"format"`
	Output string  `yaml:"output"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Alpha  float64 `yaml:"alpha"`
}

// DefaultConfig reproduces the classic diagram: r in [2.9, 4] at 1000 steps,
// a million transient iterations and 3000 samples per r.
func DefaultConfig() *Config {
	return &Config{
		Sweep: SweepConfig{
			RMin:      DefaultRMin,
			RMax:      DefaultRMax,
			RSteps:    DefaultRSteps,
			XIn:       DefaultXIn,
			Transient: DefaultTransient,
			Samples:   DefaultSamples,
		},
		Render: RenderConfig{
			Format: DefaultFormat,
			Output: DefaultOutput,
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Alpha:  DefaultAlpha,
		},
	}
}

// Load reads a YAML file on top of DefaultConfig, so omitted keys keep
// their defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto decodes a YAML file over cfg. Keys missing from the file keep
// the values already in cfg, such as those of a preset.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings the sweep or the renderer cannot run with. The
// r range itself is not restricted: values outside [0, 4] are iterated
// like any other.
func (c *Config) Validate() error {
	s := c.Sweep
	if s.RMin > s.RMax {
		return fmt.Errorf("%w: %g > %g", ErrInvalidRange, s.RMin, s.RMax)
	}
	if s.RSteps < 0 || s.Samples < 0 {
		return ErrInvalidSize
	}
	if s.Transient < 0 {
		return fmt.Errorf("config: transient must be non-negative, got %d", s.Transient)
	}

	r := c.Render
	if !validFormat(r.Format) {
		return fmt.Errorf("%w: %q (available: %v)", ErrInvalidFormat, r.Format, Formats)
	}
	if r.Width <= 0 || r.Height <= 0 || r.Alpha <= 0 || r.Alpha > 1 {
		return ErrInvalidRender
	}
	return nil
}

func validFormat(f string) bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}
