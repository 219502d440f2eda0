// Package config handles loopsub configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/loopsub/pkg/formats"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all loopsub settings.
type Config struct {
	Subdivision SubdivisionConfig `yaml:"subdivision"`
	Output      OutputConfig      `yaml:"output"`
	Preview     PreviewConfig     `yaml:"preview"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// SubdivisionConfig holds engine settings.
type SubdivisionConfig struct {
	Iterations int `yaml:"iterations"`
	Workers    int `yaml:"workers"` // 0 = one per CPU
}

// OutputConfig holds settings for written meshes.
type OutputConfig struct {
	Format string `yaml:"format"` // obj or stl; empty = same as input
	Suffix string `yaml:"suffix"` // appended to the input name when no output path is given
}

// PreviewConfig holds wireframe rendering settings.
type PreviewConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Yaw        float64 `yaml:"yaw"`
	Pitch      float64 `yaml:"pitch"`
	LineWidth  float64 `yaml:"line_width"`
	Background string  `yaml:"background"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Subdivision: SubdivisionConfig{
			Iterations: 1,
			Workers:    0,
		},
		Output: OutputConfig{
			Format: "",
			Suffix: "_loop",
		},
		Preview: PreviewConfig{
			Width:      800,
			Height:     600,
			Yaw:        30,
			Pitch:      20,
			LineWidth:  1,
			Background: "#1e1e24",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks that values are in range.
func (c *Config) Validate() error {
	if c.Subdivision.Iterations < 0 {
		return fmt.Errorf("%w: iterations must not be negative, got %d", ErrInvalidConfig, c.Subdivision.Iterations)
	}
	if c.Subdivision.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Subdivision.Workers)
	}
	if c.Output.Format != "" {
		if _, err := formats.ParseFormat(c.Output.Format); err != nil {
			return fmt.Errorf("%w: output format: %v", ErrInvalidConfig, err)
		}
	}
	if c.Preview.Width <= 0 || c.Preview.Height <= 0 {
		return fmt.Errorf("%w: preview size must be positive, got %dx%d", ErrInvalidConfig, c.Preview.Width, c.Preview.Height)
	}
	return nil
}
