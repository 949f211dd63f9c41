// Package config handles generator configuration loading and management.
package config

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/multierr"
)

// Config holds all generator settings.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// TerrainConfig holds noise and grid sampling settings.
type TerrainConfig struct {
	Width            int     `yaml:"width"`             // Vertices along X
	Depth            int     `yaml:"depth"`             // Vertices along Z
	Scale            float64 `yaml:"scale"`             // Noise units per grid step
	HeightMultiplier float64 `yaml:"height_multiplier"` // World units per noise unit
	Seed             *int64  `yaml:"seed"`              // nil picks a random seed
	Algorithm        string  `yaml:"algorithm"`         // perlin, simplex or classic
	Octaves          int     `yaml:"octaves"`
	Persistence      float64 `yaml:"persistence"`
	Lacunarity       float64 `yaml:"lacunarity"`
}

// OutputConfig holds export destinations. Empty paths skip the export.
type OutputConfig struct {
	Heightmap       string `yaml:"heightmap"`
	HeightmapFormat string `yaml:"heightmap_format"`
	Mesh            string `yaml:"mesh"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			Width:            128,
			Depth:            128,
			Scale:            0.05,
			HeightMultiplier: 10.0,
			Algorithm:        "perlin",
			Octaves:          1,
			Persistence:      0.5,
			Lacunarity:       2.0,
		},
		Output: OutputConfig{
			HeightmapFormat: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

var (
	validAlgorithms = []string{"perlin", "simplex", "classic"}
	validFormats    = []string{"png", "bmp"}
	validLevels     = []string{"debug", "info", "warn", "error"}
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error
	t := c.Terrain
	if t.Width <= 1 {
		err = multierr.Append(err, fmt.Errorf("terrain.width must be at least 2 (got %d)", t.Width))
	}
	if t.Depth <= 1 {
		err = multierr.Append(err, fmt.Errorf("terrain.depth must be at least 2 (got %d)", t.Depth))
	}
	if !positiveFinite(t.Scale) {
		err = multierr.Append(err, fmt.Errorf("terrain.scale must be finite and greater than zero (got %g)", t.Scale))
	}
	if math.IsNaN(t.HeightMultiplier) || math.IsInf(t.HeightMultiplier, 0) {
		err = multierr.Append(err, fmt.Errorf("terrain.height_multiplier must be finite (got %g)", t.HeightMultiplier))
	}
	if !oneOf(t.Algorithm, validAlgorithms) {
		err = multierr.Append(err, fmt.Errorf("terrain.algorithm %q is not one of %v", t.Algorithm, validAlgorithms))
	}
	if t.Octaves <= 0 {
		err = multierr.Append(err, fmt.Errorf("terrain.octaves must be positive (got %d)", t.Octaves))
	}
	if !positiveFinite(t.Persistence) {
		err = multierr.Append(err, fmt.Errorf("terrain.persistence must be finite and positive (got %g)", t.Persistence))
	}
	if !positiveFinite(t.Lacunarity) {
		err = multierr.Append(err, fmt.Errorf("terrain.lacunarity must be finite and positive (got %g)", t.Lacunarity))
	}
	if !oneOf(c.Output.HeightmapFormat, validFormats) {
		err = multierr.Append(err, fmt.Errorf("output.heightmap_format %q is not one of %v", c.Output.HeightmapFormat, validFormats))
	}
	if !oneOf(c.Logging.Level, validLevels) {
		err = multierr.Append(err, fmt.Errorf("logging.level %q is not one of %v", c.Logging.Level, validLevels))
	}
	return err
}

// positiveFinite is false for NaN, which fails every comparison.
func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func oneOf(s string, options []string) bool {
	for _, o := range options {
		if strings.EqualFold(s, o) {
			return true
		}
	}
	return false
}
