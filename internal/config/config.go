package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/sieve/internal/grid"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFrameRate  = 12
	MinFrameRate      = 10
	MaxFrameRate      = 40
	DefaultDimensions = 800
	MinDimensions     = 800
	MaxDimensions     = 2000
	DefaultTheme      = "classic"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

type Config struct {
	FrameRate  int    `yaml:"frame_rate"`
	Dimensions int    `yaml:"window_dimension"`
	Size       int    `yaml:"size"`
	Theme      string `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		FrameRate:  DefaultFrameRate,
		Dimensions: DefaultDimensions,
		Size:       grid.DefaultSize,
		Theme:      DefaultTheme,
	}
}

// Load reads a yaml file over the defaults and clamps the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Normalize clamps every field into its valid range. Out-of-range values
// are never an error.
func (c *Config) Normalize() {
	c.FrameRate = ClampFrameRate(c.FrameRate)
	c.Dimensions = ClampDimensions(c.Dimensions)
	c.Size = grid.Clamp(c.Size)
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
}

func ClampFrameRate(fps int) int { return min(max(fps, MinFrameRate), MaxFrameRate) }

func ClampDimensions(px int) int { return min(max(px, MinDimensions), MaxDimensions) }
