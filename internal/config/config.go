// Package config reads process settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings that are not part of the game data files.
type Config struct {
	ScreenWidth  int    `env:"DINOPAIRS_SCREEN_WIDTH" envDefault:"800"`
	ScreenHeight int    `env:"DINOPAIRS_SCREEN_HEIGHT" envDefault:"600"`
	TPS          int    `env:"DINOPAIRS_TPS" envDefault:"30"`
	Difficulty   string `env:"DINOPAIRS_DIFFICULTY" envDefault:"easy"`
	DataDir      string `env:"DINOPAIRS_DATA_DIR"` // empty = embedded data
	AssetDir     string `env:"DINOPAIRS_ASSET_DIR" envDefault:"assets/images"`
	Seed         uint64 `env:"DINOPAIRS_SEED"` // 0 = seed from the clock
}

// Load parses Config from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg.normalize(), nil
}

// LoadFrom parses Config from the given variables instead of the process
// environment.
func LoadFrom(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg.normalize(), nil
}

// normalize replaces unusable values with the defaults.
func (c Config) normalize() Config {
	if c.ScreenWidth <= 0 {
		c.ScreenWidth = 800
	}
	if c.ScreenHeight <= 0 {
		c.ScreenHeight = 600
	}
	if c.TPS <= 0 {
		c.TPS = 30
	}
	return c
}
