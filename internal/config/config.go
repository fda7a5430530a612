// Package config provides YAML-based configuration loading and
// difficulty presets for the 2048 game.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// GameConfig contains all configuration for a 2048 session.
type GameConfig struct {
	Spawn SpawnConfig `yaml:"spawn"`
	Theme ThemeConfig `yaml:"theme"`
	Share ShareConfig `yaml:"share"`

	// Source names where the config was loaded from.
	Source string `yaml:"-"`
}

// SpawnConfig defines how new tiles appear.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"` // Chance that a spawned tile is a 4
	InitialTiles    int     `yaml:"initial_tiles"`    // Tiles dealt on a new game
}

// ThemeConfig defines board colors by name (see core.ParseColor).
type ThemeConfig struct {
	Empty string      `yaml:"empty"`
	Grid  string      `yaml:"grid"`
	Tiles []TileColor `yaml:"tiles"`
}

// TileColor colors tiles up to and including Max. Max 0 matches any value
// and must be the last entry.
type TileColor struct {
	Max   int    `yaml:"max"`
	Color string `yaml:"color"`
}

// ShareConfig defines the text offered after a game ends.
type ShareConfig struct {
	URL     string `yaml:"url"`
	Message string `yaml:"message"` // Supports {score}, {max_tile} and {url}
}

// Validate checks value ranges and color names.
func (c GameConfig) Validate() error {
	if p := c.Spawn.FourProbability; p < 0 || p > 1 {
		return fmt.Errorf("%w: spawn.four_probability %v outside [0, 1]", ErrInvalidConfig, p)
	}
	if n := c.Spawn.InitialTiles; n < 1 || n > t2048.BoardSize*t2048.BoardSize {
		return fmt.Errorf("%w: spawn.initial_tiles %d outside [1, %d]",
			ErrInvalidConfig, n, t2048.BoardSize*t2048.BoardSize)
	}
	if _, err := c.Palette(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Palette converts the theme to the renderer's palette.
func (c GameConfig) Palette() (t2048.Palette, error) {
	var pal t2048.Palette
	var err error

	if pal.Grid, err = core.ParseColor(c.Theme.Grid); err != nil {
		return pal, fmt.Errorf("theme.grid: %w", err)
	}
	if pal.Empty, err = core.ParseColor(c.Theme.Empty); err != nil {
		return pal, fmt.Errorf("theme.empty: %w", err)
	}

	for i, tc := range c.Theme.Tiles {
		if tc.Max < 0 {
			return pal, fmt.Errorf("theme.tiles[%d]: negative max %d", i, tc.Max)
		}
		if i > 0 && c.Theme.Tiles[i-1].Max == 0 {
			return pal, fmt.Errorf("theme.tiles[%d]: entry after catch-all max 0", i)
		}
		color, err := core.ParseColor(tc.Color)
		if err != nil {
			return pal, fmt.Errorf("theme.tiles[%d]: %w", i, err)
		}
		pal.Tiles = append(pal.Tiles, t2048.PaletteEntry{Max: tc.Max, Color: color})
	}
	return pal, nil
}

// Options returns the game options derived from the spawn settings.
func (c GameConfig) Options() t2048.Options {
	return t2048.Options{
		FourProbability: c.Spawn.FourProbability,
		InitialTiles:    c.Spawn.InitialTiles,
	}
}

// YAML encodes the config in the same layout Load reads.
func (c GameConfig) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	return data, nil
}
