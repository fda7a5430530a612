package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

//go:embed defaults/2048.yaml
var defaultYAML []byte

// sourceEmbedded marks a config built only from the embedded defaults.
const sourceEmbedded = "embedded"

// DefaultGameConfig returns the embedded default configuration.
func DefaultGameConfig() GameConfig {
	var cfg GameConfig
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return fallbackGameConfig() // Fallback to hardcoded if embed fails
	}
	cfg.Source = sourceEmbedded
	return cfg
}

// fallbackGameConfig mirrors defaults/2048.yaml.
func fallbackGameConfig() GameConfig {
	return GameConfig{
		Spawn: SpawnConfig{
			FourProbability: t2048.DefaultFourProbability,
			InitialTiles:    2,
		},
		Theme: ThemeConfig{
			Empty: "gray",
			Grid:  "gray",
			Tiles: []TileColor{
				{Max: 4, Color: "white"},
				{Max: 8, Color: "yellow"},
				{Max: 16, Color: "bright_yellow"},
				{Max: 32, Color: "orange"},
				{Max: 64, Color: "red"},
				{Max: 0, Color: "bright_magenta"},
			},
		},
		Share: ShareConfig{
			Message: "I scored {score} in 2048 (max tile {max_tile})! {url}",
		},
		Source: sourceEmbedded,
	}
}
