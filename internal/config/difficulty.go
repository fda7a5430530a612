package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned for a difficulty name that is not defined.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the difficulty presets in increasing order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// FourProbabilityForPreset returns the spawn odds of a 4 for a preset.
// Harder presets deal more fours, which fill the board faster.
func FourProbabilityForPreset(preset DifficultyPreset) (float64, error) {
	switch DifficultyPreset(strings.ToLower(string(preset))) {
	case DifficultyEasy:
		return 0.05, nil
	case DifficultyNormal:
		return 0.10, nil
	case DifficultyHard:
		return 0.25, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config unchanged.
func (c *GameConfig) ApplyPreset(preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	p, err := FourProbabilityForPreset(preset)
	if err != nil {
		return err
	}
	c.Spawn.FourProbability = p
	return nil
}
