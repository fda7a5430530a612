package main

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game right away",
	Long: `Start a 2048 game without the menu.

Controls:
  Arrows/WASD/hjkl  - Slide tiles
  R                 - New game
  C                 - Copy share text (after game over)
  ?                 - Show all keys
  Esc/B             - Back to menu
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 5% of new tiles are 4s
  normal - 10% of new tiles are 4s
  hard   - 25% of new tiles are 4s

Examples:
  t2048 play
  t2048 play --difficulty hard
  t2048 play --seed 42
  t2048 play --config ./my-2048.yaml`,
	Annotations: map[string]string{annotationTUI: "true"},
	Args:        cobra.NoArgs,
	RunE:        runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	return runLocal(true)
}
