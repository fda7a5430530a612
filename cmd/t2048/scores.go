package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show score history",
	Long: `Display the top scores and statistics for the current player.

Examples:
  t2048 scores
  t2048 scores --player alice --limit 20
  t2048 scores --all
  t2048 scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Include every player")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the selected scores")
}

func runScores(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	player := flagPlayer
	if flagScoresAll {
		player = ""
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		n, err := store.ClearScores(player)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted %d scores.\n", n)
		return nil
	}

	scores, err := store.TopScores(player, flagScoresLimit)
	if err != nil {
		return err
	}

	title := player
	if title == "" {
		title = "all players"
	}
	fmt.Fprintf(out, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 't2048 play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-6s  %-12s  %s\n", "Rank", "Score", "Tile", "Moves", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-6s  %-12s  %s\n", "----", "-----", "----", "-----", "------", "----")

	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-8d  %-6d  %-6d  %-12s  %s\n",
			i+1, e.Score, e.MaxTile, e.Moves, e.Player, e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(player)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	printStats(cmd, stats)
	return nil
}

func printStats(cmd *cobra.Command, s *storage.Stats) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Games: %d  Best: %d  Average: %.0f  Best tile: %d  Total moves: %d\n",
		s.GamesCount, s.HighScore, s.AvgScore, s.BestTile, s.TotalMoves)
	if !s.LastPlayed.IsZero() {
		fmt.Fprintf(out, "Last played: %s\n", s.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
}
