package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var flagBoard string

var moveCmd = &cobra.Command{
	Use:   "move <up|down|left|right>",
	Short: "Apply one move to a board and print the result",
	Long: `Slide a board once and print the resulting board, the points scored,
whether the board changed and whether any move remains. No tile is spawned.

Rows are separated by '/' or newlines, cells by spaces or commas;
'.' may be used for an empty cell.

Examples:
  t2048 move left --board "2 0 2 4/0 0 0 0/0 0 0 0/0 0 0 0"
  t2048 move up --board "2 . . ./2 . . ./4 . . ./4 . . ."`,
	Args: cobra.ExactArgs(1),
	RunE: runMove,
}

func init() {
	moveCmd.Flags().StringVar(&flagBoard, "board", "", "Board to move (required)")
	//nolint:errcheck // Flag is defined just above
	moveCmd.MarkFlagRequired("board")
}

func runMove(cmd *cobra.Command, args []string) error {
	dir, err := t2048.ParseDirection(args[0])
	if err != nil {
		return err
	}
	board, err := t2048.ParseBoard(flagBoard)
	if err != nil {
		return err
	}

	next, delta := t2048.Move(board, dir)

	out := cmd.OutOrStdout()
	fmt.Fprint(out, next.Format())
	fmt.Fprintln(out)
	fmt.Fprintf(out, "score:   +%d\n", delta)
	fmt.Fprintf(out, "changed: %s\n", yesNo(next != board))
	fmt.Fprintf(out, "moves:   %s\n", yesNo(t2048.HasMoves(next)))
	fmt.Fprintf(out, "board:   %s\n", next)
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
