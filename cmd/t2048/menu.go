package main

import (
	"github.com/spf13/cobra"
)

// runMenu starts the interactive menu: new game, high scores, quit.
// After a game you return to the menu to play again.
func runMenu(_ *cobra.Command, _ []string) error {
	return runLocal(false)
}
