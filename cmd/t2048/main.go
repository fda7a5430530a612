// t2048 is the 2048 sliding-tile game for the terminal.
//
// Usage:
//
//	t2048                    - Start the menu (new game, high scores)
//	t2048 play               - Start a game right away
//	t2048 scores             - Show your score history
//	t2048 serve              - Start SSH server for remote play
//	t2048 move <dir>         - Apply one move to a board and print the result
//	t2048 config             - Print the effective configuration
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible games
//	--db <path>           - Set database path (default: ~/.t2048/scores.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <name>   - easy, normal or hard
//	--player <name>       - Name scores are saved under (default: local)
//	--log-level <level>   - debug, info, warn or error (default: warn)
//	--log-file <path>     - Write logs to a file (default: stderr, discarded while the TUI runs)
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagPlayer     string
	flagLogLevel   string
	flagLogFile    string

	// logger is configured from the log flags before any command runs.
	logger    = log.New(io.Discard)
	logCloser io.Closer
)

// annotationTUI marks commands that take over the terminal.
const annotationTUI = "tui"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// run executes the root command and closes the log file however it ended.
func run() error {
	err := rootCmd.Execute()
	return errors.Join(err, closeLogging())
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `Slide the board with the arrow keys, WASD or hjkl. Equal tiles that
collide merge into their sum; every move that changes the board adds a new
2 or 4. The game ends when no move can change the board.

Available commands:
  play     - Start a game right away
  scores   - View your score history
  serve    - Start SSH server for remote play
  move     - Apply one move to a board (no spawn)
  config   - Print the effective configuration

Examples:
  t2048
  t2048 play --difficulty hard
  t2048 scores --limit 20
  t2048 serve --ssh :2222
  t2048 move left --board "2 0 2 4/0 0 0 0/0 0 0 0/0 0 0 0"`,
	Annotations:       map[string]string{annotationTUI: "true"},
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE:              runMenu,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.t2048/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagPlayer, "player", "local", "Player name for saved scores")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging builds the shared logger from --log-level and --log-file.
func setupLogging(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	out := logOutput(cmd)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		out, logCloser = f, f
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           level,
	})
	return nil
}

// logOutput is where logs go without --log-file. Commands that draw the TUI
// discard them so they cannot corrupt the screen.
func logOutput(cmd *cobra.Command) io.Writer {
	if cmd.Annotations[annotationTUI] != "" {
		return io.Discard
	}
	return cmd.ErrOrStderr()
}

// closeLogging closes the --log-file handle, if one is open.
func closeLogging() error {
	if logCloser == nil {
		return nil
	}
	err := logCloser.Close()
	logCloser = nil
	return err
}
