// pacman plays tile-grid Pac-Man mazes in the terminal.
//
// Usage:
//
//	pacman play [maze]   - Play a maze (prompts for one when omitted)
//	pacman list          - List available mazes and game variants
//	pacman defaults      - Print the default tuning as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file; logs are discarded otherwise
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

var (
	// Global flags
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Pac-Man in your terminal",
	Long: `A tile-grid Pac-Man: clear every coin and power pellet while four
pursuers hunt you through the maze.

Available commands:
  play      - Play a maze
  list      - Show the available mazes and variants
  defaults  - Print the default tuning

Examples:
  pacman play
  pacman play classic --variant duo
  pacman play open --difficulty hard --log-file pacman.log
  pacman list --mazes ./levels`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(defaultsCmd)
}

// newLogger builds the root logger. The terminal belongs to the game while
// it runs, so logs only go to --log-file.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pacman",
		Level:           level,
	})
	return logger, closeFn, nil
}
