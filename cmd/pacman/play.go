package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/levels"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagVariant    string
	flagMazes      string
)

var playCmd = &cobra.Command{
	Use:   "play [maze]",
	Short: "Play a maze",
	Long: `Start a round on the named maze. Without a name you are asked for one;
an unknown name lists the mazes and asks again.

Controls:
  Arrows/WASD  - Steer (the turn is taken at the next junction)
  P            - Pause
  R            - Restart (after the round ends)
  Q/Esc        - Quit

Variants:
  classic - Four pursuers: chaser, ambusher, shy and flanker
  duo     - Only the chaser and the ambusher

Difficulty options:
  easy   - More lives, slower pursuers, longer scatter phases
  normal - The configured tuning
  hard   - Fewer lives, faster pursuers, shorter scatter phases

Examples:
  pacman play
  pacman play classic
  pacman play corridors --variant duo --difficulty easy
  pacman play mine --mazes ./levels --config ./my-pacman.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom pacman.yaml")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagVariant, "variant", "classic", "Pursuer roster: classic, duo")
	playCmd.Flags().StringVar(&flagMazes, "mazes", "", "Directory of .board files (default: built-in mazes)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	variant, err := pacman.ParseVariant(flagVariant)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	lvl, err := pickLevel(library(), args, width)
	if err != nil {
		return err
	}
	if lvl == nil {
		return nil // User gave up at the prompt
	}

	pacman.SetLevel(*lvl)
	pacman.SetConfig(cfg)

	game, err := registry.Create(variant.GameID())
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// The log lives for this run only; without it the game still plays.
	store, err := storage.Open()
	if err != nil {
		logger.Warn("round log unavailable", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("round starting",
		"maze", lvl.Name,
		"variant", variant,
		"difficulty", preset,
		"lives", cfg.Player.Lives,
	)

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
	if err := tui.Run(game, store, logger, runtime); err != nil {
		logger.Error("game stopped", "err", err)
		return fmt.Errorf("running game: %w", err)
	}

	return tui.RunSummary(store, width, height)
}

// pickLevel loads the maze named on the command line. An unknown or missing
// name falls back to the interactive prompt.
func pickLevel(lib *levels.Library, args []string, width int) (*levels.Level, error) {
	if len(args) == 1 {
		lvl, err := lib.Load(args[0])
		if err == nil {
			return &lvl, nil
		}
		if !lib.Exists(args[0]) {
			fmt.Fprintf(os.Stderr, "The maze '%s' does not exist!\n", args[0])
			return tui.RunPicker(lib, width)
		}
		return nil, err
	}
	return tui.RunPicker(lib, width)
}
