package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/levels"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available mazes and game variants",
	Long:  `Shows the mazes found in --mazes (or shipped with the binary) and the registered game variants.`,
	RunE:  runList,
}

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default tuning as YAML",
	Long: `Prints the built-in pacman.yaml. Save it as ~/.arcade/configs/pacman.yaml
or ./configs/pacman.yaml, or pass it with --config, to change the tuning.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(string(config.DefaultYAML()))
	},
}

func init() {
	listCmd.Flags().StringVar(&flagMazes, "mazes", "", "Directory of .board files (default: built-in mazes)")
}

// library returns the maze library selected by --mazes.
func library() *levels.Library {
	if flagMazes != "" {
		return levels.Dir(flagMazes)
	}
	return levels.Embedded()
}

func runList(cmd *cobra.Command, args []string) error {
	names, err := library().Names()
	if err != nil {
		return err
	}

	if len(names) == 0 {
		fmt.Println("No mazes available.")
	} else {
		fmt.Println("Available mazes:")
		fmt.Println()
		for _, name := range names {
			fmt.Printf("  %s\n", name)
		}
	}

	games := registry.List()
	fmt.Println()
	fmt.Println("Variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'pacman play <maze>' to play a maze.")
	return nil
}
