// kitchen is a terminal cooking game: run a short-order kitchen,
// cook dishes, serve customers, and keep the floor clean before the
// shift clock runs out.
//
// Usage:
//
//	kitchen play             - Start a solo shift
//	kitchen play --players 2 - Start a co-op shift
//	kitchen menu             - Interactive mode picker
//	kitchen serve            - Start SSH server for remote play
//	kitchen scores <mode>    - Show high scores for a mode
//	kitchen list             - List available modes
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible shifts
//	--db <path>     - Set database path (default: ~/.kitchen/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/vovakirdan/times-kitchen/internal/game/kitchen"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kitchen",
	Short: "Time's Kitchen - Run a restaurant kitchen in your terminal",
	Long: `Time's Kitchen is a terminal cooking game. Grab ingredients,
cook them on stoves and boilers, assemble dishes, and serve the
customers before the shift ends. Earn money, buy perks, and keep
the kitchen clean.

Available commands:
  list     - Show available modes
  play     - Start a shift directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  kitchen play
  kitchen play --players 2
  kitchen menu
  kitchen serve --ssh :2222
  kitchen scores kitchen_coop`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.kitchen/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
