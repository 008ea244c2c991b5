package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/times-kitchen/internal/config"
	"github.com/vovakirdan/times-kitchen/internal/core"
	"github.com/vovakirdan/times-kitchen/internal/game/kitchen"
	"github.com/vovakirdan/times-kitchen/internal/platform/tui"
	"github.com/vovakirdan/times-kitchen/internal/registry"
	"github.com/vovakirdan/times-kitchen/internal/session"
	"github.com/vovakirdan/times-kitchen/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the kitchen with a mode picker menu",
	Long: `Start the kitchen in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a shift ends, you return to the menu to play again.
Perks bought in the store carry over between consecutive
shifts and reset when you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - View high scores
  Q            - Quit

Examples:
  kitchen menu
  kitchen menu --fps 30
  kitchen menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	kitchen.SetConfigPath(flagConfig)

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// One perk wallet for the whole menu session
	sess := session.New(gameCfg.Perks)

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants scoreboard
		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		// Create game instance
		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// New seed for each shift
		cfg.Seed = time.Now().UnixNano()

		// Run the game; back-to-menu loops, quit exits
		backToMenu, runErr := tui.Run(game, store, sess, cfg)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		}
		if !backToMenu {
			break
		}

		// Perks last across "play again" rounds but not menu visits
		sess.Reset()
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
