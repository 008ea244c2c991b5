package main

import (
	"fmt"
	"os"

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

var (
	flagConfig  string
	flagPlayers int
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Start a shift",
	Long: `Start a kitchen shift. With no arguments a solo shift starts;
pass --players 2 (or the mode id kitchen_coop) for local co-op.

Player 1 controls:
  W/A/S/D    - Move
  Space      - Interact with stations
  E          - Serve held dish
  Q          - Drop held item

Player 2 controls (co-op):
  Arrows     - Move
  Enter      - Interact with stations
  .          - Serve held dish
  ,          - Drop held item

Shared:
  1/2        - Pick from the cooler menu
  P          - Pause
  Esc        - Close cooler menu
  Ctrl+C     - Quit

Examples:
  kitchen play
  kitchen play --players 2
  kitchen play kitchen_coop
  kitchen play --config ./my-kitchen.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().IntVar(&flagPlayers, "players", 1, "Number of players (1 or 2)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "kitchen"
	if flagPlayers >= 2 {
		gameID = "kitchen_coop"
	}
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'kitchen list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
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

	// Point the game at a custom config before creation
	kitchen.SetConfigPath(flagConfig)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Perk wallet lives for the length of the program
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	sess := session.New(gameCfg.Perks)

	// Run the game
	_, runErr := tui.Run(game, store, sess, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
