package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/times-kitchen/internal/registry"
	"github.com/vovakirdan/times-kitchen/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 high scores for the specified mode,
plus recent shift history.

Examples:
  kitchen scores kitchen
  kitchen scores kitchen_coop`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'kitchen list' to see available modes.")
		os.Exit(1)
	}

	// Get mode title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Work a shift with 'kitchen play' to set the first high score!\n")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-4s  %s\n", "Rank", "Earned", "Crew", "Date")
	fmt.Printf("  %-4s  %-10s  %-4s  %s\n", "----", "------", "----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  $%-9d  %-4d  %s\n", i+1, entry.Score, entry.Players, dateStr)
	}

	// Show best and shift stats
	fmt.Println()
	if highScore, hsErr := store.HighScore(gameID); hsErr == nil {
		fmt.Printf("Best: $%d\n", highScore)
	}

	stats, statsErr := store.GetGameStats(gameID)
	if statsErr == nil && stats.Rounds > 0 {
		fmt.Printf("Shifts worked: %d  Average: $%.0f\n", stats.Rounds, stats.AvgScore)
	}
}
