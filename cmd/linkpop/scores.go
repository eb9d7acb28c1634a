package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-linkpop/internal/registry"
	"github.com/vovakirdan/tui-linkpop/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display high scores. With a mode argument, shows the top 10 scores
for that mode; without one, shows a summary across all modes.

Examples:
  linkpop scores
  linkpop scores linkpop
  linkpop scores endless`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		printAllStats(store)
		return
	}

	gameID := normalizeGameID(args[0])

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'linkpop list' to see available modes.")
		os.Exit(1)
	}

	// Get mode title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

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
		fmt.Printf("Play 'linkpop play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		levelStr := "-"
		if entry.Level > 0 {
			levelStr = fmt.Sprintf("%d", entry.Level)
		}
		fmt.Printf("  %-4d  %-10d  %-6s  %s\n", i+1, entry.Score, levelStr, dateStr)
	}

	// Show best score and deepest run
	fmt.Println()
	if highScore, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
	if bestLevel, err := store.BestLevel(gameID); err == nil && bestLevel > 0 {
		fmt.Printf("Deepest level: %d\n", bestLevel)
	}
}

// printAllStats prints a per-mode summary across all recorded modes.
func printAllStats(store *storage.Store) {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'linkpop play' to set the first high score!")
		return
	}

	fmt.Println("Score summary:")
	fmt.Println()
	fmt.Printf("  %-16s  %-6s  %-10s  %-6s  %s\n", "Mode", "Plays", "Best", "Level", "Last played")
	fmt.Printf("  %-16s  %-6s  %-10s  %-6s  %s\n", "----", "-----", "----", "-----", "-----------")

	// Walk registered modes so the order is stable
	for _, g := range registry.List() {
		s, ok := stats[g.ID]
		if !ok {
			continue
		}
		levelStr := "-"
		if s.BestLevel > 0 {
			levelStr = fmt.Sprintf("%d", s.BestLevel)
		}
		fmt.Printf("  %-16s  %-6d  %-10d  %-6s  %s\n",
			g.ID, s.GamesCount, s.HighScore, levelStr, s.LastPlayed.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Run 'linkpop scores <mode>' for the full top 10.")
}
