// linkpop is a terminal match puzzle: drag chains of same-colored chips
// to pop them, beat level targets, and chase endless high scores.
//
// Usage:
//
//	linkpop play [mode]      - Play (opens the mode selector if no mode given)
//	linkpop menu             - Start with an interactive mode picker
//	linkpop serve            - Start SSH server for remote play
//	linkpop scores [mode]    - Show high scores
//	linkpop list             - List available modes
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.linkpop/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its modes
	_ "github.com/vovakirdan/tui-linkpop/internal/games/linkpop"
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
	Use:   "linkpop",
	Short: "LinkPop - Link chips, pop chains, in your terminal",
	Long: `LinkPop is a terminal match puzzle. Drag a chain through adjacent
chips of the same color and release to pop them; the board collapses,
refills, and reshuffles itself when no moves remain.

Available commands:
  list     - Show all available modes
  play     - Play directly (campaign, endless, or pick a level)
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  linkpop play
  linkpop play endless
  linkpop menu
  linkpop serve --ssh :2222
  linkpop scores linkpop`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.linkpop/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
