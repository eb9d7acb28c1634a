package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-linkpop/internal/core"
	"github.com/vovakirdan/tui-linkpop/internal/games/linkpop"
	"github.com/vovakirdan/tui-linkpop/internal/platform/tui"
	"github.com/vovakirdan/tui-linkpop/internal/registry"
	"github.com/vovakirdan/tui-linkpop/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play LinkPop",
	Long: `Start playing. With no argument a mode selector opens where you can
pick campaign, endless, or a specific campaign level.

Modes:
  campaign (or linkpop)          - 8 levels with score targets and turn limits
  endless  (or linkpop_endless)  - No targets, no turn limit, chase the high score

Controls:
  Arrows/WASD  - Move cursor
  Space        - Start a link / pop the chain
  Mouse drag   - Link chips directly
  P            - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Fewer chip colors, extra shuffles, slow pacing
  normal - Default board, pacing speeds up with score
  hard   - More chip colors, fewer shuffles, fast pacing
  fixed  - No pacing progression, stays at config's initial level

Examples:
  linkpop play
  linkpop play endless
  linkpop play campaign --difficulty hard
  linkpop play --config ./my-board.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// normalizeGameID maps friendly mode names to registry IDs.
func normalizeGameID(arg string) string {
	switch arg {
	case "campaign":
		return "linkpop"
	case "endless":
		return "linkpop_endless"
	}
	return arg
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := ""
	if len(args) > 0 {
		gameID = normalizeGameID(args[0])
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'linkpop list' to see available modes.")
			os.Exit(1)
		}
	}

	// Get terminal size early for mode selector
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

	// Set config path and difficulty before game creation
	linkpop.SetConfigPath(flagConfig)
	linkpop.SetDifficultyPreset(flagDifficulty)

	// No mode given: show the mode/level selector
	if gameID == "" {
		selection, updatedCfg, selErr := tui.RunLinkpopModeSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}

		// Apply selection
		gameID = "linkpop"
		if selection.Mode == tui.LinkpopModeEndless {
			gameID = "linkpop_endless"
		}
		if selection.Level > 0 {
			linkpop.SetStartLevel(selection.Level)
		}
	}

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

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
