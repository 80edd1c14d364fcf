package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcbox/arcbox/internal/core"
	"github.com/arcbox/arcbox/internal/games/cards"
	"github.com/arcbox/arcbox/internal/games/snake"
	"github.com/arcbox/arcbox/internal/games/tanks"
	"github.com/arcbox/arcbox/internal/games/tetris"
	"github.com/arcbox/arcbox/internal/platform/tui"
	"github.com/arcbox/arcbox/internal/registry"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  WASD/Arrows - Move / rotate / select
  Space       - Fire / hard drop / flip card
  H           - Hold piece (tetris)
  P           - Pause
  M           - Toggle sound
  R           - Restart (after game over)
  Ctrl+S      - Save screenshot
  Q/Ctrl+C    - Quit

Examples:
  arcbox play tetris
  arcbox play tanks --seed 42
  arcbox play snake --config ./my-snake.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcbox list' to see available games.")
		os.Exit(1)
	}

	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := buildRuntime(store)

	proceed, err := applyGameOptions(gameID, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !proceed {
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(game, store, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// applyGameOptions sets the config path and runs the per-game option
// selector. Returns false when the user backed out of the selector.
func applyGameOptions(gameID string, cfg core.RuntimeConfig) (bool, error) {
	switch gameID {
	case "tanks":
		tanks.SetConfigPath(flagConfig)
		return tui.RunTanksOptions(cfg)
	case "tetris":
		tetris.SetConfigPath(flagConfig)
		return true, nil
	case "snake":
		snake.SetConfigPath(flagConfig)
		return tui.RunSnakeOptions(cfg)
	case "cards":
		cards.SetConfigPath(flagConfig)
		return tui.RunCardsOptions(cfg)
	}
	return true, nil
}
