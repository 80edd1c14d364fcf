// arcbox is a TUI arcade for playing retro-style games in the terminal.
//
// Usage:
//
//	arcbox list              - List available games
//	arcbox play <game>       - Play a game
//	arcbox menu              - Start menu to pick games interactively
//	arcbox scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcbox/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcbox/arcbox/internal/core"
	"github.com/arcbox/arcbox/internal/platform/audio"
	"github.com/arcbox/arcbox/internal/storage"

	// Import games to register them
	_ "github.com/arcbox/arcbox/internal/games/cards"
	_ "github.com/arcbox/arcbox/internal/games/snake"
	_ "github.com/arcbox/arcbox/internal/games/tanks"
	_ "github.com/arcbox/arcbox/internal/games/tetris"
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
	Use:   "arcbox",
	Short: "arcbox - Play retro games in your terminal",
	Long: `arcbox is a terminal-based gaming platform that lets you play
classic-style games directly in your terminal.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  scores   - View high scores

Examples:
  arcbox list
  arcbox play tetris
  arcbox play tanks --seed 42
  arcbox menu
  arcbox scores tetris`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcbox/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}

// openStore opens the score database, or returns nil when unavailable.
// The games stay fully playable without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("scores database unavailable, records will not persist", "err", err)
		return nil
	}
	return store
}

// buildRuntime assembles the runtime config for a session: terminal size,
// tick rate and seed from flags, and the preference/audio ports.
func buildRuntime(store *storage.Store) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if store != nil {
		cfg.Prefs = store.Prefs()
	}

	sound := cfg.PrefsOrNop().GetBool("sound", true)
	beeper, err := audio.NewBeeper(sound)
	if err != nil {
		log.Warn("audio unavailable, continuing silently", "err", err)
		cfg.Audio = core.NopSink{}
	} else {
		cfg.Audio = beeper
	}

	return cfg
}
