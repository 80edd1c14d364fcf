package tui

import (
	"fmt"

	"github.com/arcbox/arcbox/internal/config"
	"github.com/arcbox/arcbox/internal/core"
	"github.com/arcbox/arcbox/internal/games/snake"
)

// RunSnakeOptions shows the speed preset picker before a snake session.
// Returns false when the user backed out.
func RunSnakeOptions(cfg core.RuntimeConfig) (bool, error) {
	snakeCfg, err := config.LoadSnake("")
	if err != nil {
		snakeCfg = config.DefaultSnakeConfig()
	}

	choices := make([]string, len(snakeCfg.Presets))
	initial := 0
	for i, p := range snakeCfg.Presets {
		choices[i] = fmt.Sprintf("%s (move every %d ticks)", p.Name, p.MoveEveryTicks)
		if p.Name == snakeCfg.DefaultPreset {
			initial = i
		}
	}

	idx, err := runOptionPicker("S N A K E", "Select speed:", choices, initial, cfg.ScreenW, cfg.ScreenH)
	if err != nil || idx < 0 {
		return false, err
	}

	snake.SetPreset(snakeCfg.Presets[idx].Name)
	return true, nil
}
