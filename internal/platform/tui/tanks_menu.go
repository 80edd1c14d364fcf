package tui

import (
	"github.com/arcbox/arcbox/internal/core"
)

// RunTanksOptions shows the comfort-mode toggle before a tanks session and
// persists the choice. Returns false when the user backed out.
func RunTanksOptions(cfg core.RuntimeConfig) (bool, error) {
	prefs := cfg.PrefsOrNop()
	comfort := prefs.GetBool("tanks.comfort", false)

	initial := 0
	if comfort {
		initial = 1
	}

	choices := []string{
		"Standard",
		"Comfort (slower enemies, gentler early levels)",
	}

	idx, err := runOptionPicker("T A N K   A R E N A", "Select difficulty:", choices, initial, cfg.ScreenW, cfg.ScreenH)
	if err != nil || idx < 0 {
		return false, err
	}

	prefs.SetBool("tanks.comfort", idx == 1)
	return true, nil
}
