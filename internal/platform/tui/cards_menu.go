package tui

import (
	"fmt"

	"github.com/arcbox/arcbox/internal/config"
	"github.com/arcbox/arcbox/internal/core"
	"github.com/arcbox/arcbox/internal/games/cards"
)

// RunCardsOptions shows the pair-count picker before a memory match
// session. Returns false when the user backed out.
func RunCardsOptions(cfg core.RuntimeConfig) (bool, error) {
	cardsCfg, err := config.LoadCards("")
	if err != nil {
		cardsCfg = config.DefaultCardsConfig()
	}

	choices := make([]string, len(cardsCfg.PairChoices))
	initial := 0
	for i, n := range cardsCfg.PairChoices {
		choices[i] = fmt.Sprintf("%d pairs (%d cards)", n, n*2)
		if n == cardsCfg.DefaultPairs {
			initial = i
		}
	}

	idx, err := runOptionPicker("M E M O R Y   M A T C H", "Select deck size:", choices, initial, cfg.ScreenW, cfg.ScreenH)
	if err != nil || idx < 0 {
		return false, err
	}

	cards.SetPairs(cardsCfg.PairChoices[idx])
	return true, nil
}
