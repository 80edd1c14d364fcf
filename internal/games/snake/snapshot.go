package snake

import "github.com/arcbox/arcbox/internal/core"

// Snapshot captures the observable game state for determinism testing and
// for the presentation layer's read model.
type Snapshot struct {
	Tick      uint64
	Status    Status
	Score     int
	Best      int
	Snake     []core.Point
	Dir       core.Direction
	Food      core.Point
	FoodKind  int
	Preset    string
	MoveEvery int
	CountLeft int
}

// Snapshot returns the current game snapshot. The snake slice is copied.
func (g *Game) Snapshot() Snapshot {
	body := make([]core.Point, len(g.snake))
	copy(body, g.snake)
	return Snapshot{
		Tick:      g.tick,
		Status:    g.status,
		Score:     g.score,
		Best:      g.best,
		Snake:     body,
		Dir:       g.dir,
		Food:      g.food,
		FoodKind:  g.foodKind,
		Preset:    g.presetName,
		MoveEvery: g.moveEvery,
		CountLeft: g.countLeft,
	}
}
