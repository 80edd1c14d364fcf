package tetris

// Snapshot captures the observable game state for determinism testing and
// for the presentation layer's read model.
type Snapshot struct {
	Tick      uint64
	Score     int
	Best      int
	Lines     int
	Level     int
	ActiveIdx int
	ActiveX   int
	ActiveY   int
	GhostY    int
	NextIdx   int
	HeldIdx   int // -1 when the hold slot is empty
	HoldUsed  bool
	Over      bool
	Paused    bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		Best:      g.best,
		Lines:     g.lines,
		Level:     g.level,
		ActiveIdx: g.activeIdx,
		ActiveX:   g.x,
		ActiveY:   g.y,
		GhostY:    g.GhostY(),
		NextIdx:   g.nextIdx,
		HeldIdx:   g.heldIdx,
		HoldUsed:  g.holdUsed,
		Over:      g.over,
		Paused:    g.paused,
	}
}
