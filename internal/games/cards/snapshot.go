package cards

// Snapshot captures the observable game state for determinism testing and
// for the presentation layer's read model.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Pairs     int
	Deck      []Card
	Cursor    int
	FirstIdx  int
	Moves     int
	Score     int
	Elapsed   int // Seconds
	BestMoves int
	BestTime  int
}

// Snapshot returns the current game snapshot. The deck slice is copied.
func (g *Game) Snapshot() Snapshot {
	deck := make([]Card, len(g.deck))
	copy(deck, g.deck)
	return Snapshot{
		Tick:      g.tick,
		Phase:     g.phase,
		Pairs:     g.pairs,
		Deck:      deck,
		Cursor:    g.cursor,
		FirstIdx:  g.firstIdx,
		Moves:     g.moves,
		Score:     g.score,
		Elapsed:   g.ElapsedSeconds(),
		BestMoves: g.bestMoves,
		BestTime:  g.bestTime,
	}
}
