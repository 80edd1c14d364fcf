package tanks

import "github.com/arcbox/arcbox/internal/core"

// Snapshot captures the observable game state for determinism testing and
// for the presentation layer's read model.
type Snapshot struct {
	Tick           uint64
	Score          int
	Best           int
	Level          int
	Lives          int
	Shield         int
	RapidLeft      int
	KillsThisLevel int
	Spawned        int
	PlayerPos      core.Point
	PlayerDir      core.Direction
	PlayerAlive    bool
	Enemies        []Tank
	Bullets        []Bullet
	PowerUps       []PowerUp
	Over           bool
	Paused         bool
}

// Snapshot returns the current game snapshot. Entity slices are copied.
func (g *Game) Snapshot() Snapshot {
	enemies := make([]Tank, 0, len(g.enemies))
	for _, e := range g.enemies {
		if e.Alive {
			enemies = append(enemies, *e)
		}
	}
	bullets := make([]Bullet, len(g.bullets))
	copy(bullets, g.bullets)
	powerUps := make([]PowerUp, len(g.powerUps))
	copy(powerUps, g.powerUps)

	return Snapshot{
		Tick:           g.tick,
		Score:          g.score,
		Best:           g.best,
		Level:          g.level,
		Lives:          g.lives,
		Shield:         g.shield,
		RapidLeft:      g.rapidLeft,
		KillsThisLevel: g.killsThisLevel,
		Spawned:        g.spawnedThisLevel,
		PlayerPos:      g.player.Pos,
		PlayerDir:      g.player.Dir,
		PlayerAlive:    g.player.Alive,
		Enemies:        enemies,
		Bullets:        bullets,
		PowerUps:       powerUps,
		Over:           g.over,
		Paused:         g.paused,
	}
}
