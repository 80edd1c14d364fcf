package tanks

import "github.com/arcbox/arcbox/internal/core"

// stepEnemies runs one AI step for every alive enemy: an occasional random
// turn, a move (picking a new direction when blocked), and a probabilistic
// shot capped by the shared active-bullet budget.
func (g *Game) stepEnemies() {
	g.compactEnemies()

	for _, e := range g.enemies {
		if !e.Alive {
			continue
		}

		if g.rng.Float64() < g.tuning.TurnProb {
			e.Dir = g.randomDir()
		}

		next := e.Pos.Step(e.Dir)
		if g.cellFree(next) {
			e.Pos = next
		} else {
			e.Dir = g.randomDir()
		}

		if g.rng.Float64() < g.tuning.FireProb &&
			g.activeEnemyBullets() < g.tuning.MaxActiveBullets {
			g.bullets = append(g.bullets, Bullet{Pos: e.Pos, Dir: e.Dir, Owner: FactionEnemy})
		}
	}
}

func (g *Game) randomDir() core.Direction {
	return core.Direction(g.rng.Intn(4))
}

// compactEnemies drops destroyed tanks from the wave slice.
func (g *Game) compactEnemies() {
	kept := g.enemies[:0]
	for _, e := range g.enemies {
		if e.Alive {
			kept = append(kept, e)
		}
	}
	g.enemies = kept
}
