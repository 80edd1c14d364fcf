package config

// TanksTuning is the resolved per-level parameter set the tanks engine
// actually runs with: either the standard values or the comfort overrides,
// with extra easing on early comfort levels.
type TanksTuning struct {
	PlayerStepEvery  int
	EnemyStepEvery   int
	BulletStepEvery  int
	MaxConcurrent    int
	FireProb         float64
	TurnProb         float64
	MaxActiveBullets int
	BrickDensity     float64
}

// TuningForLevel resolves the active tuning for a level (1-indexed).
// Comfort mode swaps in the gentler comfort set; comfort levels 1 and 2
// additionally reduce enemy pressure. Level 3+ reverts to the comfort
// baseline. Terrain density grows mildly with level but is halved on
// level 1 and cut by roughly a quarter on level 2.
func (c TanksConfig) TuningForLevel(comfort bool, level int) TanksTuning {
	t := TanksTuning{
		PlayerStepEvery:  c.Player.StepEvery,
		EnemyStepEvery:   c.Enemies.StepEvery,
		BulletStepEvery:  c.Bullets.StepEvery,
		MaxConcurrent:    c.Enemies.MaxConcurrent,
		FireProb:         c.Enemies.FireProb,
		TurnProb:         c.Enemies.TurnProb,
		MaxActiveBullets: c.Enemies.MaxActiveBullets,
	}

	if comfort {
		if c.Comfort.PlayerStepEvery > 0 {
			t.PlayerStepEvery = c.Comfort.PlayerStepEvery
		}
		if c.Comfort.EnemyStepEvery > 0 {
			t.EnemyStepEvery = c.Comfort.EnemyStepEvery
		}
		if c.Comfort.BulletStepEvery > 0 {
			t.BulletStepEvery = c.Comfort.BulletStepEvery
		}
		if c.Comfort.MaxConcurrent > 0 {
			t.MaxConcurrent = c.Comfort.MaxConcurrent
		}
		if c.Comfort.FireProb > 0 {
			t.FireProb = c.Comfort.FireProb
		}

		// Extra easing on the first two comfort levels only.
		if level <= 2 {
			if t.MaxConcurrent > 1 {
				t.MaxConcurrent--
			}
			t.FireProb *= 0.6
		}
	}

	t.BrickDensity = c.densityForLevel(level)
	return t
}

// densityForLevel scales terrain density mildly with level, then applies
// the early-level reductions.
func (c TanksConfig) densityForLevel(level int) float64 {
	d := c.Terrain.BrickDensity * (1 + c.Terrain.DensityGrowth*float64(level-1))
	switch level {
	case 1:
		d *= 0.5
	case 2:
		d *= 0.72
	}
	if d > 0.45 {
		d = 0.45 // Keep the arena traversable
	}
	return d
}

// FallTicks converts a gravity interval for the given level into scheduler
// ticks at the given tick rate. Levels beyond the table reuse the last entry.
func (c TetrisConfig) FallTicks(level, tickRate int) int {
	if len(c.Gravity.IntervalsMs) == 0 {
		return tickRate // 1 row per second fallback
	}
	idx := level - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(c.Gravity.IntervalsMs) {
		idx = len(c.Gravity.IntervalsMs) - 1
	}
	ticks := c.Gravity.IntervalsMs[idx] * tickRate / 1000
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// LineScore returns the points awarded for clearing n rows at once.
// Counts outside the table (only 1..4 are reachable on a standard well)
// score zero.
func (c TetrisConfig) LineScore(n int) int {
	if n < 1 || n > len(c.Scoring.LineScores) {
		return 0
	}
	return c.Scoring.LineScores[n-1]
}

// DelayTicks converts a millisecond delay to scheduler ticks, minimum 1.
func DelayTicks(ms, tickRate int) int {
	ticks := ms * tickRate / 1000
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}
