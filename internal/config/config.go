// Package config provides YAML-based game configuration loading and
// tuning management for the arcade platform.
package config

// TanksConfig contains all tuning for the Tank Arena game.
type TanksConfig struct {
	Board    TanksBoard    `yaml:"board"`
	Player   TanksPlayer   `yaml:"player"`
	Enemies  TanksEnemies  `yaml:"enemies"`
	Bullets  TanksBullets  `yaml:"bullets"`
	PowerUps TanksPowerUps `yaml:"power_ups"`
	Terrain  TanksTerrain  `yaml:"terrain"`
	Comfort  TanksComfort  `yaml:"comfort"`
}

// TanksBoard defines the arena dimensions and progression counters.
type TanksBoard struct {
	Size            int `yaml:"size"`              // Square grid side (15)
	EnemiesPerLevel int `yaml:"enemies_per_level"` // Total spawns per level (6)
	KillsPerLevel   int `yaml:"kills_per_level"`   // Kills to advance (6)
}

// TanksPlayer defines the player tank parameters.
type TanksPlayer struct {
	Lives             int `yaml:"lives"`
	StepEvery         int `yaml:"step_every"`          // Ticks between movement steps
	FireCooldown      int `yaml:"fire_cooldown"`       // Ticks between shots
	RapidFireCooldown int `yaml:"rapid_fire_cooldown"` // Cooldown while rapid-fire is active
	RapidFireTicks    int `yaml:"rapid_fire_ticks"`    // Rapid-fire buff duration
	ShieldMax         int `yaml:"shield_max"`          // Shield charge cap (3)
	RespawnDelay      int `yaml:"respawn_delay"`       // Ticks between death and respawn
}

// TanksEnemies defines enemy AI cadence and limits.
type TanksEnemies struct {
	StepEvery        int     `yaml:"step_every"`         // Ticks between AI steps
	MaxConcurrent    int     `yaml:"max_concurrent"`     // Alive enemies cap
	FireProb         float64 `yaml:"fire_prob"`          // Fire chance per AI step
	TurnProb         float64 `yaml:"turn_prob"`          // Random turn chance per AI step
	MaxActiveBullets int     `yaml:"max_active_bullets"` // Cap across all enemies
	KillScore        int     `yaml:"kill_score"`         // Score per enemy destroyed
}

// TanksBullets defines projectile cadence.
type TanksBullets struct {
	StepEvery int `yaml:"step_every"` // Ticks between one-cell advances
}

// TanksPowerUps defines pickup behavior.
type TanksPowerUps struct {
	DropProb float64 `yaml:"drop_prob"` // Drop chance on enemy death
}

// TanksTerrain defines terrain generation density.
type TanksTerrain struct {
	BrickDensity  float64 `yaml:"brick_density"`  // Fraction of cells seeded with brick
	SteelFraction float64 `yaml:"steel_fraction"` // Fraction of seeded cells that are steel
	DensityGrowth float64 `yaml:"density_growth"` // Per-level density increase
}

// TanksComfort is the gentler alternate parameter set selected by the
// comfort-mode toggle. Zero values fall back to the standard set.
type TanksComfort struct {
	PlayerStepEvery int     `yaml:"player_step_every"`
	EnemyStepEvery  int     `yaml:"enemy_step_every"`
	BulletStepEvery int     `yaml:"bullet_step_every"`
	MaxConcurrent   int     `yaml:"max_concurrent"`
	FireProb        float64 `yaml:"fire_prob"`
}

// TetrisConfig contains all tuning for the Tetris game.
type TetrisConfig struct {
	Board   TetrisBoard   `yaml:"board"`
	Gravity TetrisGravity `yaml:"gravity"`
	Scoring TetrisScoring `yaml:"scoring"`
}

// TetrisBoard defines the well dimensions.
type TetrisBoard struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TetrisGravity defines the natural fall speed ladder. One entry per
// level; the last entry applies to every level beyond the table.
type TetrisGravity struct {
	IntervalsMs   []int `yaml:"intervals_ms"`
	MaxLevel      int   `yaml:"max_level"`
	LinesPerLevel int   `yaml:"lines_per_level"`
}

// TetrisScoring maps simultaneous line-clear counts to points.
type TetrisScoring struct {
	LineScores []int `yaml:"line_scores"` // Index 0 = single, 3 = tetris
}

// SnakeConfig contains all tuning for the Snake game.
type SnakeConfig struct {
	Board          SnakeBoard    `yaml:"board"`
	CountdownTicks int           `yaml:"countdown_ticks"` // Seconds-long countdown units before running
	FoodScore      int           `yaml:"food_score"`
	Presets        []SnakePreset `yaml:"presets"`
	DefaultPreset  string        `yaml:"default_preset"`
}

// SnakeBoard defines the playfield dimensions.
type SnakeBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakePreset is one selectable speed: the number of scheduler ticks
// between movement steps.
type SnakePreset struct {
	Name           string `yaml:"name"`
	MoveEveryTicks int    `yaml:"move_every_ticks"`
}

// CardsConfig contains all tuning for the memory match game.
type CardsConfig struct {
	PairChoices     []int `yaml:"pair_choices"`      // Selectable pair counts
	DefaultPairs    int   `yaml:"default_pairs"`
	MatchDelayMs    int   `yaml:"match_delay_ms"`    // Resolution delay when faces match
	MismatchDelayMs int   `yaml:"mismatch_delay_ms"` // Resolution delay when they differ
	MatchScore      int   `yaml:"match_score"`
}
