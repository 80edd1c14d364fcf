package config

import (
	_ "embed"
)

//go:embed defaults/tanks.yaml
var defaultTanksYAML []byte

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/cards.yaml
var defaultCardsYAML []byte

// DefaultTanksConfig returns the default Tank Arena configuration.
// Probabilities mirror the original tuning; they are empirical, not derived.
func DefaultTanksConfig() TanksConfig {
	return TanksConfig{
		Board: TanksBoard{
			Size:            15,
			EnemiesPerLevel: 6,
			KillsPerLevel:   6,
		},
		Player: TanksPlayer{
			Lives:             3,
			StepEvery:         3,
			FireCooldown:      18,
			RapidFireCooldown: 8,
			RapidFireTicks:    600, // 10s at 60 ticks/s
			ShieldMax:         3,
			RespawnDelay:      60,
		},
		Enemies: TanksEnemies{
			StepEvery:        8,
			MaxConcurrent:    3,
			FireProb:         0.08,
			TurnProb:         0.10,
			MaxActiveBullets: 4,
			KillScore:        100,
		},
		Bullets: TanksBullets{
			StepEvery: 2,
		},
		PowerUps: TanksPowerUps{
			DropProb: 0.35,
		},
		Terrain: TanksTerrain{
			BrickDensity:  0.18,
			SteelFraction: 0.22,
			DensityGrowth: 0.05,
		},
		Comfort: TanksComfort{
			PlayerStepEvery: 4,
			EnemyStepEvery:  11,
			BulletStepEvery: 3,
			MaxConcurrent:   2,
			FireProb:        0.05,
		},
	}
}

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{
			Rows: 20,
			Cols: 10,
		},
		Gravity: TetrisGravity{
			// Level 1..10 natural fall intervals.
			IntervalsMs:   []int{800, 720, 630, 550, 470, 380, 300, 220, 150, 100},
			MaxLevel:      10,
			LinesPerLevel: 10,
		},
		Scoring: TetrisScoring{
			LineScores: []int{100, 300, 500, 800},
		},
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{
			Width:  24,
			Height: 18,
		},
		CountdownTicks: 3,
		FoodScore:      10,
		Presets: []SnakePreset{
			{Name: "slow", MoveEveryTicks: 12},
			{Name: "normal", MoveEveryTicks: 8},
			{Name: "fast", MoveEveryTicks: 5},
			{Name: "insane", MoveEveryTicks: 3},
		},
		DefaultPreset: "normal",
	}
}

// DefaultCardsConfig returns the default memory match configuration.
func DefaultCardsConfig() CardsConfig {
	return CardsConfig{
		PairChoices:     []int{6, 8, 10, 12},
		DefaultPairs:    8,
		MatchDelayMs:    250,
		MismatchDelayMs: 700,
		MatchScore:      50,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tanks":
		return defaultTanksYAML
	case "tetris":
		return defaultTetrisYAML
	case "snake":
		return defaultSnakeYAML
	case "cards":
		return defaultCardsYAML
	default:
		return nil
	}
}
