package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTuningForLevelStandard(t *testing.T) {
	cfg := DefaultTanksConfig()
	tuning := cfg.TuningForLevel(false, 5)

	assert.Equal(t, cfg.Enemies.StepEvery, tuning.EnemyStepEvery)
	assert.Equal(t, cfg.Enemies.MaxConcurrent, tuning.MaxConcurrent)
	assert.Equal(t, cfg.Enemies.FireProb, tuning.FireProb)
	assert.Equal(t, cfg.Player.StepEvery, tuning.PlayerStepEvery)
	assert.Equal(t, cfg.Bullets.StepEvery, tuning.BulletStepEvery)
	assert.InDelta(t, 0.18*1.20, tuning.BrickDensity, 1e-9)
}

func TestTuningForLevelComfortEasesEarlyLevels(t *testing.T) {
	cfg := DefaultTanksConfig()

	early := cfg.TuningForLevel(true, 1)
	assert.Equal(t, cfg.Comfort.MaxConcurrent-1, early.MaxConcurrent)
	assert.InDelta(t, cfg.Comfort.FireProb*0.6, early.FireProb, 1e-9)
	assert.Equal(t, cfg.Comfort.EnemyStepEvery, early.EnemyStepEvery)

	late := cfg.TuningForLevel(true, 3)
	assert.Equal(t, cfg.Comfort.MaxConcurrent, late.MaxConcurrent)
	assert.Equal(t, cfg.Comfort.FireProb, late.FireProb)
}

func TestTuningForLevelComfortZeroValuesFallBack(t *testing.T) {
	cfg := DefaultTanksConfig()
	cfg.Comfort = TanksComfort{}

	tuning := cfg.TuningForLevel(true, 3)
	assert.Equal(t, cfg.Enemies.StepEvery, tuning.EnemyStepEvery)
	assert.Equal(t, cfg.Enemies.MaxConcurrent, tuning.MaxConcurrent)
	assert.Equal(t, cfg.Enemies.FireProb, tuning.FireProb)
}

func TestDensityForLevel(t *testing.T) {
	cfg := DefaultTanksConfig()

	assert.InDelta(t, 0.18*0.5, cfg.TuningForLevel(false, 1).BrickDensity, 1e-9)
	assert.InDelta(t, 0.18*1.05*0.72, cfg.TuningForLevel(false, 2).BrickDensity, 1e-9)

	cfg.Terrain.BrickDensity = 0.60
	assert.Equal(t, 0.45, cfg.TuningForLevel(false, 5).BrickDensity)
}

func TestFallTicks(t *testing.T) {
	cfg := DefaultTetrisConfig()

	tests := []struct {
		level int
		want  int
	}{
		{1, 48}, // 800ms at 60 ticks/s
		{5, 28}, // 470ms
		{10, 6}, // 100ms
		{50, 6}, // Beyond the table, last entry
		{0, 48}, // Clamped to the first entry
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, cfg.FallTicks(tc.level, 60), "level %d", tc.level)
	}

	// Interval shorter than one tick still advances
	cfg.Gravity.IntervalsMs = []int{5}
	assert.Equal(t, 1, cfg.FallTicks(1, 60))

	cfg.Gravity.IntervalsMs = nil
	assert.Equal(t, 60, cfg.FallTicks(1, 60))
}

func TestLineScore(t *testing.T) {
	cfg := DefaultTetrisConfig()

	assert.Equal(t, 0, cfg.LineScore(0))
	assert.Equal(t, 100, cfg.LineScore(1))
	assert.Equal(t, 300, cfg.LineScore(2))
	assert.Equal(t, 500, cfg.LineScore(3))
	assert.Equal(t, 800, cfg.LineScore(4))
	assert.Equal(t, 0, cfg.LineScore(5))
}

func TestDelayTicks(t *testing.T) {
	assert.Equal(t, 15, DelayTicks(250, 60))
	assert.Equal(t, 42, DelayTicks(700, 60))
	assert.Equal(t, 1, DelayTicks(1, 60))
	assert.Equal(t, 1, DelayTicks(0, 60))
}

func TestPresetByName(t *testing.T) {
	cfg := DefaultSnakeConfig()

	assert.Equal(t, 5, cfg.PresetByName("fast").MoveEveryTicks)
	assert.Equal(t, "normal", cfg.PresetByName("nonexistent").Name)

	cfg.DefaultPreset = ""
	assert.Equal(t, "slow", cfg.PresetByName("nonexistent").Name)

	cfg.Presets = nil
	p := cfg.PresetByName("anything")
	assert.Equal(t, "normal", p.Name)
	assert.Equal(t, 8, p.MoveEveryTicks)
}
