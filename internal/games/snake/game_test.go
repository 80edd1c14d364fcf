package snake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcbox/arcbox/internal/core"
)

func newTestGame(seed int64) (*Game, *core.MemPrefs, *core.RecorderSink) {
	prefs := core.NewMemPrefs()
	sink := &core.RecorderSink{}
	g := New()
	rc := core.DefaultConfig()
	rc.Seed = seed
	rc.Prefs = prefs
	rc.Audio = sink
	g.Reset(rc)
	return g, prefs, sink
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// startRunning drives the game from idle through the countdown.
func startRunning(t *testing.T, g *Game) {
	t.Helper()
	g.Step(frame(core.ActionConfirm))
	require.Equal(t, StatusCountdown, g.status)
	for i := 0; i < g.tickRate*g.cfg.CountdownTicks; i++ {
		g.Step(frame())
	}
	require.Equal(t, StatusRunning, g.status)
}

func TestCountdownCuesAndDuration(t *testing.T) {
	g, _, sink := newTestGame(1)

	g.Step(frame(core.ActionConfirm))
	assert.Len(t, sink.Cues, 1, "entering the countdown emits the first cue")

	for i := 0; i < g.tickRate*g.cfg.CountdownTicks; i++ {
		g.Step(frame())
	}
	assert.Equal(t, StatusRunning, g.status)
	assert.Len(t, sink.Cues, g.cfg.CountdownTicks, "one cue per countdown unit")

	// The cues rise in pitch
	for i := 1; i < len(sink.Cues); i++ {
		assert.Greater(t, sink.Cues[i].FreqHz, sink.Cues[i-1].FreqHz)
	}
}

func TestGrowthOnFood(t *testing.T) {
	g, _, _ := newTestGame(2)
	startRunning(t, g)

	g.snake = []core.Point{{X: 3, Y: 3}, {X: 2, Y: 3}, {X: 1, Y: 3}}
	g.dir = core.DirRight
	g.nextDir = core.DirRight
	g.food = core.Point{X: 4, Y: 3}

	g.moveTicker = g.moveEvery - 1
	g.Step(frame())

	want := []core.Point{{X: 4, Y: 3}, {X: 3, Y: 3}, {X: 2, Y: 3}, {X: 1, Y: 3}}
	assert.Equal(t, want, g.snake)
	assert.Equal(t, g.cfg.FoodScore, g.score)
	assert.False(t, g.isSnakeAt(g.food), "relocated food must not overlap the snake")
}

func TestReversalIsRejected(t *testing.T) {
	g, _, _ := newTestGame(3)
	startRunning(t, g)
	require.Equal(t, core.DirRight, g.dir)

	g.Step(frame(core.ActionLeft))
	assert.Equal(t, core.DirRight, g.nextDir, "direct reversal must leave the heading unchanged")

	g.Step(frame(core.ActionUp))
	assert.Equal(t, core.DirUp, g.nextDir)
}

func TestPreMovementTailCountsAsCollision(t *testing.T) {
	g, _, _ := newTestGame(4)
	startRunning(t, g)

	// A 2x2 loop: the head moves into the cell the tail occupies.
	g.snake = []core.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}}
	g.dir = core.DirDown
	g.nextDir = core.DirDown
	g.food = core.Point{X: 0, Y: 0}

	g.moveTicker = g.moveEvery - 1
	g.Step(frame())

	assert.Equal(t, StatusEnded, g.status)
}

func TestWallEndsRunAndPersistsBest(t *testing.T) {
	g, prefs, sink := newTestGame(5)
	startRunning(t, g)

	g.snake = []core.Point{{X: 0, Y: 3}, {X: 1, Y: 3}, {X: 2, Y: 3}}
	g.dir = core.DirLeft
	g.nextDir = core.DirLeft
	g.score = 90

	g.moveTicker = g.moveEvery - 1
	g.Step(frame())

	require.Equal(t, StatusEnded, g.status)
	assert.Equal(t, 90, prefs.GetInt(g.bestKey(), 0))
	assert.Equal(t, cueCrashFreq, sink.Cues[len(sink.Cues)-1].FreqHz)
}

func TestPresetSwitchKeepsRunState(t *testing.T) {
	g, _, _ := newTestGame(6)
	startRunning(t, g)

	g.score = 40
	body := g.Snapshot().Snake
	g.moveTicker = 3

	g.ApplyPreset("fast")

	assert.Equal(t, "fast", g.presetName)
	assert.Equal(t, g.cfg.PresetByName("fast").MoveEveryTicks, g.moveEvery)
	assert.Zero(t, g.moveTicker, "timer restarts at the new interval")
	assert.Equal(t, StatusRunning, g.status)
	assert.Equal(t, 40, g.score)
	assert.Equal(t, body, g.Snapshot().Snake)
}

func TestBestIsPerPreset(t *testing.T) {
	g, prefs, _ := newTestGame(7)
	prefs.SetInt("snake.best.fast", 200)
	prefs.SetInt("snake.best."+g.cfg.DefaultPreset, 50)

	g.best = g.prefs.GetInt(g.bestKey(), 0)
	require.Equal(t, 50, g.best)

	g.ApplyPreset("fast")
	assert.Equal(t, 200, g.best)
}

func TestPauseResumeRestartsInterval(t *testing.T) {
	g, _, _ := newTestGame(8)
	startRunning(t, g)

	g.moveTicker = g.moveEvery - 1
	g.Step(frame(core.ActionPause))
	require.Equal(t, StatusPaused, g.status)

	snap := g.Snapshot()
	for i := 0; i < 30; i++ {
		g.Step(frame(core.ActionDown))
	}
	after := g.Snapshot()
	snap.Tick, after.Tick = 0, 0
	assert.Equal(t, snap, after, "paused simulation does not move")

	g.Step(frame(core.ActionPause))
	assert.Equal(t, StatusRunning, g.status)
	assert.Zero(t, g.moveTicker, "resume starts from a clean interval")
}

func TestInvalidTransitionsRejected(t *testing.T) {
	g, _, _ := newTestGame(9)

	assert.False(t, g.transition(StatusRunning), "idle cannot skip the countdown")
	assert.False(t, g.transition(StatusEnded))

	require.True(t, g.transition(StatusCountdown))
	assert.False(t, g.transition(StatusPaused), "countdown cannot pause")
}

func TestRestartReturnsToIdle(t *testing.T) {
	g, _, _ := newTestGame(10)
	startRunning(t, g)
	g.score = 30
	g.endRun()
	require.Equal(t, StatusEnded, g.status)

	g.Step(frame(core.ActionRestart))

	assert.Equal(t, StatusIdle, g.status)
	assert.Zero(t, g.score)
	assert.Len(t, g.snake, 3)
}

func TestFoodFillsLastFreeCell(t *testing.T) {
	g, _, _ := newTestGame(11)

	// Occupy every cell except one.
	gap := core.Point{X: 0, Y: 0}
	g.snake = g.snake[:0]
	for y := 0; y < g.cfg.Board.Height; y++ {
		for x := 0; x < g.cfg.Board.Width; x++ {
			p := core.Point{X: x, Y: y}
			if p != gap {
				g.snake = append(g.snake, p)
			}
		}
	}

	g.spawnFood()
	assert.Equal(t, gap, g.food)
}
