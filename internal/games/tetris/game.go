// Package tetris implements the falling-block puzzle engine.
package tetris

import (
	"math/rand"

	"github.com/arcbox/arcbox/internal/config"
	"github.com/arcbox/arcbox/internal/core"
	"github.com/arcbox/arcbox/internal/registry"
)

// Audio cues (frequency Hz, duration ms).
const (
	cueRotateFreq, cueRotateMs     = 660, 30
	cueLockFreq, cueLockMs         = 220, 60
	cueClearFreq, cueClearMs       = 880, 120
	cueGameOverFreq, cueGameOverMs = 110, 400
)

const bestScoreKey = "tetris.best"

// Game implements the Tetris engine.
type Game struct {
	cfg      config.TetrisConfig
	runtime  core.RuntimeConfig
	rng      *rand.Rand
	prefs    core.PrefStore
	audio    core.AudioSink
	tickRate int
	tick     uint64

	board *Board

	// Active piece state
	active      Shape
	activeIdx   int
	activeColor int
	x, y        int

	// Hold/next slots: piece indexes, -1 for an empty hold slot
	nextIdx  int
	heldIdx  int
	holdUsed bool

	// Progression
	score      int
	best       int
	lines      int
	level      int
	fallEvery  int
	fallTicker int

	over   bool
	paused bool
}

// Package-level config path, set before game creation (CLI flag).
var configPath string

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Tetris game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadTetris(configPath)
	if err != nil {
		loaded = config.DefaultTetrisConfig()
	}
	g.cfg = loaded

	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.prefs = cfg.PrefsOrNop()
	g.audio = cfg.AudioOrNop()
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}

	g.tick = 0
	g.board = newBoard(g.cfg.Board.Rows, g.cfg.Board.Cols)
	g.score = 0
	g.best = g.prefs.GetInt(bestScoreKey, 0)
	g.lines = 0
	g.level = 1
	g.fallEvery = g.cfg.FallTicks(g.level, g.tickRate)
	g.fallTicker = 0
	g.heldIdx = -1
	g.holdUsed = false
	g.over = false
	g.paused = false

	g.nextIdx = g.rng.Intn(ShapeCount)
	g.spawn()
}

// spawn replaces the active piece with the next one and draws a new next.
// Re-enables hold. Sets game over if the spawn position already collides.
func (g *Game) spawn() {
	g.activeIdx = g.nextIdx
	g.nextIdx = g.rng.Intn(ShapeCount)
	g.placeAtSpawn(g.activeIdx)
	g.holdUsed = false

	if g.board.collides(g.active, g.x, g.y) {
		g.endGame()
	}
}

// placeAtSpawn loads the piece bitmap and positions it at the spawn column.
func (g *Game) placeAtSpawn(idx int) {
	g.active = shapeFor(idx)
	g.activeColor = idx + 1
	g.x = (g.cfg.Board.Cols - g.active.width()) / 2
	g.y = 0
}

func (g *Game) endGame() {
	g.over = true
	g.audio.Tone(cueGameOverFreq, cueGameOverMs)
	if g.score > g.best {
		g.best = g.score
		g.prefs.SetInt(bestScoreKey, g.score)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.over {
		rc := g.runtime
		rc.Seed = g.rng.Int63()
		g.Reset(rc)
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.over {
		g.paused = !g.paused
	}

	if g.over || g.paused {
		return core.StepResult{State: g.State()}
	}

	// Horizontal movement
	if input.Has(core.ActionLeft) && !g.board.collides(g.active, g.x-1, g.y) {
		g.x--
	}
	if input.Has(core.ActionRight) && !g.board.collides(g.active, g.x+1, g.y) {
		g.x++
	}

	// Rotation (clockwise); rejected silently when the result collides
	if input.Has(core.ActionUp) {
		rotated := rotateCW(g.active)
		if !g.board.collides(rotated, g.x, g.y) {
			g.active = rotated
			g.audio.Tone(cueRotateFreq, cueRotateMs)
		}
	}

	if input.Has(core.ActionHold) {
		g.hold()
		if g.over {
			return core.StepResult{State: g.State()}
		}
	}

	// Hard drop: fall to the landing row and lock in the same tick
	if input.Has(core.ActionFire) {
		g.y = g.GhostY()
		g.lock()
		return core.StepResult{State: g.State()}
	}

	// Soft drop
	if input.Has(core.ActionDown) && !g.board.collides(g.active, g.x, g.y+1) {
		g.y++
	}

	// Natural fall
	g.fallTicker++
	if g.fallTicker >= g.fallEvery {
		g.fallTicker = 0
		if g.board.collides(g.active, g.x, g.y+1) {
			g.lock()
		} else {
			g.y++
		}
	}

	return core.StepResult{State: g.State()}
}

// lock commits the active piece, clears completed rows, updates scoring and
// level, and spawns the next piece.
func (g *Game) lock() {
	g.board.merge(g.active, g.x, g.y, g.activeColor)
	g.audio.Tone(cueLockFreq, cueLockMs)

	if cleared := g.board.clearLines(); cleared > 0 {
		g.score += g.cfg.LineScore(cleared)
		g.lines += cleared
		g.level = core.Min(g.cfg.Gravity.MaxLevel, 1+g.lines/g.cfg.Gravity.LinesPerLevel)
		g.fallEvery = g.cfg.FallTicks(g.level, g.tickRate)
		g.audio.Tone(cueClearFreq, cueClearMs)
	}

	g.fallTicker = 0
	g.spawn()
}

// hold sets the active piece aside. With an empty hold slot the next piece
// spawns; with an occupied slot the active and held pieces swap, the
// incoming piece re-positioned at the spawn column. Usable once per spawn.
func (g *Game) hold() {
	if g.holdUsed {
		return
	}

	if g.heldIdx < 0 {
		g.heldIdx = g.activeIdx
		g.spawn()
	} else {
		g.heldIdx, g.activeIdx = g.activeIdx, g.heldIdx
		g.placeAtSpawn(g.activeIdx)
		if g.board.collides(g.active, g.x, g.y) {
			g.endGame()
			return
		}
	}
	g.holdUsed = true
}

// GhostY returns the row the active piece would land on if dropped now.
// Purely advisory; never mutates state.
func (g *Game) GhostY() int {
	y := g.y
	for !g.board.collides(g.active, g.x, y+1) {
		y++
	}
	return y
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.over,
		Paused:   g.paused,
	}
}
