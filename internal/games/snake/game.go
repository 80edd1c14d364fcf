// Package snake implements the snake engine: a bounded grid, a growing
// body, and a countdown-gated run driven by speed presets.
package snake

import (
	"math/rand"

	"github.com/arcbox/arcbox/internal/config"
	"github.com/arcbox/arcbox/internal/core"
	"github.com/arcbox/arcbox/internal/registry"
)

// Status is the run lifecycle. Transitions go through transition() only,
// which rejects anything not in the table below.
type Status int

const (
	StatusIdle Status = iota
	StatusCountdown
	StatusRunning
	StatusPaused
	StatusEnded
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusCountdown:
		return "countdown"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

var statusTransitions = map[Status][]Status{
	StatusIdle:      {StatusCountdown},
	StatusCountdown: {StatusRunning},
	StatusRunning:   {StatusPaused, StatusEnded},
	StatusPaused:    {StatusRunning},
	StatusEnded:     {StatusIdle},
}

// Audio cues (frequency Hz, duration ms).
const (
	cueCountBaseFreq, cueCountMs = 440, 80 // Rises per countdown unit
	cueCountStepFreq             = 110
	cueFoodFreq, cueFoodMs       = 660, 50
	cueCrashFreq, cueCrashMs     = 110, 400
)

const foodKinds = 4

// Game implements the Snake engine.
type Game struct {
	cfg      config.SnakeConfig
	runtime  core.RuntimeConfig
	rng      *rand.Rand
	prefs    core.PrefStore
	audio    core.AudioSink
	tickRate int
	tick     uint64

	status Status

	// Countdown: whole one-second units remaining plus the tick counter
	// inside the current unit.
	countLeft   int
	countTicker int

	// Snake state, head at index 0
	snake    []core.Point
	dir      core.Direction
	nextDir  core.Direction
	food     core.Point
	foodKind int

	presetName string
	moveEvery  int
	moveTicker int

	score int
	best  int
}

// Package-level config path and preset, set before game creation (CLI
// flags and the mode selector).
var (
	configPath     string
	selectedPreset string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetPreset selects the speed preset applied on the next Reset.
func SetPreset(name string) {
	selectedPreset = name
}

// New creates a new Snake game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes/restarts the game into the idle status.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadSnake(configPath)
	if err != nil {
		loaded = config.DefaultSnakeConfig()
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

	name := selectedPreset
	if name == "" {
		name = g.cfg.DefaultPreset
	}
	preset := g.cfg.PresetByName(name)
	g.presetName = preset.Name
	g.moveEvery = preset.MoveEveryTicks
	g.moveTicker = 0

	g.tick = 0
	g.score = 0
	g.best = g.prefs.GetInt(g.bestKey(), 0)
	g.status = StatusIdle
	g.countLeft = 0
	g.countTicker = 0

	g.initSnake()
	g.spawnFood()
}

func (g *Game) bestKey() string {
	return "snake.best." + g.presetName
}

// transition moves to the target status if the table allows it; invalid
// requests are silently rejected.
func (g *Game) transition(to Status) bool {
	for _, allowed := range statusTransitions[g.status] {
		if allowed == to {
			g.status = to
			return true
		}
	}
	return false
}

// initSnake places a three-segment snake heading right at the grid center.
func (g *Game) initSnake() {
	cx := g.cfg.Board.Width / 2
	cy := g.cfg.Board.Height / 2
	g.snake = []core.Point{
		{X: cx, Y: cy},
		{X: cx - 1, Y: cy},
		{X: cx - 2, Y: cy},
	}
	g.dir = core.DirRight
	g.nextDir = core.DirRight
}

// spawnFood relocates the food to a uniformly random free cell and rolls a
// new cosmetic kind.
func (g *Game) spawnFood() {
	free := make([]core.Point, 0, g.cfg.Board.Width*g.cfg.Board.Height)
	for y := 0; y < g.cfg.Board.Height; y++ {
		for x := 0; x < g.cfg.Board.Width; x++ {
			p := core.Point{X: x, Y: y}
			if !g.isSnakeAt(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		// Board full, nothing to place
		g.food = core.Point{X: -1, Y: -1}
		return
	}
	g.food = free[g.rng.Intn(len(free))]
	g.foodKind = g.rng.Intn(foodKinds)
}

func (g *Game) isSnakeAt(p core.Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// ApplyPreset switches the speed preset mid-run. The tick timer restarts at
// the new interval; snake, score and status are untouched. The best score
// shown is re-read for the new preset.
func (g *Game) ApplyPreset(name string) {
	preset := g.cfg.PresetByName(name)
	g.presetName = preset.Name
	g.moveEvery = preset.MoveEveryTicks
	g.moveTicker = 0
	g.best = g.prefs.GetInt(g.bestKey(), 0)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.status == StatusEnded {
		rc := g.runtime
		rc.Seed = g.rng.Int63()
		g.Reset(rc)
		return core.StepResult{State: g.State()}
	}

	switch g.status {
	case StatusIdle:
		if _, ok := input.Direction(); ok || input.Has(core.ActionConfirm) {
			g.startCountdown()
		}

	case StatusCountdown:
		g.bufferDirection(input)
		g.countTicker++
		if g.countTicker >= g.tickRate {
			g.countTicker = 0
			g.countLeft--
			if g.countLeft <= 0 {
				g.transition(StatusRunning)
			} else {
				g.countCue()
			}
		}

	case StatusRunning:
		if input.Has(core.ActionPause) {
			g.transition(StatusPaused)
			break
		}
		g.bufferDirection(input)
		g.moveTicker++
		if g.moveTicker >= g.moveEvery {
			g.moveTicker = 0
			g.advance()
		}

	case StatusPaused:
		if input.Has(core.ActionPause) {
			// Resume from a clean interval
			g.moveTicker = 0
			g.transition(StatusRunning)
		}
	}

	return core.StepResult{State: g.State()}
}

// startCountdown begins the pre-run countdown and emits the first cue.
func (g *Game) startCountdown() {
	if !g.transition(StatusCountdown) {
		return
	}
	g.countLeft = g.cfg.CountdownTicks
	g.countTicker = 0
	g.countCue()
}

// countCue pitches up as the countdown approaches zero.
func (g *Game) countCue() {
	unit := g.cfg.CountdownTicks - g.countLeft
	g.audio.Tone(cueCountBaseFreq+unit*cueCountStepFreq, cueCountMs)
}

// bufferDirection records the directional intent for the next move. A
// direct reversal of the current heading is a no-op.
func (g *Game) bufferDirection(input core.InputFrame) {
	d, ok := input.Direction()
	if !ok {
		return
	}
	if d == g.dir.Opposite() {
		return
	}
	g.nextDir = d
}

// advance moves the head one cell, handling food, growth and collisions.
// The pre-movement tail counts as a body segment: moving into the cell the
// tail is about to vacate still ends the run.
func (g *Game) advance() {
	g.dir = g.nextDir
	newHead := g.snake[0].Step(g.dir)

	if newHead.X < 0 || newHead.X >= g.cfg.Board.Width ||
		newHead.Y < 0 || newHead.Y >= g.cfg.Board.Height ||
		g.isSnakeAt(newHead) {
		g.endRun()
		return
	}

	if newHead == g.food {
		// Grow: prepend without removing the tail
		g.snake = append([]core.Point{newHead}, g.snake...)
		g.score += g.cfg.FoodScore
		g.audio.Tone(cueFoodFreq, cueFoodMs)
		g.spawnFood()
		return
	}

	g.snake = append([]core.Point{newHead}, g.snake[:len(g.snake)-1]...)
}

func (g *Game) endRun() {
	if !g.transition(StatusEnded) {
		return
	}
	g.audio.Tone(cueCrashFreq, cueCrashMs)
	if g.score > g.best {
		g.best = g.score
		g.prefs.SetInt(g.bestKey(), g.score)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.status == StatusEnded,
		Paused:   g.status == StatusPaused,
	}
}
