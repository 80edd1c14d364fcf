// Package cards implements the memory match engine: a shuffled deck of
// value pairs, flip resolution with a viewing delay, and per-difficulty
// best records.
package cards

import (
	"fmt"
	"math/rand"

	"github.com/arcbox/arcbox/internal/config"
	"github.com/arcbox/arcbox/internal/core"
	"github.com/arcbox/arcbox/internal/registry"
)

// Phase is the run lifecycle. Input is accepted in PhaseRunning only;
// PhaseResolving is the synchronous lock between the second flip of a pair
// and its resolution.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseResolving
	PhaseWon
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseResolving:
		return "resolving"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Audio cues (frequency Hz, duration ms).
const (
	cueFlipFreq, cueFlipMs         = 520, 30
	cueMatchFreq, cueMatchMs       = 780, 100
	cueMismatchFreq, cueMismatchMs = 200, 120
	cueWinFreq, cueWinMs           = 1040, 300
)

// Card is one deck entry. Matched cards stay face up permanently.
type Card struct {
	Value   int
	FaceUp  bool
	Matched bool
}

// Game implements the memory match engine.
type Game struct {
	cfg      config.CardsConfig
	runtime  core.RuntimeConfig
	rng      *rand.Rand
	prefs    core.PrefStore
	audio    core.AudioSink
	tickRate int
	tick     uint64

	pairs  int
	deck   []Card
	cols   int
	cursor int

	phase        Phase
	firstIdx     int // Index of the first face-up card of the pair, -1 when none
	secondIdx    int
	pairMatches  bool
	resolveTicks int

	moves        int
	score        int
	elapsedTicks int
	timerOn      bool

	bestMoves int // 0 means no record yet
	bestTime  int // Seconds
}

// Package-level config path and pair count, set before game creation (CLI
// flags and the mode selector).
var (
	configPath    string
	selectedPairs int
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetPairs selects the pair count applied on the next Reset.
func SetPairs(n int) {
	selectedPairs = n
}

// New creates a new memory match game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("cards", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "cards"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Memory Match"
}

// Reset initializes/restarts the game with a freshly shuffled deck.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadCards(configPath)
	if err != nil {
		loaded = config.DefaultCardsConfig()
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

	g.pairs = selectedPairs
	if !g.validPairs(g.pairs) {
		g.pairs = g.cfg.DefaultPairs
	}

	g.tick = 0
	g.deck = g.shuffledDeck(g.pairs)
	g.cols = gridCols(len(g.deck))
	g.cursor = 0
	g.phase = PhaseRunning
	g.firstIdx = -1
	g.secondIdx = -1
	g.resolveTicks = 0
	g.moves = 0
	g.score = 0
	g.elapsedTicks = 0
	g.timerOn = false
	g.bestMoves = g.prefs.GetInt(g.bestMovesKey(), 0)
	g.bestTime = g.prefs.GetInt(g.bestTimeKey(), 0)
}

func (g *Game) validPairs(n int) bool {
	for _, c := range g.cfg.PairChoices {
		if c == n {
			return true
		}
	}
	return false
}

func (g *Game) bestMovesKey() string {
	return fmt.Sprintf("cards.best_moves.%d", g.pairs)
}

func (g *Game) bestTimeKey() string {
	return fmt.Sprintf("cards.best_time.%d", g.pairs)
}

// shuffledDeck builds a deck holding every value 1..pairs exactly twice, in
// seeded random order.
func (g *Game) shuffledDeck(pairs int) []Card {
	deck := make([]Card, 0, pairs*2)
	for v := 1; v <= pairs; v++ {
		deck = append(deck, Card{Value: v}, Card{Value: v})
	}
	g.rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// gridCols picks the cursor-grid width for a deck size.
func gridCols(cards int) int {
	if cards > 16 {
		return 6
	}
	return 4
}

// ApplyPairs switches the pair count and immediately resets with a fresh
// shuffle. An unknown count is ignored.
func (g *Game) ApplyPairs(n int) {
	if !g.validPairs(n) {
		return
	}
	selectedPairs = n
	rc := g.runtime
	rc.Seed = g.rng.Int63()
	g.Reset(rc)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.phase == PhaseWon {
		rc := g.runtime
		rc.Seed = g.rng.Int63()
		g.Reset(rc)
		return core.StepResult{State: g.State()}
	}

	if g.timerOn && g.phase != PhaseWon {
		g.elapsedTicks++
	}

	if g.phase == PhaseResolving {
		g.resolveTicks--
		if g.resolveTicks <= 0 {
			g.resolve()
		}
		return core.StepResult{State: g.State()}
	}

	if g.phase != PhaseRunning {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(input)

	if input.Has(core.ActionFire) || input.Has(core.ActionConfirm) {
		g.Flip(g.cursor)
	}

	return core.StepResult{State: g.State()}
}

// moveCursor moves the selection around the card grid, clamped to the deck.
func (g *Game) moveCursor(input core.InputFrame) {
	d, ok := input.Direction()
	if !ok {
		return
	}
	next := g.cursor
	switch d {
	case core.DirLeft:
		next--
	case core.DirRight:
		next++
	case core.DirUp:
		next -= g.cols
	case core.DirDown:
		next += g.cols
	}
	if next >= 0 && next < len(g.deck) {
		g.cursor = next
	}
}

// Flip turns the card at the given index face up. Rejected while a pair is
// resolving, after the win, or when the card is already face up or matched.
func (g *Game) Flip(idx int) {
	if g.phase != PhaseRunning {
		return
	}
	if idx < 0 || idx >= len(g.deck) {
		return
	}
	card := &g.deck[idx]
	if card.FaceUp || card.Matched {
		return
	}

	card.FaceUp = true
	g.audio.Tone(cueFlipFreq, cueFlipMs)
	g.timerOn = true

	if g.firstIdx < 0 {
		g.firstIdx = idx
		return
	}

	// Second flip: lock input now, count the move, schedule resolution.
	g.secondIdx = idx
	g.moves++
	g.pairMatches = g.deck[g.firstIdx].Value == g.deck[g.secondIdx].Value
	delayMs := g.cfg.MismatchDelayMs
	if g.pairMatches {
		delayMs = g.cfg.MatchDelayMs
	}
	g.resolveTicks = config.DelayTicks(delayMs, g.tickRate)
	g.phase = PhaseResolving
}

// resolve settles the pending pair and unlocks input.
func (g *Game) resolve() {
	if g.pairMatches {
		g.deck[g.firstIdx].Matched = true
		g.deck[g.secondIdx].Matched = true
		g.score += g.cfg.MatchScore
		g.audio.Tone(cueMatchFreq, cueMatchMs)
	} else {
		g.deck[g.firstIdx].FaceUp = false
		g.deck[g.secondIdx].FaceUp = false
		g.audio.Tone(cueMismatchFreq, cueMismatchMs)
	}
	g.firstIdx = -1
	g.secondIdx = -1
	g.phase = PhaseRunning

	if g.pairMatches && g.allMatched() {
		g.win()
	}
}

func (g *Game) allMatched() bool {
	for _, c := range g.deck {
		if !c.Matched {
			return false
		}
	}
	return true
}

// win stops the timer and persists improved best records for the active
// pair count. Move and time bests improve independently.
func (g *Game) win() {
	g.phase = PhaseWon
	g.timerOn = false
	g.audio.Tone(cueWinFreq, cueWinMs)

	if g.bestMoves == 0 || g.moves < g.bestMoves {
		g.bestMoves = g.moves
		g.prefs.SetInt(g.bestMovesKey(), g.moves)
	}
	secs := g.ElapsedSeconds()
	if g.bestTime == 0 || secs < g.bestTime {
		g.bestTime = secs
		g.prefs.SetInt(g.bestTimeKey(), secs)
	}
}

// ElapsedSeconds returns the run timer in whole seconds.
func (g *Game) ElapsedSeconds() int {
	return g.elapsedTicks / g.tickRate
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseWon,
		Paused:   false,
	}
}
