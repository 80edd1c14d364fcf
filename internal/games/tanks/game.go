// Package tanks implements the tank arena engine: a seeded terrain grid,
// an enemy wave per level, bullets with faction immunity, and ground
// power-ups.
package tanks

import (
	"math/rand"

	"github.com/arcbox/arcbox/internal/config"
	"github.com/arcbox/arcbox/internal/core"
	"github.com/arcbox/arcbox/internal/registry"
)

// Audio cues (frequency Hz, duration ms).
const (
	cueFireFreq, cueFireMs         = 440, 30
	cueExplodeFreq, cueExplodeMs   = 180, 120
	cueShieldFreq, cueShieldMs     = 300, 60
	cuePowerUpFreq, cuePowerUpMs   = 900, 80
	cueLevelUpFreq, cueLevelUpMs   = 880, 150
	cueGameOverFreq, cueGameOverMs = 110, 400
)

const (
	bestScoreKey = "tanks.best"
	comfortKey   = "tanks.comfort"
)

// Game implements the tank arena engine.
type Game struct {
	cfg      config.TanksConfig
	tuning   config.TanksTuning
	runtime  core.RuntimeConfig
	rng      *rand.Rand
	prefs    core.PrefStore
	audio    core.AudioSink
	tickRate int
	tick     uint64

	comfort bool
	level   int

	grid [][]Terrain
	base core.Point

	player       Tank
	lives        int
	shield       int
	rapidLeft    int // Ticks of rapid fire remaining
	respawnIn    int // Ticks until respawn while the player is dead
	fireCooldown int

	enemies          []*Tank
	nextEnemyID      int
	spawnedThisLevel int
	killsThisLevel   int

	bullets      []Bullet
	powerUps     []PowerUp
	levelPending bool // Final kill landed; advance applies after the bullet loop

	playerTicker int
	enemyTicker  int
	bulletTicker int

	score int
	best  int

	over   bool
	paused bool
}

// Package-level config path, set before game creation (CLI flag).
var configPath string

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new tank arena game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tanks", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tanks"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tank Arena"
}

// Reset initializes/restarts the game at level 1.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadTanks(configPath)
	if err != nil {
		loaded = config.DefaultTanksConfig()
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

	g.comfort = g.prefs.GetBool(comfortKey, false)
	g.level = 1
	g.tuning = g.cfg.TuningForLevel(g.comfort, g.level)

	g.tick = 0
	g.score = 0
	g.best = g.prefs.GetInt(bestScoreKey, 0)
	g.lives = g.cfg.Player.Lives
	g.shield = 0
	g.rapidLeft = 0
	g.respawnIn = 0
	g.fireCooldown = 0
	g.over = false
	g.paused = false

	g.enemies = nil
	g.nextEnemyID = 1
	g.bullets = nil
	g.powerUps = nil
	g.levelPending = false
	g.playerTicker = 0
	g.enemyTicker = 0
	g.bulletTicker = 0

	g.startLevel()
}

// startLevel regenerates terrain for the current level and re-places the
// player. Score, lives and shield survive; bullets and power-ups do not.
func (g *Game) startLevel() {
	g.grid, g.base = generateTerrain(g.rng, g.cfg.Board.Size, g.tuning.BrickDensity, g.cfg.Terrain.SteelFraction)

	g.enemies = nil
	g.bullets = nil
	g.powerUps = nil
	g.spawnedThisLevel = 0
	g.killsThisLevel = 0

	g.player = Tank{
		ID:      0,
		Pos:     g.findPlayerSpawn(),
		Dir:     core.DirUp,
		Faction: FactionPlayer,
		Alive:   true,
	}
}

// findPlayerSpawn probes the fixed start position and its fallbacks,
// resorting to the grid center when every candidate is occupied.
func (g *Game) findPlayerSpawn() core.Point {
	for _, p := range playerSpawnCandidates(g.cfg.Board.Size) {
		if g.cellFree(p) {
			return p
		}
	}
	center := core.Point{X: g.cfg.Board.Size / 2, Y: g.cfg.Board.Size / 2}
	g.grid[center.Y][center.X] = TerrainEmpty
	return center
}

// cellFree reports whether a tank can occupy the cell.
func (g *Game) cellFree(p core.Point) bool {
	if !g.inBounds(p) {
		return false
	}
	if g.grid[p.Y][p.X] != TerrainEmpty {
		return false
	}
	if g.tankAt(p) != nil {
		return false
	}
	return true
}

func (g *Game) inBounds(p core.Point) bool {
	return p.X >= 0 && p.X < g.cfg.Board.Size && p.Y >= 0 && p.Y < g.cfg.Board.Size
}

// tankAt returns the alive tank occupying the cell, or nil.
func (g *Game) tankAt(p core.Point) *Tank {
	if g.player.Alive && g.player.Pos == p {
		return &g.player
	}
	for _, e := range g.enemies {
		if e.Alive && e.Pos == p {
			return e
		}
	}
	return nil
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

	if g.fireCooldown > 0 {
		g.fireCooldown--
	}
	if g.rapidLeft > 0 {
		g.rapidLeft--
	}

	g.stepRespawn()
	g.stepPlayer(input)

	g.enemyTicker++
	if g.enemyTicker >= g.tuning.EnemyStepEvery {
		g.enemyTicker = 0
		g.stepEnemies()
		g.spawnEnemy()
	}

	g.bulletTicker++
	if g.bulletTicker >= g.tuning.BulletStepEvery {
		g.bulletTicker = 0
		g.advanceBullets()
	}

	return core.StepResult{State: g.State()}
}

// stepRespawn counts down the death delay and re-places the player.
func (g *Game) stepRespawn() {
	if g.player.Alive || g.respawnIn == 0 {
		return
	}
	g.respawnIn--
	if g.respawnIn > 0 {
		return
	}
	g.player.Pos = g.findPlayerSpawn()
	g.player.Dir = core.DirUp
	g.player.Alive = true
	g.pickupAt(g.player.Pos)
}

// stepPlayer handles turning, cadence-gated movement and firing. Movement
// is a cooldown: a direction intent steps the tank once enough ticks have
// passed since the last step, whether or not the key was held in between.
func (g *Game) stepPlayer(input core.InputFrame) {
	if !g.player.Alive {
		return
	}

	g.playerTicker++
	if d, ok := input.Direction(); ok {
		// Turning is free; moving waits for the cadence.
		g.player.Dir = d
		if g.playerTicker >= g.tuning.PlayerStepEvery {
			g.playerTicker = 0
			next := g.player.Pos.Step(d)
			if g.cellFree(next) {
				g.player.Pos = next
				g.pickupAt(next)
			}
		}
	}

	if input.Has(core.ActionFire) && g.fireCooldown == 0 {
		g.bullets = append(g.bullets, Bullet{Pos: g.player.Pos, Dir: g.player.Dir, Owner: FactionPlayer})
		g.audio.Tone(cueFireFreq, cueFireMs)
		if g.rapidLeft > 0 {
			g.fireCooldown = g.cfg.Player.RapidFireCooldown
		} else {
			g.fireCooldown = g.cfg.Player.FireCooldown
		}
	}
}

// pickupAt consumes a power-up lying on the cell, if any.
func (g *Game) pickupAt(p core.Point) {
	for i, pu := range g.powerUps {
		if pu.Pos != p {
			continue
		}
		switch pu.Kind {
		case PowerShield:
			g.shield = core.Min(g.shield+1, g.cfg.Player.ShieldMax)
		case PowerRapidFire:
			g.rapidLeft = g.cfg.Player.RapidFireTicks
		}
		g.audio.Tone(cuePowerUpFreq, cuePowerUpMs)
		g.powerUps = append(g.powerUps[:i], g.powerUps[i+1:]...)
		return
	}
}

// spawnEnemy adds one enemy at a free entry point, respecting the alive cap
// and the per-level spawn total.
func (g *Game) spawnEnemy() {
	if g.spawnedThisLevel >= g.cfg.Board.EnemiesPerLevel {
		return
	}
	if g.aliveEnemies() >= g.tuning.MaxConcurrent {
		return
	}
	for _, p := range enemySpawnPoints(g.cfg.Board.Size) {
		if !g.cellFree(p) {
			continue
		}
		g.enemies = append(g.enemies, &Tank{
			ID:      g.nextEnemyID,
			Pos:     p,
			Dir:     core.DirDown,
			Faction: FactionEnemy,
			Alive:   true,
		})
		g.nextEnemyID++
		g.spawnedThisLevel++
		return
	}
}

func (g *Game) aliveEnemies() int {
	n := 0
	for _, e := range g.enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

func (g *Game) activeEnemyBullets() int {
	n := 0
	for _, b := range g.bullets {
		if b.Owner == FactionEnemy {
			n++
		}
	}
	return n
}

// advanceBullets moves every bullet one cell and resolves what it runs
// into. Bullets that survive keep flying. Resolution halts as soon as the
// game ends or the level's final kill lands; the level advance itself is
// applied only after iteration, never from inside the loop, so in-flight
// bullets cannot cross into the regenerated arena.
func (g *Game) advanceBullets() {
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		if g.over || g.levelPending {
			break
		}
		next := b.Pos.Step(b.Dir)
		if g.resolveBulletHit(b, next) {
			continue
		}
		b.Pos = next
		kept = append(kept, b)
	}
	g.bullets = kept

	if g.levelPending {
		g.levelPending = false
		if !g.over {
			g.advanceLevel()
		}
	}
}

// resolveBulletHit applies the effect of a bullet entering the cell.
// Returns true when the bullet is destroyed.
func (g *Game) resolveBulletHit(b Bullet, p core.Point) bool {
	if !g.inBounds(p) {
		return true
	}

	switch g.grid[p.Y][p.X] {
	case TerrainSteel:
		return true
	case TerrainBrick:
		g.grid[p.Y][p.X] = TerrainEmpty
		return true
	case TerrainBase:
		// Base loss is terminal regardless of remaining lives.
		g.audio.Tone(cueExplodeFreq, cueExplodeMs)
		g.endGame()
		return true
	}

	target := g.tankAt(p)
	if target == nil {
		return false
	}
	if target.Faction == b.Owner {
		// Friendly fire immunity: the bullet still dies, the tank does not.
		return true
	}
	if target.Faction == FactionPlayer {
		g.hitPlayer()
	} else {
		g.killEnemy(target)
	}
	return true
}

// hitPlayer consumes a shield charge if one is available, otherwise costs a
// life and schedules the respawn.
func (g *Game) hitPlayer() {
	if g.shield > 0 {
		g.shield--
		g.audio.Tone(cueShieldFreq, cueShieldMs)
		return
	}
	g.audio.Tone(cueExplodeFreq, cueExplodeMs)
	g.player.Alive = false
	g.lives--
	if g.lives <= 0 {
		g.endGame()
		return
	}
	g.respawnIn = g.cfg.Player.RespawnDelay
}

// killEnemy scores the kill and maybe drops a power-up. The kill that meets
// the level target only marks the advance; advanceBullets applies it once
// the current volley is resolved.
func (g *Game) killEnemy(t *Tank) {
	t.Alive = false
	g.audio.Tone(cueExplodeFreq, cueExplodeMs)
	g.score += g.cfg.Enemies.KillScore
	g.killsThisLevel++

	if g.rng.Float64() < g.cfg.PowerUps.DropProb {
		g.powerUps = append(g.powerUps, PowerUp{
			Pos:  t.Pos,
			Kind: PowerUpKind(g.rng.Intn(int(powerUpKindCount))),
		})
	}

	if g.killsThisLevel >= g.cfg.Board.KillsPerLevel {
		g.levelPending = true
	}
}

// advanceLevel moves the ladder up one rung: new tuning, fresh terrain,
// cleared projectiles and pickups. Shield is clamped to the cap.
func (g *Game) advanceLevel() {
	g.level++
	g.tuning = g.cfg.TuningForLevel(g.comfort, g.level)
	g.shield = core.Min(g.shield, g.cfg.Player.ShieldMax)
	g.audio.Tone(cueLevelUpFreq, cueLevelUpMs)
	g.startLevel()
}

func (g *Game) endGame() {
	g.over = true
	g.audio.Tone(cueGameOverFreq, cueGameOverMs)
	if g.score > g.best {
		g.best = g.score
		g.prefs.SetInt(bestScoreKey, g.score)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.over,
		Paused:   g.paused,
	}
}
