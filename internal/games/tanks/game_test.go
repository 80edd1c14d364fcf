package tanks

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

// clearArena wipes the terrain except the base so tests control occupancy.
func clearArena(g *Game) {
	for y := range g.grid {
		for x := range g.grid[y] {
			g.grid[y][x] = TerrainEmpty
		}
	}
	g.grid[g.base.Y][g.base.X] = TerrainBase
	g.bullets = nil
	g.powerUps = nil
	g.enemies = nil
}

func addEnemy(g *Game, p core.Point) *Tank {
	e := &Tank{ID: g.nextEnemyID, Pos: p, Dir: core.DirDown, Faction: FactionEnemy, Alive: true}
	g.nextEnemyID++
	g.enemies = append(g.enemies, e)
	return e
}

func TestFriendlyFireImmunity(t *testing.T) {
	g, _, _ := newTestGame(1)
	clearArena(g)
	e := addEnemy(g, core.Point{X: 5, Y: 5})

	destroyed := g.resolveBulletHit(Bullet{Owner: FactionEnemy}, e.Pos)

	assert.True(t, destroyed, "the bullet is destroyed on impact")
	assert.True(t, e.Alive, "a same-faction tank takes no damage")
	assert.Zero(t, g.score)
}

func TestPlayerBulletKillsEnemy(t *testing.T) {
	g, _, _ := newTestGame(2)
	clearArena(g)
	g.cfg.PowerUps.DropProb = 0
	e := addEnemy(g, core.Point{X: 5, Y: 5})

	destroyed := g.resolveBulletHit(Bullet{Owner: FactionPlayer}, e.Pos)

	assert.True(t, destroyed)
	assert.False(t, e.Alive)
	assert.Equal(t, g.cfg.Enemies.KillScore, g.score)
	assert.Equal(t, 1, g.killsThisLevel)
	assert.Empty(t, g.powerUps)
}

func TestEnemyDeathDropRespectsProbability(t *testing.T) {
	g, _, _ := newTestGame(3)
	clearArena(g)
	g.cfg.PowerUps.DropProb = 1.0
	e := addEnemy(g, core.Point{X: 7, Y: 7})

	g.killEnemy(e)

	require.Len(t, g.powerUps, 1)
	assert.Equal(t, e.Pos, g.powerUps[0].Pos)
}

func TestBaseDestructionEndsGameRegardlessOfLives(t *testing.T) {
	g, _, _ := newTestGame(4)
	clearArena(g)
	require.Greater(t, g.lives, 1)

	destroyed := g.resolveBulletHit(Bullet{Owner: FactionEnemy}, g.base)

	assert.True(t, destroyed)
	assert.True(t, g.over)
	assert.Greater(t, g.lives, 1, "base loss is terminal even with lives in hand")
}

func TestShieldChargeAbsorbsHit(t *testing.T) {
	g, _, _ := newTestGame(5)
	clearArena(g)
	g.shield = 2
	lives := g.lives

	destroyed := g.resolveBulletHit(Bullet{Owner: FactionEnemy}, g.player.Pos)

	assert.True(t, destroyed)
	assert.True(t, g.player.Alive)
	assert.Equal(t, 1, g.shield)
	assert.Equal(t, lives, g.lives)
}

func TestPlayerDeathSchedulesRespawn(t *testing.T) {
	g, _, _ := newTestGame(6)
	clearArena(g)
	lives := g.lives

	g.resolveBulletHit(Bullet{Owner: FactionEnemy}, g.player.Pos)

	require.False(t, g.player.Alive)
	assert.Equal(t, lives-1, g.lives)
	assert.Equal(t, g.cfg.Player.RespawnDelay, g.respawnIn)
	assert.False(t, g.over)

	// Run out the delay; the player returns at a probed spawn cell.
	for i := 0; i < g.cfg.Player.RespawnDelay; i++ {
		g.Step(frame())
	}
	assert.True(t, g.player.Alive)
	assert.True(t, g.inBounds(g.player.Pos))
	assert.Equal(t, core.DirUp, g.player.Dir)
}

func TestLastLifeEndsGame(t *testing.T) {
	g, prefs, _ := newTestGame(7)
	clearArena(g)
	g.lives = 1
	g.score = 450

	g.resolveBulletHit(Bullet{Owner: FactionEnemy}, g.player.Pos)

	assert.True(t, g.over)
	assert.Equal(t, 450, prefs.GetInt(bestScoreKey, 0))
}

func TestRespawnFallsBackToGridCenter(t *testing.T) {
	g, _, _ := newTestGame(8)
	clearArena(g)

	// Occupy every spawn candidate.
	for _, p := range playerSpawnCandidates(g.cfg.Board.Size) {
		g.grid[p.Y][p.X] = TerrainSteel
	}
	g.player.Alive = false

	got := g.findPlayerSpawn()
	center := core.Point{X: g.cfg.Board.Size / 2, Y: g.cfg.Board.Size / 2}
	assert.Equal(t, center, got)
}

func TestBulletClearsBrickButNotSteel(t *testing.T) {
	g, _, _ := newTestGame(9)
	clearArena(g)
	brick := core.Point{X: 3, Y: 3}
	steel := core.Point{X: 4, Y: 4}
	g.grid[brick.Y][brick.X] = TerrainBrick
	g.grid[steel.Y][steel.X] = TerrainSteel

	assert.True(t, g.resolveBulletHit(Bullet{Owner: FactionPlayer}, brick))
	assert.Equal(t, TerrainEmpty, g.grid[brick.Y][brick.X])

	assert.True(t, g.resolveBulletHit(Bullet{Owner: FactionPlayer}, steel))
	assert.Equal(t, TerrainSteel, g.grid[steel.Y][steel.X])
}

func TestBulletLeavesArena(t *testing.T) {
	g, _, _ := newTestGame(10)
	clearArena(g)
	g.bullets = []Bullet{{Pos: core.Point{X: 0, Y: 0}, Dir: core.DirUp, Owner: FactionPlayer}}

	g.advanceBullets()

	assert.Empty(t, g.bullets)
}

func TestEnemyBulletCap(t *testing.T) {
	g, _, _ := newTestGame(11)
	clearArena(g)
	g.tuning.FireProb = 1.0
	for i := 0; i < 5; i++ {
		addEnemy(g, core.Point{X: 2 + i*2, Y: 5})
	}

	for i := 0; i < 10; i++ {
		g.stepEnemies()
		assert.LessOrEqual(t, g.activeEnemyBullets(), g.tuning.MaxActiveBullets)
	}
}

func TestSpawnHonorsCaps(t *testing.T) {
	g, _, _ := newTestGame(12)
	clearArena(g)
	g.spawnedThisLevel = 0

	for i := 0; i < 50; i++ {
		g.spawnEnemy()
	}
	assert.Equal(t, g.tuning.MaxConcurrent, g.aliveEnemies(), "alive cap limits concurrent enemies")

	// Once the per-level total is reached, no spawn happens even with room.
	g.enemies = nil
	g.spawnedThisLevel = g.cfg.Board.EnemiesPerLevel
	g.spawnEnemy()
	assert.Empty(t, g.enemies)
}

func TestLevelAdvancePreservesScoreAndLives(t *testing.T) {
	g, _, _ := newTestGame(13)
	clearArena(g)
	g.cfg.PowerUps.DropProb = 0
	g.score = 500
	g.lives = 2
	g.shield = 2
	g.powerUps = []PowerUp{{Pos: core.Point{X: 2, Y: 2}, Kind: PowerShield}}
	g.killsThisLevel = g.cfg.Board.KillsPerLevel - 1

	// The final kill lands mid-volley, with an unrelated bullet still in
	// the air behind it.
	addEnemy(g, core.Point{X: 6, Y: 6})
	g.bullets = []Bullet{
		{Pos: core.Point{X: 6, Y: 7}, Dir: core.DirUp, Owner: FactionPlayer},
		{Pos: core.Point{X: 10, Y: 9}, Dir: core.DirUp, Owner: FactionEnemy},
	}
	g.advanceBullets()

	assert.Equal(t, 2, g.level)
	assert.Equal(t, 500+g.cfg.Enemies.KillScore, g.score)
	assert.Equal(t, 2, g.lives)
	assert.Equal(t, 2, g.shield)
	assert.Empty(t, g.bullets, "projectiles do not carry across levels")
	assert.Empty(t, g.powerUps)
	assert.Zero(t, g.killsThisLevel)
	assert.Zero(t, g.spawnedThisLevel)
	assert.True(t, g.player.Alive)
}

func TestResolutionStopsWhenBaseFalls(t *testing.T) {
	g, _, _ := newTestGame(18)
	clearArena(g)
	brick := core.Point{X: 2, Y: 2}
	g.grid[brick.Y][brick.X] = TerrainBrick
	g.bullets = []Bullet{
		{Pos: core.Point{X: g.base.X, Y: g.base.Y - 1}, Dir: core.DirDown, Owner: FactionEnemy},
		{Pos: core.Point{X: 2, Y: 3}, Dir: core.DirUp, Owner: FactionEnemy},
	}

	g.advanceBullets()

	assert.True(t, g.over)
	assert.Equal(t, TerrainBrick, g.grid[brick.Y][brick.X], "bullets stop resolving once the game ends")
}

func TestPlayerMovesUnderIntermittentInput(t *testing.T) {
	g, _, _ := newTestGame(19)
	clearArena(g)
	g.spawnedThisLevel = g.cfg.Board.EnemiesPerLevel // No enemy interference
	start := g.player.Pos

	// Terminal key repeat delivers direction frames with gaps between
	// them, never a consecutive run.
	for i := 0; i < 24; i++ {
		if i%2 == 0 {
			g.Step(frame(core.ActionUp))
		} else {
			g.Step(frame())
		}
	}

	assert.Less(t, g.player.Pos.Y, start.Y, "held-with-gaps input still moves the tank")
	assert.Equal(t, core.DirUp, g.player.Dir)
}

func TestShieldPickupCapsAtMax(t *testing.T) {
	g, _, _ := newTestGame(14)
	clearArena(g)
	g.shield = g.cfg.Player.ShieldMax
	g.powerUps = []PowerUp{{Pos: g.player.Pos, Kind: PowerShield}}

	g.pickupAt(g.player.Pos)

	assert.Equal(t, g.cfg.Player.ShieldMax, g.shield)
	assert.Empty(t, g.powerUps)
}

func TestRapidFireShortensCooldown(t *testing.T) {
	g, _, _ := newTestGame(15)
	clearArena(g)
	g.rapidLeft = g.cfg.Player.RapidFireTicks

	g.Step(frame(core.ActionFire))
	require.Len(t, g.bullets, 1)
	assert.Equal(t, g.cfg.Player.RapidFireCooldown, g.fireCooldown)

	// Without the buff the standard cooldown applies.
	g.rapidLeft = 0
	g.fireCooldown = 0
	g.Step(frame(core.ActionFire))
	assert.Equal(t, g.cfg.Player.FireCooldown, g.fireCooldown)
}

func TestComfortModeEasesTuning(t *testing.T) {
	prefs := core.NewMemPrefs()
	prefs.SetBool(comfortKey, true)
	g := New()
	rc := core.DefaultConfig()
	rc.Seed = 16
	rc.Prefs = prefs
	g.Reset(rc)

	standard := g.cfg.TuningForLevel(false, 1)
	assert.True(t, g.comfort)
	assert.Less(t, g.tuning.FireProb, standard.FireProb)
	assert.LessOrEqual(t, g.tuning.MaxConcurrent, standard.MaxConcurrent)
}

func TestDeterministicUnderSameSeed(t *testing.T) {
	script := [][]core.Action{
		{core.ActionUp}, {core.ActionUp}, {core.ActionFire}, {},
		{core.ActionLeft}, {core.ActionFire, core.ActionLeft}, {}, {core.ActionRight},
	}

	run := func() []Snapshot {
		g, _, _ := newTestGame(77)
		snaps := make([]Snapshot, 0, len(script)*30)
		for i := 0; i < 30; i++ {
			for _, actions := range script {
				g.Step(frame(actions...))
				snaps = append(snaps, g.Snapshot())
			}
		}
		return snaps
	}

	assert.Equal(t, run(), run())
}
