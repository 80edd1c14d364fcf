package tanks

import (
	"math/rand"

	"github.com/arcbox/arcbox/internal/core"
)

// generateTerrain builds a fresh seeded arena: the base at bottom-center
// with a destructible brick ring, random brick/steel fill at the level's
// density, and cleared spawn areas for the player and the enemy entry
// points.
func generateTerrain(rng *rand.Rand, size int, density, steelFraction float64) ([][]Terrain, core.Point) {
	grid := make([][]Terrain, size)
	for y := range grid {
		grid[y] = make([]Terrain, size)
	}

	base := core.Point{X: size / 2, Y: size - 1}

	reserved := make(map[core.Point]bool)
	reserved[base] = true
	for _, p := range baseRing(base, size) {
		reserved[p] = true
	}
	for _, p := range playerSpawnCandidates(size) {
		reserved[p] = true
	}
	for _, p := range enemySpawnPoints(size) {
		reserved[p] = true
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := core.Point{X: x, Y: y}
			if reserved[p] {
				continue
			}
			if rng.Float64() >= density {
				continue
			}
			if rng.Float64() < steelFraction {
				grid[y][x] = TerrainSteel
			} else {
				grid[y][x] = TerrainBrick
			}
		}
	}

	grid[base.Y][base.X] = TerrainBase
	for _, p := range baseRing(base, size) {
		grid[p.Y][p.X] = TerrainBrick
	}

	return grid, base
}

// baseRing returns the in-bounds cells adjacent to the base.
func baseRing(base core.Point, size int) []core.Point {
	var ring []core.Point
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			p := core.Point{X: base.X + dx, Y: base.Y + dy}
			if p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size {
				ring = append(ring, p)
			}
		}
	}
	return ring
}

// playerSpawnCandidates returns the fixed start position followed by the
// probe fallbacks, all on or near the bottom row left of the base.
func playerSpawnCandidates(size int) []core.Point {
	cx := size / 2
	bottom := size - 1
	return []core.Point{
		{X: cx - 3, Y: bottom},
		{X: cx - 4, Y: bottom},
		{X: cx + 3, Y: bottom},
		{X: cx - 3, Y: bottom - 1},
		{X: cx + 3, Y: bottom - 1},
	}
}

// enemySpawnPoints returns the top-row entry cells, corner-first.
func enemySpawnPoints(size int) []core.Point {
	return []core.Point{
		{X: 0, Y: 0},
		{X: size - 1, Y: 0},
		{X: size / 2, Y: 0},
	}
}
