package tanks

import "github.com/arcbox/arcbox/internal/core"

// Terrain is the content of one arena cell.
type Terrain int

const (
	TerrainEmpty Terrain = iota
	TerrainBrick         // Destructible
	TerrainSteel         // Indestructible, stops bullets
	TerrainBase          // Exactly one cell; destruction ends the game
)

// Faction separates the player from the enemy wave. Bullets never damage
// tanks of their owner's faction.
type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

func (f Faction) String() string {
	if f == FactionPlayer {
		return "player"
	}
	return "enemy"
}

// Tank is one vehicle on the grid.
type Tank struct {
	ID      int
	Pos     core.Point
	Dir     core.Direction
	Faction Faction
	Alive   bool
}

// Bullet is one in-flight projectile. Owner decides friendly-fire immunity.
type Bullet struct {
	Pos   core.Point
	Dir   core.Direction
	Owner Faction
}

// PowerUpKind enumerates the ground pickups dropped by destroyed enemies.
type PowerUpKind int

const (
	PowerShield PowerUpKind = iota
	PowerRapidFire
	powerUpKindCount
)

// Glyph returns the display character for the pickup.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerShield:
		return 'S'
	case PowerRapidFire:
		return 'R'
	default:
		return '?'
	}
}

func (k PowerUpKind) String() string {
	switch k {
	case PowerShield:
		return "Shield"
	case PowerRapidFire:
		return "Rapid"
	default:
		return "?"
	}
}

// PowerUp is a pickup lying on the ground, consumed on player overlap.
type PowerUp struct {
	Pos  core.Point
	Kind PowerUpKind
}
