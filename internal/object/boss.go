package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/starfighter/internal/draw"
)

// BossMaxHealth is the health a boss spawns with.
const BossMaxHealth = 100

const (
	bossSpeed         = 0.05 // Forward units per tick
	bossSwayAmplitude = 8.0
	bossSwayRate      = 0.01
	bossRadius        = 6.0

	// Attack roll, evaluated once per tick while alive.
	bossAttackChance = 0.02
	bossVolleySize   = 8
	bossBulletRadial = 0.3
	bossBulletVZ     = 0.8
)

// Boss is the heavy enemy. At most one is alive at a time; the spawn gate
// in the loop enforces the singleton.
type Boss struct {
	X, Y, Z   float64
	Health    int
	homeX     float64
	age       int
	destroyed bool
}

// NewBoss creates the boss centered on the far plane at full health.
func NewBoss() *Boss {
	return &Boss{
		Z:      BossSpawnZ,
		Health: BossMaxHealth,
	}
}

// Damage lowers the boss health and returns the remaining amount.
func (b *Boss) Damage(n int) int {
	b.Health -= n
	return b.Health
}

// MarkDestroyed marks the boss for removal.
func (b *Boss) MarkDestroyed() {
	b.destroyed = true
}

// IsDestroyed returns true if the boss is marked for destruction.
func (b *Boss) IsDestroyed() bool {
	return b.destroyed
}

// Update advances the boss toward the player plane, sways it across the
// lane, and rolls its radial bullet attack.
func (b *Boss) Update(ctx UpdateContext) (bool, error) {
	if b.destroyed {
		return true, nil
	}

	b.age++
	b.Z += bossSpeed
	b.X = b.homeX + math.Sin(float64(b.age)*bossSwayRate)*bossSwayAmplitude

	if ctx.Spawner != nil && rand.Float64() < bossAttackChance {
		b.fireVolley(ctx.Spawner)
	}

	return false, nil
}

// fireVolley emits a ring of bullets: radial x/y spread plus forward z.
func (b *Boss) fireVolley(spawner Spawner) {
	for i := 0; i < bossVolleySize; i++ {
		ang := float64(i) * 2 * math.Pi / bossVolleySize
		vx := math.Cos(ang) * bossBulletRadial
		vy := math.Sin(ang) * bossBulletRadial
		spawner.Spawn(NewBossBullet(b.X, b.Y, b.Z, vx, vy, bossBulletVZ))
	}
}

// Draw renders the boss as a large filled octagon sized by depth.
func (b *Boss) Draw(ctx DrawContext) error {
	sx, sy, scale := ctx.Proj.Project(b.X, b.Y, b.Z)
	size := bossRadius * scale * ctx.Proj.UnitScale

	points := ctx.Canvas.BorrowPoints(8)
	for i := 0; i < 8; i++ {
		ang := float64(i) * math.Pi / 4
		points[i] = draw.Point{X: sx + math.Cos(ang)*size, Y: sy + math.Sin(ang)*size*0.7}
	}
	ctx.Canvas.DrawPolygon(points, true)
	return nil
}
