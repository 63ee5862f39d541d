package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/starfighter/internal/draw"
)

// enemyRadius is the draw radius in world units.
const enemyRadius = 1.5

// Enemy is a hostile ship descending toward the player plane.
type Enemy struct {
	X, Y, Z    float64
	VZ         float64 // Forward units per tick, set by difficulty
	Tumble     float64 // Cosmetic rotation angle
	tumbleRate float64
	destroyed  bool
}

// NewEnemy creates an enemy at the given position, descending at the
// given per-tick speed.
func NewEnemy(x, y, z, speed float64) *Enemy {
	return &Enemy{
		X:          x,
		Y:          y,
		Z:          z,
		VZ:         speed,
		Tumble:     rand.Float64() * 2 * math.Pi,
		tumbleRate: 0.03 + rand.Float64()*0.05,
	}
}

// NewEnemyRandom creates an enemy at a uniformly random x/y on the far
// plane. Overlap with existing entities is allowed.
func NewEnemyRandom(speed float64) *Enemy {
	x := (rand.Float64()*2 - 1) * FieldBound
	y := (rand.Float64()*2 - 1) * FieldBound
	return NewEnemy(x, y, EnemySpawnZ, speed)
}

// MarkDestroyed marks the enemy for removal.
func (e *Enemy) MarkDestroyed() {
	e.destroyed = true
}

// IsDestroyed returns true if the enemy is marked for destruction.
func (e *Enemy) IsDestroyed() bool {
	return e.destroyed
}

// Update advances the enemy toward the player plane and spins it.
func (e *Enemy) Update(ctx UpdateContext) (bool, error) {
	if e.destroyed {
		return true, nil
	}

	e.Z += e.VZ
	e.Tumble += e.tumbleRate

	return false, nil
}

// Draw renders the enemy as a rotating diamond sized by depth.
func (e *Enemy) Draw(ctx DrawContext) error {
	sx, sy, scale := ctx.Proj.Project(e.X, e.Y, e.Z)
	size := enemyRadius * scale * ctx.Proj.UnitScale

	points := ctx.Canvas.BorrowPoints(4)
	for i := 0; i < 4; i++ {
		ang := e.Tumble + float64(i)*math.Pi/2
		points[i] = draw.Point{X: sx + math.Cos(ang)*size, Y: sy + math.Sin(ang)*size}
	}
	ctx.Canvas.DrawPolygon(points, false)
	return nil
}
