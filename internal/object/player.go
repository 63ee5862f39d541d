package object

import (
	"math"

	"github.com/tomz197/starfighter/internal/draw"
)

// PlayerSpeed is the ship movement in units per tick per held direction.
// Diagonal input applies both axes unnormalized, so diagonals are faster.
const PlayerSpeed = 0.5

// playerSpinRate is the cosmetic roll applied every tick.
const playerSpinRate = 0.08

// Player is the player-controlled ship. It moves on the x/y plane at z=0
// and is never destroyed; at game over it is hidden, not removed.
type Player struct {
	X, Y, Z float64
	Spin    float64 // Cosmetic z-rotation
	Weapon  WeaponType
	Hidden  bool
}

// NewPlayer creates the ship at the center of the plane with the basic weapon.
func NewPlayer() *Player {
	return &Player{Weapon: WeaponBasic}
}

// Update applies held movement with boundary clamping, cosmetic spin, and
// the edge-triggered weapon-cycle and fire actions.
func (p *Player) Update(ctx UpdateContext) (bool, error) {
	if ctx.Input.Up {
		p.Y += PlayerSpeed
	}
	if ctx.Input.Down {
		p.Y -= PlayerSpeed
	}
	if ctx.Input.Left {
		p.X -= PlayerSpeed
	}
	if ctx.Input.Right {
		p.X += PlayerSpeed
	}

	p.X = clamp(p.X, -FieldBound, FieldBound)
	p.Y = clamp(p.Y, -FieldBound, FieldBound)

	p.Spin += playerSpinRate

	for i := 0; i < ctx.Input.CyclePresses; i++ {
		p.Weapon = p.Weapon.Next()
	}

	if ctx.Spawner != nil {
		for i := 0; i < ctx.Input.FirePresses; i++ {
			for _, b := range Fire(p.Weapon, p.X, p.Y, p.Z) {
				ctx.Spawner.Spawn(b)
			}
		}
	}

	return false, nil
}

// Draw renders the ship as a spinning triangle.
func (p *Player) Draw(ctx DrawContext) error {
	if p.Hidden {
		return nil
	}

	sx, sy, scale := ctx.Proj.Project(p.X, p.Y, p.Z)
	size := 2.5 * scale * ctx.Proj.UnitScale

	points := ctx.Canvas.BorrowPoints(3)
	for i := 0; i < 3; i++ {
		ang := p.Spin + float64(i)*2*math.Pi/3 - math.Pi/2
		points[i] = draw.Point{X: sx + math.Cos(ang)*size, Y: sy + math.Sin(ang)*size}
	}
	ctx.Canvas.DrawPolygon(points, true)
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
