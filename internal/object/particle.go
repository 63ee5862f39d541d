package object

import (
	"math"
	"math/rand"
	"sync"
)

// particlePool reuses Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived visual effect. Lifetime is counted in ticks.
type Particle struct {
	X, Y, Z    float64
	VX, VY, VZ float64
	Life       int // Ticks lived so far
	MaxLife    int
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, z, vx, vy, vz float64, maxLife int) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.Z = z
	p.VX = vx
	p.VY = vy
	p.VZ = vz
	p.Life = 0
	p.MaxLife = maxLife
	return p
}

// Release returns the particle to the pool for reuse. Call when the
// particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// SpawnBurst creates particles in a spherical burst at a kill site.
func SpawnBurst(x, y, z float64, count int, spawner Spawner) {
	if spawner == nil {
		return
	}

	for i := 0; i < count; i++ {
		theta := rand.Float64() * 2 * math.Pi
		phi := math.Acos(2*rand.Float64() - 1)
		speed := 0.2 + rand.Float64()*0.4

		vx := math.Sin(phi) * math.Cos(theta) * speed
		vy := math.Sin(phi) * math.Sin(theta) * speed
		vz := math.Cos(phi) * speed

		maxLife := 20 + rand.Intn(20)
		spawner.Spawn(NewParticle(x, y, z, vx, vy, vz, maxLife))
	}
}

// Update moves the particle and checks lifetime.
func (p *Particle) Update(ctx UpdateContext) (bool, error) {
	p.Life++
	if p.Life >= p.MaxLife {
		return true, nil
	}

	p.X += p.VX
	p.Y += p.VY
	p.Z += p.VZ

	return false, nil
}

// Draw renders the particle as a fading pixel.
func (p *Particle) Draw(ctx DrawContext) error {
	// Skip the last quarter of the lifetime for a fade-out effect.
	if p.MaxLife > 0 && float64(p.Life)/float64(p.MaxLife) > 0.75 {
		return nil
	}

	sx, sy, _ := ctx.Proj.Project(p.X, p.Y, p.Z)
	ctx.Canvas.SetFloat(sx, sy)
	return nil
}
