package object

// BulletOrigin tags who fired a bullet.
type BulletOrigin int

const (
	OriginPlayer BulletOrigin = iota
	OriginBoss
)

// BulletSpeed is the forward units per tick for ship bullets.
const BulletSpeed = 1.0

// Bullet is a projectile fired by the ship or the boss.
type Bullet struct {
	X, Y, Z    float64
	VX, VY, VZ float64
	Origin     BulletOrigin
	Kind       WeaponType // Weapon variant that fired it (sizing tag)
	destroyed  bool
}

// NewBullet creates a ship bullet travelling straight down the lane.
func NewBullet(x, y, z float64, kind WeaponType) *Bullet {
	return &Bullet{
		X:      x,
		Y:      y,
		Z:      z,
		VZ:     BulletSpeed,
		Origin: OriginPlayer,
		Kind:   kind,
	}
}

// NewBossBullet creates a boss bullet with an explicit velocity vector.
func NewBossBullet(x, y, z, vx, vy, vz float64) *Bullet {
	return &Bullet{
		X:      x,
		Y:      y,
		Z:      z,
		VX:     vx,
		VY:     vy,
		VZ:     vz,
		Origin: OriginBoss,
	}
}

// MarkDestroyed marks the bullet for removal.
func (b *Bullet) MarkDestroyed() {
	b.destroyed = true
}

// IsDestroyed returns true if the bullet is marked for destruction.
func (b *Bullet) IsDestroyed() bool {
	return b.destroyed
}

// Update moves the bullet and expires it past the forward limit.
func (b *Bullet) Update(ctx UpdateContext) (bool, error) {
	if b.destroyed {
		return true, nil
	}

	b.X += b.VX
	b.Y += b.VY
	b.Z += b.VZ

	if b.Z > BulletMaxZ {
		return true, nil
	}
	return false, nil
}

// Draw renders the bullet as a point, with a slightly larger mark for
// spread shots and boss fire.
func (b *Bullet) Draw(ctx DrawContext) error {
	sx, sy, _ := ctx.Proj.Project(b.X, b.Y, b.Z)
	ctx.Canvas.SetFloat(sx, sy)
	if b.Origin == OriginBoss || b.Kind == WeaponSpread {
		ctx.Canvas.SetFloat(sx+1, sy)
		ctx.Canvas.SetFloat(sx-1, sy)
	}
	return nil
}
