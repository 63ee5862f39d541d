package object

// WeaponType selects the projectile pattern fired per trigger pull.
type WeaponType int

const (
	WeaponBasic WeaponType = iota
	WeaponRapid
	WeaponSpread
)

// String returns the lowercase weapon name for the HUD.
func (w WeaponType) String() string {
	switch w {
	case WeaponBasic:
		return "basic"
	case WeaponRapid:
		return "rapid"
	case WeaponSpread:
		return "spread"
	default:
		return "unknown"
	}
}

// Next returns the weapon after w in the cycle basic → rapid → spread.
func (w WeaponType) Next() WeaponType {
	switch w {
	case WeaponBasic:
		return WeaponRapid
	case WeaponRapid:
		return WeaponSpread
	default:
		return WeaponBasic
	}
}

// fireForwardOffset is how far ahead of the ship bullets appear.
const fireForwardOffset = 2.0

// Fire returns the bullets for one trigger pull of the given weapon, fired
// from the ship position. Rapid fires a close pair, spread a wide fan; all
// variants share the same forward velocity.
func Fire(w WeaponType, x, y, z float64) []*Bullet {
	switch w {
	case WeaponRapid:
		bullets := make([]*Bullet, 2)
		for i := range bullets {
			bullets[i] = NewBullet(x+(float64(i)-0.5)*1.0, y, z+fireForwardOffset, w)
		}
		return bullets
	case WeaponSpread:
		bullets := make([]*Bullet, 3)
		for i := range bullets {
			bullets[i] = NewBullet(x+(float64(i)-1)*1.5, y, z+fireForwardOffset, w)
		}
		return bullets
	default:
		return []*Bullet{NewBullet(x, y, z+fireForwardOffset, w)}
	}
}
