package loop

import (
	"github.com/tomz197/starfighter/internal/object"
	"github.com/tomz197/starfighter/internal/physics"
)

// collectCollidables extracts bullets and enemies from the object list.
func collectCollidables(objects []object.Object) ([]*object.Bullet, []*object.Enemy) {
	var bullets []*object.Bullet
	var enemies []*object.Enemy

	for _, obj := range objects {
		switch o := obj.(type) {
		case *object.Bullet:
			bullets = append(bullets, o)
		case *object.Enemy:
			enemies = append(enemies, o)
		}
	}
	return bullets, enemies
}

// resolveCollisions detects and handles all collisions for one tick,
// mutating score, health, and phase on the state. Per bullet the boss
// check runs first; a bullet consumed by the boss checks nothing else.
func resolveCollisions(state *State) {
	bullets, enemies := collectCollidables(state.Objects)

	checkBulletCollisions(state, bullets, enemies)
	checkBossPlayerCollision(state)
	checkEnemyPlayerCollisions(state, enemies)
}

// checkBulletCollisions handles ship bullet hits on the boss and enemies.
func checkBulletCollisions(state *State, bullets []*object.Bullet, enemies []*object.Enemy) {
	for _, b := range bullets {
		if b.IsDestroyed() || b.Origin != object.OriginPlayer {
			continue
		}

		if state.BossActive() {
			boss := state.Boss
			if physics.WithinRange(b.X, b.Y, b.Z, boss.X, boss.Y, boss.Z, BulletBossRange) {
				b.MarkDestroyed()
				object.SpawnBurst(b.X, b.Y, b.Z, killBurstParticles, state)
				if boss.Damage(BossHitDamage) <= 0 {
					killBoss(state, boss)
				}
				continue // Consumed; skip the enemy pass for this bullet
			}
		}

		for _, e := range enemies {
			if e.IsDestroyed() {
				continue
			}
			if physics.WithinRange(b.X, b.Y, b.Z, e.X, e.Y, e.Z, BulletEnemyRange) {
				b.MarkDestroyed()
				e.MarkDestroyed()
				object.SpawnBurst(e.X, e.Y, e.Z, killBurstParticles, state)
				state.AddScore(ScoreEnemyKill)
				break
			}
		}
	}
}

// killBoss removes a depleted boss, awards the kill, and advances the level.
func killBoss(state *State, boss *object.Boss) {
	boss.MarkDestroyed()
	state.Boss = nil
	object.SpawnBurst(boss.X, boss.Y, boss.Z, bossBurstParticles, state)
	state.AddScore(ScoreBossKill)
	state.Level++
}

// checkBossPlayerCollision handles the boss reaching the ship: the boss is
// removed without score and deals flat contact damage.
func checkBossPlayerCollision(state *State) {
	if !state.BossActive() || state.Player == nil {
		return
	}
	boss := state.Boss
	p := state.Player
	if physics.WithinRange(boss.X, boss.Y, boss.Z, p.X, p.Y, p.Z, BossPlayerRange) {
		boss.MarkDestroyed()
		state.Boss = nil
		state.ApplyDamage(BossContactDamage)
	}
}

// checkEnemyPlayerCollisions handles enemies reaching the ship
// (difficulty-scaled damage) and enemies leaking past the far boundary
// (flat penalty).
func checkEnemyPlayerCollisions(state *State, enemies []*object.Enemy) {
	p := state.Player
	for _, e := range enemies {
		if e.IsDestroyed() {
			continue
		}
		if p != nil && physics.WithinRange(e.X, e.Y, e.Z, p.X, p.Y, p.Z, EnemyPlayerRange) {
			e.MarkDestroyed()
			state.ApplyDamage(state.Settings.EnemyDamage)
			continue
		}
		if e.Z > object.EnemyLeakZ {
			e.MarkDestroyed()
			state.ApplyDamage(LeakDamage)
		}
	}
}
