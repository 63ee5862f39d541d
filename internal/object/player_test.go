package object

import "testing"

// recordingSpawner collects spawned objects for assertions.
type recordingSpawner struct {
	spawned []Object
}

func (r *recordingSpawner) Spawn(obj Object) {
	r.spawned = append(r.spawned, obj)
}

func TestPlayerMovementClamped(t *testing.T) {
	p := NewPlayer()
	ctx := UpdateContext{Input: Input{Right: true, Up: true}}

	// Hold up-right far longer than the field is wide.
	for i := 0; i < 200; i++ {
		if _, err := p.Update(ctx); err != nil {
			t.Fatalf("update: %v", err)
		}
		if p.X < -FieldBound || p.X > FieldBound {
			t.Fatalf("x escaped bounds after tick %d: %f", i, p.X)
		}
		if p.Y < -FieldBound || p.Y > FieldBound {
			t.Fatalf("y escaped bounds after tick %d: %f", i, p.Y)
		}
	}
	if p.X != FieldBound || p.Y != FieldBound {
		t.Fatalf("expected clamp at (+%v,+%v), got (%f,%f)", FieldBound, FieldBound, p.X, p.Y)
	}
}

func TestPlayerDiagonalUnnormalized(t *testing.T) {
	p := NewPlayer()
	ctx := UpdateContext{Input: Input{Right: true, Down: true}}

	if _, err := p.Update(ctx); err != nil {
		t.Fatalf("update: %v", err)
	}
	// Both axes move at full speed; diagonals are implicitly faster.
	if p.X != PlayerSpeed || p.Y != -PlayerSpeed {
		t.Fatalf("diagonal tick moved to (%f,%f), want (%f,%f)", p.X, p.Y, PlayerSpeed, -PlayerSpeed)
	}
}

func TestPlayerFiresOncePerPress(t *testing.T) {
	p := NewPlayer()
	spawner := &recordingSpawner{}

	// One press with the basic weapon.
	ctx := UpdateContext{Input: Input{FirePresses: 1}, Spawner: spawner}
	if _, err := p.Update(ctx); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(spawner.spawned) != 1 {
		t.Fatalf("basic press spawned %d bullets, want 1", len(spawner.spawned))
	}

	// No press: nothing fires even while other keys are held.
	ctx = UpdateContext{Input: Input{Up: true}, Spawner: spawner}
	if _, err := p.Update(ctx); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(spawner.spawned) != 1 {
		t.Fatalf("held keys spawned bullets without a fire press: %d", len(spawner.spawned))
	}
}

func TestPlayerCycleThenSpread(t *testing.T) {
	p := NewPlayer()
	spawner := &recordingSpawner{}

	// Two cycle presses: basic -> rapid -> spread. Fire once.
	ctx := UpdateContext{Input: Input{CyclePresses: 2, FirePresses: 1}, Spawner: spawner}
	if _, err := p.Update(ctx); err != nil {
		t.Fatalf("update: %v", err)
	}
	if p.Weapon != WeaponSpread {
		t.Fatalf("weapon after two cycles = %v, want %v", p.Weapon, WeaponSpread)
	}
	if len(spawner.spawned) != 3 {
		t.Fatalf("spread press spawned %d bullets, want 3", len(spawner.spawned))
	}

	wantX := []float64{-1.5, 0, 1.5}
	for i, obj := range spawner.spawned {
		b, ok := obj.(*Bullet)
		if !ok {
			t.Fatalf("spawned object %d is not a bullet", i)
		}
		if b.X != wantX[i] {
			t.Fatalf("spread bullet %d at x=%f, want %f", i, b.X, wantX[i])
		}
	}
}

func TestBulletExpiresPastForwardLimit(t *testing.T) {
	b := NewBullet(0, 0, BulletMaxZ-0.5, WeaponBasic)

	remove, err := b.Update(UpdateContext{})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !remove {
		t.Fatalf("bullet at z=%f should be removed past the limit", b.Z)
	}
}
