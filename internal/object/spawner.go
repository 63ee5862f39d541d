package object

import "github.com/tomz197/starfighter/internal/config"

// levelSpawnStep is how many ticks each level shaves off the spawn interval.
const levelSpawnStep = 5

// EnemySpawner paces enemy creation from the difficulty cadence. It lives
// in the object list but draws nothing.
type EnemySpawner struct {
	ticks int
}

// NewEnemySpawner creates a spawner with a fresh tick counter.
func NewEnemySpawner() *EnemySpawner {
	return &EnemySpawner{}
}

// SpawnThreshold returns the tick count an enemy spawn waits for at the
// given settings and level. Higher levels spawn faster; the threshold
// floors at zero, which spawns one enemy every tick.
func SpawnThreshold(settings config.DifficultySettings, level int) int {
	t := settings.SpawnInterval - level*levelSpawnStep
	if t < 0 {
		t = 0
	}
	return t
}

// Update counts ticks and spawns one enemy each time the counter exceeds
// the difficulty threshold.
func (s *EnemySpawner) Update(ctx UpdateContext) (bool, error) {
	s.ticks++
	if s.ticks > SpawnThreshold(ctx.Settings, ctx.Level) {
		ctx.Spawner.Spawn(NewEnemyRandom(ctx.Settings.EnemySpeed))
		s.ticks = 0
	}
	return false, nil
}

// Draw is a no-op; the spawner is not visible.
func (s *EnemySpawner) Draw(_ DrawContext) error {
	return nil
}
