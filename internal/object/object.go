package object

import (
	"github.com/tomz197/starfighter/internal/config"
	"github.com/tomz197/starfighter/internal/draw"
	"github.com/tomz197/starfighter/internal/input"
)

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// Input is an alias for the input package's Input type.
type Input = input.Input

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Input    Input
	Settings config.DifficultySettings
	Level    int
	Spawner  Spawner
	Objects  []Object
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas
	Proj   draw.Projector
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update advances the object one tick. Returns true if the object
	// should be removed.
	Update(ctx UpdateContext) (remove bool, err error)

	// Draw draws the object onto the frame canvas.
	Draw(ctx DrawContext) error
}

// Destructible is implemented by objects that can be marked for removal
// by the collision pass.
type Destructible interface {
	// MarkDestroyed marks the object for removal at end of tick.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// Play field and z-axis bounds shared by entities. The ship moves on the
// x/y plane at z=0; enemies and the boss approach from negative z.
const (
	FieldBound  = 20.0  // Ship x/y clamp, also the enemy spawn extent
	BulletMaxZ  = 100.0 // Bullets expire past this forward limit
	EnemySpawnZ = -50.0 // Far plane where enemies appear
	EnemyLeakZ  = 50.0  // Enemies past this have slipped by the ship
	BossSpawnZ  = -80.0 // Far plane where the boss appears
)
