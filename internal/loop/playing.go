package loop

import (
	"github.com/tomz197/starfighter/internal/object"
)

// updatePlayingState runs one simulation tick: advance every entity,
// resolve collisions and damage, then check the boss spawn gate and
// compact destroyed entities.
func updatePlayingState(state *State) error {
	if err := updateObjects(state); err != nil {
		return err
	}
	resolveCollisions(state)
	checkBossGate(state)
	compactObjects(state)
	return nil
}

// updateObjects updates all objects and removes any that request removal.
func updateObjects(state *State) error {
	ctx := state.UpdateContext()

	kept := state.Objects[:0] // reuse backing array
	for _, obj := range state.Objects {
		remove, err := obj.Update(ctx)
		if err != nil {
			return err
		}
		if !remove {
			kept = append(kept, obj)
		} else {
			object.ReleaseObject(obj)
		}
	}
	state.Objects = kept

	state.FlushSpawned()
	return nil
}

// compactObjects drops entities the collision pass marked for destruction,
// then flushes anything the pass spawned (particle bursts).
func compactObjects(state *State) {
	kept := state.Objects[:0]
	for _, obj := range state.Objects {
		if d, ok := obj.(object.Destructible); ok && d.IsDestroyed() {
			object.ReleaseObject(obj)
			continue
		}
		kept = append(kept, obj)
	}
	state.Objects = kept
	state.FlushSpawned()
}

// checkBossGate spawns the boss when the score has crossed the next
// threshold. Thresholds are monotonic: each multiple of BossScoreStep
// triggers at most one spawn, and a crossing observed while a boss is
// alive is held until that boss is gone.
func checkBossGate(state *State) {
	if state.Score < state.nextBossAt || state.BossActive() {
		return
	}
	boss := object.NewBoss()
	state.Boss = boss
	state.AddObject(boss)
	state.nextBossAt += BossScoreStep
}
