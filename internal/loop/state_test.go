package loop

import (
	"testing"

	"github.com/tomz197/starfighter/internal/config"
	"github.com/tomz197/starfighter/internal/highscore"
	"github.com/tomz197/starfighter/internal/object"
)

func countBosses(objects []object.Object) int {
	n := 0
	for _, obj := range objects {
		if b, ok := obj.(*object.Boss); ok && !b.IsDestroyed() {
			n++
		}
	}
	return n
}

func TestDifficultySelectionStartsSession(t *testing.T) {
	state := NewState(config.DefaultPresets(), highscore.NewStore(nil))

	if state.Phase != PhaseSelect {
		t.Fatal("new session should start in the selection phase")
	}

	state.Input = object.Input{Number: 3}
	updateSelectState(state)

	if state.Phase != PhasePlaying {
		t.Fatal("choosing a difficulty should enter the playing phase")
	}
	if state.Difficulty != config.DifficultyHard {
		t.Fatalf("difficulty = %v, want hard", state.Difficulty)
	}
	if state.Score != 0 || state.Health != InitialHealth || state.Level != 1 {
		t.Fatalf("fresh session state = score %d health %d level %d", state.Score, state.Health, state.Level)
	}
	if state.Player == nil || state.Player.Weapon != object.WeaponBasic {
		t.Fatal("session must start with the basic weapon")
	}
}

func TestBossGateSpawnsOncePerThreshold(t *testing.T) {
	state := newTestState(t)

	// Below the threshold: nothing spawns.
	state.Score = 490
	checkBossGate(state)
	if state.BossActive() {
		t.Fatal("boss spawned below the score threshold")
	}

	// Crossing the threshold spawns exactly one boss.
	state.AddScore(ScoreEnemyKill)
	checkBossGate(state)
	if !state.BossActive() {
		t.Fatal("boss did not spawn at the threshold")
	}
	if countBosses(state.Objects) != 1 {
		t.Fatalf("boss count = %d, want 1", countBosses(state.Objects))
	}

	// Repeated checks at the same score never double-spawn.
	checkBossGate(state)
	checkBossGate(state)
	if countBosses(state.Objects) != 1 {
		t.Fatalf("boss count after repeated checks = %d, want 1", countBosses(state.Objects))
	}

	if state.Boss.Z != object.BossSpawnZ {
		t.Fatalf("boss spawned at z=%f, want %f", state.Boss.Z, object.BossSpawnZ)
	}
	if state.Boss.Health != object.BossMaxHealth {
		t.Fatalf("boss health = %d, want %d", state.Boss.Health, object.BossMaxHealth)
	}
}

func TestBossGateDefersWhileBossAlive(t *testing.T) {
	state := newTestState(t)

	state.Score = 500
	checkBossGate(state)
	first := state.Boss
	if first == nil {
		t.Fatal("first boss did not spawn")
	}

	// A second threshold crossed while the first boss is alive is held.
	state.Score = 1000
	checkBossGate(state)
	if countBosses(state.Objects) != 1 {
		t.Fatal("second boss spawned while the first was alive")
	}

	// Once the boss is gone the held threshold fires.
	first.MarkDestroyed()
	state.Boss = nil
	checkBossGate(state)
	if !state.BossActive() {
		t.Fatal("held threshold did not spawn after the boss died")
	}
}

func TestScoreNeverDecreasesAcrossTicks(t *testing.T) {
	state := newTestState(t)

	state.AddObject(object.NewEnemy(0, 0, 10, state.Settings.EnemySpeed))
	state.AddObject(object.NewBullet(0, 0, 9.5, object.WeaponBasic))

	prev := state.Score
	for i := 0; i < 30; i++ {
		if err := updatePlayingState(state); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if state.Score < prev {
			t.Fatalf("score decreased at tick %d: %d -> %d", i, prev, state.Score)
		}
		prev = state.Score
	}
	if state.Score != ScoreEnemyKill {
		t.Fatalf("score after kill = %d, want %d", state.Score, ScoreEnemyKill)
	}
}

func TestGameOverPersistsImprovedHighScore(t *testing.T) {
	scores := highscore.NewStore(nil)
	state := NewState(config.DefaultPresets(), scores)
	startGame(state, config.DifficultyNormal)

	state.Score = 300
	state.ApplyDamage(InitialHealth)

	if state.Phase != PhaseGameOver {
		t.Fatal("lethal damage must latch game over")
	}
	if scores.Best() != 300 {
		t.Fatalf("persisted high score = %d, want 300", scores.Best())
	}

	// A worse run later does not overwrite the best.
	restartGame(state)
	startGame(state, config.DifficultyNormal)
	state.Score = 100
	state.ApplyDamage(InitialHealth)
	if scores.Best() != 300 {
		t.Fatalf("high score overwritten by a worse run: %d", scores.Best())
	}
}

func TestRestartClearsEverything(t *testing.T) {
	state := newTestState(t)

	state.AddObject(object.NewEnemy(0, 0, 10, state.Settings.EnemySpeed))
	state.AddObject(object.NewBullet(0, 0, 5, object.WeaponBasic))
	boss := object.NewBoss()
	state.Boss = boss
	state.AddObject(boss)

	state.Score = 420
	state.ApplyDamage(InitialHealth)
	if state.Phase != PhaseGameOver {
		t.Fatal("expected game over")
	}

	state.Input = object.Input{Enter: true}
	updateGameOverState(state)

	if state.Phase != PhaseSelect {
		t.Fatal("restart should return to difficulty selection")
	}
	if len(state.Objects) != 0 {
		t.Fatalf("restart leaked %d objects", len(state.Objects))
	}
	if state.Player != nil || state.Boss != nil {
		t.Fatal("restart should drop the player and boss references")
	}

	// The next session starts clean.
	state.Input = object.Input{Number: 2}
	updateSelectState(state)
	if state.Score != 0 || state.Health != InitialHealth || state.Level != 1 {
		t.Fatalf("new session state = score %d health %d level %d", state.Score, state.Health, state.Level)
	}
}

func TestGameOverIsIdempotent(t *testing.T) {
	state := newTestState(t)

	// Several lethal damage events in one tick: last write wins, the
	// value is already terminal.
	state.ApplyDamage(InitialHealth)
	state.ApplyDamage(LeakDamage)
	state.ApplyDamage(BossContactDamage)

	if state.Phase != PhaseGameOver {
		t.Fatal("phase must stay game over")
	}
	if state.Health != 0 {
		t.Fatalf("health = %d, want 0", state.Health)
	}
}
