package loop

import (
	"github.com/tomz197/starfighter/internal/config"
	"github.com/tomz197/starfighter/internal/highscore"
	"github.com/tomz197/starfighter/internal/input"
	"github.com/tomz197/starfighter/internal/object"
)

// Phase represents the current game phase.
type Phase int

const (
	PhaseSelect   Phase = iota // Difficulty selection screen
	PhasePlaying               // Active gameplay
	PhaseGameOver              // Terminal; only restart leaves it
)

// State holds all simulation state for one session. It is owned by the
// tick driver; the HUD reads it once per frame after the update.
type State struct {
	Phase   Phase
	Objects []object.Object
	toSpawn []object.Object // Objects to add after the current update pass

	Player *object.Player
	Boss   *object.Boss

	Input       object.Input
	InputStream *input.Stream

	Score      int
	Health     int
	Level      int
	Difficulty config.Difficulty
	Settings   config.DifficultySettings
	Presets    map[config.Difficulty]config.DifficultySettings

	Scores *highscore.Store

	nextBossAt int // Next score threshold that spawns a boss
	Running    bool
}

// NewState creates a session in the difficulty selection phase.
func NewState(presets map[config.Difficulty]config.DifficultySettings, scores *highscore.Store) *State {
	return &State{
		Phase:   PhaseSelect,
		Objects: []object.Object{},
		Presets: presets,
		Scores:  scores,
		Running: true,
	}
}

// AddObject adds an object to the game world immediately.
func (s *State) AddObject(obj object.Object) {
	s.Objects = append(s.Objects, obj)
}

// Spawn queues an object to be added after the current update pass.
// Implements object.Spawner.
func (s *State) Spawn(obj object.Object) {
	s.toSpawn = append(s.toSpawn, obj)
}

// FlushSpawned adds all queued objects to the game and clears the queue.
func (s *State) FlushSpawned() {
	s.Objects = append(s.Objects, s.toSpawn...)
	s.toSpawn = s.toSpawn[:0]
}

// UpdateContext creates an UpdateContext from the current state.
func (s *State) UpdateContext() object.UpdateContext {
	return object.UpdateContext{
		Input:    s.Input,
		Settings: s.Settings,
		Level:    s.Level,
		Spawner:  s,
		Objects:  s.Objects,
	}
}

// BossActive reports whether a boss is currently alive.
func (s *State) BossActive() bool {
	return s.Boss != nil && !s.Boss.IsDestroyed()
}

// AddScore raises the score. The score never decreases within a session.
func (s *State) AddScore(n int) {
	s.Score += n
}

// ApplyDamage lowers health and latches game over when it is exhausted.
// Published health never goes below zero.
func (s *State) ApplyDamage(n int) {
	s.Health -= n
	if s.Health <= 0 {
		s.Health = 0
		s.enterGameOver()
	}
}

// enterGameOver latches the terminal phase. Idempotent: several damage
// events in one tick may call it. The high score is persisted here so the
// result survives even if the player never restarts.
func (s *State) enterGameOver() {
	if s.Phase == PhaseGameOver {
		return
	}
	s.Phase = PhaseGameOver
	if s.Player != nil {
		s.Player.Hidden = true
	}
	if s.Scores != nil {
		// Persistence failure is not fatal to the session.
		_, _ = s.Scores.Submit(s.Score)
	}
}
