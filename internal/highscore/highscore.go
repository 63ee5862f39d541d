// Package highscore persists the best score across sessions.
package highscore

import (
	"fmt"
	"sync"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Storage location within the gdata app directory.
const (
	scoreObject   = "scores"
	scoreProperty = "best"
)

// record is the YAML shape of the stored score.
type record struct {
	Best int `yaml:"best"`
}

// Store keeps the best score, backed by gdata when available. A nil
// manager degrades to in-memory storage: reads and writes work, nothing
// survives the process. The mutex covers concurrent SSH sessions sharing
// one store.
type Store struct {
	mu      sync.Mutex
	manager *gdata.Manager
	best    int
}

// Open creates a store backed by platform storage for the given app name.
// When the backing store cannot be opened the returned Store still works
// in degraded in-memory mode, alongside the error.
func Open(appName string) (*Store, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewStore(nil), fmt.Errorf("failed to open score storage: %w", err)
	}
	return NewStore(manager), nil
}

// NewStore creates a store over an existing manager (nil for in-memory)
// and loads the previously saved best score.
func NewStore(manager *gdata.Manager) *Store {
	s := &Store{manager: manager}
	s.best = s.load()
	return s
}

// load reads the stored best score, tolerating absence and decode failure.
func (s *Store) load() int {
	if s.manager == nil || !s.manager.ObjectPropExists(scoreObject, scoreProperty) {
		return 0
	}
	data, err := s.manager.LoadObjectProp(scoreObject, scoreProperty)
	if err != nil {
		return 0
	}
	var rec record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return 0
	}
	return rec.Best
}

// Best returns the best score seen so far.
func (s *Store) Best() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.best
}

// Submit records score if it beats the stored best and persists it.
// Returns true when a new best was recorded.
func (s *Store) Submit(score int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if score <= s.best {
		return false, nil
	}
	s.best = score

	if s.manager == nil {
		return true, nil
	}

	data, err := yaml.Marshal(record{Best: score})
	if err != nil {
		return true, fmt.Errorf("failed to marshal score: %w", err)
	}
	if err := s.manager.SaveObjectProp(scoreObject, scoreProperty, data); err != nil {
		return true, fmt.Errorf("failed to save score: %w", err)
	}
	return true, nil
}
