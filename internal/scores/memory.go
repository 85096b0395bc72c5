package scores

import (
	"context"
	"sync"

	"github.com/finlab/finance-engine/internal/game"
)

// MemoryStore implements Store with in-memory maps. Used for testing and
// for running without a database; scores do not survive a restart.
type MemoryStore struct {
	mu    sync.RWMutex
	best  map[game.Kind]int64
	theme string
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{best: make(map[game.Kind]int64)}
}

func (s *MemoryStore) BestScore(_ context.Context, kind game.Kind) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.best[kind], nil
}

func (s *MemoryStore) BestScores(_ context.Context) (map[game.Kind]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[game.Kind]int64, len(s.best))
	for k, v := range s.best {
		out[k] = v
	}
	return out, nil
}

func (s *MemoryStore) RecordScore(_ context.Context, kind game.Kind, score int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if score <= s.best[kind] {
		return false, nil
	}
	s.best[kind] = score
	return true, nil
}

func (s *MemoryStore) Theme(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.theme == "" {
		return DefaultTheme, nil
	}
	return s.theme, nil
}

func (s *MemoryStore) SetTheme(_ context.Context, theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	return nil
}
