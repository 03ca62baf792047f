package memory

import (
	"sync"

	"github.com/patrickmn/go-cache"

	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/model"
)

// Store holds one kind of entity for every user, keyed by user ID, each
// user's entities in insertion order. It is injected into the repositories
// that share it; tests build private stores for isolation.
//
// The cache serializes each Get and Set on its own, but repository
// mutations are load-mutate-save sequences, so mu guards the whole
// composition. Callers must hold mu across any load that feeds a save.
type Store[T model.Owned] struct {
	mu      sync.Mutex
	entries *cache.Cache
}

func NewStore[T model.Owned]() *Store[T] {
	return &Store[T]{entries: cache.New(cache.NoExpiration, 0)}
}

func (s *Store[T]) load(userID string) []T {
	if v, ok := s.entries.Get(userID); ok {
		return v.([]T)
	}
	return nil
}

func (s *Store[T]) save(userID string, entities []T) {
	s.entries.Set(userID, entities, cache.NoExpiration)
}
