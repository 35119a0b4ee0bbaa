// Package store provides small client-side state primitives: a typed
// entity cache with atomic apply, a request guard that discards stale
// responses, and a trailing-edge debouncer for search-as-you-type.
package store

import "sync"

// Store is a concurrency-safe cache of entities keyed by id. It backs
// optimistic UI updates: reducers run under the store lock so a toggle
// and its counter change are applied atomically.
type Store[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// New returns an empty store.
func New[T any]() *Store[T] {
	return &Store[T]{items: make(map[string]T)}
}

// Get returns the entity under id.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[id]
	return v, ok
}

// Put stores v under id, replacing any previous value.
func (s *Store[T]) Put(id string, v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[id] = v
}

// Delete removes the entity under id.
func (s *Store[T]) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
}

// Len reports how many entities are cached.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Apply runs fn on the entity under id while holding the store lock and
// stores the result. It reports whether the entity existed.
func (s *Store[T]) Apply(id string, fn func(T) T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.items[id]
	if !ok {
		return false
	}
	s.items[id] = fn(v)
	return true
}

// Snapshot returns a copy of the current contents.
func (s *Store[T]) Snapshot() map[string]T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]T, len(s.items))
	for k, v := range s.items {
		out[k] = v
	}
	return out
}
