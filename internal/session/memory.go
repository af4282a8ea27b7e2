package session

import (
	"context"
	"sync"
)

// MemoryStore keeps session state in process memory.
//
// Watch callbacks fire synchronously on every mutation, which makes the store
// convenient for tests and for single-process embedding.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
	subs   map[int]func(key string)
	nextID int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string]string),
		subs:   make(map[int]func(string)),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key], nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value string) error {
	s.mu.Lock()
	s.values[key] = value
	subs := s.snapshotSubs()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(key)
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	changed := keys[:0:0]
	for _, key := range keys {
		if _, ok := s.values[key]; ok {
			delete(s.values, key)
			changed = append(changed, key)
		}
	}
	subs := s.snapshotSubs()
	s.mu.Unlock()

	for _, key := range changed {
		for _, fn := range subs {
			fn(key)
		}
	}
	return nil
}

func (s *MemoryStore) Watch(fn func(key string)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// snapshotSubs copies subscribers so callbacks run without holding the lock.
// Callers must hold s.mu.
func (s *MemoryStore) snapshotSubs() []func(string) {
	subs := make([]func(string), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return subs
}
