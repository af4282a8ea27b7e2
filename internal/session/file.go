package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists session state as a JSON object in a single file.
//
// It is the CLI counterpart of browser local storage: state survives between
// invocations of the same user on the same machine. The file is created with
// owner-only permissions because it holds bearer credentials.
//
// The store does not watch the file for external edits; Watch only reports
// mutations made through this process. Deployments that need shared state use
// the Redis store instead.
type FileStore struct {
	path string

	mu     sync.Mutex
	subs   map[int]func(key string)
	nextID int
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
		subs: make(map[int]func(string)),
	}
}

func (s *FileStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", err
	}
	return values[key], nil
}

func (s *FileStore) Set(_ context.Context, key string, value string) error {
	s.mu.Lock()
	values, err := s.load()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	values[key] = value
	err = s.save(values)
	subs := s.snapshotSubs()
	s.mu.Unlock()

	if err != nil {
		return err
	}
	for _, fn := range subs {
		fn(key)
	}
	return nil
}

func (s *FileStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	values, err := s.load()
	if err != nil {
		s.mu.Unlock()
		return err
	}

	changed := keys[:0:0]
	for _, key := range keys {
		if _, ok := values[key]; ok {
			delete(values, key)
			changed = append(changed, key)
		}
	}
	err = s.save(values)
	subs := s.snapshotSubs()
	s.mu.Unlock()

	if err != nil {
		return err
	}
	for _, key := range changed {
		for _, fn := range subs {
			fn(key)
		}
	}
	return nil
}

func (s *FileStore) Watch(fn func(key string)) (unsubscribe func()) {
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

// load reads the state file. A missing file is an empty store.
// Callers must hold s.mu.
func (s *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return make(map[string]string), nil
	case err != nil:
		return nil, fmt.Errorf("read session file: %w", err)
	}

	values := make(map[string]string)
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse session file: %w", err)
	}
	return values, nil
}

// save writes the state file atomically via a temp file rename.
// Callers must hold s.mu.
func (s *FileStore) save(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

// snapshotSubs copies subscribers so callbacks run without holding the lock.
// Callers must hold s.mu.
func (s *FileStore) snapshotSubs() []func(string) {
	subs := make([]func(string), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return subs
}
