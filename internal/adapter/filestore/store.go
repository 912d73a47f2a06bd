// Package filestore implements the key-value store as a single JSON document
// on disk. Every mutation rewrites the whole file.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/heartmarshall/marketing-studio/internal/domain"
)

// Store maps keys to raw JSON values persisted in one file.
type Store struct {
	mu      sync.RWMutex
	path    string
	entries map[string]json.RawMessage
}

// Open creates or loads the store located at path.
func Open(path string) (*Store, error) {
	s := &Store{
		path:    path,
		entries: make(map[string]json.RawMessage),
	}

	if err := s.load(); err != nil {
		return nil, fmt.Errorf("filestore: load %s: %w", path, err)
	}

	return s, nil
}

// Get returns a copy of the value stored under key or domain.ErrNotFound.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.entries[key]
	if !ok {
		return nil, fmt.Errorf("kv %s: %w", key, domain.ErrNotFound)
	}

	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Put overwrites the value under key and rewrites the file. value must be
// valid JSON.
func (s *Store) Put(_ context.Context, key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("kv %s: value is not valid JSON: %w", key, domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	v := make(json.RawMessage, len(value))
	copy(v, value)

	prev, existed := s.entries[key]
	s.entries[key] = v
	if err := s.saveLocked(); err != nil {
		if existed {
			s.entries[key] = prev
		} else {
			delete(s.entries, key)
		}
		return fmt.Errorf("kv %s: %w", key, err)
	}

	return nil
}

// Delete removes key. Deleting a missing key returns domain.ErrNotFound.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.entries[key]
	if !ok {
		return fmt.Errorf("kv %s: %w", key, domain.ErrNotFound)
	}

	delete(s.entries, key)
	if err := s.saveLocked(); err != nil {
		s.entries[key] = prev
		return fmt.Errorf("kv %s: %w", key, err)
	}

	return nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	return json.Unmarshal(data, &s.entries)
}

func (s *Store) saveLocked() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return err
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmpPath, s.path)
}

// Ping reports whether the directory holding the store file is reachable.
func (s *Store) Ping(_ context.Context) error {
	info, err := os.Stat(filepath.Dir(s.path))
	if err != nil {
		return fmt.Errorf("filestore: ping: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("filestore: ping: %s is not a directory", filepath.Dir(s.path))
	}
	return nil
}
