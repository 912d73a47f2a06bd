// Package collection persists a whole collection as one JSON array under a
// single key of a key-value store.
package collection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/heartmarshall/marketing-studio/internal/domain"
)

// ErrCorrupt is returned by Load when the stored payload cannot be decoded.
var ErrCorrupt = errors.New("collection payload is corrupt")

type kvStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Repo loads and saves a []T snapshot under one key.
type Repo[T any] struct {
	store kvStore
	key   string
}

// New creates a repository for the collection stored under key.
func New[T any](store kvStore, key string) *Repo[T] {
	return &Repo[T]{store: store, key: key}
}

// Key returns the store key of the collection.
func (r *Repo[T]) Key() string { return r.key }

// Load returns the stored collection. A missing key yields an empty,
// non-nil slice.
func (r *Repo[T]) Load(ctx context.Context) ([]T, error) {
	data, err := r.store.Get(ctx, r.key)
	if errors.Is(err, domain.ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", r.key, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("load %s: %w: %v", r.key, ErrCorrupt, err)
	}
	if items == nil {
		items = []T{}
	}

	return items, nil
}

// Save replaces the stored collection with items.
func (r *Repo[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("save %s: marshal: %w", r.key, err)
	}

	if err := r.store.Put(ctx, r.key, data); err != nil {
		return fmt.Errorf("save %s: %w", r.key, err)
	}

	return nil
}

// Clear removes the stored collection. Clearing an absent key succeeds.
func (r *Repo[T]) Clear(ctx context.Context) error {
	err := r.store.Delete(ctx, r.key)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("clear %s: %w", r.key, err)
	}
	return nil
}
