package history

import (
	"context"
	"fmt"

	"github.com/heartmarshall/marketing-studio/internal/domain"
)

// List returns a copy of the history, newest first.
func (s *Service) List(_ context.Context) []domain.HistoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.HistoryItem, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the newest item with the given ID.
func (s *Service) Get(_ context.Context, id string) (domain.HistoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return domain.HistoryItem{}, fmt.Errorf("history item %s: %w", id, domain.ErrNotFound)
}
