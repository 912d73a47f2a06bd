// Package history keeps the newest-first log of successful generations.
// Every mutation rewrites the whole persisted collection.
package history

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/marketing-studio/internal/domain"
)

type historyRepo interface {
	Load(ctx context.Context) ([]domain.HistoryItem, error)
	Save(ctx context.Context, items []domain.HistoryItem) error
	Clear(ctx context.Context) error
}

type sizeGauge interface {
	SetHistoryItems(n int)
}

// Service holds the in-memory history mirrored to the repository.
type Service struct {
	repo  historyRepo
	gauge sizeGauge
	log   *slog.Logger
	now   func() time.Time

	mu    sync.RWMutex
	items []domain.HistoryItem
}

// NewService creates a history service. Call Load before serving requests.
func NewService(log *slog.Logger, repo historyRepo, gauge sizeGauge) *Service {
	return &Service{
		repo:  repo,
		gauge: gauge,
		log:   log.With("service", "history"),
		now:   time.Now,
		items: []domain.HistoryItem{},
	}
}

// Load replaces the in-memory history with the persisted one. A failed or
// corrupt load leaves the history empty; the failure is only logged.
func (s *Service) Load(ctx context.Context) {
	items, err := s.repo.Load(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "load history failed, starting empty", slog.String("error", err.Error()))
		items = nil
	}
	if items == nil {
		items = []domain.HistoryItem{}
	}

	s.mu.Lock()
	s.items = items
	n := len(items)
	s.mu.Unlock()

	s.setGauge(n)
	s.log.InfoContext(ctx, "history loaded", slog.Int("items", n))
}

// Len returns the number of history items.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// persistLocked saves the collection. Failures are logged and swallowed so
// that the in-memory state stays authoritative. s.mu must be held.
func (s *Service) persistLocked(ctx context.Context, op string) {
	if err := s.repo.Save(ctx, s.items); err != nil {
		s.log.ErrorContext(ctx, "persist history failed",
			slog.String("op", op),
			slog.Int("items", len(s.items)),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) setGauge(n int) {
	if s.gauge != nil {
		s.gauge.SetHistoryItems(n)
	}
}
