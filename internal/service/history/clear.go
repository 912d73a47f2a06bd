package history

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/marketing-studio/internal/domain"
)

// ClearAll irreversibly empties the history. confirmed must be true.
func (s *Service) ClearAll(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return domain.NewValidationError("confirm", "required")
	}

	s.mu.Lock()
	removed := len(s.items)
	s.items = []domain.HistoryItem{}
	if err := s.repo.Clear(ctx); err != nil {
		s.log.ErrorContext(ctx, "clear persisted history failed",
			slog.Int("removed", removed),
			slog.String("error", err.Error()),
		)
	}
	s.mu.Unlock()

	s.setGauge(0)
	s.log.InfoContext(ctx, "history cleared", slog.Int("removed", removed))

	return nil
}
