package history

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"strconv"

	"github.com/heartmarshall/marketing-studio/internal/domain"
)

// Append records a successful generation at the front of the history and
// persists the whole collection. The ID is the creation time in Unix
// milliseconds, so items created in the same millisecond share an ID.
//
// An error is returned only when output does not have the shape of ct;
// persistence failures are logged and the item is kept in memory.
func (s *Service) Append(ctx context.Context, ct domain.ContentType, input map[string]string, output domain.Output) (domain.HistoryItem, error) {
	if !ct.IsValid() {
		return domain.HistoryItem{}, domain.NewValidationError("content_type", "unknown content type")
	}
	if !output.Matches(ct) {
		return domain.HistoryItem{}, fmt.Errorf("history append %s: %w", ct, domain.NewValidationError("output", "does not match content type"))
	}

	now := s.now()
	item := domain.HistoryItem{
		ID:          strconv.FormatInt(now.UnixMilli(), 10),
		ContentType: ct,
		Input:       maps.Clone(input),
		Output:      output,
		Timestamp:   now.Format(domain.HistoryTimestampLayout),
		CreatedAt:   now.UTC(),
	}
	if item.Input == nil {
		item.Input = map[string]string{}
	}

	s.mu.Lock()
	next := make([]domain.HistoryItem, 0, len(s.items)+1)
	next = append(next, item)
	next = append(next, s.items...)
	s.items = next
	s.persistLocked(ctx, "append")
	n := len(s.items)
	s.mu.Unlock()

	s.setGauge(n)
	s.log.InfoContext(ctx, "history item appended",
		slog.String("id", item.ID),
		slog.String("content_type", ct.String()),
		slog.Int("items", n),
	)

	return item, nil
}
