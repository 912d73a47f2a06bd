// Package analytics derives usage statistics on demand. Nothing it computes
// is stored.
package analytics

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/marketing-studio/internal/domain"
)

type historySource interface {
	List(ctx context.Context) []domain.HistoryItem
}

type clientSource interface {
	List(ctx context.Context) []domain.Client
}

// Service serves analytics snapshots over live history and client data.
type Service struct {
	history historySource
	clients clientSource
	log     *slog.Logger
}

// NewService creates a new analytics service.
func NewService(log *slog.Logger, history historySource, clients clientSource) *Service {
	return &Service{
		history: history,
		clients: clients,
		log:     log.With("service", "analytics"),
	}
}

// Snapshot recomputes statistics from the current history and clients.
func (s *Service) Snapshot(ctx context.Context) domain.AnalyticsSnapshot {
	snap := Compute(s.history.List(ctx), s.clients.List(ctx))

	s.log.DebugContext(ctx, "analytics computed",
		slog.Int("generations", snap.TotalGenerations),
		slog.Int("clients", snap.TotalClients),
		slog.Int("keywords", len(snap.TopKeywords)),
	)
	return snap
}
