// Package clients manages the client registry: CRUD over contact records
// plus bulk CSV import and CSV/XLSX export.
package clients

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/marketing-studio/internal/domain"
)

type clientRepo interface {
	Load(ctx context.Context) ([]domain.Client, error)
	Save(ctx context.Context, clients []domain.Client) error
}

type sizeGauge interface {
	SetClients(n int)
}

// Service holds the registry in memory and rewrites the whole collection on
// every mutation.
type Service struct {
	repo  clientRepo
	gauge sizeGauge
	log   *slog.Logger
	newID func() uuid.UUID

	mu      sync.RWMutex
	clients []domain.Client
}

// NewService creates a client registry. Call Load before serving requests.
func NewService(log *slog.Logger, repo clientRepo, gauge sizeGauge) *Service {
	return &Service{
		repo:    repo,
		gauge:   gauge,
		log:     log.With("service", "clients"),
		newID:   uuid.New,
		clients: []domain.Client{},
	}
}

// Load replaces the registry with the persisted collection. Failures leave
// the registry empty and are only logged.
func (s *Service) Load(ctx context.Context) {
	clients, err := s.repo.Load(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "load clients failed, starting empty", slog.String("error", err.Error()))
		clients = nil
	}
	if clients == nil {
		clients = []domain.Client{}
	}

	s.mu.Lock()
	s.clients = clients
	n := len(clients)
	s.mu.Unlock()

	s.setGauge(n)
	s.log.InfoContext(ctx, "clients loaded", slog.Int("clients", n))
}

// Len returns the number of clients.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// persistLocked saves the registry, logging failures. s.mu must be held.
func (s *Service) persistLocked(ctx context.Context, op string) {
	if err := s.repo.Save(ctx, s.clients); err != nil {
		s.log.ErrorContext(ctx, "persist clients failed",
			slog.String("op", op),
			slog.Int("clients", len(s.clients)),
			slog.String("error", err.Error()),
		)
	}
	if s.gauge != nil {
		s.gauge.SetClients(len(s.clients))
	}
}

func (s *Service) setGauge(n int) {
	if s.gauge != nil {
		s.gauge.SetClients(n)
	}
}

func (s *Service) indexLocked(id uuid.UUID) int {
	for i, c := range s.clients {
		if c.ID == id {
			return i
		}
	}
	return -1
}
