package clients

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/marketing-studio/internal/domain"
)

// List returns a copy of the registry, newest first.
func (s *Service) List(_ context.Context) []domain.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

// Get returns a client by ID.
func (s *Service) Get(_ context.Context, id uuid.UUID) (domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexLocked(id)
	if i < 0 {
		return domain.Client{}, fmt.Errorf("client %s: %w", id, domain.ErrNotFound)
	}
	return s.clients[i], nil
}

// Add creates a client at the front of the registry. Email uniqueness is not
// checked here.
func (s *Service) Add(ctx context.Context, input ClientInput) (domain.Client, error) {
	if err := input.Validate(); err != nil {
		return domain.Client{}, err
	}

	c := input.toClient()
	c.ID = s.newID()

	s.mu.Lock()
	next := make([]domain.Client, 0, len(s.clients)+1)
	next = append(next, c)
	next = append(next, s.clients...)
	s.clients = next
	s.persistLocked(ctx, "add")
	s.mu.Unlock()

	s.log.InfoContext(ctx, "client added", slog.String("client_id", c.ID.String()))
	return c, nil
}

// Update replaces every field of an existing client, keeping its position.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input ClientInput) (domain.Client, error) {
	if err := input.Validate(); err != nil {
		return domain.Client{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return domain.Client{}, fmt.Errorf("client %s: %w", id, domain.ErrNotFound)
	}

	c := input.toClient()
	c.ID = id

	next := make([]domain.Client, len(s.clients))
	copy(next, s.clients)
	next[i] = c
	s.clients = next
	s.persistLocked(ctx, "update")

	s.log.InfoContext(ctx, "client updated", slog.String("client_id", id.String()))
	return c, nil
}

// Delete removes a client. confirmed must be true.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, confirmed bool) error {
	if !confirmed {
		return domain.NewValidationError("confirm", "required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("client %s: %w", id, domain.ErrNotFound)
	}

	next := make([]domain.Client, 0, len(s.clients)-1)
	next = append(next, s.clients[:i]...)
	next = append(next, s.clients[i+1:]...)
	s.clients = next
	s.persistLocked(ctx, "delete")

	s.log.InfoContext(ctx, "client deleted", slog.String("client_id", id.String()))
	return nil
}
