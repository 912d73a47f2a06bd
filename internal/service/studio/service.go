// Package studio runs a generation request end to end: validate the input,
// call the generation client, record the result in history.
package studio

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/heartmarshall/marketing-studio/internal/domain"
	"github.com/heartmarshall/marketing-studio/internal/generation"
	"github.com/heartmarshall/marketing-studio/pkg/ctxutil"
)

type generator interface {
	ContentIdeas(ctx context.Context, topic string) ([]string, error)
	SocialPost(ctx context.Context, p generation.SocialPostParams) (string, error)
	EmailCampaign(ctx context.Context, product, audience string) (domain.EmailCampaign, error)
	AdCopy(ctx context.Context, product, platform string) (domain.AdCopy, error)
	Image(ctx context.Context, prompt string) (domain.GeneratedImage, error)
}

type historyAppender interface {
	Append(ctx context.Context, ct domain.ContentType, input map[string]string, output domain.Output) (domain.HistoryItem, error)
}

// Config holds the studio limits.
type Config struct {
	MinImagePromptLength int
	TwitterCharLimit     int
}

// Result is a successful generation and the history item recording it.
// CharCount and ExceedsLimit are set for social posts only.
type Result struct {
	HistoryID    string             `json:"history_id"`
	ContentType  domain.ContentType `json:"content_type"`
	Output       domain.Output      `json:"output"`
	CharCount    int                `json:"char_count,omitempty"`
	ExceedsLimit bool               `json:"exceeds_limit,omitempty"`
}

type busyKey struct {
	user string
	ct   domain.ContentType
}

type Service struct {
	gen     generator
	history historyAppender
	cfg     Config
	log     *slog.Logger

	mu   sync.Mutex
	busy map[busyKey]struct{}
}

func NewService(log *slog.Logger, gen generator, history historyAppender, cfg Config) *Service {
	return &Service{
		gen:     gen,
		history: history,
		cfg:     cfg,
		log:     log.With("service", "studio"),
		busy:    make(map[busyKey]struct{}),
	}
}

// acquire marks (caller, ct) as in flight. The returned func releases it.
func (s *Service) acquire(ctx context.Context, ct domain.ContentType) (func(), error) {
	key := busyKey{user: "anonymous", ct: ct}
	if id, ok := ctxutil.UserIDFromCtx(ctx); ok {
		key.user = id.String()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.busy[key]; ok {
		return nil, fmt.Errorf("%s generation already in progress: %w", ct, domain.ErrConflict)
	}
	s.busy[key] = struct{}{}

	return func() {
		s.mu.Lock()
		delete(s.busy, key)
		s.mu.Unlock()
	}, nil
}

// record appends a successful generation to history.
func (s *Service) record(ctx context.Context, ct domain.ContentType, input map[string]string, out domain.Output) (Result, error) {
	item, err := s.history.Append(ctx, ct, input, out)
	if err != nil {
		return Result{}, fmt.Errorf("record %s: %w", ct, err)
	}

	s.log.InfoContext(ctx, "content generated",
		slog.String("content_type", ct.String()),
		slog.String("history_id", item.ID),
	)

	return Result{
		HistoryID:   item.ID,
		ContentType: ct,
		Output:      out,
	}, nil
}
