package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/marketing-studio/internal/service/studio"
)

type studioService interface {
	Ideas(ctx context.Context, input studio.IdeasInput) (studio.Result, error)
	SocialPost(ctx context.Context, input studio.SocialPostInput) (studio.Result, error)
	EmailCampaign(ctx context.Context, input studio.EmailInput) (studio.Result, error)
	AdCopy(ctx context.Context, input studio.AdCopyInput) (studio.Result, error)
	Image(ctx context.Context, input studio.ImageInput) (studio.Result, error)
}

// GenerateHandler serves the generation endpoints.
type GenerateHandler struct {
	svc studioService
	log *slog.Logger
}

// NewGenerateHandler creates a GenerateHandler.
func NewGenerateHandler(svc studioService, logger *slog.Logger) *GenerateHandler {
	return &GenerateHandler{svc: svc, log: logger.With("handler", "generate")}
}

// Ideas handles POST /api/generate/ideas.
func (h *GenerateHandler) Ideas(w http.ResponseWriter, r *http.Request) {
	serveGenerate(h, w, r, h.svc.Ideas)
}

// SocialPost handles POST /api/generate/social-post.
func (h *GenerateHandler) SocialPost(w http.ResponseWriter, r *http.Request) {
	serveGenerate(h, w, r, h.svc.SocialPost)
}

// EmailCampaign handles POST /api/generate/email.
func (h *GenerateHandler) EmailCampaign(w http.ResponseWriter, r *http.Request) {
	serveGenerate(h, w, r, h.svc.EmailCampaign)
}

// AdCopy handles POST /api/generate/ad-copy.
func (h *GenerateHandler) AdCopy(w http.ResponseWriter, r *http.Request) {
	serveGenerate(h, w, r, h.svc.AdCopy)
}

// Image handles POST /api/generate/image.
func (h *GenerateHandler) Image(w http.ResponseWriter, r *http.Request) {
	serveGenerate(h, w, r, h.svc.Image)
}

func serveGenerate[T any](h *GenerateHandler, w http.ResponseWriter, r *http.Request, generate func(context.Context, T) (studio.Result, error)) {
	var input T
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := generate(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
