package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/marketing-studio/internal/domain"
)

// imageFilenameFallback names downloads whose prompt sanitizes to nothing.
const imageFilenameFallback = "generated_image"

type historyService interface {
	List(ctx context.Context) []domain.HistoryItem
	Get(ctx context.Context, id string) (domain.HistoryItem, error)
	ClearAll(ctx context.Context, confirmed bool) error
}

// HistoryHandler serves the generation history endpoints.
type HistoryHandler struct {
	svc historyService
	log *slog.Logger
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(svc historyService, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{svc: svc, log: logger.With("handler", "history")}
}

// List handles GET /api/history. Items are newest first.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.List(r.Context()))
}

// Get handles GET /api/history/{id}.
func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Image handles GET /api/history/{id}/image and sends the stored image as a
// download named after its prompt.
func (h *HistoryHandler) Image(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if item.ContentType != domain.ContentTypeImage || item.Output.Image == nil {
		handleError(h.log, w, r, domain.NewValidationError("id", "history item is not an image"))
		return
	}

	data, err := item.Output.Image.Bytes()
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	mimeType := item.Output.Image.MIMEType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	filename := domain.SanitizeFilename(item.Input["prompt"], imageFilenameFallback) + ".jpeg"
	writeFile(w, mimeType, filename, data)
}

// Clear handles DELETE /api/history?confirm=true.
func (h *HistoryHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearAll(r.Context(), confirmed(r)); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// confirmed reports whether the request carries confirm=true.
func confirmed(r *http.Request) bool {
	ok, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	return ok
}
