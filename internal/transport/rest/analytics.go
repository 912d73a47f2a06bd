package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/marketing-studio/internal/domain"
	"github.com/heartmarshall/marketing-studio/internal/transport/middleware"
)

type analyticsService interface {
	Snapshot(ctx context.Context) domain.AnalyticsSnapshot
}

// AnalyticsHandler serves the usage dashboard. Admin only.
type AnalyticsHandler struct {
	svc analyticsService
	log *slog.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(svc analyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, log: logger.With("handler", "analytics")}
}

// Snapshot handles GET /api/analytics.
func (h *AnalyticsHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.svc.Snapshot(r.Context()))
}
