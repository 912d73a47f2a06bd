package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/marketing-studio/internal/domain"
	"github.com/heartmarshall/marketing-studio/internal/service/clients"
	"github.com/heartmarshall/marketing-studio/internal/transport/middleware"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type clientService interface {
	List(ctx context.Context) []domain.Client
	Get(ctx context.Context, id uuid.UUID) (domain.Client, error)
	Add(ctx context.Context, input clients.ClientInput) (domain.Client, error)
	Update(ctx context.Context, id uuid.UUID, input clients.ClientInput) (domain.Client, error)
	Delete(ctx context.Context, id uuid.UUID, confirmed bool) error
	ImportCSV(ctx context.Context, r io.Reader) (clients.ImportResult, error)
	ExportCSV(ctx context.Context) ([]byte, error)
	ExportXLSX(ctx context.Context) ([]byte, error)
}

// ClientsHandler serves the client registry endpoints. Admin only.
type ClientsHandler struct {
	svc            clientService
	maxUploadBytes int64
	log            *slog.Logger
}

// NewClientsHandler creates a ClientsHandler. maxUploadBytes caps import
// uploads.
func NewClientsHandler(svc clientService, maxUploadBytes int64, logger *slog.Logger) *ClientsHandler {
	return &ClientsHandler{
		svc:            svc,
		maxUploadBytes: maxUploadBytes,
		log:            logger.With("handler", "clients"),
	}
}

// List handles GET /api/clients.
func (h *ClientsHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	writeJSON(w, http.StatusOK, h.svc.List(r.Context()))
}

// Get handles GET /api/clients/{id}.
func (h *ClientsHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	id, err := clientID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	client, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, client)
}

// Create handles POST /api/clients.
func (h *ClientsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var input clients.ClientInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	client, err := h.svc.Add(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, client)
}

// Update handles PUT /api/clients/{id}.
func (h *ClientsHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	id, err := clientID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var input clients.ClientInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	client, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, client)
}

// Delete handles DELETE /api/clients/{id}?confirm=true.
func (h *ClientsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	id, err := clientID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id, confirmed(r)); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Import handles POST /api/clients/import. The CSV is either the raw request
// body or the "file" part of a multipart form.
func (h *ClientsHandler) Import(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	src, err := h.uploadedFile(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	defer src.Close()

	result, err := h.svc.ImportCSV(r.Context(), src)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ExportCSV handles GET /api/clients/export.csv.
func (h *ClientsHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	data, err := h.svc.ExportCSV(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeFile(w, contentTypeCSV, clients.ExportCSVFilename, data)
}

// ExportXLSX handles GET /api/clients/export.xlsx.
func (h *ClientsHandler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	data, err := h.svc.ExportXLSX(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeFile(w, contentTypeXLSX, clients.ExportXLSXFilename, data)
}

func (h *ClientsHandler) uploadedFile(r *http.Request) (io.ReadCloser, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return r.Body, nil
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, domain.NewValidationError("file", "required")
	}
	return file, nil
}

func (h *ClientsHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return false
	}
	return true
}

func clientID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "invalid id")
	}
	return id, nil
}
