package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/marketing-studio/pkg/ctxutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withRole(r *http.Request, role string) *http.Request {
	ctx := ctxutil.WithUserID(r.Context(), uuid.New())
	ctx = ctxutil.WithUserRole(ctx, role)
	return r.WithContext(ctx)
}

func asAdmin(r *http.Request) *http.Request {
	return withRole(r, ctxutil.RoleAdmin)
}
