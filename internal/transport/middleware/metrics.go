package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type httpRecorder interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// Metrics records request counts and latency per chi route pattern. It must
// be installed with chi's Use so the pattern is known after routing.
func Metrics(rec httpRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
			}
			rec.ObserveHTTP(r.Method, route, sw.status, time.Since(start))
		})
	}
}
