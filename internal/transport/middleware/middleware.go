// Package middleware holds the HTTP middleware installed on the REST router.
package middleware

import "net/http"

// Middleware wraps an http.Handler. It has the shape chi's Use expects.
type Middleware = func(http.Handler) http.Handler
