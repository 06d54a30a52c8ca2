package http

import (
	"context"
	"net/http"
)

// withTimeout bounds the lifetime of every request with the configured
// request timeout. Downstream store, hashing, and signing calls inherit the
// deadline through the request context; an expired deadline surfaces as an
// operation failure (HTTP 500), never as a silent retry.
func (h *Handler) withTimeout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.requestTimeout <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
