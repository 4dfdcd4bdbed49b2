package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout attaches a deadline to every request context so a hung dependency
// cannot block a handler indefinitely. Store and outbound calls observe the
// deadline through the context; a deadline hit classifies as a retryable
// unavailable error at the usecase boundary.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
