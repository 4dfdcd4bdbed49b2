package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"bakerydir/pkg/auth"
)

type contextKey string

const (
	// UserIDKey carries the authenticated user's id in the request context
	UserIDKey contextKey = "user_id"
	// EmailKey carries the authenticated user's email in the request context
	EmailKey contextKey = "email"
)

// Authenticate validates the bearer token on a protected route. A missing
// token is 401, a token that fails verification (or expired) is 403; on
// success the resolved identity is attached to the request context and
// handlers trust it without re-reading the store.
func Authenticate(tokens *auth.TokenManager, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			respondError(w, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		claims, err := tokens.Validate(token)
		if err != nil {
			respondError(w, http.StatusForbidden, "Invalid token.")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, EmailKey, claims.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// UserID returns the authenticated user id from the request context.
func UserID(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(UserIDKey).(uint)
	return id, ok
}

// Email returns the authenticated email from the request context.
func Email(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailKey).(string)
	return email, ok
}

func extractBearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}
