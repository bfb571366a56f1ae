package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// UserHeader carries the caller's identity. Authentication itself happens
// upstream (API gateway authorizer); this service only trusts the header.
const UserHeader = "X-User-ID"

type contextKey struct{}

// WithUserID returns a copy of ctx carrying the caller's user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, contextKey{}, userID)
}

// UserID returns the caller's user id, or "" when none was set.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// RequireUser rejects requests without a user id with 401.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(UserHeader))
		if userID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]string{
					"code":    "unauthorized",
					"message": "missing " + UserHeader + " header",
				},
			})
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}
