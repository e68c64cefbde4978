package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sweepstats/sweepstats/internal/api/apierr"
	"github.com/sweepstats/sweepstats/internal/model"
	"github.com/sweepstats/sweepstats/internal/services/token"
)

type contextKey string

const (
	userIDContextKey contextKey = "user_id"
	tokenContextKey  contextKey = "token"
)

// Auth creates authentication middleware. It validates the bearer token
// and puts the bound user id (not the user record) into the context;
// handlers that need the full account load it themselves.
func Auth(tokenService *token.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := extractToken(r)
			if raw == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			userID, err := tokenService.Validate(raw)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, userIDContextKey, userID)
			ctx = context.WithValue(ctx, tokenContextKey, raw)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken extracts the bearer token from the Authorization header
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// GetUserID returns the authenticated user id from the request context
func GetUserID(ctx context.Context) (model.UserID, bool) {
	userID, ok := ctx.Value(userIDContextKey).(model.UserID)
	return userID, ok
}

// GetToken returns the presented bearer token from the request context
func GetToken(ctx context.Context) string {
	raw, _ := ctx.Value(tokenContextKey).(string)
	return raw
}

// MustGetUserID returns the authenticated user id or panics
func MustGetUserID(ctx context.Context) model.UserID {
	userID, ok := GetUserID(ctx)
	if !ok {
		panic("no user id in context - auth middleware not applied?")
	}
	return userID
}
