package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/linkstash/linkstash-go/internal/crypto"
	"github.com/linkstash/linkstash-go/internal/model"
)

type contextKey string

const (
	userKey      contextKey = "user"
	userIDKey    contextKey = "userID"
	userEmailKey contextKey = "userEmail"
)

// UserFinder resolves a token subject to a live user record.
// Satisfied by repository.UserRepository.
type UserFinder interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// JWTAuth returns middleware that validates a Bearer token from the
// Authorization header and resolves its subject through the user store. The
// resolved identity lives in the request context for this request only;
// a token whose subject no longer exists is rejected.
func JWTAuth(secret string, users UserFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil || user == nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			ctx = context.WithValue(ctx, userIDKey, userID)
			ctx = context.WithValue(ctx, userEmailKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext extracts the authenticated user record from the request context.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok
}

// UserIDFromContext extracts the authenticated user ID from the request context.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// UserEmailFromContext extracts the authenticated email claim from the request context.
func UserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(userEmailKey).(string)
	return email, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
