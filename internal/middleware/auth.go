package middleware

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/windfall/lingua_service/pkg/response"
)

type contextKey string

const (
	UserIDKey      contextKey = "user_id"
	requestInfoKey contextKey = "request_info"
)

// requestInfo is installed by Logger and filled in further down the chain.
type requestInfo struct {
	mu     sync.Mutex
	userID string
}

func withRequestInfo(ctx context.Context) (context.Context, *requestInfo) {
	info := &requestInfo{}
	return context.WithValue(ctx, requestInfoKey, info), info
}

func (i *requestInfo) setUserID(id string) {
	i.mu.Lock()
	i.userID = id
	i.mu.Unlock()
}

func (i *requestInfo) user() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.userID
}

// TokenValidator resolves a bearer token to a user ID.
type TokenValidator interface {
	ValidateToken(token string) (string, error)
}

// Auth returns a middleware that validates JWT tokens from the Authorization header.
// Preflight requests pass through untouched.
func Auth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.Unauthorized(w, "missing authorization header")
				return
			}

			scheme, token, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				response.Unauthorized(w, "invalid authorization format")
				return
			}

			userID, err := validator.ValidateToken(strings.TrimSpace(token))
			if err != nil {
				response.Unauthorized(w, "invalid or expired token")
				return
			}

			if info, ok := r.Context().Value(requestInfoKey).(*requestInfo); ok {
				info.setUserID(userID)
			}
			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID extracts the user ID from the request context.
func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}
