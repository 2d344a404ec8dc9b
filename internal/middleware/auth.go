package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go-social-network/internal/model"
)

type identityResolver interface {
	Verify(ctx context.Context, tokenString string) (*model.AuthClaims, error)
	CurrentUser(ctx context.Context, claims *model.AuthClaims) (model.User, error)
}

type contextKey string

const currentUserContextKey contextKey = "current_user"

type AuthMiddleware struct {
	auth identityResolver
}

func NewAuthMiddleware(auth identityResolver) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// RequireAuth gates a route behind a valid bearer token. Claims only
// carry the subject email, so the full user row is re-fetched on every
// request before the handler runs.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := BearerToken(r)
		if !ok {
			writeUnauthorized(w, "missing or invalid authorization header")
			return
		}

		claims, err := m.auth.Verify(r.Context(), token)
		if err != nil {
			writeUnauthorized(w, "invalid or expired token")
			return
		}

		user, err := m.auth.CurrentUser(r.Context(), claims)
		if err != nil {
			writeUnauthorized(w, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), currentUserContextKey, &user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// BearerToken extracts the token from an Authorization header.
func BearerToken(r *http.Request) (string, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return "", false
	}

	token := strings.TrimSpace(header[7:])
	if token == "" {
		return "", false
	}
	return token, true
}

func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(currentUserContextKey).(*model.User)
	return user, ok
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)

	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}
