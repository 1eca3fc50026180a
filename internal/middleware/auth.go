package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shoplite/api/internal/auth"
)

type contextKey string

const identityKey contextKey = "identity"

// BearerAuth middleware verifies the bearer token on every request and puts
// the decoded claims into the request context. Routes registered without it
// (register, login, health) stay public.
func BearerAuth(tokens *auth.TokenService, logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				writeAuthError(w, "Missing token")
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				logger.Warn("token verification failed", "error", err)
				writeAuthError(w, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext returns the claims attached by BearerAuth
func IdentityFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(identityKey).(*auth.Claims)
	return claims, ok
}

// WithIdentity attaches claims to a context the same way BearerAuth does
func WithIdentity(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, identityKey, claims)
}

// bearerToken extracts the credential from an "Authorization: Bearer <token>"
// header. A missing header or missing second field yields "".
func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
