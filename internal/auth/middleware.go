package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/jobdeck/jobdeck/internal/platform/httpx"
	"github.com/jobdeck/jobdeck/internal/shared"
)

// Middleware gates protected routes behind bearer token verification. On
// success it attaches the caller identity to the request context; every
// failure mode responds 401 with the same body.
type Middleware struct {
	Tokens *TokenManager
	Logger *slog.Logger
}

// RequireUser verifies the Authorization header before invoking the next
// handler.
func (m Middleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			httpx.RespondError(w, shared.ErrUnauthenticated)
			return
		}
		claims, err := m.Tokens.Verify(token)
		if err != nil {
			if m.Logger != nil {
				m.Logger.Warn("token verification failed", slog.String("path", r.URL.Path))
			}
			httpx.RespondError(w, shared.ErrUnauthenticated)
			return
		}
		ctx := shared.ContextWithIdentity(r.Context(), shared.Identity{
			UserID: claims.UserID,
			Name:   claims.Name,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
