package auth

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

// UserIDKey carries the authenticated user's id through request contexts on
// the drawing API.
const UserIDKey contextKey = "drawdeck.userID"

// AuthMiddleware guards the drawing API: every request needs a bearer token
// minted by Login or Register. The authenticated user id lands on the request
// context for the handlers' ownership checks.
func (s *Service) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			return
		}

		userID, err := s.ValidateToken(token)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from the Authorization header. The scheme
// match is case-insensitive per RFC 7235.
func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}

// UserIDFromContext returns the authenticated user id, empty when the request
// never passed the middleware.
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}
