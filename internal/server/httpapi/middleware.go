package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/esavelyev/accountd/internal/server/users"
)

type ctxKey string

const userKey ctxKey = "user"

// authenticate guards protected routes. It extracts the bearer token from
// the Authorization header, resolves it to a stored user, and puts the
// record on the request context. Every failure collapses to 401 for the
// caller; the internal cause (missing header, expired, malformed, stale
// token) is only logged.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		token, ok := bearerToken(r)
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		user, err := s.users.CurrentUser(r.Context(), token)
		if err != nil {
			s.logger.Debug(r.Context(), "token rejected", "error", err.Error())
			respondWithError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(contextWithUser(r.Context(), user)))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}

func contextWithUser(ctx context.Context, user *users.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func userFromContext(ctx context.Context) (*users.User, bool) {
	user, ok := ctx.Value(userKey).(*users.User)
	return user, ok
}
