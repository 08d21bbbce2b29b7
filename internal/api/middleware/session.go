package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront-gateway/internal/errors"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/session"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/utils/response"
	"github.com/google/uuid"
)

type contextKey uuid.UUID

var SessionContextKey = contextKey(uuid.New())

// SessionEntry is what RequireUser puts in the request context: the decoded
// session plus the raw bearer token for calls the backend authenticates.
type SessionEntry struct {
	Session *session.Session
	Token   string
}

type SessionMiddleware struct {
	manager *session.Manager
}

func NewSessionMiddleware(manager *session.Manager) *SessionMiddleware {
	return &SessionMiddleware{manager: manager}
}

// Attach decodes the session cookies when present. A malformed session is
// treated as anonymous, never as an error; public routes stay reachable.
func (m *SessionMiddleware) Attach(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess, token, ok := m.manager.FromRequest(r)
		if !ok {
			next.ServeHTTP(w, r)

			return
		}

		logger := LoggerFromContext(r.Context()).With(slog.Int64("userId", sess.UserID))

		ctx := context.WithValue(r.Context(), SessionContextKey, &SessionEntry{Session: sess, Token: token})
		ctx = context.WithValue(ctx, loggerKey, logger)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func (m *SessionMiddleware) RequireUser(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if _, ok := EntryFromContext(r.Context()); !ok {
			LoggerFromContext(r.Context()).Warn("Unauthenticated request to protected route")
			response.Error(w, errors.UnauthorizedError("Please sign in to continue"))

			return
		}

		next.ServeHTTP(w, r)
	}
}

func (m *SessionMiddleware) RequireAdmin(next http.Handler) http.HandlerFunc {
	return m.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		entry, _ := EntryFromContext(r.Context())

		if !entry.Session.IsAdmin() {
			LoggerFromContext(r.Context()).Warn("Non-admin request to admin route")
			response.Error(w, errors.ForbiddenError("Admin access required"))

			return
		}

		next.ServeHTTP(w, r)
	}))
}

func EntryFromContext(ctx context.Context) (*SessionEntry, bool) {
	entry, ok := ctx.Value(SessionContextKey).(*SessionEntry)

	return entry, ok
}

// WithSessionEntry is for tests building pre-authenticated requests.
func WithSessionEntry(ctx context.Context, entry *SessionEntry) context.Context {
	return context.WithValue(ctx, SessionContextKey, entry)
}
