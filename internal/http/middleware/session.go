package middleware

import (
	"context"
	"net/http"

	"euroasia/internal/common"
	"euroasia/internal/domain/session"
	"euroasia/internal/http/response"
)

// SessionChecker is what the gate needs from the auth service.
type SessionChecker interface {
	Check(ctx context.Context, token string) bool
}

type SessionMiddleware struct {
	checker SessionChecker
}

func NewSessionMiddleware(checker SessionChecker) *SessionMiddleware {
	return &SessionMiddleware{checker: checker}
}

// RequireAdmin guards API mutations: a missing or invalid session marker
// yields a 401 JSON error.
func (m *SessionMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.checker.Check(r.Context(), TokenFromRequest(r)) {
			response.Error(w, common.NewError(common.CodeUnauthorized, "authentication required", nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GateAdminPages guards admin page navigations, deep links included:
// anonymous requests are redirected to the public landing page before
// anything renders.
func (m *SessionMiddleware) GateAdminPages(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.checker.Check(r.Context(), TokenFromRequest(r)) {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func TokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
