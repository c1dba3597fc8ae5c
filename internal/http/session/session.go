// Package session authenticates requests and carries the caller's account
// id through the request context. Handlers never see tokens, only the owner
// identity.
package session

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/paynote/paynote/internal/auth"
	"github.com/paynote/paynote/internal/http/render"
)

// CookieName is the session cookie set on login and cleared on logout.
const CookieName = "auth_token"

type contextKey struct{}

// Middleware rejects requests without a valid session token and stores the
// authenticated owner's id in the request context. The token is read from
// the session cookie, falling back to an Authorization bearer header.
func Middleware(svc *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				render.Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			owner, err := svc.VerifyToken(token)
			if err != nil {
				render.Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), contextKey{}, owner)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value
	}

	header := r.Header.Get("Authorization")

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return parts[1]
}

// Owner returns the authenticated account id placed by Middleware.
// It is uuid.Nil on routes outside the middleware.
func Owner(ctx context.Context) uuid.UUID {
	owner, _ := ctx.Value(contextKey{}).(uuid.UUID)
	return owner
}

// SetCookie attaches the session token to the response.
func SetCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie.
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
