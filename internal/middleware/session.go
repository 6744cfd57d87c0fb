// Package middleware contains the request guards that gate routes on
// session state. Guards are pure readers: they decide continue-vs-redirect
// from the session at call time and never mutate it.
package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/film-vault/internal/session"
)

// CookieName is the cookie that transports the opaque session token.
const CookieName = "fv_session"

// UserContextKey is where guards stash the resolved user summary so
// handlers can read it via c.Get without a second store round trip.
const UserContextKey = "session_user"

// RequireAuth lets authenticated requests through and redirects everyone
// else to the login surface at "/".
func RequireAuth(m *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u, ok := currentUser(c, m)
			if !ok {
				return c.Redirect(http.StatusFound, "/")
			}
			c.Set(UserContextKey, u)
			return next(c)
		}
	}
}

// RedirectIfAuthenticated sends already-logged-in users to "/welcome" and
// lets anonymous requests continue to the login/signup surfaces.
func RedirectIfAuthenticated(m *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if u, ok := currentUser(c, m); ok {
				c.Set(UserContextKey, u)
				return c.Redirect(http.StatusFound, "/welcome")
			}
			return next(c)
		}
	}
}

// currentUser resolves the session cookie to a user summary. Missing
// cookie, unknown token and store faults all read as "not logged in";
// faults are logged so an unhealthy store is visible without turning every
// page view into a 500.
func currentUser(c echo.Context, m *session.Manager) (session.UserSummary, bool) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return session.UserSummary{}, false
	}
	u, err := m.Current(c.Request().Context(), cookie.Value)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			log.Printf("session lookup failed: %v", err)
		}
		return session.UserSummary{}, false
	}
	return u, true
}
