// Package router defines how HTTP routes are registered for the
// application. Routes fall into three groups: the public login/signup
// surfaces (guarded so logged-in users are bounced to /welcome), the
// session-only pages behind RequireAuth, and unguarded plumbing such as
// login, logout and the health check.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/film-vault/internal/handler"
	"github.com/iliyamo/film-vault/internal/middleware"
	"github.com/iliyamo/film-vault/internal/session"
)

// Register wires every route of the application onto the provided Echo
// instance. The session manager backs both guards; handlers receive their
// dependencies through the handler structs.
func Register(e *echo.Echo, sessions *session.Manager, auth *handler.AuthHandler, pages *handler.PageHandler, films *handler.FilmHandler) {
	e.GET("/healthz", handler.Health)

	// Anonymous surfaces: an authenticated browser is redirected to
	// /welcome instead of seeing the forms again.
	anon := middleware.RedirectIfAuthenticated(sessions)
	e.GET("/", pages.Index, anon)
	e.GET("/signup", pages.SignupForm, anon)
	e.POST("/signup", auth.Signup, anon)

	// Login and logout carry no guard: login decides from credentials,
	// logout must work regardless of session health.
	e.POST("/login", auth.Login)
	e.GET("/logout", auth.Logout)

	// Protected pages. RequireAuth redirects anonymous requests to "/".
	authed := middleware.RequireAuth(sessions)
	e.GET("/welcome", pages.Welcome, authed)
	e.GET("/films/add", films.Form, authed)
	e.POST("/films/add", films.Add, authed)
}
