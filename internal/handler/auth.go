package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/film-vault/internal/middleware"
	"github.com/iliyamo/film-vault/internal/repository"
	"github.com/iliyamo/film-vault/internal/service"
	"github.com/iliyamo/film-vault/internal/session"
)

// AuthHandler bundles dependencies for the signup/login/logout endpoints.
type AuthHandler struct {
	Auth     *service.AuthService
	Sessions *session.Manager
}

func NewAuthHandler(auth *service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{Auth: auth, Sessions: sessions}
}

// ----- DTOs -----

type signupReq struct {
	FirstName       string `form:"firstName"`
	LastName        string `form:"lastName"`
	Email           string `form:"email"`
	Mobile          string `form:"mobile"`
	Gender          string `form:"gender"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirmPassword"`
}

type loginReq struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// Signup: validate, create the user, start a session and send the browser
// to "/". Classifiable failures re-render the signup form with a 400.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.HTML(http.StatusBadRequest, signupPage("Invalid form submission", nil))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	token, _, err := h.Auth.Signup(ctx, service.SignupInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Mobile:          req.Mobile,
		Gender:          req.Gender,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.Is(err, service.ErrPasswordMismatch):
			return c.HTML(http.StatusBadRequest, signupPage("Passwords do not match", nil))
		case errors.Is(err, repository.ErrEmailExists):
			return c.HTML(http.StatusBadRequest, signupPage("Email already registered", nil))
		case errors.As(err, &verr):
			return c.HTML(http.StatusBadRequest, signupPage("Please fix the following errors:", verr.Fields))
		default:
			log.Printf("signup failed: %v", err)
			return c.HTML(http.StatusInternalServerError, signupPage("Something went wrong. Please try again.", nil))
		}
	}

	h.setSessionCookie(c, token)
	return c.Redirect(http.StatusFound, "/")
}

// Login: verify credentials, start a session and send the browser to
// "/welcome". Both unknown email and wrong password render the same 400.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.HTML(http.StatusBadRequest, loginPage("Invalid form submission", ""))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	token, _, err := h.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.HTML(http.StatusBadRequest, loginPage("Invalid email or password", req.Email))
		}
		log.Printf("login failed: %v", err)
		return c.HTML(http.StatusInternalServerError, loginPage("Something went wrong. Please try again.", req.Email))
	}

	h.setSessionCookie(c, token)
	return c.Redirect(http.StatusFound, "/welcome")
}

// Logout destroys the server-side session before the redirect is written,
// so a follow-up request with the stale cookie is unauthenticated. A store
// fault surfaces as a 500 rather than silently succeeding.
func (h *AuthHandler) Logout(c echo.Context) error {
	cookie, err := c.Cookie(middleware.CookieName)
	if err == nil && cookie.Value != "" {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()
		if err := h.Sessions.Destroy(ctx, cookie.Value); err != nil {
			log.Printf("logout failed: %v", err)
			return c.HTML(http.StatusInternalServerError, page("Error", "<p>Error logging out</p>"))
		}
	}
	h.clearSessionCookie(c)
	return c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.Sessions.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
