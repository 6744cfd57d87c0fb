package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/film-vault/internal/middleware"
	"github.com/iliyamo/film-vault/internal/service"
	"github.com/iliyamo/film-vault/internal/session"
)

// PageHandler serves the rendered pages: the login and signup forms and the
// authenticated welcome page with its catalog aggregates.
type PageHandler struct {
	Catalog *service.CatalogService
}

func NewPageHandler(catalog *service.CatalogService) *PageHandler {
	return &PageHandler{Catalog: catalog}
}

// Index renders the login form. The RedirectIfAuthenticated guard has
// already bounced logged-in users to /welcome before this runs.
func (h *PageHandler) Index(c echo.Context) error {
	return c.HTML(http.StatusOK, loginPage("", ""))
}

// SignupForm renders the signup form.
func (h *PageHandler) SignupForm(c echo.Context) error {
	return c.HTML(http.StatusOK, signupPage("", nil))
}

// Welcome renders the catalog aggregates: total film count and, when the
// catalog is not empty, the highest-rated film. Any catalog read fault is a
// 500 with a generic message.
func (h *PageHandler) Welcome(c echo.Context) error {
	u, _ := c.Get(middleware.UserContextKey).(session.UserSummary)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	total, err := h.Catalog.Count(ctx)
	if err != nil {
		log.Printf("film count failed: %v", err)
		return c.HTML(http.StatusInternalServerError, page("Error", "<p>Something went wrong. Please try again.</p>"))
	}
	top, hasTop, err := h.Catalog.HighestRated(ctx)
	if err != nil {
		log.Printf("highest-rated lookup failed: %v", err)
		return c.HTML(http.StatusInternalServerError, page("Error", "<p>Something went wrong. Please try again.</p>"))
	}
	return c.HTML(http.StatusOK, welcomePage(u, total, top, hasTop))
}
