package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/film-vault/internal/middleware"
	"github.com/iliyamo/film-vault/internal/queue"
	"github.com/iliyamo/film-vault/internal/service"
	"github.com/iliyamo/film-vault/internal/session"
)

// FilmHandler serves the add-film form and processes submissions. Publish
// defaults to the RabbitMQ publisher; tests substitute their own.
type FilmHandler struct {
	Catalog *service.CatalogService
	Publish func(ctx context.Context, event queue.FilmAddedEvent) error
}

func NewFilmHandler(catalog *service.CatalogService) *FilmHandler {
	return &FilmHandler{Catalog: catalog, Publish: queue.PublishFilmAdded}
}

type filmReq struct {
	Title       string   `form:"title"`
	Description string   `form:"description"`
	ReleaseYear string   `form:"releaseYear"`
	Genre       []string `form:"genre"`
	Director    string   `form:"director"`
	Cast        []string `form:"cast"`
	Rating      string   `form:"rating"`
	Duration    string   `form:"duration"`
	PosterURL   string   `form:"posterUrl"`
}

// Form renders the add-film form.
func (h *FilmHandler) Form(c echo.Context) error {
	return c.HTML(http.StatusOK, filmFormPage("", nil))
}

// Add validates and persists a film, then redirects to /welcome. After a
// successful insert a film.added event is published best-effort; a broker
// fault never fails the request.
func (h *FilmHandler) Add(c echo.Context) error {
	var req filmReq
	if err := c.Bind(&req); err != nil {
		return c.HTML(http.StatusBadRequest, filmFormPage("Invalid form submission", nil))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	f, err := h.Catalog.Add(ctx, service.FilmInput{
		Title:       req.Title,
		Description: req.Description,
		ReleaseYear: req.ReleaseYear,
		Genre:       req.Genre,
		Director:    req.Director,
		Cast:        req.Cast,
		Rating:      req.Rating,
		Duration:    req.Duration,
		PosterURL:   req.PosterURL,
	})
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return c.HTML(http.StatusBadRequest, filmFormPage("Please fix the following errors:", verr.Fields))
		}
		log.Printf("add film failed: %v", err)
		return c.HTML(http.StatusInternalServerError, filmFormPage("Something went wrong. Please try again.", nil))
	}

	u, _ := c.Get(middleware.UserContextKey).(session.UserSummary)
	_ = h.Publish(ctx, queue.FilmAddedEvent{
		FilmID:  f.ID,
		Title:   f.Title,
		Genre:   f.Genre,
		Rating:  f.Rating,
		AddedBy: u.Email,
		AddedAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.Redirect(http.StatusFound, "/welcome")
}
