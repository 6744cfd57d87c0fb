package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/iliyamo/film-vault/internal/repository"
)

// FilmStore is the subset of repository.FilmRepo the catalog service needs.
type FilmStore interface {
	Create(ctx context.Context, f *repository.Film) error
	Count(ctx context.Context) (int64, error)
	HighestRated(ctx context.Context) (repository.Film, error)
}

// CatalogService owns film normalization, validation and the aggregate
// queries rendered on the welcome page.
type CatalogService struct {
	films FilmStore
}

func NewCatalogService(films FilmStore) *CatalogService {
	return &CatalogService{films: films}
}

// FilmInput carries raw film form fields. Numeric fields arrive as strings
// so validation can produce one message per field instead of a bind error.
// Genre and Cast accept either repeated form values or a single
// comma-delimited value.
type FilmInput struct {
	Title       string
	Description string
	ReleaseYear string
	Genre       []string
	Director    string
	Cast        []string
	Rating      string
	Duration    string
	PosterURL   string
}

// NormalizeList flattens raw list values into an ordered sequence: every
// value is split on commas and each segment trimmed, so "Drama, Comedy"
// becomes ["Drama","Comedy"] while ["Drama"] passes through unchanged.
// Empty segments are dropped.
func NormalizeList(vs []string) []string {
	var out []string
	for _, v := range vs {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Add validates and normalizes the input, then persists the film. Returns
// *ValidationError for bad fields; any persistence fault passes through
// unclassified. No partially-written film is ever visible to readers: the
// row either commits whole or not at all.
func (s *CatalogService) Add(ctx context.Context, in FilmInput) (repository.Film, error) {
	fields := map[string]string{}

	if strings.TrimSpace(in.Title) == "" {
		fields["title"] = "Title is required"
	}

	year, err := strconv.Atoi(strings.TrimSpace(in.ReleaseYear))
	if err != nil || year <= 0 {
		fields["releaseYear"] = "Release year must be a positive number"
	}

	rating, err := strconv.ParseFloat(strings.TrimSpace(in.Rating), 64)
	if err != nil || rating < 0 || rating > 10 {
		fields["rating"] = "Rating must be between 0 and 10"
	}

	duration, err := strconv.Atoi(strings.TrimSpace(in.Duration))
	if err != nil || duration <= 0 {
		fields["duration"] = "Duration must be a positive number of minutes"
	}

	if len(fields) > 0 {
		return repository.Film{}, &ValidationError{Fields: fields}
	}

	f := repository.Film{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		ReleaseYear: year,
		Genre:       NormalizeList(in.Genre),
		Director:    strings.TrimSpace(in.Director),
		Cast:        NormalizeList(in.Cast),
		Rating:      rating,
		Duration:    duration,
		PosterURL:   strings.TrimSpace(in.PosterURL),
	}
	if err := s.films.Create(ctx, &f); err != nil {
		return repository.Film{}, err
	}
	return f, nil
}

// Count returns the total number of films.
func (s *CatalogService) Count(ctx context.Context) (int64, error) {
	return s.films.Count(ctx)
}

// HighestRated returns the top-rated film and whether one exists. An empty
// catalog is not an error.
func (s *CatalogService) HighestRated(ctx context.Context) (repository.Film, bool, error) {
	f, err := s.films.HighestRated(ctx)
	if errors.Is(err, repository.ErrNoFilms) {
		return repository.Film{}, false, nil
	}
	if err != nil {
		return repository.Film{}, false, err
	}
	return f, true, nil
}
