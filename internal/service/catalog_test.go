package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/film-vault/internal/repository"
)

// fakeFilms is an in-memory FilmStore mirroring the repository's aggregate
// semantics: HighestRated scans for the maximum rating with ties breaking
// toward the most recently inserted film.
type fakeFilms struct {
	mu    sync.Mutex
	films []repository.Film

	createErr error
}

func (f *fakeFilms) Create(_ context.Context, film *repository.Film) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	film.ID = uint64(len(f.films) + 1)
	f.films = append(f.films, *film)
	return nil
}

func (f *fakeFilms) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.films)), nil
}

func (f *fakeFilms) HighestRated(_ context.Context) (repository.Film, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.films) == 0 {
		return repository.Film{}, repository.ErrNoFilms
	}
	best := f.films[0]
	for _, film := range f.films[1:] {
		if film.Rating >= best.Rating {
			best = film
		}
	}
	return best, nil
}

func validFilm() FilmInput {
	return FilmInput{
		Title:       "Interstellar",
		Description: "A space epic",
		ReleaseYear: "2014",
		Genre:       []string{"Sci-Fi, Drama"},
		Director:    "Christopher Nolan",
		Cast:        []string{"Matthew McConaughey, Anne Hathaway"},
		Rating:      "8.7",
		Duration:    "169",
		PosterURL:   "https://example.com/poster.jpg",
	}
}

func TestNormalizeList(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{"comma-delimited single value", []string{"Drama, Comedy"}, []string{"Drama", "Comedy"}},
		{"already a sequence", []string{"Drama"}, []string{"Drama"}},
		{"sequence of several values", []string{"Drama", "Comedy"}, []string{"Drama", "Comedy"}},
		{"mixed delimiters and spacing", []string{" Action,  Thriller ", "Noir"}, []string{"Action", "Thriller", "Noir"}},
		{"empty segments dropped", []string{"Drama,,  ,Comedy"}, []string{"Drama", "Comedy"}},
		{"nil input", nil, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, NormalizeList(tc.in))
		})
	}
}

func TestCatalogAdd_NormalizesListFields(t *testing.T) {
	t.Parallel()

	store := &fakeFilms{}
	svc := NewCatalogService(store)

	f, err := svc.Add(context.Background(), validFilm())
	require.NoError(t, err)
	require.Equal(t, []string{"Sci-Fi", "Drama"}, f.Genre)
	require.Equal(t, []string{"Matthew McConaughey", "Anne Hathaway"}, f.Cast)
	require.Equal(t, 2014, f.ReleaseYear)
	require.Equal(t, 8.7, f.Rating)
	require.Equal(t, 169, f.Duration)
	require.NotZero(t, f.ID)
}

func TestCatalogAdd_ValidationFailures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*FilmInput)
		field  string
	}{
		{"missing title", func(in *FilmInput) { in.Title = " " }, "title"},
		{"rating above 10", func(in *FilmInput) { in.Rating = "10.1" }, "rating"},
		{"rating below 0", func(in *FilmInput) { in.Rating = "-1" }, "rating"},
		{"rating not a number", func(in *FilmInput) { in.Rating = "great" }, "rating"},
		{"zero duration", func(in *FilmInput) { in.Duration = "0" }, "duration"},
		{"negative year", func(in *FilmInput) { in.ReleaseYear = "-2014" }, "releaseYear"},
		{"year not a number", func(in *FilmInput) { in.ReleaseYear = "MMXIV" }, "releaseYear"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := &fakeFilms{}
			svc := NewCatalogService(store)
			in := validFilm()
			tc.mutate(&in)

			_, err := svc.Add(context.Background(), in)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Contains(t, verr.Fields, tc.field)

			n, err := svc.Count(context.Background())
			require.NoError(t, err)
			require.Zero(t, n, "no film may be stored on validation failure")
		})
	}
}

func TestCatalogAdd_RatingBoundsInclusive(t *testing.T) {
	t.Parallel()

	store := &fakeFilms{}
	svc := NewCatalogService(store)

	for _, rating := range []string{"0", "10"} {
		in := validFilm()
		in.Title = "Boundary " + rating
		in.Rating = rating
		_, err := svc.Add(context.Background(), in)
		require.NoError(t, err, "rating %s is inside the [0,10] domain", rating)
	}
}

func TestCatalogAdd_PersistenceFaultPassesThrough(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk full")
	svc := NewCatalogService(&fakeFilms{createErr: boom})

	_, err := svc.Add(context.Background(), validFilm())
	require.ErrorIs(t, err, boom)
}

func TestCatalogHighestRated(t *testing.T) {
	t.Parallel()

	store := &fakeFilms{}
	svc := NewCatalogService(store)

	// Empty catalog: no film, no error.
	_, ok, err := svc.HighestRated(context.Background())
	require.NoError(t, err)
	require.False(t, ok)

	first := validFilm()
	first.Title = "Good"
	first.Rating = "8.5"
	_, err = svc.Add(context.Background(), first)
	require.NoError(t, err)

	top, ok, err := svc.HighestRated(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Good", top.Title)

	// A new maximum displaces the old one.
	second := validFilm()
	second.Title = "Perfect"
	second.Rating = "10"
	_, err = svc.Add(context.Background(), second)
	require.NoError(t, err)

	top, ok, err = svc.HighestRated(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Perfect", top.Title)

	n, err := svc.Count(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
}
