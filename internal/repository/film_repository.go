// Package repository contains data access logic for the film catalog. This
// file defines the Film model and repository methods for films. Genre and
// cast are logical string sequences; they are persisted as comma-joined TEXT
// columns because list segments are trimmed of commas during normalization
// before they ever reach this layer.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

// Film mirrors the 'films' table.
type Film struct {
	ID          uint64
	Title       string
	Description string
	ReleaseYear int
	Genre       []string
	Director    string
	Cast        []string
	Rating      float64
	Duration    int // minutes
	PosterURL   string
	CreatedAt   time.Time
}

// FilmRepo manages persistence for films.
type FilmRepo struct{ DB *sql.DB }

func NewFilmRepo(db *sql.DB) *FilmRepo { return &FilmRepo{DB: db} }

// Create inserts a film and populates its ID. Callers are expected to have
// normalized the list fields and validated numeric ranges already.
func (r *FilmRepo) Create(ctx context.Context, f *Film) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO films (title, description, release_year, genre, director, `cast`, rating, duration, poster_url) VALUES (?,?,?,?,?,?,?,?,?)",
		f.Title, f.Description, f.ReleaseYear, joinList(f.Genre), f.Director, joinList(f.Cast), f.Rating, f.Duration, f.PosterURL)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = uint64(id)
	return nil
}

// Count returns the total number of films in the catalog.
func (r *FilmRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM films").Scan(&n)
	return n, err
}

// HighestRated returns the film with the maximum rating. Ties break toward
// the most recently inserted film (highest id). Returns ErrNoFilms on an
// empty catalog.
func (r *FilmRepo) HighestRated(ctx context.Context) (Film, error) {
	var (
		f           Film
		genre, cast string
	)
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,title,description,release_year,genre,director,`cast`,rating,duration,poster_url,created_at FROM films ORDER BY rating DESC, id DESC LIMIT 1").
		Scan(&f.ID, &f.Title, &f.Description, &f.ReleaseYear, &genre, &f.Director, &cast, &f.Rating, &f.Duration, &f.PosterURL, &f.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Film{}, ErrNoFilms
	}
	if err != nil {
		return Film{}, err
	}
	f.Genre = splitList(genre)
	f.Cast = splitList(cast)
	return f, nil
}

func joinList(vs []string) string { return strings.Join(vs, ", ") }

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
