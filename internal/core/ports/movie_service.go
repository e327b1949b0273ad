package ports

import (
	"context"

	"github.com/filmoteca/movie-catalog/internal/core/domain"
)

// CreateMovieInput carries all data needed to add a movie to the catalog.
type CreateMovieInput struct {
	Title       string
	Director    string
	Producer    string
	ReleaseDate string
	Description string
}

// UpdateMovieInput carries a partial update; nil fields are left untouched.
type UpdateMovieInput struct {
	Title       *string
	Director    *string
	Producer    *string
	ReleaseDate *string
	Description *string
}

// PageInput carries pagination parameters (1-based page).
type PageInput struct {
	Page  int
	Limit int
}

// MovieList is a page of movies plus pagination metadata.
type MovieList struct {
	Items      []*domain.Movie
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// MovieService defines use-case operations over the catalog.
type MovieService interface {
	Create(ctx context.Context, input CreateMovieInput) (*domain.Movie, error)
	Get(ctx context.Context, id string) (*domain.Movie, error)
	List(ctx context.Context, input PageInput) (*MovieList, error)
	Update(ctx context.Context, id string, input UpdateMovieInput) (*domain.Movie, error)
	Delete(ctx context.Context, id string) error
}
