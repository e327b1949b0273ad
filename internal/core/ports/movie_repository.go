package ports

import (
	"context"

	"github.com/filmoteca/movie-catalog/internal/core/domain"
)

// MovieRepository defines persistence operations for catalog movies.
type MovieRepository interface {
	Create(ctx context.Context, m *domain.Movie) (*domain.Movie, error)
	FindByID(ctx context.Context, id string) (*domain.Movie, error)
	// FindByTitles returns every stored movie whose title exactly matches one
	// of the given titles (case-sensitive). Used by the sync pre-check.
	FindByTitles(ctx context.Context, titles []string) ([]*domain.Movie, error)
	// List returns a page of movies and the total count.
	List(ctx context.Context, page, limit int) ([]*domain.Movie, int64, error)
	Update(ctx context.Context, m *domain.Movie) error
	Delete(ctx context.Context, id string) error
}
