package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/filmoteca/movie-catalog/internal/core/domain"
	"github.com/filmoteca/movie-catalog/internal/core/ports"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// MovieService implements catalog CRUD with pagination.
type MovieService struct {
	repo   ports.MovieRepository
	logger zerolog.Logger
}

func NewMovieService(repo ports.MovieRepository, logger zerolog.Logger) *MovieService {
	return &MovieService{repo: repo, logger: logger}
}

func (s *MovieService) Create(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
	movie := &domain.Movie{
		Title:       input.Title,
		Director:    input.Director,
		Producer:    input.Producer,
		ReleaseDate: input.ReleaseDate,
		Description: input.Description,
	}

	created, err := s.repo.Create(ctx, movie)
	if err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("failed to create movie")
		return nil, err
	}

	s.logger.Info().Str("movie_id", created.ID).Str("title", created.Title).Msg("movie created")
	return created, nil
}

func (s *MovieService) Get(ctx context.Context, id string) (*domain.Movie, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *MovieService) List(ctx context.Context, input ports.PageInput) (*ports.MovieList, error) {
	page, limit := normalizePage(input)

	items, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	return &ports.MovieList{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// Update fetches the movie, merges the provided fields, and persists the
// result. A missing id propagates domain.ErrMovieNotFound without a write.
func (s *MovieService) Update(ctx context.Context, id string, input ports.UpdateMovieInput) (*domain.Movie, error) {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		movie.Title = *input.Title
	}
	if input.Director != nil {
		movie.Director = *input.Director
	}
	if input.Producer != nil {
		movie.Producer = *input.Producer
	}
	if input.ReleaseDate != nil {
		movie.ReleaseDate = *input.ReleaseDate
	}
	if input.Description != nil {
		movie.Description = *input.Description
	}

	if err := s.repo.Update(ctx, movie); err != nil {
		return nil, err
	}

	s.logger.Info().Str("movie_id", movie.ID).Msg("movie updated")
	return movie, nil
}

func (s *MovieService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("movie_id", id).Msg("movie deleted")
	return nil
}

func normalizePage(input ports.PageInput) (page, limit int) {
	page = input.Page
	if page < 1 {
		page = 1
	}
	limit = input.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
