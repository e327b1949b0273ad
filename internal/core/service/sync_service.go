package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/filmoteca/movie-catalog/internal/core/domain"
	"github.com/filmoteca/movie-catalog/internal/core/ports"
)

// SyncService pulls the external film list and inserts the titles the
// catalog does not have yet. Titles are compared by exact string equality.
type SyncService struct {
	source ports.FilmSource
	movies ports.MovieRepository
	lock   ports.SyncLock
	log    zerolog.Logger
}

func NewSyncService(source ports.FilmSource, movies ports.MovieRepository, lock ports.SyncLock, log zerolog.Logger) *SyncService {
	return &SyncService{source: source, movies: movies, lock: lock, log: log}
}

// Sync fetches the external catalog, diffs it against existing titles, and
// inserts each new movie with a separate create call. The insert loop is not
// transactional: a failure after N inserts leaves those N movies persisted
// and surfaces the error.
func (s *SyncService) Sync(ctx context.Context) (int, error) {
	if s.lock != nil {
		acquired, err := s.lock.Acquire(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("sync lock unavailable, proceeding without it")
		} else if !acquired {
			return 0, domain.ErrSyncInProgress
		} else {
			defer func() {
				if err := s.lock.Release(ctx); err != nil {
					s.log.Warn().Err(err).Msg("failed to release sync lock")
				}
			}()
		}
	}

	incoming, err := s.fetchCatalog(ctx)
	if err != nil {
		return 0, err
	}

	titles := make([]string, len(incoming))
	for i, m := range incoming {
		titles[i] = m.Title
	}

	existing, err := s.movies.FindByTitles(ctx, titles)
	if err != nil {
		return 0, fmt.Errorf("sync: lookup existing titles: %w", err)
	}

	known := make(map[string]struct{}, len(existing))
	for _, m := range existing {
		known[m.Title] = struct{}{}
	}

	inserted := 0
	for _, movie := range incoming {
		if _, ok := known[movie.Title]; ok {
			continue
		}
		if _, err := s.movies.Create(ctx, movie); err != nil {
			return inserted, fmt.Errorf("sync: insert %q: %w", movie.Title, err)
		}
		inserted++
	}

	s.log.Info().Int("fetched", len(incoming)).Int("inserted", inserted).Msg("catalog sync finished")
	return inserted, nil
}

// fetchCatalog retrieves the full external list and adapts every record.
// A malformed record aborts the run rather than being skipped.
func (s *SyncService) fetchCatalog(ctx context.Context) ([]*domain.Movie, error) {
	films, err := s.source.FetchFilms(ctx)
	if err != nil {
		return nil, err
	}

	movies := make([]*domain.Movie, 0, len(films))
	for _, f := range films {
		movie, err := adaptFilm(f)
		if err != nil {
			return nil, err
		}
		movies = append(movies, movie)
	}
	return movies, nil
}

// adaptFilm maps an external film record into the catalog shape, renaming
// the opening crawl to the movie description.
func adaptFilm(f ports.Film) (*domain.Movie, error) {
	if f.Title == "" {
		return nil, fmt.Errorf("%w: missing title", domain.ErrAdaptFilm)
	}
	return &domain.Movie{
		Title:       f.Title,
		Director:    f.Director,
		Producer:    f.Producer,
		ReleaseDate: f.ReleaseDate,
		Description: f.OpeningCrawl,
	}, nil
}
