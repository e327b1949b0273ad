package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/filmoteca/movie-catalog/internal/core/domain"
	"github.com/filmoteca/movie-catalog/internal/core/ports"
)

type stubFilmSource struct {
	films []ports.Film
	err   error
}

func (s *stubFilmSource) FetchFilms(_ context.Context) ([]ports.Film, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.films, nil
}

type stubSyncLock struct {
	held       bool
	acquireErr error
	released   int
}

func (l *stubSyncLock) Acquire(_ context.Context) (bool, error) {
	if l.acquireErr != nil {
		return false, l.acquireErr
	}
	return !l.held, nil
}

func (l *stubSyncLock) Release(_ context.Context) error {
	l.released++
	return nil
}

func TestSyncService_InsertsOnlyNewTitles(t *testing.T) {
	repo := newStubMovieRepo()
	if _, err := repo.Create(context.Background(), &domain.Movie{Title: "A New Hope"}); err != nil {
		t.Fatalf("seed movie: %v", err)
	}

	source := &stubFilmSource{films: []ports.Film{
		{Title: "A New Hope", Director: "George Lucas"},
		{Title: "Star Wars", Director: "George Lucas", OpeningCrawl: "A long time ago..."},
	}}
	svc := NewSyncService(source, repo, nil, zerolog.Nop())

	inserted, err := svc.Sync(context.Background())
	if err != nil {
		t.Fatalf("Sync returned error: %v", err)
	}
	if inserted != 1 {
		t.Fatalf("expected 1 insert, got %d", inserted)
	}

	stored, err := repo.FindByTitles(context.Background(), []string{"Star Wars"})
	if err != nil || len(stored) != 1 {
		t.Fatalf("expected one stored movie, got %v (%v)", stored, err)
	}
	if stored[0].Description != "A long time ago..." {
		t.Fatalf("expected opening crawl mapped to description, got %q", stored[0].Description)
	}
}

func TestSyncService_SecondRunIsNoOp(t *testing.T) {
	repo := newStubMovieRepo()
	source := &stubFilmSource{films: []ports.Film{
		{Title: "A New Hope"},
		{Title: "The Empire Strikes Back"},
	}}
	svc := NewSyncService(source, repo, nil, zerolog.Nop())

	if inserted, err := svc.Sync(context.Background()); err != nil || inserted != 2 {
		t.Fatalf("first run: inserted=%d err=%v", inserted, err)
	}
	if inserted, err := svc.Sync(context.Background()); err != nil || inserted != 0 {
		t.Fatalf("second run should insert nothing: inserted=%d err=%v", inserted, err)
	}
	if len(repo.movies) != 2 {
		t.Fatalf("expected 2 movies after both runs, got %d", len(repo.movies))
	}
}

func TestSyncService_MalformedRecordAbortsRun(t *testing.T) {
	repo := newStubMovieRepo()
	source := &stubFilmSource{films: []ports.Film{
		{Title: "A New Hope"},
		{Director: "George Lucas"}, // no title
	}}
	svc := NewSyncService(source, repo, nil, zerolog.Nop())

	_, err := svc.Sync(context.Background())
	if !errors.Is(err, domain.ErrAdaptFilm) {
		t.Fatalf("expected ErrAdaptFilm, got %v", err)
	}
	if len(repo.movies) != 0 {
		t.Fatalf("malformed upstream data must not insert anything, got %d movies", len(repo.movies))
	}
}

func TestSyncService_UpstreamFailure(t *testing.T) {
	repo := newStubMovieRepo()
	source := &stubFilmSource{err: domain.ErrUpstream}
	svc := NewSyncService(source, repo, nil, zerolog.Nop())

	if _, err := svc.Sync(context.Background()); !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

// A failure mid-loop leaves the already-inserted movies in place; there is no
// transaction around the insert phase.
func TestSyncService_PartialFailureKeepsEarlierInserts(t *testing.T) {
	repo := newStubMovieRepo()
	repo.failTitle = "The Empire Strikes Back"

	source := &stubFilmSource{films: []ports.Film{
		{Title: "A New Hope"},
		{Title: "The Empire Strikes Back"},
		{Title: "Return of the Jedi"},
	}}
	svc := NewSyncService(source, repo, nil, zerolog.Nop())

	inserted, err := svc.Sync(context.Background())
	if err == nil {
		t.Fatalf("expected error from failing insert")
	}
	if inserted != 1 {
		t.Fatalf("expected 1 successful insert before the failure, got %d", inserted)
	}
	if len(repo.movies) != 1 || repo.movies[0].Title != "A New Hope" {
		t.Fatalf("unexpected store contents: %+v", repo.movies)
	}
}

func TestSyncService_LockContention(t *testing.T) {
	repo := newStubMovieRepo()
	source := &stubFilmSource{films: []ports.Film{{Title: "A New Hope"}}}
	lock := &stubSyncLock{held: true}
	svc := NewSyncService(source, repo, lock, zerolog.Nop())

	if _, err := svc.Sync(context.Background()); !errors.Is(err, domain.ErrSyncInProgress) {
		t.Fatalf("expected ErrSyncInProgress, got %v", err)
	}
	if len(repo.movies) != 0 {
		t.Fatalf("locked run must not touch the store")
	}
}

func TestSyncService_LockErrorDoesNotBlockRun(t *testing.T) {
	repo := newStubMovieRepo()
	source := &stubFilmSource{films: []ports.Film{{Title: "A New Hope"}}}
	lock := &stubSyncLock{acquireErr: errors.New("redis down")}
	svc := NewSyncService(source, repo, lock, zerolog.Nop())

	inserted, err := svc.Sync(context.Background())
	if err != nil || inserted != 1 {
		t.Fatalf("expected sync to proceed without lock: inserted=%d err=%v", inserted, err)
	}
}

func TestSyncService_ReleasesLock(t *testing.T) {
	repo := newStubMovieRepo()
	source := &stubFilmSource{films: nil}
	lock := &stubSyncLock{}
	svc := NewSyncService(source, repo, lock, zerolog.Nop())

	if _, err := svc.Sync(context.Background()); err != nil {
		t.Fatalf("Sync returned error: %v", err)
	}
	if lock.released != 1 {
		t.Fatalf("expected lock released once, got %d", lock.released)
	}
}
