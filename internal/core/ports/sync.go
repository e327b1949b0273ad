package ports

import "context"

// Film is a raw record as served by the external film API.
type Film struct {
	Title        string
	Director     string
	Producer     string
	OpeningCrawl string
	ReleaseDate  string
}

// FilmSource fetches the full external film list in a single call.
type FilmSource interface {
	FetchFilms(ctx context.Context) ([]Film, error)
}

// SyncLock guards against overlapping sync runs.
type SyncLock interface {
	// Acquire returns false when another run already holds the lock.
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

// SyncService reconciles the external film list against the local catalog.
type SyncService interface {
	// Sync returns the number of movies inserted.
	Sync(ctx context.Context) (int, error)
}
