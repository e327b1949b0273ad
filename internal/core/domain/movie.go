package domain

import "errors"

var (
	ErrMovieNotFound      = errors.New("movie not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("username or email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrForbidden          = errors.New("access forbidden")
	ErrUpstream           = errors.New("film API unavailable")
	ErrAdaptFilm          = errors.New("malformed film record")
	ErrSyncInProgress     = errors.New("sync already running")
)

// Movie is the catalog aggregate. Titles are not unique at the store layer;
// only the sync routine guards against re-inserting a known title.
type Movie struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Director    string `json:"director"`
	Producer    string `json:"producer"`
	ReleaseDate string `json:"release_date"`
	Description string `json:"description,omitempty"`
}
