// Package swapi implements ports.FilmSource against the Star Wars API.
package swapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/filmoteca/movie-catalog/internal/core/domain"
	"github.com/filmoteca/movie-catalog/internal/core/ports"
)

const defaultTimeout = 15 * time.Second

// Client fetches films from a SWAPI-compatible endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client for the given base URL. The HTTP client carries
// a timeout so a hanging upstream cannot block a sync request forever.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type filmRecord struct {
	Title        string `json:"title"`
	Director     string `json:"director"`
	Producer     string `json:"producer"`
	OpeningCrawl string `json:"opening_crawl"`
	ReleaseDate  string `json:"release_date"`
}

type filmsResponse struct {
	Results []filmRecord `json:"results"`
}

// FetchFilms retrieves the full film list in a single call to /films/.
// Any network, HTTP, or decode failure is reported as domain.ErrUpstream.
func (c *Client) FetchFilms(ctx context.Context) ([]ports.Film, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/films/", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domain.ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var payload filmsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrUpstream, err)
	}

	films := make([]ports.Film, len(payload.Results))
	for i, r := range payload.Results {
		films[i] = ports.Film{
			Title:        r.Title,
			Director:     r.Director,
			Producer:     r.Producer,
			OpeningCrawl: r.OpeningCrawl,
			ReleaseDate:  r.ReleaseDate,
		}
	}
	return films, nil
}
