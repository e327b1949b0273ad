package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/filmoteca/movie-catalog/internal/api/metrics"
	"github.com/filmoteca/movie-catalog/internal/core/domain"
	"github.com/filmoteca/movie-catalog/internal/core/ports"
)

// MovieHandler handles HTTP requests for catalog operations.
type MovieHandler struct {
	movies ports.MovieService
	sync   ports.SyncService
}

func NewMovieHandler(movies ports.MovieService, sync ports.SyncService) *MovieHandler {
	return &MovieHandler{movies: movies, sync: sync}
}

// Create handles POST /movies.
//
// @Summary      Add a movie to the catalog
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMovieRequest  true  "Movie details"
// @Success      201   {object}  movieResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /movies [post]
func (h *MovieHandler) Create(c echo.Context) error {
	var req createMovieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	movie, err := h.movies.Create(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.MoviesCreatedTotal.WithLabelValues("api").Inc()
	return c.JSON(http.StatusCreated, toMovieResponse(movie))
}

// List handles GET /movies.
//
// @Summary      List movies with pagination
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "1-based page"     default(1)
// @Param        limit  query     int  false  "results per page"  default(10)
// @Success      200    {object}  listMoviesResponse
// @Router       /movies [get]
func (h *MovieHandler) List(c echo.Context) error {
	list, err := h.movies.List(c.Request().Context(), pageInput(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListMoviesResponse(list))
}

// Get handles GET /movies/:id.
//
// @Summary      Get a movie by id
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Movie id"
// @Success      200  {object}  movieResponse
// @Failure      404  {object}  errorResponse
// @Router       /movies/{id} [get]
func (h *MovieHandler) Get(c echo.Context) error {
	movie, err := h.movies.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMovieResponse(movie))
}

// Update handles PUT /movies/:id.
//
// @Summary      Edit a movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Movie id"
// @Param        body  body      updateMovieRequest  true  "Fields to change"
// @Success      200   {object}  movieResponse
// @Failure      404   {object}  errorResponse
// @Router       /movies/{id} [put]
func (h *MovieHandler) Update(c echo.Context) error {
	var req updateMovieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	movie, err := h.movies.Update(c.Request().Context(), c.Param("id"), toUpdateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMovieResponse(movie))
}

// Delete handles DELETE /movies/:id.
//
// @Summary      Remove a movie
// @Tags         movies
// @Security     BearerAuth
// @Param        id  path  string  true  "Movie id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /movies/{id} [delete]
func (h *MovieHandler) Delete(c echo.Context) error {
	if err := h.movies.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// SyncStarWars handles POST /movies/sync-star-wars.
//
// @Summary      Sync the catalog with the Star Wars film API
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  syncResponse
// @Failure      409  {object}  errorResponse
// @Failure      502  {object}  errorResponse
// @Router       /movies/sync-star-wars [post]
func (h *MovieHandler) SyncStarWars(c echo.Context) error {
	start := time.Now()
	inserted, err := h.sync.Sync(c.Request().Context())
	metrics.SyncDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if err == domain.ErrSyncInProgress {
			metrics.SyncRunsTotal.WithLabelValues("conflict").Inc()
		} else {
			metrics.SyncRunsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}

	metrics.SyncRunsTotal.WithLabelValues("success").Inc()
	metrics.MoviesCreatedTotal.WithLabelValues("sync").Add(float64(inserted))
	return c.JSON(http.StatusOK, syncResponse{Message: "catalog synchronized", Synced: inserted})
}

// pageInput parses ?page and ?limit, leaving bad values for the service to
// normalize.
func pageInput(c echo.Context) ports.PageInput {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return ports.PageInput{Page: page, Limit: limit}
}
