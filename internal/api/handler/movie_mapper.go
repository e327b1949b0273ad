package handler

import (
	"github.com/filmoteca/movie-catalog/internal/core/domain"
	"github.com/filmoteca/movie-catalog/internal/core/ports"
)

func toCreateInput(req createMovieRequest) ports.CreateMovieInput {
	return ports.CreateMovieInput{
		Title:       req.Title,
		Director:    req.Director,
		Producer:    req.Producer,
		ReleaseDate: req.ReleaseDate,
		Description: req.Description,
	}
}

func toUpdateInput(req updateMovieRequest) ports.UpdateMovieInput {
	return ports.UpdateMovieInput{
		Title:       req.Title,
		Director:    req.Director,
		Producer:    req.Producer,
		ReleaseDate: req.ReleaseDate,
		Description: req.Description,
	}
}

func toMovieResponse(m *domain.Movie) movieResponse {
	return movieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Director:    m.Director,
		Producer:    m.Producer,
		ReleaseDate: m.ReleaseDate,
		Description: m.Description,
	}
}

func toListMoviesResponse(list *ports.MovieList) listMoviesResponse {
	items := make([]movieResponse, len(list.Items))
	for i, m := range list.Items {
		items[i] = toMovieResponse(m)
	}
	return listMoviesResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      list.Total,
			Page:       list.Page,
			Limit:      list.Limit,
			TotalPages: list.TotalPages,
		},
	}
}
