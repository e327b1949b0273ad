package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createMovieRequest struct {
	Title       string `json:"title"        validate:"required"`
	Director    string `json:"director"     validate:"required"`
	Producer    string `json:"producer"     validate:"required"`
	ReleaseDate string `json:"release_date" validate:"required,datetime=2006-01-02"`
	Description string `json:"description"`
}

// updateMovieRequest carries a partial update; absent fields stay untouched.
type updateMovieRequest struct {
	Title       *string `json:"title"        validate:"omitempty,min=1"`
	Director    *string `json:"director"     validate:"omitempty,min=1"`
	Producer    *string `json:"producer"     validate:"omitempty,min=1"`
	ReleaseDate *string `json:"release_date" validate:"omitempty,datetime=2006-01-02"`
	Description *string `json:"description"`
}

type movieResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Director    string `json:"director"`
	Producer    string `json:"producer"`
	ReleaseDate string `json:"release_date"`
	Description string `json:"description,omitempty"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listMoviesResponse struct {
	Data       []movieResponse    `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type syncResponse struct {
	Message string `json:"message"`
	Synced  int    `json:"synced"`
}
