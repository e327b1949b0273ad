package handler

import "github.com/filmoteca/movie-catalog/internal/core/domain"

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

type listUsersResponse struct {
	Data       []*domain.User     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
