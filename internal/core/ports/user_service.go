package ports

import (
	"context"

	"github.com/filmoteca/movie-catalog/internal/core/domain"
)

// UserList is a page of users plus pagination metadata.
type UserList struct {
	Items      []*domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// UserService defines administrative operations over accounts.
type UserService interface {
	List(ctx context.Context, input PageInput) (*UserList, error)
	UpdateRole(ctx context.Context, id, role string) (*domain.User, error)
}
