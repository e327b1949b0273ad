package ports

import (
	"context"

	"github.com/filmoteca/movie-catalog/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Username and email carry unique indexes; Create surfaces a violation
// as domain.ErrUserExists regardless of backend.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindFirstByRole returns any one user holding the given role,
	// or domain.ErrUserNotFound when none exists.
	FindFirstByRole(ctx context.Context, role string) (*domain.User, error)
	// List returns a page of users and the total count.
	List(ctx context.Context, page, limit int) ([]*domain.User, int64, error)
	UpdateRole(ctx context.Context, id, role string) error
}
