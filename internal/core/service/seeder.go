package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/filmoteca/movie-catalog/internal/core/domain"
	"github.com/filmoteca/movie-catalog/internal/core/ports"
)

// Seeder guarantees at least one administrator account exists at startup.
type Seeder struct {
	users    ports.UserRepository
	username string
	email    string
	password string
	log      zerolog.Logger
}

func NewSeeder(users ports.UserRepository, username, email, password string, log zerolog.Logger) *Seeder {
	return &Seeder{users: users, username: username, email: email, password: password, log: log}
}

// Seed creates the admin account when none exists. The check-then-create is
// not concurrency-safe; a racing process loses on the unique username index
// and the resulting error propagates to the caller.
func (s *Seeder) Seed(ctx context.Context) error {
	_, err := s.users.FindFirstByRole(ctx, domain.RoleAdmin)
	if err == nil {
		s.log.Debug().Msg("admin account already present")
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("seed: lookup admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed: hash password: %w", err)
	}

	now := time.Now().UTC()
	admin := &domain.User{
		Username:     s.username,
		Email:        s.email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := s.users.Create(ctx, admin); err != nil {
		return fmt.Errorf("seed: create admin: %w", err)
	}

	s.log.Info().Str("username", s.username).Msg("admin account created")
	return nil
}
