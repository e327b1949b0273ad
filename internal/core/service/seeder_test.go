package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/filmoteca/movie-catalog/internal/core/domain"
)

func TestSeeder_CreatesAdminOnEmptyStore(t *testing.T) {
	repo := newStubUserRepo()
	seeder := NewSeeder(repo, "admin", "admin@demo.com", "Prueba123", zerolog.Nop())

	if err := seeder.Seed(context.Background()); err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}
	if repo.creates != 1 {
		t.Fatalf("expected exactly one insert, got %d", repo.creates)
	}

	admin, err := repo.FindFirstByRole(context.Background(), domain.RoleAdmin)
	if err != nil {
		t.Fatalf("admin not found after seeding: %v", err)
	}
	if admin.Username != "admin" || admin.Email != "admin@demo.com" {
		t.Fatalf("unexpected admin: %+v", admin)
	}
	if admin.PasswordHash == "Prueba123" {
		t.Fatalf("seeded password must be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("Prueba123")); err != nil {
		t.Fatalf("seeded hash does not match password: %v", err)
	}
}

func TestSeeder_SecondRunIsNoOp(t *testing.T) {
	repo := newStubUserRepo()
	seeder := NewSeeder(repo, "admin", "admin@demo.com", "Prueba123", zerolog.Nop())

	if err := seeder.Seed(context.Background()); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	if err := seeder.Seed(context.Background()); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	if repo.creates != 1 {
		t.Fatalf("expected zero additional inserts, got %d total", repo.creates)
	}
}

// When a concurrent process wins the race on the unique index, the loser's
// create error surfaces instead of being swallowed.
func TestSeeder_RaceLoserPropagatesError(t *testing.T) {
	repo := newStubUserRepo()
	repo.createErr = domain.ErrUserExists
	seeder := NewSeeder(repo, "admin", "admin@demo.com", "Prueba123", zerolog.Nop())

	if err := seeder.Seed(context.Background()); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists to propagate, got %v", err)
	}
}
