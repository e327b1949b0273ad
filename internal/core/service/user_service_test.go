package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/filmoteca/movie-catalog/internal/core/domain"
	"github.com/filmoteca/movie-catalog/internal/core/ports"
)

func TestUserService_UpdateRole(t *testing.T) {
	repo := newStubUserRepo()
	created, err := repo.Create(context.Background(), &domain.User{Username: "alice", Email: "a@example.com", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	svc := NewUserService(repo, zerolog.Nop())
	updated, err := svc.UpdateRole(context.Background(), created.ID, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("UpdateRole returned error: %v", err)
	}
	if updated.Role != domain.RoleAdmin {
		t.Fatalf("expected role admin, got %q", updated.Role)
	}

	stored, _ := repo.FindByID(context.Background(), created.ID)
	if stored.Role != domain.RoleAdmin {
		t.Fatalf("role not persisted: %+v", stored)
	}
}

func TestUserService_UpdateRole_InvalidRole(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.UpdateRole(context.Background(), "u1", "superuser"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_UpdateRole_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.UpdateRole(context.Background(), "missing", domain.RoleAdmin); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_List_Pagination(t *testing.T) {
	repo := newStubUserRepo()
	for i := 0; i < 12; i++ {
		_, err := repo.Create(context.Background(), &domain.User{
			Username: fmt.Sprintf("user%02d", i),
			Email:    fmt.Sprintf("user%02d@example.com", i),
			Role:     domain.RoleUser,
		})
		if err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	svc := NewUserService(repo, zerolog.Nop())
	list, err := svc.List(context.Background(), ports.PageInput{Page: 2, Limit: 5})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if list.Total != 12 || len(list.Items) != 5 {
		t.Fatalf("expected total 12 / page of 5, got %d / %d", list.Total, len(list.Items))
	}
	if list.TotalPages != 3 {
		t.Fatalf("expected 3 total pages, got %d", list.TotalPages)
	}
}
