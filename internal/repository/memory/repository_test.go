package memory

import (
	"console_bank/internal/domain"
	"console_bank/internal/repository"
	"context"
	"errors"
	"testing"
)

func TestUserRepository_SaveAndGetByUsername(t *testing.T) {
	repo := NewUserRepository()
	user := &domain.User{Username: "alice", Password: "pw1"}

	err := repo.Save(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error on Save: %v", err)
	}
	got, err := repo.GetByUsername(context.Background(), "alice")

	if err != nil {
		t.Fatalf("unexpected error on GetByUsername: %v", err)
	}
	if got != user {
		t.Errorf("expected stored user %+v, got %+v", user, got)
	}
	if got.RegisteredAt.IsZero() {
		t.Errorf("expected RegisteredAt to be set")
	}
}

func TestUserRepository_Duplicate(t *testing.T) {
	repo := NewUserRepository()
	_ = repo.Save(context.Background(), &domain.User{Username: "alice"})

	err := repo.Save(context.Background(), &domain.User{Username: "alice"})

	if !errors.Is(err, repository.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestUserRepository_CaseSensitive(t *testing.T) {
	repo := NewUserRepository()
	_ = repo.Save(context.Background(), &domain.User{Username: "alice"})

	if err := repo.Save(context.Background(), &domain.User{Username: "Alice"}); err != nil {
		t.Fatalf("usernames differing in case are distinct, got %v", err)
	}
	if _, err := repo.GetByUsername(context.Background(), "ALICE"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	exists, _ := repo.Exists(context.Background(), "Alice")
	if !exists {
		t.Errorf("expected Alice to exist")
	}
}

func TestUserRepository_Count(t *testing.T) {
	repo := NewUserRepository()
	for _, name := range []string{"carol", "alice", "bob", "alice"} {
		_ = repo.Save(context.Background(), &domain.User{Username: name})
	}

	n, err := repo.Count(context.Background())

	if err != nil {
		t.Fatalf("unexpected error on Count: %v", err)
	}
	if n != 3 {
		t.Errorf("expected count 3, got %d", n)
	}
}
