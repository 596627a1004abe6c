package repository

import (
	"console_bank/internal/domain"
	"context"
	"errors"
)

// UserRepository is the directory of registered users. Usernames are
// compared exactly, letter case included.
type UserRepository interface {
	Save(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Exists(ctx context.Context, username string) (bool, error)
	Count(ctx context.Context) (int, error)
}

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate entry")
)
