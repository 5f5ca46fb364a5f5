package repository

import (
	"context"
	"errors"

	"github.com/agiletchat/auth-service/internal/model"
)

var (
	/* Уникальный индекс по email в базе — единственная настоящая защита
	 * от гонки между проверкой существования и вставкой. */
	ErrDuplicateEmail = errors.New("email already exists")
	ErrNotFound       = errors.New("user not found")
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	Ping(ctx context.Context) error
}
