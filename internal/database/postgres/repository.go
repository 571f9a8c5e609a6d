package postgres

import (
	"context"

	"github.com/ds124wfegd/image-service/internal/entity"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
