package uow

import (
	"context"
	"inventory/internal/core/domain/product"
	"inventory/internal/core/domain/user"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Users() user.UserRepository
	Sessions() user.SessionRepository
	PasswordResets() user.PasswordResetRepository
	Products() product.Repository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
