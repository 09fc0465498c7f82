package uow

import (
	"context"
	"inventory/internal/core/domain/product"
	"inventory/internal/core/domain/user"
)

type FakeUnitOfWorkContext struct {
	UserRepository          *user.FakeUserRepository
	SessionRepository       *user.FakeSessionRepository
	PasswordResetRepository *user.FakePasswordResetRepository
	ProductRepository       *product.FakeRepository
	WasRollbackCalled       bool
	WasCommitCalled         bool
}

func NewFakeUnitOfWorkContext(
	userRepository *user.FakeUserRepository,
	sessionRepository *user.FakeSessionRepository,
	passwordResetRepository *user.FakePasswordResetRepository,
	productRepository *product.FakeRepository,
) *FakeUnitOfWorkContext {
	return &FakeUnitOfWorkContext{
		UserRepository:          userRepository,
		SessionRepository:       sessionRepository,
		PasswordResetRepository: passwordResetRepository,
		ProductRepository:       productRepository,
	}
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.WasRollbackCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	c.WasCommitCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Users() user.UserRepository {
	return c.UserRepository
}

func (c *FakeUnitOfWorkContext) Sessions() user.SessionRepository {
	return c.SessionRepository
}

func (c *FakeUnitOfWorkContext) PasswordResets() user.PasswordResetRepository {
	return c.PasswordResetRepository
}

func (c *FakeUnitOfWorkContext) Products() product.Repository {
	return c.ProductRepository
}

type FakeUnitOfWork struct {
	Context *FakeUnitOfWorkContext
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	userRepository := user.NewFakeUserRepository()
	return &FakeUnitOfWork{
		Context: NewFakeUnitOfWorkContext(
			userRepository,
			user.NewFakeSessionRepository(userRepository),
			user.NewFakePasswordResetRepository(),
			product.NewFakeRepository(),
		),
	}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	return u.Context, nil
}
