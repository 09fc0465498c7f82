package user

import (
	"context"
	c "inventory/internal/core/domain/common"
	"time"
)

type CreateUserInput struct {
	Name         string
	Email        c.Email
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	SetPassword(ctx context.Context, id ID, password PasswordHash, at time.Time) error
}

type CreateSessionInput struct {
	UserID    ID
	Token     SessionToken
	CreatedAt time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, input CreateSessionInput) error
	GetUserByToken(ctx context.Context, token SessionToken) (User, error)
	Delete(ctx context.Context, token SessionToken) (userID ID, err error)
	DeleteByUserID(ctx context.Context, userID ID) error
}

type CreatePasswordResetInput struct {
	Email     c.Email
	Token     PasswordResetToken
	CreatedAt time.Time
}

type PasswordResetRepository interface {
	// Create returns ErrPasswordResetExists if there is an entry for the
	// email already.
	Create(ctx context.Context, input CreatePasswordResetInput) (PasswordReset, error)
	GetByEmail(ctx context.Context, email c.Email) (PasswordReset, error)
	DeleteByEmail(ctx context.Context, email c.Email) error
}
