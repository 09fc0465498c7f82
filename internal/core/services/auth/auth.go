package auth

import (
	"context"
	e "inventory/internal/core/domain/errors"
	"inventory/internal/core/domain/user"
	"inventory/internal/core/services"
)

type sessionTokenKey struct{}

// WithSessionToken returns a copy of ctx carrying the session token
// of the current request.
func WithSessionToken(ctx context.Context, token user.SessionToken) context.Context {
	return context.WithValue(ctx, sessionTokenKey{}, token)
}

func SessionTokenFrom(ctx context.Context) (user.SessionToken, bool) {
	token, ok := ctx.Value(sessionTokenKey{}).(user.SessionToken)
	return token, ok && token != ""
}

type Input interface {
	WithAuthenticatedUser(u user.User) Input
}

type authenticated[T Input, S any] struct {
	sessions user.SessionRepository
	inner    services.Service[T, S]
}

// WithAuthentication runs inner on behalf of the owner of the session
// token found in the context. A missing or unknown token yields
// user.ErrUserDoesNotExist.
func WithAuthentication[T Input, S any](
	sessionRepository user.SessionRepository,
	inner services.Service[T, S],
) services.Service[T, S] {
	if sessionRepository == nil {
		panic(e.NewNilArgumentError("sessionRepository"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &authenticated[T, S]{sessions: sessionRepository, inner: inner}
}

func (s *authenticated[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	token, ok := SessionTokenFrom(ctx)
	if !ok {
		return result, user.ErrUserDoesNotExist
	}
	owner, err := s.sessions.GetUserByToken(ctx, token)
	if err != nil {
		return result, err
	}
	return s.inner.Run(ctx, input.WithAuthenticatedUser(owner).(T))
}
