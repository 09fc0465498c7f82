package getuserbysessiontoken

import (
	"context"
	"errors"
	e "inventory/internal/core/domain/errors"
	"inventory/internal/core/domain/logging"
	"inventory/internal/core/domain/user"
	"inventory/internal/core/services"
)

type Input struct {
	Token user.SessionToken
}

type Result struct {
	User user.User
}

type service struct {
	log               logging.Logger
	sessionRepository user.SessionRepository
}

func New(
	log logging.Logger,
	sessionRepository user.SessionRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sessionRepository == nil {
		panic(e.NewNilArgumentError("sessionRepository"))
	}
	return &service{
		log:               log,
		sessionRepository: sessionRepository,
	}
}

// Run resolves the owner of the session token. Unknown tokens yield
// user.ErrUserDoesNotExist.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	owner, err := s.sessionRepository.GetUserByToken(ctx, input.Token)
	switch {
	case err == nil:
		return Result{User: owner}, nil
	case errors.Is(err, user.ErrUserDoesNotExist), errors.Is(err, context.Canceled):
		return result, err
	default:
		logging.Error(ctx, s.log, err)
		return result, err
	}
}
