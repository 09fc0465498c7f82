package loginwithemail

import (
	"context"
	"errors"
	c "inventory/internal/core/domain/common"
	e "inventory/internal/core/domain/errors"
	"inventory/internal/core/domain/logging"
	"inventory/internal/core/domain/user"
	"inventory/internal/core/services"
	"time"
)

type Input struct {
	Email    c.Email
	Password user.RawPassword
}

func (i Input) GetRateLimitKey() string {
	return "log-in-with-email::" + string(i.Email)
}

type Result struct {
	Token user.SessionToken
}

type service struct {
	log                   logging.Logger
	userRepository        user.UserRepository
	sessionRepository     user.SessionRepository
	passwordHasher        user.PasswordHasher
	sessionTokenGenerator user.SessionTokenGenerator
	now                   func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	sessionRepository user.SessionRepository,
	passwordHasher user.PasswordHasher,
	sessionTokenGenerator user.SessionTokenGenerator,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if sessionRepository == nil {
		panic(e.NewNilArgumentError("sessionRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if sessionTokenGenerator == nil {
		panic(e.NewNilArgumentError("sessionTokenGenerator"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                   log,
		userRepository:        userRepository,
		sessionRepository:     sessionRepository,
		passwordHasher:        passwordHasher,
		sessionTokenGenerator: sessionTokenGenerator,
		now:                   now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.authenticate(ctx, input)
	if err != nil {
		return result, err
	}
	token, err := s.openSession(ctx, u.ID)
	if err != nil {
		return result, err
	}
	s.log.Info(ctx, "User logged in.", logging.Entry("userId", u.ID))
	return Result{Token: token}, nil
}

// authenticate returns the user owning the credentials or
// user.ErrInvalidCredentials. Unknown emails still cost one password
// hashing so both failures take about the same time.
func (s *service) authenticate(ctx context.Context, input Input) (u user.User, err error) {
	u, err = s.userRepository.GetByEmail(ctx, input.Email)
	switch {
	case errors.Is(err, user.ErrUserDoesNotExist):
		s.passwordHasher.HashPassword(input.Password)
		return u, user.ErrInvalidCredentials
	case errors.Is(err, context.Canceled):
		return u, err
	case err != nil:
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return u, err
	}
	if !s.passwordHasher.ValidatePassword(input.Password, u.PasswordHash) {
		s.log.Info(ctx, "Invalid password.", logging.Entry("userId", u.ID))
		return u, user.ErrInvalidCredentials
	}
	return u, nil
}

func (s *service) openSession(ctx context.Context, userID user.ID) (user.SessionToken, error) {
	token := s.sessionTokenGenerator.GenerateSessionToken()
	err := s.sessionRepository.Create(ctx, user.CreateSessionInput{
		UserID:    userID,
		Token:     token,
		CreatedAt: s.now(),
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.Error(ctx, s.log, err, logging.Entry("userId", userID))
	}
	return token, err
}
