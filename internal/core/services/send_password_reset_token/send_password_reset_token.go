package sendpasswordresettoken

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
	Email c.Email
}

func (i Input) GetRateLimitKey() string {
	return "send-password-reset-token::" + string(i.Email)
}

type Result struct {
	Token user.PasswordResetToken
}

type service struct {
	log                     logging.Logger
	userRepository          user.UserRepository
	passwordResetRepository user.PasswordResetRepository
	tokenGenerator          user.PasswordResetTokenGenerator
	sender                  user.PasswordResetTokenSender
	validHours              uint
	now                     func() time.Time
}

// New creates the service issuing password reset tokens. An existing ledger
// entry for the email is re-sent as is unless it is older than validHours,
// a new entry is created otherwise.
func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordResetRepository user.PasswordResetRepository,
	tokenGenerator user.PasswordResetTokenGenerator,
	sender user.PasswordResetTokenSender,
	validHours uint,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if passwordResetRepository == nil {
		panic(e.NewNilArgumentError("passwordResetRepository"))
	}
	if tokenGenerator == nil {
		panic(e.NewNilArgumentError("tokenGenerator"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                     log,
		userRepository:          userRepository,
		passwordResetRepository: passwordResetRepository,
		tokenGenerator:          tokenGenerator,
		sender:                  sender,
		validHours:              validHours,
		now:                     now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	_, err = s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "User not found for password reset.", logging.Entry("email", input.Email))
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}

	token, err := s.getOrCreateToken(ctx, input.Email)
	if err != nil {
		return result, err
	}

	err = s.sender.SendPasswordResetToken(ctx, input.Email, token)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}

	s.log.Info(ctx, "Password reset token has been sent.", logging.Entry("email", input.Email))
	return Result{Token: token}, nil
}

func (s *service) getOrCreateToken(ctx context.Context, email c.Email) (user.PasswordResetToken, error) {
	reset, err := s.passwordResetRepository.GetByEmail(ctx, email)
	switch {
	case err == nil && !reset.IsExpired(s.validHours, s.now()):
		return reset.Token, nil
	case err == nil:
		s.log.Info(ctx, "Password reset token has expired, issuing a new one.", logging.Entry("email", email))
		err = s.passwordResetRepository.DeleteByEmail(ctx, email)
		if err != nil && !errors.Is(err, user.ErrPasswordResetDoesNotExist) {
			logging.Error(ctx, s.log, err, logging.Entry("email", email))
			return "", err
		}
	case errors.Is(err, user.ErrPasswordResetDoesNotExist):
	case errors.Is(err, context.Canceled):
		return "", err
	default:
		logging.Error(ctx, s.log, err, logging.Entry("email", email))
		return "", err
	}

	reset, err = s.passwordResetRepository.Create(ctx, user.CreatePasswordResetInput{
		Email:     email,
		Token:     s.tokenGenerator.GeneratePasswordResetToken(),
		CreatedAt: s.now(),
	})
	if errors.Is(err, user.ErrPasswordResetExists) {
		// A concurrent request has created the entry first.
		reset, err = s.passwordResetRepository.GetByEmail(ctx, email)
	}
	if errors.Is(err, context.Canceled) {
		return "", err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", email))
		return "", err
	}
	return reset.Token, nil
}
