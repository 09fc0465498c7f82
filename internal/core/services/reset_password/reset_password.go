package resetpassword

import (
	"context"
	"crypto/subtle"
	"errors"
	c "inventory/internal/core/domain/common"
	e "inventory/internal/core/domain/errors"
	"inventory/internal/core/domain/logging"
	uow "inventory/internal/core/domain/unit_of_work"
	"inventory/internal/core/domain/user"
	"inventory/internal/core/services"
	"time"
)

type Input struct {
	Email       c.Email
	Token       user.PasswordResetToken
	NewPassword user.RawPassword
}

func (i Input) GetRateLimitKey() string {
	return "reset-password::" + string(i.Email)
}

type Result struct{}

type service struct {
	log            logging.Logger
	unitOfWork     uow.UnitOfWork
	passwordHasher user.PasswordHasher
	validHours     uint
	now            func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	passwordHasher user.PasswordHasher,
	validHours uint,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		unitOfWork:     unitOfWork,
		passwordHasher: passwordHasher,
		validHours:     validHours,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}
	defer uow.Rollback(ctx)

	reset, err := uow.PasswordResets().GetByEmail(ctx, input.Email)
	if errors.Is(err, user.ErrPasswordResetDoesNotExist) {
		s.log.Info(ctx, "Password reset not found.", logging.Entry("email", input.Email))
		return result, user.ErrInvalidPasswordResetToken
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}
	if subtle.ConstantTimeCompare([]byte(reset.Token), []byte(input.Token)) != 1 {
		s.log.Info(ctx, "Invalid password reset token.", logging.Entry("email", input.Email))
		return result, user.ErrInvalidPasswordResetToken
	}
	if reset.IsExpired(s.validHours, s.now()) {
		s.log.Info(ctx, "Password reset token has expired.", logging.Entry("email", input.Email))
		return result, user.ErrPasswordResetExpired
	}

	u, err := uow.Users().GetByEmail(ctx, input.Email)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "User not found for password reset.", logging.Entry("email", input.Email))
		return result, user.ErrInvalidPasswordResetToken
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("email", input.Email))
		return result, err
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", u.ID))
		return result, err
	}
	if err := uow.Users().SetPassword(ctx, u.ID, newPasswordHash, s.now()); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", u.ID))
		return result, err
	}
	if err := uow.PasswordResets().DeleteByEmail(ctx, input.Email); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", u.ID))
		return result, err
	}
	if err := uow.Sessions().DeleteByUserID(ctx, u.ID); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", u.ID))
		return result, err
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", u.ID))
		return result, err
	}

	s.log.Info(ctx, "New password has been successfully set.", logging.Entry("userID", u.ID))
	return result, nil
}
