package user

import (
	"errors"
)

var (
	ErrEmailAlreadyExists        = errors.New("email already exists")
	ErrUserDoesNotExist          = errors.New("user does not exist")
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrSessionDoesNotExist       = errors.New("session does not exist")
	ErrInvalidPasswordResetToken = errors.New("invalid password reset token")
	ErrPasswordResetExpired      = errors.New("password reset token has expired")
	ErrPasswordResetDoesNotExist = errors.New("password reset does not exist")
	ErrPasswordResetExists       = errors.New("password reset already exists")
)
