package user

import (
	c "inventory/internal/core/domain/common"
	e "inventory/internal/core/domain/errors"
	"time"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type SessionToken string

type User struct {
	ID           ID
	Name         string
	Email        c.Email
	PasswordHash PasswordHash
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) Validate() error {
	if u.Email == "" {
		return e.NewInvalidStateError("user", int64(u.ID), "email is not set")
	}
	if u.PasswordHash == "" {
		return e.NewInvalidStateError("user", int64(u.ID), "password hash is not set")
	}
	return nil
}

type PasswordHasher interface {
	HashPassword(password RawPassword) (PasswordHash, error)
	ValidatePassword(password RawPassword, hash PasswordHash) bool
}

type SessionTokenGenerator interface {
	GenerateSessionToken() SessionToken
}
