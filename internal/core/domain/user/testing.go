package user

import (
	"context"
	"crypto/md5"
	"fmt"
	c "inventory/internal/core/domain/common"
	"io"
	"sync"
	"time"
)

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakeSessionTokenGenerator struct {
	Token string
}

func NewFakeSessionTokenGenerator(token string) *FakeSessionTokenGenerator {
	return &FakeSessionTokenGenerator{Token: token}
}

func (g *FakeSessionTokenGenerator) GenerateSessionToken() SessionToken {
	return SessionToken(g.Token)
}

type FakePasswordResetTokenGenerator struct {
	Token     PasswordResetToken
	Generated int
}

func NewFakePasswordResetTokenGenerator(token string) *FakePasswordResetTokenGenerator {
	return &FakePasswordResetTokenGenerator{Token: PasswordResetToken(token)}
}

func (g *FakePasswordResetTokenGenerator) GeneratePasswordResetToken() PasswordResetToken {
	g.Generated++
	return g.Token
}

type FakeUserRepository struct {
	Users       []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, u := range r.Users {
		if u.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
		maxID = u.ID
	}
	u = User{
		ID:           maxID + 1,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		CreatedAt:    input.CreatedAt,
		UpdatedAt:    input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) GetByID(ctx context.Context, id ID) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get user by email %v", email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) SetPassword(ctx context.Context, id ID, password PasswordHash, at time.Time) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users[ix].PasswordHash = password
			r.Users[ix].UpdatedAt = at
			return nil
		}
	}
	return ErrUserDoesNotExist
}

type FakeSessionRepository struct {
	UserIdByToken  map[SessionToken]ID
	UserRepository UserRepository
	ReturnError    bool
	lock           sync.Mutex
}

func NewFakeSessionRepository(userRepository UserRepository) *FakeSessionRepository {
	return &FakeSessionRepository{
		UserIdByToken:  make(map[SessionToken]ID),
		UserRepository: userRepository,
	}
}

func (r *FakeSessionRepository) Create(ctx context.Context, input CreateSessionInput) error {
	if r.ReturnError {
		return fmt.Errorf("could not create session %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.UserIdByToken[input.Token] = input.UserID
	return nil
}

func (r *FakeSessionRepository) GetUserByToken(ctx context.Context, token SessionToken) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get session %v", token)
	}
	r.lock.Lock()
	userId, ok := r.UserIdByToken[token]
	r.lock.Unlock()
	if !ok {
		return u, ErrUserDoesNotExist
	}
	return r.UserRepository.GetByID(ctx, userId)
}

func (r *FakeSessionRepository) Delete(ctx context.Context, token SessionToken) (ID, error) {
	if r.ReturnError {
		return ID(0), fmt.Errorf("could not delete session %v", token)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	userID, ok := r.UserIdByToken[token]
	if !ok {
		return ID(0), ErrSessionDoesNotExist
	}
	delete(r.UserIdByToken, token)
	return userID, nil
}

func (r *FakeSessionRepository) DeleteByUserID(ctx context.Context, userID ID) error {
	if r.ReturnError {
		return fmt.Errorf("could not delete sessions of user %v", userID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for token, id := range r.UserIdByToken {
		if id == userID {
			delete(r.UserIdByToken, token)
		}
	}
	return nil
}

func (r *FakeSessionRepository) Count() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.UserIdByToken)
}

type FakePasswordResetRepository struct {
	PasswordResets []PasswordReset
	CreateError    error
	GetError       error
	CreateCalls    int
	lock           sync.Mutex
}

func NewFakePasswordResetRepository() *FakePasswordResetRepository {
	return &FakePasswordResetRepository{}
}

func (r *FakePasswordResetRepository) Create(
	ctx context.Context,
	input CreatePasswordResetInput,
) (p PasswordReset, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.CreateCalls++
	if r.CreateError != nil {
		return p, r.CreateError
	}
	for _, p := range r.PasswordResets {
		if p.Email == input.Email {
			return PasswordReset{}, ErrPasswordResetExists
		}
	}
	p = PasswordReset{Email: input.Email, Token: input.Token, CreatedAt: input.CreatedAt}
	r.PasswordResets = append(r.PasswordResets, p)
	return p, nil
}

func (r *FakePasswordResetRepository) GetByEmail(ctx context.Context, email c.Email) (p PasswordReset, err error) {
	if r.GetError != nil {
		return p, r.GetError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, p := range r.PasswordResets {
		if p.Email == email {
			return p, nil
		}
	}
	return p, ErrPasswordResetDoesNotExist
}

func (r *FakePasswordResetRepository) DeleteByEmail(ctx context.Context, email c.Email) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, p := range r.PasswordResets {
		if p.Email == email {
			r.PasswordResets = append(r.PasswordResets[:ix], r.PasswordResets[ix+1:]...)
			return nil
		}
	}
	return ErrPasswordResetDoesNotExist
}

func (r *FakePasswordResetRepository) Count() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.PasswordResets)
}

type SentPasswordResetToken struct {
	Email c.Email
	Token PasswordResetToken
}

type FakePasswordResetTokenSender struct {
	Sent        []SentPasswordResetToken
	ReturnError bool
	lock        sync.Mutex
}

func NewFakePasswordResetTokenSender() *FakePasswordResetTokenSender {
	return &FakePasswordResetTokenSender{}
}

func (s *FakePasswordResetTokenSender) SendPasswordResetToken(
	ctx context.Context,
	email c.Email,
	token PasswordResetToken,
) error {
	if s.ReturnError {
		return fmt.Errorf("could not send password reset token")
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, SentPasswordResetToken{Email: email, Token: token})
	return nil
}

func (s *FakePasswordResetTokenSender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Sent)
}

func (s *FakePasswordResetTokenSender) LastSent() SentPasswordResetToken {
	s.lock.Lock()
	defer s.lock.Unlock()
	l := len(s.Sent)
	if l == 0 {
		panic("Sent count is 0.")
	}
	return s.Sent[l-1]
}
