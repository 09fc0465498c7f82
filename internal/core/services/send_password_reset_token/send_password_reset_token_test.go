package sendpasswordresettoken

import (
	"context"
	"errors"
	c "inventory/internal/core/domain/common"
	"inventory/internal/core/domain/logging"
	"inventory/internal/core/domain/user"
	"inventory/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL         = c.Email("test@test.test")
	TOKEN         = "aB3dE5gH9k"
	STORED_TOKEN  = "Zz9Yy8Xx7W"
	VALID_HOURS   = 24
	PASSWORD_HASH = user.PasswordHash("test")
)

var NOW time.Time = time.Date(2022, 10, 10, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	Logger                  *logging.FakeLogger
	UserRepository          *user.FakeUserRepository
	PasswordResetRepository *user.FakePasswordResetRepository
	TokenGenerator          *user.FakePasswordResetTokenGenerator
	Sender                  *user.FakePasswordResetTokenSender
	Service                 services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.PasswordResetRepository = user.NewFakePasswordResetRepository()
	suite.TokenGenerator = user.NewFakePasswordResetTokenGenerator(TOKEN)
	suite.Sender = user.NewFakePasswordResetTokenSender()
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.PasswordResetRepository,
		suite.TokenGenerator,
		suite.Sender,
		VALID_HOURS,
		func() time.Time { return NOW },
	)
}

func TestSendPasswordResetTokenService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestUnknownEmail() {
	_, err := s.Service.Run(context.Background(), Input{Email: EMAIL})

	assert := s.Require()
	assert.ErrorIs(err, user.ErrUserDoesNotExist)
	assert.Equal(0, s.PasswordResetRepository.Count())
	assert.Equal(0, s.PasswordResetRepository.CreateCalls)
	assert.Equal(0, s.Sender.SentCount())
}

func (s *testSuite) TestNewTokenIssued() {
	s.createUser()

	result, err := s.Service.Run(context.Background(), Input{Email: EMAIL})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(user.PasswordResetToken(TOKEN), result.Token)
	assert.Equal(1, s.PasswordResetRepository.Count())
	reset := s.PasswordResetRepository.PasswordResets[0]
	assert.Equal(EMAIL, reset.Email)
	assert.Equal(user.PasswordResetToken(TOKEN), reset.Token)
	assert.Len(string(reset.Token), user.PASSWORD_RESET_TOKEN_LEN)
	assert.Equal(NOW, reset.CreatedAt)
	assert.Equal(1, s.Sender.SentCount())
	assert.Equal(user.SentPasswordResetToken{Email: EMAIL, Token: TOKEN}, s.Sender.LastSent())
}

func (s *testSuite) TestExistingTokenIsResentUnchanged() {
	s.createUser()
	stored := user.PasswordReset{Email: EMAIL, Token: STORED_TOKEN, CreatedAt: NOW.Add(-time.Hour)}
	s.PasswordResetRepository.PasswordResets = []user.PasswordReset{stored}

	for i := 1; i <= 3; i++ {
		result, err := s.Service.Run(context.Background(), Input{Email: EMAIL})

		assert := s.Require()
		assert.Nil(err)
		assert.Equal(user.PasswordResetToken(STORED_TOKEN), result.Token)
		assert.Equal(i, s.Sender.SentCount())
		assert.Equal(user.SentPasswordResetToken{Email: EMAIL, Token: STORED_TOKEN}, s.Sender.LastSent())
	}

	s.Equal([]user.PasswordReset{stored}, s.PasswordResetRepository.PasswordResets)
	s.Equal(0, s.PasswordResetRepository.CreateCalls)
	s.Equal(0, s.TokenGenerator.Generated)
}

func (s *testSuite) TestRepeatedCallsSendSameToken() {
	s.createUser()

	first, err := s.Service.Run(context.Background(), Input{Email: EMAIL})
	s.Require().Nil(err)
	s.TokenGenerator.Token = "other12345"
	second, err := s.Service.Run(context.Background(), Input{Email: EMAIL})
	s.Require().Nil(err)

	s.Equal(first.Token, second.Token)
	s.Equal(1, s.PasswordResetRepository.Count())
	s.Equal(2, s.Sender.SentCount())
	s.Equal(1, s.TokenGenerator.Generated)
}

func (s *testSuite) TestExpiredTokenReplaced() {
	s.createUser()
	s.PasswordResetRepository.PasswordResets = []user.PasswordReset{
		{Email: EMAIL, Token: STORED_TOKEN, CreatedAt: NOW.Add(-VALID_HOURS * time.Hour)},
	}

	result, err := s.Service.Run(context.Background(), Input{Email: EMAIL})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(user.PasswordResetToken(TOKEN), result.Token)
	assert.Equal(1, s.PasswordResetRepository.Count())
	assert.Equal(user.PasswordResetToken(TOKEN), s.PasswordResetRepository.PasswordResets[0].Token)
	assert.Equal(NOW, s.PasswordResetRepository.PasswordResets[0].CreatedAt)
	assert.Equal(user.SentPasswordResetToken{Email: EMAIL, Token: TOKEN}, s.Sender.LastSent())
}

func (s *testSuite) TestConcurrentlyCreatedTokenIsSent() {
	s.createUser()
	repo := &racingPasswordResetRepository{
		FakePasswordResetRepository: s.PasswordResetRepository,
		winner:                      user.PasswordReset{Email: EMAIL, Token: STORED_TOKEN, CreatedAt: NOW},
	}
	service := New(
		s.Logger,
		s.UserRepository,
		repo,
		s.TokenGenerator,
		s.Sender,
		VALID_HOURS,
		func() time.Time { return NOW },
	)

	result, err := service.Run(context.Background(), Input{Email: EMAIL})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(user.PasswordResetToken(STORED_TOKEN), result.Token)
	assert.Equal(1, s.PasswordResetRepository.Count())
	assert.Equal(user.SentPasswordResetToken{Email: EMAIL, Token: STORED_TOKEN}, s.Sender.LastSent())
}

func (s *testSuite) TestPersistenceFailure() {
	s.createUser()
	s.PasswordResetRepository.CreateError = errors.New("connection refused")

	_, err := s.Service.Run(context.Background(), Input{Email: EMAIL})

	assert := s.Require()
	assert.NotNil(err)
	assert.Equal(0, s.Sender.SentCount())
	assert.Equal(1, s.Logger.CountByLevel(logging.ERROR))
}

func (s *testSuite) TestSendFailure() {
	s.createUser()
	s.Sender.ReturnError = true

	_, err := s.Service.Run(context.Background(), Input{Email: EMAIL})

	s.NotNil(err)
	s.Equal(1, s.Logger.CountByLevel(logging.ERROR))
}

func (s *testSuite) TestRateLimitKey() {
	s.Equal("send-password-reset-token::test@test.test", Input{Email: EMAIL}.GetRateLimitKey())
}

func (s *testSuite) createUser() {
	s.T().Helper()
	_, err := s.UserRepository.Create(context.Background(), user.CreateUserInput{
		Name:         "Test",
		Email:        EMAIL,
		PasswordHash: PASSWORD_HASH,
		CreatedAt:    NOW,
	})
	if err != nil {
		s.FailNow(err.Error())
	}
}

// racingPasswordResetRepository imitates a request which inserts the entry
// right after the ledger lookup of the tested one.
type racingPasswordResetRepository struct {
	*user.FakePasswordResetRepository
	winner user.PasswordReset
	raced  bool
}

func (r *racingPasswordResetRepository) Create(
	ctx context.Context,
	input user.CreatePasswordResetInput,
) (user.PasswordReset, error) {
	if !r.raced {
		r.raced = true
		r.FakePasswordResetRepository.PasswordResets = append(r.FakePasswordResetRepository.PasswordResets, r.winner)
	}
	return r.FakePasswordResetRepository.Create(ctx, input)
}
