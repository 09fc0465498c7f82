package user

import (
	"context"
	c "inventory/internal/core/domain/common"
	"time"

	"github.com/golang-module/carbon/v2"
)

const PASSWORD_RESET_TOKEN_LEN = 10

type PasswordResetToken string

// PasswordReset is an entry of the reset ledger. There is at most one entry
// per email, it is re-sent as is until consumed or expired.
type PasswordReset struct {
	Email     c.Email
	Token     PasswordResetToken
	CreatedAt time.Time
}

// IsExpired reports whether the entry is older than validHours at the given
// moment. Zero validHours means the entry never expires.
func (p *PasswordReset) IsExpired(validHours uint, now time.Time) bool {
	if validHours == 0 {
		return false
	}
	expiresAt := carbon.Time2Carbon(p.CreatedAt).AddHours(int(validHours))
	return !expiresAt.Gt(carbon.Time2Carbon(now))
}

type PasswordResetTokenGenerator interface {
	GeneratePasswordResetToken() PasswordResetToken
}

type PasswordResetTokenSender interface {
	SendPasswordResetToken(ctx context.Context, email c.Email, token PasswordResetToken) error
}
