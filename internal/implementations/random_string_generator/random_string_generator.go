package randomstringgenerator

import (
	"crypto/rand"
	"inventory/internal/core/domain/user"
	"math/big"
)

const ALPHANUMERIC = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type Generator struct {
	chars []rune
}

func NewGenerator() *Generator {
	return &Generator{chars: []rune(ALPHANUMERIC)}
}

func (g *Generator) GeneratePasswordResetToken() user.PasswordResetToken {
	return user.PasswordResetToken(g.generate(user.PASSWORD_RESET_TOKEN_LEN))
}

func (g *Generator) generate(length int) string {
	max := big.NewInt(int64(len(g.chars)))
	b := make([]rune, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic("Could not read from the random source.")
		}
		b[i] = g.chars[n.Int64()]
	}
	return string(b)
}
