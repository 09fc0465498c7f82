package passwordhasher

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"inventory/internal/core/domain/user"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt hashes passwords with bcrypt after peppering them with
// HMAC-SHA256 keyed by the application secret. The digest is 44 bytes
// long once encoded, so passwords longer than the 72 byte bcrypt
// limit still contribute all of their bytes.
type Bcrypt struct {
	pepper []byte
	cost   int
}

func NewBcrypt(secret string, cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		panic(fmt.Sprintf("bcrypt cost must be in [%d, %d], got %d", bcrypt.MinCost, bcrypt.MaxCost, cost))
	}
	return &Bcrypt{pepper: []byte(secret), cost: cost}
}

func (h *Bcrypt) peppered(password user.RawPassword) []byte {
	mac := hmac.New(sha256.New, h.pepper)
	mac.Write([]byte(password))
	digest := mac.Sum(nil)

	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(digest)))
	base64.StdEncoding.Encode(encoded, digest)
	return encoded
}

func (h *Bcrypt) HashPassword(password user.RawPassword) (user.PasswordHash, error) {
	hash, err := bcrypt.GenerateFromPassword(h.peppered(password), h.cost)
	if err != nil {
		return "", err
	}
	return user.PasswordHash(hash), nil
}

func (h *Bcrypt) ValidatePassword(password user.RawPassword, hash user.PasswordHash) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), h.peppered(password)) == nil
}
