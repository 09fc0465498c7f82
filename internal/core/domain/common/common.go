package common

import (
	"fmt"
	"strings"
)

// Optional holds a value that may be absent. The zero value is absent.
type Optional[T any] struct {
	Value     T
	IsPresent bool
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{Value: value, IsPresent: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// OrElse returns the value if present and fallback otherwise.
func (o Optional[T]) OrElse(fallback T) T {
	if o.IsPresent {
		return o.Value
	}
	return fallback
}

func (o Optional[T]) String() string {
	if !o.IsPresent {
		return "[-]"
	}
	return fmt.Sprintf("[%v]", o.Value)
}

// MAX_EMAIL_LEN matches the width of the email columns.
const MAX_EMAIL_LEN = 255

// Email is an email address normalized to lower case without
// surrounding whitespace.
type Email string

func NewEmail(rawEmail string) Email {
	return Email(strings.ToLower(strings.TrimSpace(rawEmail)))
}
