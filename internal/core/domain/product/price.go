package product

import (
	"errors"
	"fmt"
	"math"
)

// Price is a non-negative amount in cents.
type Price int64

const MAX_PRICE = Price(9_999_999_999) // NUMERIC(12, 2)

var ErrInvalidPrice = errors.New("invalid price")

func NewPriceFromFloat(value float64) (Price, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0, ErrInvalidPrice
	}
	cents := math.Round(value * 100)
	if cents > float64(MAX_PRICE) {
		return 0, fmt.Errorf("%w: too large", ErrInvalidPrice)
	}
	return Price(cents), nil
}

func (p Price) Float64() float64 {
	return float64(p) / 100
}

func (p Price) String() string {
	sign := ""
	cents := int64(p)
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
