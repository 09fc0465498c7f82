package product

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPriceFromFloat(t *testing.T) {
	cases := []struct {
		id       string
		value    float64
		expected Price
	}{
		{id: "zero", value: 0, expected: Price(0)},
		{id: "integer", value: 38, expected: Price(3800)},
		{id: "cents", value: 12.34, expected: Price(1234)},
		{id: "rounding", value: 19.999, expected: Price(2000)},
		{id: "max", value: 99_999_999.99, expected: MAX_PRICE},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			price, err := NewPriceFromFloat(testcase.value)

			assert := require.New(t)
			assert.Nil(err)
			assert.Equal(testcase.expected, price)
		})
	}
}

func TestNewPriceFromFloatError(t *testing.T) {
	cases := []struct {
		id    string
		value float64
	}{
		{id: "negative", value: -0.01},
		{id: "nan", value: math.NaN()},
		{id: "inf", value: math.Inf(1)},
		{id: "too large", value: 100_000_000},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			_, err := NewPriceFromFloat(testcase.value)
			require.ErrorIs(t, err, ErrInvalidPrice)
		})
	}
}

func TestPriceString(t *testing.T) {
	assert := require.New(t)
	assert.Equal("0.00", Price(0).String())
	assert.Equal("0.05", Price(5).String())
	assert.Equal("38.00", Price(3800).String())
	assert.Equal("12.34", Price(1234).String())
	assert.Equal(12.34, Price(1234).Float64())
}
