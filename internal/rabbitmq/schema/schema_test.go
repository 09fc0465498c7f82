package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProductSaleUnmarshal(t *testing.T) {
	cases := []struct {
		body     string
		expected ProductSale
		isValid  bool
	}{
		{body: `{"product_id": 7, "quantity": 3}`, expected: ProductSale{ProductID: 7, Quantity: 3}, isValid: true},
		{body: `{"product_id": 7}`, isValid: false},
		{body: `{"quantity": 3}`, isValid: false},
		{body: `{"product_id": -1, "quantity": 3}`, isValid: false},
		{body: `{"product_id": 7, "quantity": -3}`, isValid: false},
		{body: `not json`, isValid: false},
	}
	for _, testcase := range cases {
		t.Run(testcase.body, func(t *testing.T) {
			sale := ProductSale{}
			err := sale.Unmarshal([]byte(testcase.body))
			if !testcase.isValid {
				require.Error(t, err)
				return
			}
			require.Nil(t, err)
			require.Equal(t, testcase.expected, sale)
		})
	}
}
