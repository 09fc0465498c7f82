package products

import (
	"errors"
	"inventory/internal/core/domain/product"
	"inventory/internal/core/domain/user"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInputParse(t *testing.T) {
	cases := []struct {
		name          string
		body          string
		expectedPrice product.Price
		ok            bool
	}{
		{
			name:          "valid",
			body:          `{"name": "Chair", "description": "Oak", "quantity": 3, "unit_price": 12.5}`,
			expectedPrice: product.Price(1250),
			ok:            true,
		},
		{
			name:          "zero quantity and price",
			body:          `{"name": "Chair", "quantity": 0, "unit_price": 0}`,
			expectedPrice: product.Price(0),
			ok:            true,
		},
		{name: "missing name", body: `{"quantity": 3, "unit_price": 12.5}`},
		{name: "blank name", body: `{"name": "   ", "quantity": 3, "unit_price": 12.5}`},
		{name: "tab and newline name", body: `{"name": "\t\n", "quantity": 3, "unit_price": 12.5}`},
		{name: "missing quantity", body: `{"name": "Chair", "unit_price": 12.5}`},
		{name: "missing price", body: `{"name": "Chair", "quantity": 3}`},
		{name: "negative quantity", body: `{"name": "Chair", "quantity": -1, "unit_price": 12.5}`},
		{name: "huge quantity", body: `{"name": "Chair", "quantity": 3000000000, "unit_price": 12.5}`},
		{name: "negative price", body: `{"name": "Chair", "quantity": 3, "unit_price": -0.5}`},
		{name: "fractional quantity", body: `{"name": "Chair", "quantity": 1.5, "unit_price": 1}`},
		{name: "not json", body: `name=Chair`},
	}
	for _, testcase := range cases {
		t.Run(testcase.name, func(t *testing.T) {
			input := Input{}
			rw := httptest.NewRecorder()
			price, ok := input.Parse(rw, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(testcase.body)))

			require.Equal(t, testcase.ok, ok)
			if !testcase.ok {
				require.Equal(t, http.StatusBadRequest, rw.Code)
				return
			}
			require.Equal(t, testcase.expectedPrice, price)
		})
	}
}

func TestInputParseTrimsName(t *testing.T) {
	input := Input{}
	body := `{"name": "  Chair  ", "quantity": 3, "unit_price": 1}`

	_, ok := input.Parse(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	require.True(t, ok)
	require.Equal(t, "Chair", input.Name)
}

func TestValidateRejectsBlankName(t *testing.T) {
	quantity, price := int64(1), float64(2)

	err := Input{Name: "   ", Quantity: &quantity, UnitPrice: &price}.Validate()

	require.NotNil(t, err)
	require.Contains(t, err.Error(), "name")
}

func TestRenderServiceError(t *testing.T) {
	cases := []struct {
		err            error
		expectedStatus int
	}{
		{err: user.ErrUserDoesNotExist, expectedStatus: http.StatusUnauthorized},
		{err: product.ErrProductDoesNotExist, expectedStatus: http.StatusNotFound},
		{err: product.ErrProductPermission, expectedStatus: http.StatusForbidden},
		{err: errors.New("boom"), expectedStatus: http.StatusInternalServerError},
	}
	for _, testcase := range cases {
		t.Run(testcase.err.Error(), func(t *testing.T) {
			rw := httptest.NewRecorder()
			RenderServiceError(rw, testcase.err)
			require.Equal(t, testcase.expectedStatus, rw.Code)
		})
	}
}

func TestForbiddenBody(t *testing.T) {
	rw := httptest.NewRecorder()
	RenderServiceError(rw, product.ErrProductPermission)
	require.JSONEq(t, `{"message": "Unauthorized"}`, rw.Body.String())
}
