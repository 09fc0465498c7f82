package createproduct

import (
	"inventory/internal/core/domain/product"
	"inventory/internal/core/services"
	service "inventory/internal/core/services/create_product"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	service *services.FakeService[service.Input, service.Result]
	handler *Handler
}

func (suite *testSuite) SetupTest() {
	suite.service = services.NewFakeService[service.Input, service.Result]()
	suite.handler = New(suite.service)
}

func TestCreateProductHandler(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) post(body string) *httptest.ResponseRecorder {
	rw := httptest.NewRecorder()
	s.handler.ServeHTTP(rw, httptest.NewRequest(http.MethodPost, "/v1/products", strings.NewReader(body)))
	return rw
}

func (s *testSuite) TestCreated() {
	now := time.Date(2022, 11, 1, 10, 0, 0, 0, time.UTC)
	s.service.Result = service.Result{Product: product.Product{
		ID:          5,
		OwnerID:     2,
		Name:        "Chair",
		Description: "Oak",
		Quantity:    7,
		UnitPrice:   product.Price(3800),
		CreatedAt:   now,
		UpdatedAt:   now,
	}}

	rw := s.post(`{"name": " Chair ", "description": "Oak", "quantity": 7, "unit_price": 38}`)

	s.Equal(http.StatusCreated, rw.Code)
	s.JSONEq(`{
		"id": 5,
		"user_id": 2,
		"name": "Chair",
		"description": "Oak",
		"quantity": 7,
		"unit_price": 38,
		"amount_sold": 0,
		"created_at": "2022-11-01 10:00:00",
		"updated_at": "2022-11-01 10:00:00"
	}`, rw.Body.String())
	s.Equal([]service.Input{{
		Name:        "Chair",
		Description: "Oak",
		Quantity:    7,
		UnitPrice:   product.Price(3800),
	}}, s.service.Inputs)
}

func (s *testSuite) TestInvalidInput() {
	rw := s.post(`{"description": "Oak", "quantity": -7, "unit_price": 38}`)

	s.Equal(http.StatusBadRequest, rw.Code)
	s.Contains(rw.Body.String(), `"name"`)
	s.Contains(rw.Body.String(), `"quantity"`)
	s.Empty(s.service.Inputs)
}

func (s *testSuite) TestBlankNameIsRejected() {
	rw := s.post(`{"name": "   ", "quantity": 1, "unit_price": 2}`)

	s.Equal(http.StatusBadRequest, rw.Code)
	s.Contains(rw.Body.String(), `"name"`)
	s.Empty(s.service.Inputs)
}
